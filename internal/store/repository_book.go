package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/models"
)

type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository].
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook inserts book. A gender outside book_gender_enum is rejected
// by the database with [ErrCheckViolation].
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	book.CreatedAt, book.UpdatedAt = now, now

	if err := get(ctx, r.db, &book.ID, buildInsertBookQuery(r.db.builder(), book)); err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error inserting book")
		return models.Book{}, r.db.translate(err)
	}

	return book, nil
}

func (r *bookRepository) FindBookByID(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	var book models.Book
	if err := get(ctx, r.db, &book, buildSelectBookQuery(r.db.builder()).Where(sq.Eq{"id": id})); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Book{}, ErrBookNotFound
		}
		log.Err(err).Str("func", "*bookRepository.FindBookByID").Msg("error selecting book")
		return models.Book{}, r.db.translate(err)
	}

	return book, nil
}

func (r *bookRepository) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	books := make([]models.Book, 0)
	if err := selectAll(ctx, r.db, &books, buildListBooksQuery(r.db.builder(), filter)); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error selecting books")
		return nil, r.db.translate(err)
	}

	return books, nil
}

func (r *bookRepository) UpdateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	book.UpdatedAt = r.db.now()

	affected, err := exec(ctx, r.db, buildUpdateBookQuery(r.db.builder(), book))
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error updating book")
		return models.Book{}, r.db.translate(err)
	}
	if affected == 0 {
		return models.Book{}, ErrBookNotFound
	}

	return book, nil
}

func (r *bookRepository) DeleteBook(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, buildDeleteByIDQuery(r.db.builder(), booksTable, id))
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return r.db.translate(err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
