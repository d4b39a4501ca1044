package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/models"
)

type bookReservationRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookReservationRepository constructs a [BookReservationRepository].
func NewBookReservationRepository(db *DB, logger *logger.Logger) BookReservationRepository {
	logger.Debug().Msg("creating book reservation repository")
	return &bookReservationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBookReservation inserts a loan. reserved_at defaults to the
// handle's clock when zero. Availability of the book is not checked.
func (r *bookReservationRepository) CreateBookReservation(ctx context.Context, reservation models.BookReservation) (models.BookReservation, error) {
	log := logger.FromContext(ctx)

	if reservation.ReservedAt.IsZero() {
		reservation.ReservedAt = r.db.now()
	}

	if err := get(ctx, r.db, &reservation.ID, buildInsertBookReservationQuery(r.db.builder(), reservation)); err != nil {
		log.Err(err).Str("func", "*bookReservationRepository.CreateBookReservation").Msg("error inserting book reservation")
		return models.BookReservation{}, r.db.translate(err)
	}

	return reservation, nil
}

func (r *bookReservationRepository) FindBookReservationByID(ctx context.Context, id int64) (models.BookReservation, error) {
	log := logger.FromContext(ctx)

	var reservation models.BookReservation
	if err := get(ctx, r.db, &reservation, buildSelectBookReservationQuery(r.db.builder()).Where(sq.Eq{"id": id})); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookReservation{}, ErrBookReservationNotFound
		}
		log.Err(err).Str("func", "*bookReservationRepository.FindBookReservationByID").Msg("error selecting book reservation")
		return models.BookReservation{}, r.db.translate(err)
	}

	return reservation, nil
}

func (r *bookReservationRepository) ListBookReservations(ctx context.Context, filter models.BookReservationFilter) ([]models.BookReservation, error) {
	log := logger.FromContext(ctx)

	reservations := make([]models.BookReservation, 0)
	if err := selectAll(ctx, r.db, &reservations, buildListBookReservationsQuery(r.db.builder(), filter)); err != nil {
		log.Err(err).Str("func", "*bookReservationRepository.ListBookReservations").Msg("error selecting book reservations")
		return nil, r.db.translate(err)
	}

	return reservations, nil
}

// MarkReturned stamps returned_at on an open loan. The update is guarded by
// "returned_at IS NULL" so two concurrent returns cannot both succeed.
func (r *bookReservationRepository) MarkReturned(ctx context.Context, id int64) (models.BookReservation, error) {
	log := logger.FromContext(ctx)

	at := r.db.now()
	affected, err := exec(ctx, r.db, buildMarkReturnedQuery(r.db.builder(), id, at))
	if err != nil {
		log.Err(err).Str("func", "*bookReservationRepository.MarkReturned").Msg("error updating book reservation")
		return models.BookReservation{}, r.db.translate(err)
	}

	if affected == 0 {
		// either missing or already returned
		existing, err := r.FindBookReservationByID(ctx, id)
		if err != nil {
			return models.BookReservation{}, err
		}
		if existing.IsReturned() {
			return models.BookReservation{}, ErrBookAlreadyReturned
		}
		return models.BookReservation{}, ErrBookReservationNotFound
	}

	return r.FindBookReservationByID(ctx, id)
}

func (r *bookReservationRepository) DeleteBookReservation(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, buildDeleteByIDQuery(r.db.builder(), bookReservationsTable, id))
	if err != nil {
		log.Err(err).Str("func", "*bookReservationRepository.DeleteBookReservation").Msg("error deleting book reservation")
		return r.db.translate(err)
	}
	if affected == 0 {
		return ErrBookReservationNotFound
	}

	return nil
}
