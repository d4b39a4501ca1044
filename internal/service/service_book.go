package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

type bookService struct {
	bookRepository store.BookRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, validator validators.Validator, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository: bookRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *bookService) AddBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, book); err != nil {
		return models.Book{}, err
	}

	created, err := s.bookRepository.CreateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("func", "*bookService.AddBook").Str("title", book.Title).Msg("error adding book")
		return models.Book{}, fmt.Errorf("error adding book: %w", err)
	}

	return created, nil
}

func (s *bookService) GetBook(ctx context.Context, id int64) (models.Book, error) {
	return s.bookRepository.FindBookByID(ctx, id)
}

func (s *bookService) ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	return s.bookRepository.ListBooks(ctx, filter)
}

// UpdateBook applies the non-nil fields of update to the stored book.
func (s *bookService) UpdateBook(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		return models.Book{}, ErrNoFieldsToUpdate
	}

	book, err := s.bookRepository.FindBookByID(ctx, id)
	if err != nil {
		return models.Book{}, err
	}

	update.Apply(&book)
	if err = s.validator.Validate(ctx, book); err != nil {
		return models.Book{}, err
	}

	updated, err := s.bookRepository.UpdateBook(ctx, book)
	if err != nil {
		log.Err(err).Str("func", "*bookService.UpdateBook").Int64("book_id", id).Msg("error updating book")
		return models.Book{}, fmt.Errorf("error updating book: %w", err)
	}

	return updated, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	return s.bookRepository.DeleteBook(ctx, id)
}
