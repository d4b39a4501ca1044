package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

// bookReservationService records loans. It does not check or flip the
// book's availability flag.
type bookReservationService struct {
	bookReservationRepository store.BookReservationRepository
	validator                 validators.Validator

	logger *logger.Logger
}

func NewBookReservationService(bookReservationRepository store.BookReservationRepository, validator validators.Validator, logger *logger.Logger) BookReservationService {
	return &bookReservationService{
		bookReservationRepository: bookReservationRepository,
		validator:                 validator,
		logger:                    logger,
	}
}

func (s *bookReservationService) ReserveBook(ctx context.Context, bookID, userID int64) (models.BookReservation, error) {
	log := logger.FromContext(ctx)

	reservation := models.NewBookReservation(bookID, userID)
	if err := s.validator.Validate(ctx, reservation); err != nil {
		return models.BookReservation{}, err
	}

	created, err := s.bookReservationRepository.CreateBookReservation(ctx, reservation)
	if err != nil {
		log.Err(err).Str("func", "*bookReservationService.ReserveBook").
			Int64("book_id", bookID).Int64("user_id", userID).Msg("error reserving book")
		return models.BookReservation{}, fmt.Errorf("error reserving book: %w", err)
	}

	return created, nil
}

func (s *bookReservationService) ReturnBook(ctx context.Context, id int64) (models.BookReservation, error) {
	return s.bookReservationRepository.MarkReturned(ctx, id)
}

func (s *bookReservationService) ListActiveByUser(ctx context.Context, userID int64) ([]models.BookReservation, error) {
	return s.bookReservationRepository.ListBookReservations(ctx, models.BookReservationFilter{
		UserID:     &userID,
		ActiveOnly: true,
	})
}
