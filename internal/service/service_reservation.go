package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

// reservationService stores room reservations. Overlapping bookings are
// accepted.
type reservationService struct {
	reservationRepository store.ReservationRepository
	validator             validators.Validator

	logger *logger.Logger
}

func NewReservationService(reservationRepository store.ReservationRepository, validator validators.Validator, logger *logger.Logger) ReservationService {
	return &reservationService{
		reservationRepository: reservationRepository,
		validator:             validator,
		logger:                logger,
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, reservation); err != nil {
		return models.Reservation{}, err
	}

	created, err := s.reservationRepository.CreateReservation(ctx, reservation)
	if err != nil {
		log.Err(err).Str("func", "*reservationService.CreateReservation").Msg("error creating reservation")
		return models.Reservation{}, fmt.Errorf("error creating reservation: %w", err)
	}

	return created, nil
}

func (s *reservationService) GetReservation(ctx context.Context, id int64) (models.Reservation, error) {
	return s.reservationRepository.FindReservationWithUser(ctx, id)
}

func (s *reservationService) ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error) {
	return s.reservationRepository.ListReservations(ctx, filter)
}

func (s *reservationService) UpdateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	if reservation.ID <= 0 {
		return models.Reservation{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, reservation); err != nil {
		return models.Reservation{}, err
	}

	updated, err := s.reservationRepository.UpdateReservation(ctx, reservation)
	if err != nil {
		log.Err(err).Str("func", "*reservationService.UpdateReservation").Int64("reservation_id", reservation.ID).Msg("error updating reservation")
		return models.Reservation{}, fmt.Errorf("error updating reservation: %w", err)
	}

	return updated, nil
}

func (s *reservationService) DeleteReservation(ctx context.Context, id int64) error {
	return s.reservationRepository.DeleteReservation(ctx, id)
}
