package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/mock"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

func TestReservationService_CreateReservation(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	userID := int64(7)

	t.Run("overlap is not checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockReservationRepository(ctrl)
		svc := NewReservationService(repo, validators.NewEntityValidator(), logger.Nop())

		first := models.NewReservation("Asamblea", &userID, start, start.Add(2*time.Hour))
		second := models.NewReservation("Taller", &userID, start.Add(time.Hour), start.Add(3*time.Hour))

		repo.EXPECT().CreateReservation(ctx, first).Return(models.Reservation{ID: 1}, nil)
		repo.EXPECT().CreateReservation(ctx, second).Return(models.Reservation{ID: 2}, nil)

		_, err := svc.CreateReservation(ctx, first)
		require.NoError(t, err)
		_, err = svc.CreateReservation(ctx, second)
		require.NoError(t, err)
	})

	t.Run("validator rejection stops the insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockReservationRepository(ctrl)
		v := mock.NewMockValidator(ctrl)
		svc := NewReservationService(repo, v, logger.Nop())

		reservation := models.NewReservation("", nil, start, start)
		v.EXPECT().Validate(ctx, reservation).Return(models.NewValidationError("event_name", "is required"))

		_, err := svc.CreateReservation(ctx, reservation)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockReservationRepository(ctrl)
		svc := NewReservationService(repo, validators.NewEntityValidator(), logger.Nop())

		missing := int64(404)
		repo.EXPECT().CreateReservation(ctx, gomock.Any()).Return(models.Reservation{}, store.ErrForeignKeyViolation)

		_, err := svc.CreateReservation(ctx, models.NewReservation("Asamblea", &missing, start, start.Add(time.Hour)))
		assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
	})
}

func TestReservationService_UpdateReservation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockReservationRepository(ctrl)
	svc := NewReservationService(repo, validators.NewEntityValidator(), logger.Nop())

	_, err := svc.UpdateReservation(ctx, models.Reservation{EventName: "Asamblea"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	start := time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)
	reservation := models.Reservation{ID: 3, EventName: "Asamblea", StartTime: start, EndTime: start.Add(time.Hour)}
	repo.EXPECT().UpdateReservation(ctx, reservation).Return(models.Reservation{}, store.ErrReservationNotFound)

	_, err = svc.UpdateReservation(ctx, reservation)
	assert.ErrorIs(t, err, store.ErrReservationNotFound)
}

func TestProfileService(t *testing.T) {
	ctx := context.Background()

	t.Run("create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserProfileRepository(ctrl)
		svc := NewProfileService(repo, validators.NewEntityValidator(), logger.Nop())

		profile, err := models.NewUserProfile(1, "Ana", "Pérez", "ana@anda.com.uy", "1.234.567-8")
		require.NoError(t, err)

		repo.EXPECT().CreateProfile(ctx, profile).Return(models.UserProfile{ID: 1, UserID: 1}, nil)

		created, err := svc.CreateProfile(ctx, profile)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("second profile for a user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserProfileRepository(ctrl)
		svc := NewProfileService(repo, validators.NewEntityValidator(), logger.Nop())

		profile, err := models.NewUserProfile(1, "Ana", "Pérez", "ana@anda.com.uy", "1.234.567-8")
		require.NoError(t, err)

		repo.EXPECT().CreateProfile(ctx, profile).Return(models.UserProfile{}, store.ErrDuplicateKey)

		_, err = svc.CreateProfile(ctx, profile)
		assert.ErrorIs(t, err, store.ErrDuplicateKey)
	})

	t.Run("long phone number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewProfileService(mock.NewMockUserProfileRepository(ctrl), validators.NewEntityValidator(), logger.Nop())

		phone := "+598 99 123 456 789"
		profile := models.UserProfile{ID: 1, UserID: 1, FirstName: "Ana", LastName: "Pérez", Email: "ana@anda.com.uy", Identification: "12345678", PhoneNumber: &phone}

		_, err := svc.UpdateProfile(ctx, profile)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("lookup by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockUserProfileRepository(ctrl)
		svc := NewProfileService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().FindProfileByUserID(ctx, int64(9)).Return(models.UserProfile{}, store.ErrProfileNotFound)

		_, err := svc.GetProfileByUser(ctx, 9)
		assert.True(t, errors.Is(err, store.ErrProfileNotFound))
	})
}
