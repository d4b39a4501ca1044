package service

import (
	"context"
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

func ptr[T any](v T) *T { return &v }

func TestBookService_AddBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockBookRepository(ctrl)
	svc := NewBookService(repo, validators.NewEntityValidator(), logger.Nop())
	ctx := context.Background()

	book, err := models.NewBook("Ficciones", "Borges", models.GenderShortStory)
	require.NoError(t, err)

	repo.EXPECT().CreateBook(ctx, book).Return(models.Book{ID: 1, Title: "Ficciones"}, nil)

	created, err := svc.AddBook(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	// invalid gender never reaches the repository
	book.BookGender = "Cocina"
	_, err = svc.AddBook(ctx, book)
	assert.ErrorIs(t, err, models.ErrValidation)
}

func TestBookService_UpdateBook(t *testing.T) {
	ctx := context.Background()
	stored := models.Book{ID: 5, Title: "Rayuela", Author: "Cortazar", BookGender: models.GenderNovel, Availability: true}

	t.Run("applies only set fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookRepository(ctrl)
		svc := NewBookService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().FindBookByID(ctx, int64(5)).Return(stored, nil)
		repo.EXPECT().UpdateBook(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b models.Book) (models.Book, error) {
				assert.Equal(t, "Cortázar", b.Author)
				assert.Equal(t, "Rayuela", b.Title)
				assert.False(t, b.Availability)
				return b, nil
			},
		)

		_, err := svc.UpdateBook(ctx, 5, models.BookUpdate{Author: ptr("Cortázar"), Availability: ptr(false)})
		require.NoError(t, err)
	})

	t.Run("empty update", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewBookService(mock.NewMockBookRepository(ctrl), validators.NewEntityValidator(), logger.Nop())

		_, err := svc.UpdateBook(ctx, 5, models.BookUpdate{})
		assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
	})

	t.Run("invalid gender", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookRepository(ctrl)
		svc := NewBookService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().FindBookByID(ctx, int64(5)).Return(stored, nil)

		_, err := svc.UpdateBook(ctx, 5, models.BookUpdate{BookGender: ptr(models.BookGender("Cocina"))})
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookRepository(ctrl)
		svc := NewBookService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().FindBookByID(ctx, int64(6)).Return(models.Book{}, store.ErrBookNotFound)

		_, err := svc.UpdateBook(ctx, 6, models.BookUpdate{Title: ptr("X")})
		assert.ErrorIs(t, err, store.ErrBookNotFound)
	})
}

func TestBookReservationService(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookReservationRepository(ctrl)
		svc := NewBookReservationService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().CreateBookReservation(ctx, models.NewBookReservation(3, 4)).
			Return(models.BookReservation{ID: 1, BookID: 3, UserID: 4, ReservedAt: time.Now()}, nil)

		loan, err := svc.ReserveBook(ctx, 3, 4)
		require.NoError(t, err)
		assert.False(t, loan.IsReturned())
	})

	t.Run("reserve without user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewBookReservationService(mock.NewMockBookReservationRepository(ctrl), validators.NewEntityValidator(), logger.Nop())

		_, err := svc.ReserveBook(ctx, 3, 0)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("reserve unknown book", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookReservationRepository(ctrl)
		svc := NewBookReservationService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().CreateBookReservation(ctx, gomock.Any()).Return(models.BookReservation{}, store.ErrForeignKeyViolation)

		_, err := svc.ReserveBook(ctx, 99, 4)
		assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
	})

	t.Run("active by user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookReservationRepository(ctrl)
		svc := NewBookReservationService(repo, validators.NewEntityValidator(), logger.Nop())

		userID := int64(4)
		repo.EXPECT().ListBookReservations(ctx, models.BookReservationFilter{UserID: &userID, ActiveOnly: true}).
			Return([]models.BookReservation{{ID: 1}}, nil)

		loans, err := svc.ListActiveByUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, loans, 1)
	})

	t.Run("return twice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockBookReservationRepository(ctrl)
		svc := NewBookReservationService(repo, validators.NewEntityValidator(), logger.Nop())

		repo.EXPECT().MarkReturned(ctx, int64(1)).Return(models.BookReservation{}, store.ErrBookAlreadyReturned)

		_, err := svc.ReturnBook(ctx, 1)
		assert.ErrorIs(t, err, store.ErrBookAlreadyReturned)
	})
}
