package service

import (
	"context"

	"github.com/MKhiriev/go-library-reserve/models"
)

// UserService manages accounts and their approval.
type UserService interface {
	// RegisterUser hashes password and stores a new account with role user
	// and status en_revision.
	RegisterUser(ctx context.Context, userName, email, password string) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)
	GetUserWithProfile(ctx context.Context, id int64) (models.User, error)
	// ApproveUser moves an account from en_revision to activo.
	ApproveUser(ctx context.Context, id int64) (models.User, error)
	ChangeEmail(ctx context.Context, id int64, email string) (models.User, error)
}

type ProfileService interface {
	CreateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
	GetProfileByUser(ctx context.Context, userID int64) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
}

type ReservationService interface {
	CreateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	// GetReservation returns the reservation with its user loaded.
	GetReservation(ctx context.Context, id int64) (models.Reservation, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
	UpdateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

type BookService interface {
	AddBook(ctx context.Context, book models.Book) (models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	UpdateBook(ctx context.Context, id int64, update models.BookUpdate) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type BookReservationService interface {
	ReserveBook(ctx context.Context, bookID, userID int64) (models.BookReservation, error)
	ReturnBook(ctx context.Context, id int64) (models.BookReservation, error)
	ListActiveByUser(ctx context.Context, userID int64) ([]models.BookReservation, error)
}

// BootstrapService seeds the database with the default administrator.
type BootstrapService interface {
	// EnsureDefaultAdmin creates the configured admin account unless a user
	// with its email exists. created is false when nothing was written,
	// including when the users table is missing.
	EnsureDefaultAdmin(ctx context.Context) (created bool, err error)
}

// PasswordHasher turns a plain password into the stored hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SecretGenerator produces random secrets.
type SecretGenerator interface {
	Generate() string
}
