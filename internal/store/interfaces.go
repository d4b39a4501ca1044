package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-library-reserve/models"
)

// UserRepository persists accounts in the "users" table.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and timestamps set.
	// A taken email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// CreateUserIfAbsent inserts user unless its email is already taken.
	// created is false when the row existed; the call never fails on the
	// unique email.
	CreateUserIfAbsent(ctx context.Context, user models.User) (stored models.User, created bool, err error)
	FindUserByID(ctx context.Context, id int64) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserWithProfile loads the user and, if present, its profile.
	FindUserWithProfile(ctx context.Context, id int64) (models.User, error)
	// FindUserWithReservations loads the user with its room and book
	// reservations.
	FindUserWithReservations(ctx context.Context, id int64) (models.User, error)
	ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

// UserProfileRepository persists rows of "user_profiles".
type UserProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
	FindProfileByID(ctx context.Context, id int64) (models.UserProfile, error)
	FindProfileByUserID(ctx context.Context, userID int64) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error)
	DeleteProfile(ctx context.Context, id int64) error
}

// ReservationRepository persists room reservations.
type ReservationRepository interface {
	CreateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	FindReservationByID(ctx context.Context, id int64) (models.Reservation, error)
	// FindReservationWithUser also loads the reserving user when user_id is set.
	FindReservationWithUser(ctx context.Context, id int64) (models.Reservation, error)
	ListReservations(ctx context.Context, filter models.ReservationFilter) ([]models.Reservation, error)
	UpdateReservation(ctx context.Context, reservation models.Reservation) (models.Reservation, error)
	DeleteReservation(ctx context.Context, id int64) error
}

// BookRepository persists the book catalog.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	FindBookByID(ctx context.Context, id int64) (models.Book, error)
	ListBooks(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	UpdateBook(ctx context.Context, book models.Book) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// BookReservationRepository persists book loans.
type BookReservationRepository interface {
	CreateBookReservation(ctx context.Context, reservation models.BookReservation) (models.BookReservation, error)
	FindBookReservationByID(ctx context.Context, id int64) (models.BookReservation, error)
	ListBookReservations(ctx context.Context, filter models.BookReservationFilter) ([]models.BookReservation, error)
	// MarkReturned sets returned_at. A loan returned earlier yields
	// [ErrBookAlreadyReturned].
	MarkReturned(ctx context.Context, id int64) (models.BookReservation, error)
	DeleteBookReservation(ctx context.Context, id int64) error
}

// SchemaInspector answers questions about the live schema.
type SchemaInspector interface {
	TableExists(ctx context.Context, table string) (bool, error)
}
