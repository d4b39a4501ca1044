package models

import (
	"fmt"
	"time"
)

// BookReservation records a loan of a book to a user. Maps to the
// "books_reservations" table. ReturnedAt stays nil while the book is
// checked out.
type BookReservation struct {
	ID         int64      `db:"id" json:"id" validate:"-"`
	BookID     int64      `db:"book_id" json:"book_id" validate:"required,gt=0"`
	UserID     int64      `db:"user_id" json:"user_id" validate:"required,gt=0"`
	ReservedAt time.Time  `db:"reserved_at" json:"reserved_at" validate:"-"`
	ReturnedAt *time.Time `db:"returned_at" json:"returned_at" validate:"-"`

	Book *Book `db:"-" json:"-" validate:"-"`
	User *User `db:"-" json:"-" validate:"-"`
}

// NewBookReservation builds an open loan of bookID to userID.
func NewBookReservation(bookID, userID int64) BookReservation {
	return BookReservation{
		BookID: bookID,
		UserID: userID,
	}
}

// TableName returns the name of the database table
// associated with the BookReservation model.
func (r BookReservation) TableName() string {
	return "books_reservations"
}

// IsReturned reports whether the book has been given back.
func (r BookReservation) IsReturned() bool {
	return r.ReturnedAt != nil
}

// MarkReturned closes the loan at the given instant.
func (r *BookReservation) MarkReturned(at time.Time) {
	r.ReturnedAt = &at
}

func (r BookReservation) String() string {
	return fmt.Sprintf("<Books_reservations %d>", r.BookID)
}

// Serialize converts the loan into its API representation.
func (r BookReservation) Serialize() map[string]any {
	return map[string]any{
		"id":          r.ID,
		"book_id":     r.BookID,
		"user_id":     r.UserID,
		"reserved_at": isoTimestamp(r.ReservedAt),
		"returned_at": isoTimestampPtr(r.ReturnedAt),
	}
}
