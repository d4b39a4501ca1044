package models

import "time"

// Pagination limits a listing. Zero Limit means no limit.
type Pagination struct {
	Limit  uint64
	Offset uint64
}

// UserFilter narrows ListUsers. Nil fields are ignored.
type UserFilter struct {
	Role   *Role
	Status *UserStatus
	Pagination
}

// ReservationFilter narrows ListReservations. When both From and To are
// set, only reservations overlapping [From, To) are returned.
type ReservationFilter struct {
	UserID *int64
	From   *time.Time
	To     *time.Time
	Pagination
}

// BookFilter narrows ListBooks. TitleContains is matched case-insensitively.
type BookFilter struct {
	Gender        *BookGender
	Available     *bool
	TitleContains string
	Pagination
}

// BookReservationFilter narrows ListBookReservations. ActiveOnly keeps the
// loans whose book has not been returned yet.
type BookReservationFilter struct {
	UserID     *int64
	BookID     *int64
	ActiveOnly bool
	Pagination
}
