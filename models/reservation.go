package models

import (
	"fmt"
	"time"
)

// Reservation books the event hall for a time window. Maps to the
// "reservations" table.
//
// Overlapping reservations and end-before-start windows are accepted; the
// persistence layer does not enforce scheduling rules.
type Reservation struct {
	ID        int64     `db:"id" json:"id" validate:"-"`
	EventName string    `db:"event_name" json:"event_name" validate:"required,max=100"`
	UserID    *int64    `db:"user_id" json:"user_id" validate:"omitempty,gt=0"`
	StartTime time.Time `db:"start_time" json:"start_time" validate:"required"`
	EndTime   time.Time `db:"end_time" json:"end_time" validate:"required"`
	CreatedAt time.Time `db:"created_at" json:"created_at" validate:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at" validate:"-"`

	User *User `db:"-" json:"-" validate:"-"`
}

// NewReservation builds a reservation owned by userID. Pass nil for a
// reservation without an owner.
func NewReservation(eventName string, userID *int64, start, end time.Time) Reservation {
	return Reservation{
		EventName: eventName,
		UserID:    userID,
		StartTime: start,
		EndTime:   end,
	}
}

// TableName returns the name of the database table
// associated with the Reservation model.
func (r Reservation) TableName() string {
	return "reservations"
}

// Duration is the length of the reserved window.
func (r Reservation) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func (r Reservation) String() string {
	return fmt.Sprintf("<Reservations %s>", r.EventName)
}

// Serialize converts the reservation into its API representation.
// user_email is taken from the loaded User relationship and is nil when the
// relationship has not been loaded or the reservation has no owner.
func (r Reservation) Serialize() map[string]any {
	var userEmail any
	if r.User != nil {
		userEmail = r.User.Email
	}

	return map[string]any{
		"id":         r.ID,
		"event_name": r.EventName,
		"user_id":    int64Ptr(r.UserID),
		"user_email": userEmail,
		"start_time": isoTimestamp(r.StartTime),
		"end_time":   isoTimestamp(r.EndTime),
		"created_at": isoTimestamp(r.CreatedAt),
		"updated_at": isoTimestamp(r.UpdatedAt),
	}
}
