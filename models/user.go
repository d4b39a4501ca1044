// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Column names shared by several entities.
const (
	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldEmail     = "email"
	FieldCreatedAt = "created_at"
	FieldUpdatedAt = "updated_at"
)

// Role is the access level of a user account. Stored as the role_enum
// database type.
type Role string

const (
	// RoleUser is the default role of every registered account.
	RoleUser Role = "user"

	// RoleAdmin grants access to the administration panel.
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// UserStatus is the approval state of a user account. Stored as the
// role_status database type.
//
// Accounts start in StatusUnderReview and are moved to StatusActive by an
// administrator; there is no way back.
type UserStatus string

const (
	// StatusActive marks an approved account.
	StatusActive UserStatus = "activo"

	// StatusUnderReview marks an account waiting for approval.
	StatusUnderReview UserStatus = "en_revision"
)

// Valid reports whether s is a known status.
func (s UserStatus) Valid() bool {
	switch s {
	case StatusActive, StatusUnderReview:
		return true
	}
	return false
}

// CanTransitionTo reports whether a user in status s may be moved to next.
// Staying in the same status is always allowed.
func (s UserStatus) CanTransitionTo(next UserStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return s == StatusUnderReview && next == StatusActive
}

// User is an account of the portal. Maps to the "users" table.
//
// Relationship fields (Profile, Reservations, BookReservations) are never
// stored; they are filled only by the repository methods that load them.
type User struct {
	ID           int64      `db:"id" json:"id" validate:"-"`
	UserName     string     `db:"user_name" json:"username" validate:"required,max=50"`
	Email        string     `db:"email" json:"email" validate:"required,max=100,email_format"`
	PasswordHash string     `db:"password_hash" json:"-" validate:"required,max=255"`
	Role         Role       `db:"role" json:"role" validate:"enum"`
	Status       UserStatus `db:"status" json:"status" validate:"enum"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at" validate:"-"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at" validate:"-"`

	Profile          *UserProfile      `db:"-" json:"profile,omitempty" validate:"-"`
	Reservations     []Reservation     `db:"-" json:"reservations,omitempty" validate:"-"`
	BookReservations []BookReservation `db:"-" json:"books_reservations,omitempty" validate:"-"`
}

// NewUser builds a user with the default role and status after checking
// the email format.
func NewUser(userName, email, passwordHash string) (User, error) {
	validEmail, err := ValidateEmail(email)
	if err != nil {
		return User{}, err
	}

	return User{
		UserName:     userName,
		Email:        validEmail,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Status:       StatusUnderReview,
	}, nil
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SetEmail assigns email after validating it. The user is left untouched
// on failure.
func (u *User) SetEmail(email string) error {
	validEmail, err := ValidateEmail(email)
	if err != nil {
		return err
	}

	u.Email = validEmail
	return nil
}

// SetStatus moves the user to next, rejecting transitions outside the
// en_revision -> activo lifecycle with [ErrInvalidStatusTransition].
func (u *User) SetStatus(next UserStatus) error {
	current := u.Status
	if current == "" {
		current = StatusUnderReview
	}

	if !current.CanTransitionTo(next) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidStatusTransition, current, next)
	}

	u.Status = next
	return nil
}

// Activate approves the account.
func (u *User) Activate() error {
	return u.SetStatus(StatusActive)
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// String implements fmt.Stringer.
func (u User) String() string {
	return fmt.Sprintf("<User %s>", u.UserName)
}

// Serialize converts the user into its API representation. The password
// hash is never included.
func (u User) Serialize() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.UserName,
		"email":      u.Email,
		"role":       string(u.Role),
		"status":     string(u.Status),
		"created_at": isoTimestamp(u.CreatedAt),
		"updated_at": isoTimestamp(u.UpdatedAt),
	}
}
