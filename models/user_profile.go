package models

import (
	"fmt"
	"time"
)

// UserProfile holds the personal data of a staff member. Maps to the
// "user_profiles" table; UserID is unique so every user has at most one
// profile.
type UserProfile struct {
	ID             int64      `db:"id" json:"id" validate:"-"`
	UserID         int64      `db:"user_id" json:"user_id" validate:"required,gt=0"`
	FirstName      string     `db:"first_name" json:"first_name" validate:"required,max=50"`
	LastName       string     `db:"last_name" json:"last_name" validate:"required,max=50"`
	Email          string     `db:"email" json:"email" validate:"required,max=100,email_format"`
	Identification string     `db:"identification" json:"identification" validate:"required,max=20"`
	Address        *string    `db:"address" json:"address" validate:"omitempty,max=255"`
	PhoneNumber    *string    `db:"phone_number" json:"phone_number" validate:"omitempty,max=15"`
	BirthDate      *time.Time `db:"birth_date" json:"birth_date" validate:"-"`
	Department     *string    `db:"department" json:"department" validate:"omitempty,max=50"`
	Sector         *string    `db:"sector" json:"sector" validate:"omitempty,max=50"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at" validate:"-"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at" validate:"-"`

	User *User `db:"-" json:"-" validate:"-"`
}

// NewUserProfile builds a profile for userID after checking the email
// format. Optional columns are left unset.
func NewUserProfile(userID int64, firstName, lastName, email, identification string) (UserProfile, error) {
	validEmail, err := ValidateEmail(email)
	if err != nil {
		return UserProfile{}, err
	}

	return UserProfile{
		UserID:         userID,
		FirstName:      firstName,
		LastName:       lastName,
		Email:          validEmail,
		Identification: identification,
	}, nil
}

// TableName returns the name of the database table
// associated with the UserProfile model.
func (p UserProfile) TableName() string {
	return "user_profiles"
}

// SetEmail assigns email after validating it.
func (p *UserProfile) SetEmail(email string) error {
	validEmail, err := ValidateEmail(email)
	if err != nil {
		return err
	}

	p.Email = validEmail
	return nil
}

// FullName joins first and last name.
func (p UserProfile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p UserProfile) String() string {
	return fmt.Sprintf("<UserProfiles %d>", p.ID)
}

// Serialize converts the profile into its API representation.
func (p UserProfile) Serialize() map[string]any {
	return map[string]any{
		"id":             p.ID,
		"user_id":        p.UserID,
		"first_name":     p.FirstName,
		"last_name":      p.LastName,
		"email":          p.Email,
		"identification": p.Identification,
		"address":        stringPtr(p.Address),
		"phone_number":   stringPtr(p.PhoneNumber),
		"birth_date":     isoDatePtr(p.BirthDate),
		"department":     stringPtr(p.Department),
		"sector":         stringPtr(p.Sector),
		"created_at":     isoTimestamp(p.CreatedAt),
		"updated_at":     isoTimestamp(p.UpdatedAt),
	}
}
