// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-library-reserve/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUser() models.User {
	return models.User{
		UserName:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hash",
		Role:         models.RoleUser,
		Status:       models.StatusUnderReview,
	}
}

func validationErrors(t *testing.T, err error) []*models.ValidationError {
	t.Helper()

	var out []*models.ValidationError
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		for _, e := range joined.Unwrap() {
			var ve *models.ValidationError
			require.ErrorAs(t, e, &ve)
			out = append(out, ve)
		}
		return out
	}

	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)
	return append(out, ve)
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestEntityValidator_User(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(u *models.User)
		wantField string
		wantMsg   string
	}{
		{name: "valid"},
		{
			name:      "bad email",
			mutate:    func(u *models.User) { u.Email = "not-an-email" },
			wantField: "email",
			wantMsg:   models.InvalidEmailMessage,
		},
		{
			name:      "empty user name",
			mutate:    func(u *models.User) { u.UserName = "" },
			wantField: "user_name",
			wantMsg:   "is required",
		},
		{
			name:      "user name too long",
			mutate:    func(u *models.User) { u.UserName = strings.Repeat("a", 51) },
			wantField: "user_name",
			wantMsg:   "must be at most 50 characters",
		},
		{
			name:      "unknown role",
			mutate:    func(u *models.User) { u.Role = "root" },
			wantField: "role",
			wantMsg:   `invalid value "root"`,
		},
		{
			name:      "unknown status",
			mutate:    func(u *models.User) { u.Status = "baja" },
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			if tt.mutate != nil {
				tt.mutate(&u)
			}

			err := v.Validate(ctx, u)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, models.ErrValidation)

			errs := validationErrors(t, err)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.wantField, errs[0].Field)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errs[0].Message)
			}
		})
	}
}

func TestEntityValidator_PointerAndPartial(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	u := validUser()
	u.UserName = ""
	u.Email = "bad"

	// whole struct reports both fields
	errs := validationErrors(t, v.Validate(ctx, &u))
	assert.Len(t, errs, 2)

	// scoped to email only
	errs = validationErrors(t, v.Validate(ctx, &u, models.FieldEmail))
	require.Len(t, errs, 1)
	assert.Equal(t, "email", errs[0].Field)

	u.Email = "ok@example.com"
	assert.NoError(t, v.Validate(ctx, u, models.FieldEmail))
}

func TestEntityValidator_UnknownField(t *testing.T) {
	v := NewEntityValidator()

	err := v.Validate(context.Background(), validUser(), "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestEntityValidator_UnsupportedType(t *testing.T) {
	v := NewEntityValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "just a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.UserFilter{}), ErrUnsupportedType)
}

// ---------------------------------------------------------------------------
// Other entities
// ---------------------------------------------------------------------------

func TestEntityValidator_UserProfile(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	p, err := models.NewUserProfile(1, "Ana", "Pérez", "ana@example.com", "1.234.567-8")
	require.NoError(t, err)
	assert.NoError(t, v.Validate(ctx, p))

	phone := strings.Repeat("9", 16)
	p.PhoneNumber = &phone
	errs := validationErrors(t, v.Validate(ctx, p))
	require.Len(t, errs, 1)
	assert.Equal(t, "phone_number", errs[0].Field)

	p.PhoneNumber = nil
	p.UserID = 0
	errs = validationErrors(t, v.Validate(ctx, &p))
	require.Len(t, errs, 1)
	assert.Equal(t, "user_id", errs[0].Field)
}

func TestEntityValidator_Reservation(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	r := models.NewReservation("Asamblea", nil, start, start.Add(time.Hour))
	assert.NoError(t, v.Validate(ctx, r), "user is optional")

	r.EndTime = time.Time{}
	errs := validationErrors(t, v.Validate(ctx, r))
	require.Len(t, errs, 1)
	assert.Equal(t, "end_time", errs[0].Field)
}

func TestEntityValidator_Book(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	b, err := models.NewBook("Rayuela", "Cortázar", models.GenderNovel)
	require.NoError(t, err)
	assert.NoError(t, v.Validate(ctx, &b))

	b.BookGender = "Cocina"
	errs := validationErrors(t, v.Validate(ctx, b, "book_gender"))
	require.Len(t, errs, 1)
	assert.Equal(t, "book_gender", errs[0].Field)
}

func TestEntityValidator_BookReservation(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NewBookReservation(1, 2)))

	errs := validationErrors(t, v.Validate(ctx, models.NewBookReservation(0, 2)))
	require.Len(t, errs, 1)
	assert.Equal(t, "book_id", errs[0].Field)
}
