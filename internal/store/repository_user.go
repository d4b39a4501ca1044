// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup and updates against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the database id and
// timestamps filled in.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists] (also matches [ErrDuplicateKey]).
//   - other driver errors → translated by the dialect classifier.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	user.CreatedAt, user.UpdatedAt = now, now

	if err := get(ctx, r.db, &user.ID, buildInsertUserQuery(r.db.builder(), user)); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.userError(err)
	}

	return user, nil
}

// CreateUserIfAbsent inserts user keyed on its unique email. When the email
// is already taken nothing is written, created is false and the existing
// row is returned.
func (r *userRepository) CreateUserIfAbsent(ctx context.Context, user models.User) (models.User, bool, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	user.CreatedAt, user.UpdatedAt = now, now

	err := get(ctx, r.db, &user.ID, buildInsertUserIfAbsentQuery(r.db.builder(), user))
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*userRepository.CreateUserIfAbsent").Msg("error inserting user")
		return models.User{}, false, r.userError(err)
	}

	existing, err := r.FindUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, false, err
	}

	return existing, false, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findUser(ctx, r.db, "*userRepository.FindUserByID", buildSelectUserQuery(r.db.builder()).Where(sq.Eq{"id": id}))
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, r.db, "*userRepository.FindUserByEmail", buildSelectUserQuery(r.db.builder()).Where(sq.Eq{"email": email}))
}

// FindUserWithProfile returns the user with Profile set, or nil when the
// user has no profile yet.
func (r *userRepository) FindUserWithProfile(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := r.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	var profile models.UserProfile
	err = get(ctx, r.db, &profile, buildSelectUserProfileQuery(r.db.builder()).Where(sq.Eq{"user_id": id}))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return user, nil
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserWithProfile").Msg("error selecting profile")
		return models.User{}, r.db.translate(err)
	}

	profile.User = &user
	user.Profile = &profile

	return user, nil
}

// FindUserWithReservations reads the user, its room reservations and its
// book reservations in one read-only transaction.
func (r *userRepository) FindUserWithReservations(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.inTx(ctx, &sql.TxOptions{ReadOnly: true}, func(tx *sqlx.Tx) error {
		var err error
		user, err = r.findUser(ctx, tx, "*userRepository.FindUserWithReservations", buildSelectUserQuery(r.db.builder()).Where(sq.Eq{"id": id}))
		if err != nil {
			return err
		}

		reservations := make([]models.Reservation, 0)
		if err = selectAll(ctx, tx, &reservations, buildListReservationsQuery(r.db.builder(), models.ReservationFilter{UserID: &id})); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		bookReservations := make([]models.BookReservation, 0)
		if err = selectAll(ctx, tx, &bookReservations, buildListBookReservationsQuery(r.db.builder(), models.BookReservationFilter{UserID: &id})); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		user.Reservations = reservations
		user.BookReservations = bookReservations
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserWithReservations").Msg("error loading user reservations")
		return models.User{}, r.db.translate(err)
	}

	return user, nil
}

func (r *userRepository) ListUsers(ctx context.Context, filter models.UserFilter) ([]models.User, error) {
	log := logger.FromContext(ctx)

	users := make([]models.User, 0)
	if err := selectAll(ctx, r.db, &users, buildListUsersQuery(r.db.builder(), filter)); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error selecting users")
		return nil, r.db.translate(err)
	}

	return users, nil
}

// UpdateUser writes every mutable column of user and refreshes updated_at.
// Returns [ErrUserNotFound] when no row has user.ID.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UpdatedAt = r.db.now()

	affected, err := exec(ctx, r.db, buildUpdateUserQuery(r.db.builder(), user))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, r.userError(err)
	}
	if affected == 0 {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

// DeleteUser removes the account. Rows still referencing it make the
// delete fail with [ErrForeignKeyViolation].
func (r *userRepository) DeleteUser(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, buildDeleteByIDQuery(r.db.builder(), usersTable, id))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return r.db.translate(err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findUser(ctx context.Context, q sqlx.QueryerContext, funcName string, query sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	if err := get(ctx, q, &user, query); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user")
		return models.User{}, r.db.translate(err)
	}

	return user, nil
}

// userError narrows a unique violation to [ErrEmailAlreadyExists], the only
// unique column of "users" besides the primary key.
func (r *userRepository) userError(err error) error {
	err = r.db.translate(err)
	if errors.Is(err, ErrDuplicateKey) {
		return fmt.Errorf("%w: %w", ErrEmailAlreadyExists, err)
	}
	return err
}
