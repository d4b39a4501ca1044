package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/models"
)

type userProfileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserProfileRepository constructs a [UserProfileRepository].
func NewUserProfileRepository(db *DB, logger *logger.Logger) UserProfileRepository {
	logger.Debug().Msg("creating user profile repository")
	return &userProfileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile inserts profile. The unique user_id column keeps the
// relation one-to-one: a second profile for the same user, or a taken
// email or identification, fails with [ErrDuplicateKey]. An unknown user
// fails with [ErrForeignKeyViolation].
func (r *userProfileRepository) CreateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	now := r.db.now()
	profile.CreatedAt, profile.UpdatedAt = now, now

	if err := get(ctx, r.db, &profile.ID, buildInsertUserProfileQuery(r.db.builder(), profile)); err != nil {
		log.Err(err).Str("func", "*userProfileRepository.CreateProfile").Msg("error inserting user profile")
		return models.UserProfile{}, r.db.translate(err)
	}

	return profile, nil
}

func (r *userProfileRepository) FindProfileByID(ctx context.Context, id int64) (models.UserProfile, error) {
	return r.findProfile(ctx, "*userProfileRepository.FindProfileByID", sq.Eq{"id": id})
}

func (r *userProfileRepository) FindProfileByUserID(ctx context.Context, userID int64) (models.UserProfile, error) {
	return r.findProfile(ctx, "*userProfileRepository.FindProfileByUserID", sq.Eq{"user_id": userID})
}

func (r *userProfileRepository) UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	profile.UpdatedAt = r.db.now()

	affected, err := exec(ctx, r.db, buildUpdateUserProfileQuery(r.db.builder(), profile))
	if err != nil {
		log.Err(err).Str("func", "*userProfileRepository.UpdateProfile").Msg("error updating user profile")
		return models.UserProfile{}, r.db.translate(err)
	}
	if affected == 0 {
		return models.UserProfile{}, ErrProfileNotFound
	}

	return profile, nil
}

func (r *userProfileRepository) DeleteProfile(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	affected, err := exec(ctx, r.db, buildDeleteByIDQuery(r.db.builder(), userProfilesTable, id))
	if err != nil {
		log.Err(err).Str("func", "*userProfileRepository.DeleteProfile").Msg("error deleting user profile")
		return r.db.translate(err)
	}
	if affected == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func (r *userProfileRepository) findProfile(ctx context.Context, funcName string, where sq.Eq) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	var profile models.UserProfile
	if err := get(ctx, r.db, &profile, buildSelectUserProfileQuery(r.db.builder()).Where(where)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, ErrProfileNotFound
		}
		log.Err(err).Str("func", funcName).Msg("error selecting user profile")
		return models.UserProfile{}, r.db.translate(err)
	}

	return profile, nil
}
