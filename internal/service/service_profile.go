package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

type profileService struct {
	profileRepository store.UserProfileRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProfileService(profileRepository store.UserProfileRepository, validator validators.Validator, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (s *profileService) CreateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}

	created, err := s.profileRepository.CreateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("func", "*profileService.CreateProfile").Int64("user_id", profile.UserID).Msg("error creating profile")
		return models.UserProfile{}, fmt.Errorf("error creating profile: %w", err)
	}

	return created, nil
}

func (s *profileService) GetProfileByUser(ctx context.Context, userID int64) (models.UserProfile, error) {
	return s.profileRepository.FindProfileByUserID(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	log := logger.FromContext(ctx)

	if profile.ID <= 0 {
		return models.UserProfile{}, ErrInvalidDataProvided
	}
	if err := s.validator.Validate(ctx, profile); err != nil {
		return models.UserProfile{}, err
	}

	updated, err := s.profileRepository.UpdateProfile(ctx, profile)
	if err != nil {
		log.Err(err).Str("func", "*profileService.UpdateProfile").Int64("profile_id", profile.ID).Msg("error updating profile")
		return models.UserProfile{}, fmt.Errorf("error updating profile: %w", err)
	}

	return updated, nil
}
