// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

// registrationFields are the columns checked before the password is hashed.
var registrationFields = []string{"user_name", models.FieldEmail, "role", "status"}

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	hasher         PasswordHasher

	logger *logger.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, hasher PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser creates a new account awaiting approval.
//
// Returns the persisted user or:
//   - a *models.ValidationError for a malformed email, name or password.
//   - store.ErrEmailAlreadyExists when the email is taken.
func (s *userService) RegisterUser(ctx context.Context, userName, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if password == "" {
		return models.User{}, models.NewValidationError("password", "is required")
	}

	user, err := models.NewUser(userName, email, "")
	if err != nil {
		return models.User{}, err
	}
	if err = s.validator.Validate(ctx, user, registrationFields...); err != nil {
		return models.User{}, err
	}

	// only valid input reaches bcrypt
	user.PasswordHash, err = s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	registered, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.RegisterUser").Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", registered.ID).Msg("user registered")
	return registered, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserByID(ctx, id)
}

func (s *userService) GetUserWithProfile(ctx context.Context, id int64) (models.User, error) {
	return s.userRepository.FindUserWithProfile(ctx, id)
}

// ApproveUser activates an account under review. Approving an active
// account changes nothing and does not touch the database.
func (s *userService) ApproveUser(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if user.Status == models.StatusActive {
		return user, nil
	}

	if err = user.Activate(); err != nil {
		return models.User{}, err
	}

	approved, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.ApproveUser").Int64("user_id", id).Msg("error approving user")
		return models.User{}, fmt.Errorf("error approving user: %w", err)
	}

	log.Info().Int64("user_id", id).Msg("user approved")
	return approved, nil
}

func (s *userService) ChangeEmail(ctx context.Context, id int64, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if err = user.SetEmail(email); err != nil {
		return models.User{}, err
	}
	if err = s.validator.Validate(ctx, user, models.FieldEmail); err != nil {
		return models.User{}, err
	}

	updated, err := s.userRepository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userService.ChangeEmail").Int64("user_id", id).Msg("error changing email")
		return models.User{}, fmt.Errorf("error changing email: %w", err)
	}

	return updated, nil
}
