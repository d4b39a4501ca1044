// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-library-reserve/internal/config"
	"github.com/MKhiriev/go-library-reserve/internal/logger"
	"github.com/MKhiriev/go-library-reserve/internal/store"
	"github.com/MKhiriev/go-library-reserve/internal/validators"
	"github.com/MKhiriev/go-library-reserve/models"
)

// bootstrapService creates the default administrator. Repeated and
// concurrent runs converge on a single admin row because the insert is an
// upsert on the unique email.
type bootstrapService struct {
	userRepository  store.UserRepository
	schemaInspector store.SchemaInspector
	validator       validators.Validator
	hasher          PasswordHasher
	secrets         SecretGenerator

	admin config.Admin

	logger *logger.Logger
}

func NewBootstrapService(
	userRepository store.UserRepository,
	schemaInspector store.SchemaInspector,
	validator validators.Validator,
	hasher PasswordHasher,
	secrets SecretGenerator,
	admin config.Admin,
	logger *logger.Logger,
) BootstrapService {
	return &bootstrapService{
		userRepository:  userRepository,
		schemaInspector: schemaInspector,
		validator:       validator,
		hasher:          hasher,
		secrets:         secrets,
		admin:           admin,
		logger:          logger,
	}
}

// EnsureDefaultAdmin creates the admin described by the configuration.
//
// A missing users table is not an error: the bootstrap logs a warning and
// reports created=false so it can run before migrations.
func (s *bootstrapService) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := s.schemaInspector.TableExists(ctx, models.User{}.TableName())
	if err != nil {
		log.Err(err).Str("func", "*bootstrapService.EnsureDefaultAdmin").Msg("error inspecting schema")
		return false, fmt.Errorf("error inspecting schema: %w", err)
	}
	if !exists {
		log.Warn().Str("func", "*bootstrapService.EnsureDefaultAdmin").Msg("users table does not exist, run migrations first")
		return false, nil
	}

	// skip the bcrypt work when the admin is already there
	_, err = s.userRepository.FindUserByEmail(ctx, s.admin.Email)
	switch {
	case err == nil:
		log.Info().Str("email", s.admin.Email).Msg("default admin already exists")
		return false, nil
	case !errors.Is(err, store.ErrUserNotFound):
		return false, fmt.Errorf("error looking up default admin: %w", err)
	}

	password, generated := s.admin.Password, false
	if password == "" {
		password, generated = s.secrets.Generate(), true
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*bootstrapService.EnsureDefaultAdmin").Msg("error hashing admin password")
		return false, fmt.Errorf("error hashing admin password: %w", err)
	}

	admin, err := models.NewUser(s.admin.UserName, s.admin.Email, hash)
	if err != nil {
		return false, err
	}
	admin.Role = models.RoleAdmin
	admin.Status = models.StatusActive

	if err = s.validator.Validate(ctx, admin); err != nil {
		return false, err
	}

	stored, created, err := s.userRepository.CreateUserIfAbsent(ctx, admin)
	if err != nil {
		log.Err(err).Str("func", "*bootstrapService.EnsureDefaultAdmin").Msg("error creating default admin")
		return false, fmt.Errorf("error creating default admin: %w", err)
	}
	if !created {
		// lost the race to a concurrent bootstrap
		log.Info().Str("email", s.admin.Email).Msg("default admin already exists")
		return false, nil
	}

	log.Info().Int64("user_id", stored.ID).Str("email", stored.Email).Msg("default admin created")
	if generated {
		log.Warn().Str("email", stored.Email).Str("password", password).
			Msg("generated password for default admin, change it after first login")
	}

	return true, nil
}
