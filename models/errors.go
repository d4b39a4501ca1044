// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel matched by every [*ValidationError] through
// [errors.Is], so callers can detect validation failures without caring
// which field failed.
var ErrValidation = errors.New("validation error")

// Entity-level errors that are not tied to a single field format.
var (
	// ErrInvalidStatusTransition is returned when a user status change is not
	// part of the en_revision -> activo lifecycle.
	ErrInvalidStatusTransition = errors.New("invalid user status transition")
)

// ValidationError describes a single field that failed validation.
// It is the only validation error kind produced by this package.
type ValidationError struct {
	// Field is the column name of the offending value (e.g. "email").
	Field string

	// Message is the user-facing description of the failure.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap makes every ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError constructs a [*ValidationError] for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
