package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-library-reserve/models"
)

const (
	tagEmailFormat = "email_format"
	tagEnum        = "enum"
)

// enum is satisfied by the typed string enums of the models package.
type enum interface {
	Valid() bool
}

// EntityValidator validates the models against their `validate` tags.
// Field names passed to Validate are column names (the `db` tag), e.g.
// models.FieldEmail.
type EntityValidator struct {
	validate *validator.Validate

	mu      sync.RWMutex
	columns map[reflect.Type]map[string]string
}

// NewEntityValidator builds an [EntityValidator] with the email_format and
// enum tags registered.
func NewEntityValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("db"), ",")
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// both registrations only fail on an empty tag or nil func
	_ = v.RegisterValidation(tagEmailFormat, func(fl validator.FieldLevel) bool {
		return models.IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation(tagEnum, func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(enum)
		return ok && e.Valid()
	})

	return &EntityValidator{
		validate: v,
		columns:  make(map[reflect.Type]map[string]string),
	}
}

// Validate checks obj, or only the named columns of obj when fields is not
// empty.
func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User, models.UserProfile, models.Reservation, models.Book, models.BookReservation:
		return v.validateStruct(ctx, value, fields...)
	case *models.User:
		return v.validateStruct(ctx, *value, fields...)
	case *models.UserProfile:
		return v.validateStruct(ctx, *value, fields...)
	case *models.Reservation:
		return v.validateStruct(ctx, *value, fields...)
	case *models.Book:
		return v.validateStruct(ctx, *value, fields...)
	case *models.BookReservation:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		goFields, lookupErr := v.goFieldNames(reflect.TypeOf(obj), fields)
		if lookupErr != nil {
			return lookupErr
		}
		err = v.validate.StructPartialCtx(ctx, obj, goFields...)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, models.NewValidationError(fe.Field(), message(fe)))
	}

	return errors.Join(errs...)
}

// goFieldNames maps column names to the Go field names StructPartial expects.
func (v *EntityValidator) goFieldNames(t reflect.Type, columns []string) ([]string, error) {
	byColumn := v.columnIndex(t)

	names := make([]string, 0, len(columns))
	for _, column := range columns {
		name, ok := byColumn[column]
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, t.Name(), column)
		}
		names = append(names, name)
	}

	return names, nil
}

func (v *EntityValidator) columnIndex(t reflect.Type) map[string]string {
	v.mu.RLock()
	index, ok := v.columns[t]
	v.mu.RUnlock()
	if ok {
		return index
	}

	index = make(map[string]string, t.NumField())
	for i := range t.NumField() {
		fld := t.Field(i)
		column, _, _ := strings.Cut(fld.Tag.Get("db"), ",")
		if column == "" || column == "-" {
			continue
		}
		index[column] = fld.Name
	}

	v.mu.Lock()
	v.columns[t] = index
	v.mu.Unlock()

	return index
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case tagEmailFormat:
		return models.InvalidEmailMessage
	case tagEnum:
		return fmt.Sprintf("invalid value %q", fmt.Sprint(fe.Value()))
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	}

	return fmt.Sprintf("failed on %s", fe.Tag())
}
