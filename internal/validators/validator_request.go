package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-post-keeper/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] for request models annotated with
// `validate` struct tags. Field names in messages are taken from the json
// tag so that they match what the client sent.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator with the custom rules
// used by request models registered.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return lowerFirst(fld.Name)
		default:
			return name
		}
	})

	// searchdate accepts RFC3339 timestamps and bare YYYY-MM-DD dates.
	_ = v.RegisterValidation("searchdate", func(fl validator.FieldLevel) bool {
		_, err := models.ParseSearchDate(fl.Field().String())
		return err == nil
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given, only
// those struct fields are checked.
//
// Returns a *ValidationError for the first violated rule, or
// ErrUnsupportedType if obj is not a struct.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &ValidationError{
			Field:   fieldErrs[0].Field(),
			Message: describe(fieldErrs[0]),
		}
	}

	return err
}

// describe renders a client-facing message for a single rule violation.
func describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s & %s do not match", lowerFirst(fe.Param()), field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "uuid":
		return field + " must be a valid identifier"
	case "searchdate":
		return field + " must be RFC3339 or YYYY-MM-DD"
	default:
		return field + " is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
