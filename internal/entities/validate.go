package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate holds the schema rules declared through `validate` struct tags.
// Field names in errors use the JSON (document) names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	return v
}

// ValidationError is returned from save hooks when a document violates its schema.
type ValidationError struct {
	Entity string
	Err    error
}

func (e *ValidationError) Error() string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(e.Err, &fieldErrs) {
		return fmt.Sprintf("invalid %s: %v", e.Entity, e.Err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return fmt.Sprintf("invalid %s: %s", e.Entity, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Fields returns the document paths that failed validation, e.g. "plans[0].current_task.id".
func (e *ValidationError) Fields() []string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(e.Err, &fieldErrs) {
		return nil
	}
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fieldPath(fe))
	}
	return fields
}

// IsValidationError reports whether err (or anything it wraps) is a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

func validateEntity(entity string, v any) error {
	if err := validate.Struct(v); err != nil {
		return &ValidationError{Entity: entity, Err: err}
	}
	return nil
}

// fieldPath strips the top-level struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeFieldError(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "gte", "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte", "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed the %q rule", field, fe.Tag())
	}
}
