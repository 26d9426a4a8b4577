package value

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrMissingField is matched by every MissingFieldError.
var ErrMissingField = errors.New("value: required field missing")

// MissingFieldError names a field tagged `validate:"required"` that decoding
// left at its zero value. Field is the JSON path, e.g. "Ship.nav.status".
type MissingFieldError struct {
	Field string
	Rule  string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("value: %s is required", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

var (
	validateOnce sync.Once
	structs      *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		structs = validator.New(validator.WithRequiredStructEnabled())
		structs.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return structs
}

// Validate checks the `validate` tags of a decoded record, descending into
// nested records. JSON decoding never calls UnmarshalJSON for an absent key,
// so this is what rejects a record whose required wrapper or enum field was
// missing from the payload. Non-struct values pass unchecked.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := structValidator().Struct(rv.Interface())
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return &MissingFieldError{Field: fieldErrs[0].Namespace(), Rule: fieldErrs[0].Tag()}
	}
	return err
}
