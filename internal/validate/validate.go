// Package validate runs struct-tag validation and converts failures into apperr.ValidationError.
package validate

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledger/internal/apperr"
)

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names so errors line up with the request body.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}

			if name == "" {
				return f.Name
			}

			return name
		})

		// Lets gt/gte/lte work on decimal amounts.
		v.RegisterCustomTypeFunc(func(field reflect.Value) any {
			d, ok := field.Interface().(decimal.Decimal)
			if !ok {
				return nil
			}

			f, _ := d.Float64()

			return f
		}, decimal.Decimal{})

		instance = v
	})

	return instance
}

// Struct validates s and returns a *apperr.ValidationError listing every failed field.
func Struct(s any) error {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := &apperr.ValidationError{Fields: make([]apperr.FieldError, 0, len(ve))}
	for _, fe := range ve {
		out.Fields = append(out.Fields, apperr.FieldError{
			Field:   fieldName(fe),
			Message: message(fe),
		})
	}

	return out
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}

	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "min":
		return "must have at least " + fe.Param() + " characters"
	case "max":
		return "must have at most " + fe.Param() + " characters"
	case "len":
		return "must have exactly " + fe.Param() + " characters"
	case "gtefield":
		return "must not be before " + fe.Param()
	case "iso4217":
		return "must be an ISO 4217 currency code"
	}

	return "failed on " + fe.Tag()
}
