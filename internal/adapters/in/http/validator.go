package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator checks bound request bodies against their validate tags. It
// implements echo.Validator and reports fields by their JSON names.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: validate}
}

func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
