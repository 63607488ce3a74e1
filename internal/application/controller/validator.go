package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"weather-story/internal/domain/model"
)

// RequestValidator adapts validator/v10 to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate returns a model.ErrValidation listing the failing fields
func (v *RequestValidator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return model.ValidationError(err.Error())
	}

	fields := make([]string, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		fields = append(fields, fieldError.Field()+" "+fieldError.Tag())
	}
	return model.ValidationError("invalid request: " + strings.Join(fields, ", "))
}
