package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateQuantity(req QuantityRequest) []ValidationError {
	errs := []ValidationError{}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return append(errs, ValidationError{Description: err.Error()})
		}
		for _, fe := range verrs {
			errs = append(errs, ValidationError{
				Field:       fe.Field(),
				Description: fmt.Sprintf("%s must be greater than zero", fe.Field()),
			})
		}
	}
	return errs
}
