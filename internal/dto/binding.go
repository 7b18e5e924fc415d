package dto

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/harborbytes/booklion/internal/core/domain"
)

// RegisterCustomValidators wires domain validation rules into gin's binding
// engine so request DTOs can reference them by tag. It is safe to call more
// than once.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine type")
	}
	return v.RegisterValidation("acctnumber", func(fl validator.FieldLevel) bool {
		return domain.ValidAccountNumber(fl.Field().String())
	})
}
