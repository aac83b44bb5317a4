package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/haulledger/backend/internal/domain"
)

// validate is shared by every service. validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their json name so messages match the API payloads.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	if err := v.RegisterValidation("vin", isVIN); err != nil {
		panic(err)
	}
	return v
}

// isVIN accepts 17 characters from the VIN alphabet (no I, O or Q).
func isVIN(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if len(s) != 17 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z' && r != 'I' && r != 'O' && r != 'Q':
		default:
			return false
		}
	}
	return true
}

// validateInput runs struct-tag validation and converts the first failure
// into a domain.ErrValidation with a readable message.
func validateInput(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", domain.ErrValidation, fe.Field())
	case "gte":
		return fmt.Errorf("%w: %s must be at least %s", domain.ErrValidation, fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", domain.ErrValidation, fe.Field(), fe.Param())
	case "vin":
		return fmt.Errorf("%w: %s must be 17 characters without I, O or Q", domain.ErrValidation, fe.Field())
	default:
		return fmt.Errorf("%w: %s is invalid", domain.ErrValidation, fe.Field())
	}
}
