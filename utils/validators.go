package utils

import (
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = validator.New()
	Validate.RegisterValidation("password", ValidatePasswordRule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("password", ValidatePasswordRule)
	}
}

func ValidatePasswordRule(fl validator.FieldLevel) bool {
	return ValidatePassword(fl.Field().String())
}

// ValidatePassword enforces the password rule:
// at least 6 characters with at least one digit.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}
	for _, r := range password {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// ValidatePriorityValue checks a task priority string against the known set.
func ValidatePriorityValue(priority string) bool {
	switch priority {
	case "", "low", "medium", "high":
		return true
	default:
		return false
	}
}
