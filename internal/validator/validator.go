package validator

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking/internal/domain"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (!@#$%^&*)."
	ErrInvalidDay     = "must be a day of the week"
	ErrInvalidTime    = "must be one of MORNING, AFTERNOON, EVENING, NIGHT"
	ErrInvalidRole    = "must be one of USER, ADMIN"
	ErrDefaultInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("day", validateDay)
	validator.RegisterValidation("time", validateTime)
	validator.RegisterValidation("role", validateRole)

	return validator
}

func validateDay(fl validator.FieldLevel) bool {
	_, err := domain.ParseDayOfWeek(fl.Field().String())
	return err == nil
}

func validateTime(fl validator.FieldLevel) bool {
	_, err := domain.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validateRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		return fmt.Sprintf("must be at least %s characters long", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters long", err.Param())
	case "password":
		return ErrInvalidPassword
	case "day":
		return ErrInvalidDay
	case "time":
		return ErrInvalidTime
	case "role":
		return ErrInvalidRole
	default:
		return ErrDefaultInvalid
	}
}

// Messages maps every failed field of err to its readable message. It returns
// nil when err is not a validation error.
func Messages(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	messages := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		messages[fieldErr.Field()] = ValidationMessage(fieldErr)
	}

	return messages
}
