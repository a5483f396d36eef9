package validator

import (
	"fmt"
	"regexp"
	"slices"
	"unicode"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Message templates used by ValidationMessage and by tests asserting on
// validation output.
const (
	ErrRequired    = "is required"
	ErrEmail       = "must be a valid email address"
	ErrMinValue    = "must be at least %s"
	ErrMaxValue    = "must be at most %s"
	ErrAlphaOnly   = "must contain only letters"
	ErrOneOf       = "must be one of: %s"
	ErrGenre       = "must be a known genre"
	ErrAmenity     = "must be a known amenity"
	ErrGreaterThan = "must be after %s"
	ErrPassword    = "must be 8-25 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("password", validatePassword)
	validator.RegisterValidation("genre", validateGenre)
	validator.RegisterValidation("amenity", validateAmenity)

	return validator
}

func validateGenre(fl validator.FieldLevel) bool {
	return slices.Contains(domain.Genres, fl.Field().String())
}

func validateAmenity(fl validator.FieldLevel) bool {
	return slices.Contains(domain.Amenities, fl.Field().String())
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
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "alpha":
		return ErrAlphaOnly
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "gtfield":
		return fmt.Sprintf(ErrGreaterThan, err.Param())
	case "genre":
		return ErrGenre
	case "amenity":
		return ErrAmenity
	case "password":
		return ErrPassword
	default:
		return "is invalid"
	}
}
