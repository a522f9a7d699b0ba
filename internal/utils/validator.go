// internal/utils/validator.go
package utils

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/studyshelf/studyshelf-backend/internal/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("strong_password", validateStrongPassword)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("stream", validateStream)
	validate.RegisterValidation("subject", validateSubject)
	validate.RegisterValidation("semester", validateSemester)
	validate.RegisterValidation("owner_kind", validateOwnerKind)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStrongPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 {
		return false
	}

	var hasUpper, hasLower, hasNumber bool

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUpper = true
		case unicode.IsLower(char):
			hasLower = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	return hasUpper && hasLower && hasNumber
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch models.UserRole(fl.Field().String()) {
	case models.UserRoleStudent, models.UserRoleInstructor, models.UserRoleAdmin:
		return true
	}
	return false
}

func validateStream(fl validator.FieldLevel) bool {
	return models.ValidStream(fl.Field().String())
}

func validateSubject(fl validator.FieldLevel) bool {
	return models.ValidSubject(fl.Field().String())
}

func validateSemester(fl validator.FieldLevel) bool {
	return models.ValidSemester(int(fl.Field().Int()))
}

func validateOwnerKind(fl validator.FieldLevel) bool {
	return models.OwnerKind(fl.Field().String()).Valid()
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "strong_password":
		return "Password must contain at least 8 characters with uppercase, lowercase and number"
	case "user_role":
		return "Role must be one of student, instructor or admin"
	case "stream":
		return "Unknown stream code"
	case "subject":
		return "Unknown subject"
	case "semester":
		return "Semester must be between 1 and 6"
	case "owner_kind":
		return "Owner kind must be one of book, course or user"
	default:
		return e.Field() + " is invalid"
	}
}
