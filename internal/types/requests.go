package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest creates a new user with an empty profile. The email is
// assigned here and immutable afterwards.
type RegisterRequest struct {
	ID    string `json:"id" validate:"required,min=1"`
	Email string `json:"email" validate:"required,email"`
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// GenerateRequest asks for a tailored resume PDF. Either JobDescription
// (at least 10 characters) or JobURL must be provided; when only JobURL is
// set the description is ingested from the posting page.
type GenerateRequest struct {
	UserID              string `json:"userId" validate:"required,min=1"`
	JobDescription      string `json:"jobDescription" validate:"omitempty,min=10"`
	JobResponsibilities string `json:"jobResponsibilities,omitempty"`
	JobURL              string `json:"jobUrl,omitempty" validate:"omitempty,url"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return formatValidationError(err)
	}
	if strings.TrimSpace(r.JobDescription) == "" && strings.TrimSpace(r.JobURL) == "" {
		return fmt.Errorf("validation failed: jobDescription: required when jobUrl is absent")
	}
	return nil
}

// formatValidationError converts validator errors to a user-friendly message.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, fieldError := range validationErrors {
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", fieldError.Field()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", fieldError.Field()))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s characters", fieldError.Field(), fieldError.Param()))
		case "url":
			messages = append(messages, fmt.Sprintf("%s must be a valid URL", fieldError.Field()))
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid", fieldError.Field()))
		}
	}

	return fmt.Errorf("validation failed: %s", strings.Join(messages, "; "))
}
