// Package schemas provides JSON Schema validation for profile documents.
// Profile saves are full-document replaces coming from drifting client
// versions, so the document shape is checked once here, at the store
// boundary.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// profileSchema constrains the replaceable profile document. Legacy field
// names accepted by normalization are allowed; unknown extra fields are
// tolerated for forward compatibility.
const profileSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "personal": {
      "type": "object",
      "properties": {
        "firstName": {"type": "string"},
        "lastName": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"},
        "location": {"type": "string"}
      }
    },
    "summary": {"type": "string"},
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "major": {"type": "string"},
          "minor": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"}
        }
      }
    },
    "work": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "company": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "description": {"type": "array", "items": {"type": "string"}},
          "responsibilities": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "title": {"type": "string"},
          "tools": {"type": "array", "items": {"type": "string"}},
          "stack": {"type": "array", "items": {"type": "string"}},
          "startDate": {"type": "string"},
          "endDate": {"type": "string"},
          "descriptions": {"type": "array", "items": {"type": "string"}},
          "details": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "skills": {"type": "array", "items": {"type": "string"}},
    "certifications": {"type": "array", "items": {"type": "string"}},
    "websites": {"type": "array", "items": {"type": "string"}}
  }
}`

var profileLoader = gojsonschema.NewStringLoader(profileSchema)

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation failures for one document.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "profile validation failed: " + strings.Join(parts, "; ")
}

// ValidateProfile checks a raw profile document against the schema.
// Returns *ValidationError when the document does not conform.
func ValidateProfile(document []byte) error {
	result, err := gojsonschema.Validate(profileLoader, gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate profile document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{}
	for _, desc := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return validationErr
}
