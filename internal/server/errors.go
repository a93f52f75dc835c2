// Package server provides the HTTP REST API for resumefy.
package server

import (
	"errors"
	"net/http"

	"github.com/AdamPostMontjoie/resumefy/internal/pipeline"
	"github.com/AdamPostMontjoie/resumefy/internal/schemas"
	"github.com/AdamPostMontjoie/resumefy/internal/store"
)

// HTTPStatus maps domain errors to HTTP status codes. Completion failures
// never reach this function; the pipeline recovers them internally.
func HTTPStatus(err error) int {
	var notFound *store.NotFoundError
	var emptyProfile *pipeline.EmptyProfileError
	var validation *schemas.ValidationError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &emptyProfile), errors.As(err, &validation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
