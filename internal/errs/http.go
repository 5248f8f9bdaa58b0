package errs

import (
	"errors"
	"net/http"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response maps err to an HTTP status and a client-safe body.
func Response(err error) (int, ErrorResponse) {
	var (
		notFound   *NotFoundError
		validation *ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound, ErrorResponse{Code: "not_found", Message: notFound.Message}
	case errors.As(err, &validation):
		return http.StatusBadRequest, ErrorResponse{Code: "invalid_input", Message: validation.Message}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: "internal_error", Message: "An unexpected error occurred"}
	}
}
