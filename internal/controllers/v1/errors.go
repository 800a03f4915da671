package v1

import (
	"errors"
	"net/http"

	"github.com/payremind/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate HTTP status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errStatusInvalid       = errors.New("the specified status filter is invalid")
	errCleanupConfirmation = errors.New("the confirmation for the cleanup API call was incorrect")
)
