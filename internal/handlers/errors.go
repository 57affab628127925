package handlers

import (
	"net/http"

	"items-api/internal/repositories"
	"items-api/internal/services"
)

// ErrorResponse is the body of every failed operation
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of operations that only acknowledge
type MessageResponse struct {
	Message string `json:"message"`
}

const (
	msgItemCreated  = "Item created successfully"
	msgItemDeleted  = "Item deleted successfully"
	msgItemNotFound = "Item not found"
)

// statusForError picks the status code for a failed operation. Validation
// failures fold into 500 unless strict is set.
func statusForError(err error, strict bool) int {
	if strict && services.IsValidationError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	return repositories.IsNotFound(err)
}
