// Package response provides utilities for sending consistent HTTP responses.
// It includes helpers for JSON responses and the uniform error body.
package response

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// ErrorResponse is the uniform error body returned by the API:
// HTTP-status-equivalent code, message, and the UTC instant the error
// was rendered.
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RespondJSON sends a JSON response with the given status code.
// Sets the Content-Type header to application/json and writes the status code.
// If data is nil, only the status code is sent (useful for 204 No Content).
// Logs encoding errors but does not fail the response.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("failed to encode JSON response: %v", err)
		}
	}
}

// RespondError sends the uniform error body with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusBadRequest, "validation failed")
//	response.RespondError(w, http.StatusNotFound, "coin not found")
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}
