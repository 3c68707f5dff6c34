package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxRequestBodyBytes caps the size of JSON request bodies.
const maxRequestBodyBytes = 1 << 20

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.MessageResponse{Message: "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes a single JSON value from body into v. Object keys are
// matched to struct fields case-insensitively, so "Email" and "email" are
// both accepted.
func ReadJSON(body io.Reader, v any) error {
	if body == nil {
		return io.ErrUnexpectedEOF
	}

	if err := json.NewDecoder(io.LimitReader(body, maxRequestBodyBytes)).Decode(v); err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	return nil
}
