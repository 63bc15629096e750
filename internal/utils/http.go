package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBodySize bounds the request bodies accepted by ReadJSON.
const maxJSONBodySize = 1 << 20

// ErrInvalidJSON is returned by ReadJSON when the body is empty, too large
// or not a single JSON value.
var ErrInvalidJSON = errors.New("invalid JSON was passed")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.SuccessMessage("Post deleted!"), http.StatusOK)
//	WriteJSON(w, models.Failure("Post not found"), http.StatusNotFound)
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

// ReadJSON decodes the request body into dst. Any decoding failure is
// reported as ErrInvalidJSON wrapping the cause.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrInvalidJSON
	}

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if decoder.More() {
		return fmt.Errorf("%w: trailing data after JSON value", ErrInvalidJSON)
	}

	return nil
}
