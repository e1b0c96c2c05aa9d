package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultMaxBodyBytes caps request bodies when no limit is configured.
const DefaultMaxBodyBytes = 1024 * 1024

// DecodeJSON reads r's body into v. An empty body leaves v untouched.
// Failures are returned as *RequestError with status 400 or 413.
func DecodeJSON(w http.ResponseWriter, r *http.Request, maxBytes int64, v any) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}

	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBytes)).Decode(v)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return &RequestError{StatusCode: http.StatusRequestEntityTooLarge, Err: fmt.Errorf("request body exceeds %d bytes", tooLarge.Limit)}
	}
	return &RequestError{StatusCode: http.StatusBadRequest, Err: fmt.Errorf("invalid JSON body: %w", err)}
}
