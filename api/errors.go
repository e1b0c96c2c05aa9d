package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/goldvault/transparent-gold-backend/interfaces"
)

// RequestError provides structured error information for HTTP responses.
type RequestError struct {
	// StatusCode is the HTTP status code to return.
	StatusCode int

	// Err is the underlying error.
	Err error
}

func (e *RequestError) Error() string {
	return e.Err.Error()
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// StatusForError maps an error returned by an issuance to the HTTP status
// reported to the client. Ledger and configuration problems are 5xx, requests
// the ledger refuses are 4xx.
func StatusForError(err error) int {
	var reqErr *RequestError
	switch {
	case errors.As(err, &reqErr):
		return reqErr.StatusCode
	case errors.Is(err, interfaces.ErrMalformedTransaction):
		return http.StatusBadRequest
	case errors.Is(err, interfaces.ErrSubmission), errors.Is(err, interfaces.ErrSubmissionRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, interfaces.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, interfaces.ErrNetwork):
		return http.StatusBadGateway
	default:
		// ErrSignerUnavailable, ErrInconsistentLedgerResponse and anything unexpected.
		return http.StatusInternalServerError
	}
}

// WriteJSON writes v as the JSON response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes an ErrorResponse carrying only a message.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Message: message})
}

// WriteError writes err with the status from StatusForError. The transaction
// id is included when the failure happened after submission. Callers log the
// full error; the body only carries what is safe to show a client.
func WriteError(w http.ResponseWriter, err error) {
	txID := interfaces.TxIDFromError(err)
	WriteJSON(w, StatusForError(err), ErrorResponse{
		Message: clientMessage(err, txID),
		TxID:    txID,
	})
}

// clientMessage keeps the detail of errors about the request itself and
// reduces node and internal failures to their sentinel text, which never
// names the node address.
func clientMessage(err error, txID string) string {
	var reqErr *RequestError
	var msg string
	switch {
	case errors.As(err, &reqErr),
		errors.Is(err, interfaces.ErrMalformedTransaction),
		errors.Is(err, interfaces.ErrSubmission),
		errors.Is(err, interfaces.ErrSubmissionRejected),
		errors.Is(err, interfaces.ErrConfirmationTimeout),
		errors.Is(err, interfaces.ErrSignerUnavailable):
		return err.Error()
	case errors.Is(err, interfaces.ErrNetwork):
		msg = interfaces.ErrNetwork.Error()
	case errors.Is(err, interfaces.ErrInconsistentLedgerResponse):
		msg = interfaces.ErrInconsistentLedgerResponse.Error()
	default:
		msg = "internal error"
	}
	if txID != "" {
		return fmt.Sprintf("transaction %s: %s", txID, msg)
	}
	return msg
}
