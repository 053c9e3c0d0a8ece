package apperr

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Error is the application error every handler surfaces to clients.
// Code is the stable machine-readable contract; Message may vary.
type Error struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

var (
	ErrMissingBearerToken = &Error{Code: "MISSING_BEARER_TOKEN", Status: http.StatusUnauthorized, Message: "Missing Bearer token."}
	ErrInvalidToken       = &Error{Code: "INVALID_TOKEN", Status: http.StatusUnauthorized, Message: "The provided token is invalid."}
	ErrUnauthorized       = &Error{Code: "UNAUTHORIZED", Status: http.StatusUnauthorized, Message: "The provided credentials are invalid."}
	ErrForbidden          = &Error{Code: "FORBIDDEN", Status: http.StatusForbidden, Message: "You are not allowed to perform this action."}
	ErrConfiguration      = &Error{Code: "CONFIGURATION_ERROR", Status: http.StatusInternalServerError, Message: "The service is misconfigured."}
)

// Database wraps a storage fault, including failed or aborted transactions.
func Database(err error) *Error {
	return &Error{Code: "DATABASE_ERROR", Status: http.StatusInternalServerError, Message: "Failed to execute database query", Err: err}
}

// Validation reports a malformed input payload.
func Validation(message string) *Error {
	return &Error{Code: "VALIDATION_ERROR", Status: http.StatusBadRequest, Message: message}
}

// InvalidBody reports a request body that could not be deserialized.
// Wire-wise it is a validation failure; clients branch on one code for
// every malformed input.
func InvalidBody(err error) *Error {
	return &Error{Code: "VALIDATION_ERROR", Status: http.StatusBadRequest, Message: "Invalid request body", Err: err}
}

// NotFound reports an absent entity.
func NotFound(entity string) *Error {
	return &Error{Code: "NOT_FOUND", Status: http.StatusNotFound, Message: entity + " not found"}
}

// Internal wraps everything that has no better classification.
func Internal(err error) *Error {
	return &Error{Code: "INTERNAL_SERVER_ERROR", Status: http.StatusInternalServerError, Message: "Couldn't reach mars. Check back later.", Err: err}
}

// From normalizes any error into an *Error.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// ErrorResponse is the wire shape of an error.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteJSON writes the common error payload for err.
func WriteJSON(w http.ResponseWriter, err error) {
	appErr := From(err)

	if appErr.Status >= http.StatusInternalServerError {
		log.Errorf("request failed: %s", appErr.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)
	if encErr := json.NewEncoder(w).Encode(ErrorResponse{Code: appErr.Code, Message: appErr.Message}); encErr != nil {
		log.Errorf("failed to encode error response: %v", encErr)
	}
}
