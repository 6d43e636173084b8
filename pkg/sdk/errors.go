package sdk

import (
	"errors"
	"fmt"
)

// Error codes returned by the searchiq API.
const (
	CodeBadRequest        = "bad_request"
	CodeValidationFailed  = "validation_failed"
	CodeNotFound          = "not_found"
	CodeAlreadyExists     = "already_exists"
	CodeSpamRejected      = "spam_rejected"
	CodeSourceUnavailable = "source_unavailable"
	CodeInternalError     = "internal_error"
)

// APIError is a non-2xx response from the searchiq API.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("searchiq: %s (%d): %s", e.Code, e.Status, e.Message)
}

// IsNotFound reports whether err is an API "not found" error.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsAlreadyExists reports whether err is an API conflict error.
func IsAlreadyExists(err error) bool { return hasCode(err, CodeAlreadyExists) }

// IsSpamRejected reports whether the API rejected the query as spam.
func IsSpamRejected(err error) bool { return hasCode(err, CodeSpamRejected) }

func hasCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
