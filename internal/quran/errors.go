package quran

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
)

// ErrorKind is a closed classification of upstream failures.
// Handlers use it to name the failure category in tool results.
type ErrorKind string

const (
	// KindValidation means the upstream rejected the request parameters.
	KindValidation ErrorKind = "validation"

	// KindAuthentication means the credential exchange or token was rejected.
	KindAuthentication ErrorKind = "authentication"

	// KindUpstream means the content API returned an unexpected error status.
	KindUpstream ErrorKind = "upstream"

	// KindNetwork means the request never produced an HTTP response.
	KindNetwork ErrorKind = "network"

	// KindUnknown is the fallback when no other kind applies.
	KindUnknown ErrorKind = "unknown"
)

// APIError is the only error type the client returns for failed requests.
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// classifyError wraps a transport-level failure into an APIError.
func classifyError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return &APIError{
			Kind:       KindAuthentication,
			StatusCode: retrieveErr.Response.StatusCode,
			Message:    "credential exchange rejected",
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &APIError{
			Kind:    KindNetwork,
			Message: urlErr.Err.Error(),
		}
	}

	return &APIError{
		Kind:    KindUnknown,
		Message: err.Error(),
	}
}

// classifyStatus maps a non-2xx content API response to an APIError.
func classifyStatus(status int, body string) *APIError {
	kind := KindUpstream
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = KindAuthentication
	case status == http.StatusBadRequest || status == http.StatusNotFound ||
		status == http.StatusUnprocessableEntity:
		kind = KindValidation
	}

	msg := http.StatusText(status)
	if body != "" {
		msg = body
	}
	return &APIError{Kind: kind, StatusCode: status, Message: msg}
}
