package serverapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for any non-2xx response from the Server API. The
// status code is preserved so callers can distinguish not-found outcomes from
// hard failures without parsing messages.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Method and Path identify the failed request.
	Method string
	Path   string

	// Message is the server-supplied error message when the response body
	// carried one, otherwise the raw body.
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d for %s %s", e.StatusCode, e.Method, e.Path)
	}
	return fmt.Sprintf("server returned status %d for %s %s: %s", e.StatusCode, e.Method, e.Path, e.Message)
}

// newAPIError builds an APIError from a failed response body. Server API
// errors carry {"message": ...}; anything else is kept verbatim.
func newAPIError(statusCode int, method, path string, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
	}

	var parsed struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}

	return apiErr
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError with status 401 or 403.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode == http.StatusUnauthorized || apiErr.StatusCode == http.StatusForbidden
}
