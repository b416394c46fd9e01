package rc

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrNoTokenManager      = errors.New("no token manager configured")
)

// APIError represents an error response from the Resource Controller API.
// The transport surfaces it unchanged; callers interpret the status code and
// error code per the API documentation.
type APIError struct {
	StatusCode    int    `json:"status_code,omitempty"`
	ErrorCode     string `json:"error_code,omitempty"`
	Message       string `json:"message,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.ErrorCode != "" {
		return fmt.Sprintf("%s: %s (status: %d)", e.ErrorCode, e.Message, e.StatusCode)
	}

	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// ParseAPIError parses an error response body. The status code of the HTTP
// response takes precedence over anything the body claims.
func ParseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{}

	if len(body) > 0 {
		// A body that is not the documented error shape is kept verbatim
		// as the message so nothing is masked.
		if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.Message == "" && apiErr.ErrorCode == "") {
			apiErr.Message = string(body)
		}
	}

	apiErr.StatusCode = statusCode

	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(statusCode)
	}

	return apiErr
}

// InvalidArgumentError reports a required call parameter that was absent or
// empty. It is raised before any network I/O.
type InvalidArgumentError struct {
	Param string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("required parameter %q is missing or empty", e.Param)
}

// MissingRequiredFieldError reports a response payload missing a field its
// schema declares as required.
type MissingRequiredFieldError struct {
	Field string
	Model string
}

// Error implements the error interface.
func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("required field %q not present in %s JSON", e.Field, e.Model)
}

// DecodeError reports a payload fragment that could not be converted to its
// semantic type, such as a malformed timestamp.
type DecodeError struct {
	Value string
	Err   error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q: %v", e.Value, e.Err)
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

// IsRateLimited checks if the error is a rate limiting error.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}
