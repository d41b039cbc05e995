package youtube

import (
	"errors"
	"fmt"
)

// ErrChannelNotFound indicates the handle resolved to zero channels.
var ErrChannelNotFound = errors.New("channel not found")

// StatusError reports a non-2xx HTTP response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.StatusCode, e.Body)
}

// APIError reports an error payload returned by the API inside the
// response body.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}

// ShapeError reports a response body that could not be decoded into the
// expected structure.
type ShapeError struct {
	Endpoint string
	Err      error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected %s response: %v", e.Endpoint, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }
