package httpclient

import (
	"fmt"
)

// Error represents a general error in the httpclient package.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WrapError wraps an existing error with a message.
func WrapError(err error, message string) error {
	return &Error{Message: message, Err: err}
}

// NetworkError is returned when a request never produced an HTTP response:
// malformed URL, DNS failure, refused connection, timeout, cancelled context
// or a success body that could not be read.
type NetworkError struct {
	URL     string
	Message string
	Err     error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error for URL '%s': %s: %v", e.URL, e.Message, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a new NetworkError.
func NewNetworkError(url, message string, err error) error {
	return &NetworkError{URL: url, Message: message, Err: err}
}

// DecodeError reports a success response whose body did not match the
// requested ResponseMode.
type DecodeError struct {
	Mode ResponseMode
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s body: %v", e.Mode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
