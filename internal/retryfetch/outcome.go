package retryfetch

import (
	"fmt"
	"strings"
)

// Kind tags which variant an Outcome holds.
type Kind int

const (
	KindSuccess Kind = iota
	KindStatusError
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindStatusError:
		return "status_error"
	case KindTransportError:
		return "transport_error"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of FetchWithRetry. Exactly one of Success,
// StatusError and TransportError is set, matching Kind.
type Outcome struct {
	Kind           Kind
	Success        *Success
	StatusError    *StatusError
	TransportError *TransportError
}

// Success is a response outside the 400-599 range with its decoded body.
type Success struct {
	StatusCode    int
	StatusMessage string
	// Body is []byte, string or the decoded JSON value depending on the
	// ResponseMode of the request.
	Body          any
	AttemptNumber int
}

// StatusError is a final response in 400-599: either not retryable or
// returned once the retry budget ran out. The body is never decoded.
type StatusError struct {
	URL           string
	StatusCode    int
	StatusMessage string
	Message       string
	AttemptNumber int
}

func (e *StatusError) Error() string {
	return e.Message
}

// TransportError wraps a failure that produced no usable response.
type TransportError struct {
	URL           string
	Err           error
	AttemptNumber int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed on attempt %d: %v", e.URL, e.AttemptNumber, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Err returns the error variant as an error, or nil for a success.
func (o *Outcome) Err() error {
	if o == nil {
		return nil
	}
	switch o.Kind {
	case KindStatusError:
		return o.StatusError
	case KindTransportError:
		return o.TransportError
	default:
		return nil
	}
}

// OK reports whether the outcome is a success.
func (o *Outcome) OK() bool {
	return o != nil && o.Kind == KindSuccess
}

// AttemptNumber returns the zero-based attempt that produced the outcome.
// It equals the number of retries performed.
func (o *Outcome) AttemptNumber() int {
	switch {
	case o == nil:
		return 0
	case o.Success != nil:
		return o.Success.AttemptNumber
	case o.StatusError != nil:
		return o.StatusError.AttemptNumber
	case o.TransportError != nil:
		return o.TransportError.AttemptNumber
	default:
		return 0
	}
}

func successOutcome(req FetchRequest, statusCode int, statusMessage string, body any) *Outcome {
	return &Outcome{
		Kind: KindSuccess,
		Success: &Success{
			StatusCode:    statusCode,
			StatusMessage: statusMessage,
			Body:          body,
			AttemptNumber: req.AttemptNumber,
		},
	}
}

func statusErrorOutcome(req FetchRequest, statusCode int, statusMessage string) *Outcome {
	return &Outcome{
		Kind: KindStatusError,
		StatusError: &StatusError{
			URL:           req.URL,
			StatusCode:    statusCode,
			StatusMessage: statusMessage,
			Message:       formatStatusMessage(req.URL, statusCode, statusMessage, req.AttemptNumber),
			AttemptNumber: req.AttemptNumber,
		},
	}
}

func transportErrorOutcome(req FetchRequest, err error) *Outcome {
	return &Outcome{
		Kind: KindTransportError,
		TransportError: &TransportError{
			URL:           req.URL,
			Err:           err,
			AttemptNumber: req.AttemptNumber,
		},
	}
}

func formatStatusMessage(url string, statusCode int, statusMessage string, attempt int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "request to %s failed: HTTP %d", url, statusCode)
	if statusMessage != "" {
		b.WriteString(" ")
		b.WriteString(statusMessage)
	}
	fmt.Fprintf(&b, " (attempt %d)", attempt)
	return b.String()
}
