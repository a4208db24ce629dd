package retryfetch

import (
	"time"

	"github.com/ardriveapp/arnetwork/internal/httpclient"
)

// ResponseMode selects how a success body is decoded.
type ResponseMode = httpclient.ResponseMode

const (
	ModeJSON  = httpclient.ModeJSON
	ModeBytes = httpclient.ModeBytes
	ModeText  = httpclient.ModeText
)

const (
	DefaultRetries    = 8
	DefaultRetryDelay = 200 * time.Millisecond
)

// Options configures a single FetchWithRetry call.
type Options struct {
	// Retries is the number of additional attempts allowed after the first.
	// Zero means a single attempt. Negative values are treated as zero.
	Retries int
	// RetryDelay is the base backoff delay. Non-positive values fall back to
	// DefaultRetryDelay.
	RetryDelay time.Duration
	// SuppressLogs disables the warning logged before each retry.
	SuppressLogs bool
	// ResponseMode selects how the success body is decoded.
	ResponseMode ResponseMode
	// AcceptJSON sends "Accept: application/json" with every attempt.
	AcceptJSON bool
}

// DefaultOptions returns JSON options with the default retry budget.
func DefaultOptions() Options {
	return Options{
		Retries:      DefaultRetries,
		RetryDelay:   DefaultRetryDelay,
		ResponseMode: ModeJSON,
		AcceptJSON:   true,
	}
}

// FetchRequest is the per-attempt state of a fetch. It is a value: each retry
// derives a new request through next.
type FetchRequest struct {
	URL           string
	Retries       int
	RetryDelay    time.Duration
	SuppressLogs  bool
	AttemptNumber int
	ResponseMode  ResponseMode
	AcceptJSON    bool
}

func newFetchRequest(url string, opts Options) FetchRequest {
	retries := opts.Retries
	if retries < 0 {
		retries = 0
	}
	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}
	return FetchRequest{
		URL:          url,
		Retries:      retries,
		RetryDelay:   delay,
		SuppressLogs: opts.SuppressLogs,
		ResponseMode: opts.ResponseMode,
		AcceptJSON:   opts.AcceptJSON,
	}
}

// next returns the request for the following attempt.
func (r FetchRequest) next() FetchRequest {
	r.Retries--
	r.AttemptNumber++
	return r
}

func (r FetchRequest) headers() map[string]string {
	if !r.AcceptJSON {
		return nil
	}
	return map[string]string{"Accept": "application/json"}
}
