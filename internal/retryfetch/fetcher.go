package retryfetch

import (
	"context"
	"time"

	"github.com/ardriveapp/arnetwork/internal/httpclient"
	"github.com/rs/zerolog"
)

// Doer performs a single HTTP round-trip. *httpclient.HTTPClient satisfies it.
// HTTP error statuses must be returned as responses, not errors.
type Doer interface {
	Do(req *httpclient.HTTPRequest) (*httpclient.HTTPResponse, error)
}

// Fetcher is the retrying GET client. It holds no per-call state and is safe
// for concurrent use.
type Fetcher struct {
	doer    Doer
	sleeper Sleeper
	backoff BackoffPolicy
	logger  zerolog.Logger
}

// FetcherOption customizes a Fetcher.
type FetcherOption func(*Fetcher)

// WithSleeper replaces the timer-based sleeper.
func WithSleeper(s Sleeper) FetcherOption {
	return func(f *Fetcher) {
		if s != nil {
			f.sleeper = s
		}
	}
}

// WithBackoff replaces the ×1.5 exponential policy.
func WithBackoff(p BackoffPolicy) FetcherOption {
	return func(f *Fetcher) {
		if p != nil {
			f.backoff = p
		}
	}
}

// NewFetcher creates a Fetcher that sends requests through doer.
func NewFetcher(doer Doer, logger zerolog.Logger, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		doer:    doer,
		sleeper: TimerSleeper,
		backoff: DefaultBackoff(),
		logger:  logger.With().Str("component", "RetryingFetchClient").Logger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchWithRetry GETs url and classifies the response:
//
//   - a status in the retryable set with budget left is retried after
//     floor(RetryDelay * 1.5^attempt);
//   - any other status in 400-599 (including a retryable one once the budget
//     is spent) yields a StatusError without reading the body;
//   - everything else is decoded per ResponseMode and returned as Success.
//
// Transport failures are returned as TransportError immediately and are
// never retried.
func (f *Fetcher) FetchWithRetry(ctx context.Context, url string, opts Options) *Outcome {
	if ctx == nil {
		ctx = context.Background()
	}
	req := newFetchRequest(url, opts)

	// Terminates: every iteration either returns or decrements req.Retries,
	// so at most Retries+1 requests are sent.
	for {
		resp, err := f.doer.Do(httpclient.NewGetRequest(ctx, req.URL, req.headers()))
		if err != nil {
			return transportErrorOutcome(req, err)
		}

		statusCode := resp.StatusCode
		statusText := resp.StatusText()

		if req.Retries > 0 && IsRetryableStatus(statusCode) {
			delay := f.backoff.Delay(req.RetryDelay, req.AttemptNumber)
			if !req.SuppressLogs {
				f.logger.Warn().
					Str("url", req.URL).
					Int("status_code", statusCode).
					Str("status_text", statusText).
					Int("attempt", req.AttemptNumber).
					Int("retries_left", req.Retries).
					Dur("delay", delay).
					Msg("Transient HTTP status, retrying after backoff")
			}
			if err := f.sleeper.Sleep(ctx, delay); err != nil {
				return transportErrorOutcome(req, err)
			}
			req = req.next()
			continue
		}

		if IsErrorStatus(statusCode) {
			return statusErrorOutcome(req, statusCode, statusText)
		}

		body, err := httpclient.DecodeBody(req.ResponseMode, resp.Body)
		if err != nil {
			return transportErrorOutcome(req, err)
		}
		return successOutcome(req, statusCode, statusText, body)
	}
}

// GetJSON fetches url with "Accept: application/json" and decodes the body as JSON.
func (f *Fetcher) GetJSON(ctx context.Context, url string, retries int, retryDelay time.Duration, suppressLogs bool) *Outcome {
	return f.FetchWithRetry(ctx, url, Options{
		Retries:      retries,
		RetryDelay:   retryDelay,
		SuppressLogs: suppressLogs,
		ResponseMode: ModeJSON,
		AcceptJSON:   true,
	})
}

// GetBytes fetches url and returns the raw body.
func (f *Fetcher) GetBytes(ctx context.Context, url string, retries int, retryDelay time.Duration, suppressLogs bool) *Outcome {
	return f.FetchWithRetry(ctx, url, Options{
		Retries:      retries,
		RetryDelay:   retryDelay,
		SuppressLogs: suppressLogs,
		ResponseMode: ModeBytes,
	})
}

// GetText fetches url and returns the body as a string.
func (f *Fetcher) GetText(ctx context.Context, url string, retries int, retryDelay time.Duration, suppressLogs bool) *Outcome {
	return f.FetchWithRetry(ctx, url, Options{
		Retries:      retries,
		RetryDelay:   retryDelay,
		SuppressLogs: suppressLogs,
		ResponseMode: ModeText,
	})
}

// GetOnce performs a single attempt with no retries.
func (f *Fetcher) GetOnce(ctx context.Context, url string, mode ResponseMode) *Outcome {
	return f.FetchWithRetry(ctx, url, Options{
		Retries:      0,
		ResponseMode: mode,
		AcceptJSON:   mode == ModeJSON,
	})
}
