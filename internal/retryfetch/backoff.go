package retryfetch

import (
	"context"
	"math"
	"time"

	"github.com/jpillora/backoff"
)

// DefaultBackoffFactor is the growth factor between consecutive retry delays.
const DefaultBackoffFactor = 1.5

// BackoffPolicy computes the wait before the retry that follows attempt
// (zero-based) given the base delay.
type BackoffPolicy interface {
	Delay(base time.Duration, attempt int) time.Duration
}

// ExponentialBackoff waits floor(base * Factor^attempt) whole milliseconds,
// without cap or jitter. The first retry waits the full base delay.
// Delays past the time.Duration range saturate at math.MaxInt64 (about 292
// years); a 1s base gets there around attempt 57, well inside the configurable
// budget of 100 retries. Bound Retries or pass a capped policy via WithBackoff.
type ExponentialBackoff struct {
	Factor float64
}

// DefaultBackoff returns the ×1.5 exponential policy.
func DefaultBackoff() ExponentialBackoff {
	return ExponentialBackoff{Factor: DefaultBackoffFactor}
}

func (e ExponentialBackoff) Delay(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt < 0 {
		attempt = 0
	}
	factor := e.Factor
	if factor <= 0 {
		factor = DefaultBackoffFactor
	}
	b := &backoff.Backoff{
		Min:    base,
		Max:    time.Duration(math.MaxInt64),
		Factor: factor,
		Jitter: false,
	}
	return b.ForAttempt(float64(attempt)).Truncate(time.Millisecond)
}

// Sleeper pauses between attempts. Implementations must return early with
// ctx.Err() when ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SleeperFunc adapts a function to Sleeper.
type SleeperFunc func(ctx context.Context, d time.Duration) error

func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) error {
	return f(ctx, d)
}

// TimerSleeper sleeps on a timer.
var TimerSleeper Sleeper = SleeperFunc(timerSleep)

func timerSleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
