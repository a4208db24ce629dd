package config

import (
	"time"

	"github.com/ardriveapp/arnetwork/internal/httpclient"
	"github.com/ardriveapp/arnetwork/internal/retryfetch"
)

// FetchConfig holds the default retry settings for gateway reads
type FetchConfig struct {
	// Additional attempts after the first for transient statuses
	Retries int `json:"retries" yaml:"retries" validate:"min=0,max=100"`
	// Base backoff delay in milliseconds; grows ×1.5 per retry
	RetryDelayMs int `json:"retry_delay_ms,omitempty" yaml:"retry_delay_ms,omitempty" validate:"min=1,max=600000"`
	// Disable the warning logged before each retry
	SuppressLogs bool `json:"suppress_logs" yaml:"suppress_logs"`
	// One of json, bytes, text
	ResponseMode string `json:"response_mode,omitempty" yaml:"response_mode,omitempty" validate:"omitempty,responsemode"`
	// Send "Accept: application/json"
	AcceptJSON bool `json:"accept_json" yaml:"accept_json"`
}

// NewDefaultFetchConfig creates default fetch configuration
func NewDefaultFetchConfig() FetchConfig {
	return FetchConfig{
		Retries:      DefaultFetchRetries,
		RetryDelayMs: DefaultFetchRetryDelayMs,
		SuppressLogs: DefaultFetchSuppressLogs,
		ResponseMode: DefaultFetchResponseMode,
		AcceptJSON:   DefaultFetchAcceptJSON,
	}
}

// Options converts the section into per-call fetch options.
// An unknown response mode falls back to JSON; ValidateConfig rejects it earlier.
func (fc FetchConfig) Options() retryfetch.Options {
	mode, err := httpclient.ParseResponseMode(fc.ResponseMode)
	if err != nil {
		mode = retryfetch.ModeJSON
	}
	return retryfetch.Options{
		Retries:      fc.Retries,
		RetryDelay:   time.Duration(fc.RetryDelayMs) * time.Millisecond,
		SuppressLogs: fc.SuppressLogs,
		ResponseMode: mode,
		AcceptJSON:   fc.AcceptJSON,
	}
}
