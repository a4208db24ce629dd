package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	tests := []struct {
		name            string
		originalError   error
		message         string
		expectedMessage string
	}{
		{
			name:            "wrap simple error",
			originalError:   errors.New("original error"),
			message:         "wrapper message",
			expectedMessage: "wrapper message: original error",
		},
		{
			name:            "empty wrapper message",
			originalError:   errors.New("original error"),
			message:         "",
			expectedMessage: ": original error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrappedError := WrapError(tt.originalError, tt.message)
			assert.Error(t, wrappedError)
			assert.Equal(t, tt.expectedMessage, wrappedError.Error())
			assert.ErrorIs(t, wrappedError, tt.originalError)
		})
	}
}

func TestWrapError_Nil(t *testing.T) {
	assert.NoError(t, WrapError(nil, "ignored"))
	assert.NoError(t, WrapErrorf(nil, "ignored %d", 1))
}

func TestWrapErrorf(t *testing.T) {
	base := errors.New("boom")
	err := WrapErrorf(base, "loading %s", "config.yaml")
	assert.Equal(t, "loading config.yaml: boom", err.Error())
	assert.ErrorIs(t, err, base)
}

func TestNewError(t *testing.T) {
	err := NewError("error with value: %d", 42)
	assert.Equal(t, "error with value: 42", err.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("retries", -1, "must not be negative")

	assert.Equal(t, "validation failed for field 'retries': must not be negative (value: -1)", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrInvalidConfiguration)
}

func TestConfigurationError(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConfigurationError
		expected string
	}{
		{
			name:     "section and field",
			err:      NewConfigurationError("fetch_config", "retry_delay_ms", "must be positive"),
			expected: "configuration error in section 'fetch_config', field 'retry_delay_ms': must be positive",
		},
		{
			name:     "section only",
			err:      NewConfigurationError("compare_config", "", "gateways missing"),
			expected: "configuration error in section 'compare_config': gateways missing",
		},
		{
			name:     "reason only",
			err:      NewConfigurationError("", "", "empty file"),
			expected: "configuration error: empty file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.ErrorIs(t, tt.err, ErrInvalidConfiguration)
		})
	}
}
