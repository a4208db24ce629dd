package httpclient

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientBuilder(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).
		WithTimeout(15 * time.Second).
		WithUserAgent("test-agent").
		WithFollowRedirects(false).
		WithInsecureSkipVerify(true).
		WithMaxRedirects(5).
		WithConnectionPooling(20, 5, 2).
		WithHTTP2(false).
		Build()

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, 15*time.Second, client.config.Timeout)
	assert.Equal(t, "test-agent", client.config.UserAgent)
	assert.False(t, client.config.FollowRedirects)
	assert.True(t, client.config.InsecureSkipVerify)
	assert.Equal(t, 5, client.config.MaxRedirects)
	assert.Equal(t, 20, client.config.MaxIdleConns)
	assert.Equal(t, 5, client.config.MaxIdleConnsPerHost)
	assert.Equal(t, 2, client.config.MaxConnsPerHost)
	assert.False(t, client.config.EnableHTTP2)
}

func TestHTTPClientBuilder_DefaultValues(t *testing.T) {
	client, err := NewHTTPClientBuilder(zerolog.Nop()).Build()
	require.NoError(t, err)

	defaults := DefaultHTTPClientConfig()
	assert.Equal(t, defaults.Timeout, client.config.Timeout)
	assert.Equal(t, defaults.FollowRedirects, client.config.FollowRedirects)
	assert.False(t, client.config.InsecureSkipVerify)
	assert.True(t, client.config.EnableHTTP2)
}

func TestHTTPClientBuilder_WithConfig(t *testing.T) {
	cfg := DefaultHTTPClientConfig()
	cfg.UserAgent = "from-config"

	client, err := NewHTTPClientBuilder(zerolog.Nop()).WithConfig(cfg).Build()
	require.NoError(t, err)
	assert.Equal(t, "from-config", client.config.UserAgent)
}
