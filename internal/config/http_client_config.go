package config

import (
	"time"

	"github.com/ardriveapp/arnetwork/internal/httpclient"
)

// HTTPClientConfig is the file representation of the transport settings
type HTTPClientConfig struct {
	TimeoutSecs        int               `json:"timeout_secs,omitempty" yaml:"timeout_secs,omitempty" validate:"min=0,max=3600"`
	UserAgent          string            `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
	InsecureSkipVerify bool              `json:"insecure_skip_verify" yaml:"insecure_skip_verify"`
	FollowRedirects    bool              `json:"follow_redirects" yaml:"follow_redirects"`
	MaxRedirects       int               `json:"max_redirects,omitempty" yaml:"max_redirects,omitempty" validate:"min=0,max=100"`
	Proxy              string            `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	EnableHTTP2        bool              `json:"enable_http2" yaml:"enable_http2"`
	CustomHeaders      map[string]string `json:"custom_headers,omitempty" yaml:"custom_headers,omitempty"`
}

// NewDefaultHTTPClientConfig creates default transport configuration
func NewDefaultHTTPClientConfig() HTTPClientConfig {
	return HTTPClientConfig{
		TimeoutSecs:     DefaultHTTPTimeoutSecs,
		UserAgent:       DefaultHTTPUserAgent,
		FollowRedirects: DefaultHTTPFollowRedirects,
		MaxRedirects:    DefaultHTTPMaxRedirects,
		EnableHTTP2:     DefaultHTTPEnableHTTP2,
	}
}

// ClientConfig maps the section onto the transport configuration, keeping
// transport defaults for knobs not exposed in the file.
func (hc HTTPClientConfig) ClientConfig() httpclient.HTTPClientConfig {
	cfg := httpclient.DefaultHTTPClientConfig()
	cfg.Timeout = time.Duration(hc.TimeoutSecs) * time.Second
	cfg.InsecureSkipVerify = hc.InsecureSkipVerify
	cfg.FollowRedirects = hc.FollowRedirects
	cfg.MaxRedirects = hc.MaxRedirects
	cfg.Proxy = hc.Proxy
	cfg.EnableHTTP2 = hc.EnableHTTP2
	if hc.UserAgent != "" {
		cfg.UserAgent = hc.UserAgent
	}
	for k, v := range hc.CustomHeaders {
		cfg.CustomHeaders[k] = v
	}
	return cfg
}
