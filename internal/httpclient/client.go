package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
)

// maxErrorBodySize bounds how much of a 4xx/5xx body is kept.
const maxErrorBodySize = 64 * 1024

// maxPooledBufferSize keeps oversized buffers out of the pool.
const maxPooledBufferSize = 1 << 20

// HTTPClient is a thin net/http wrapper that performs exactly one round-trip
// per call and buffers the response body. Retry policy lives with the caller.
type HTTPClient struct {
	client     *http.Client
	config     HTTPClientConfig
	logger     zerolog.Logger
	bufferPool sync.Pool
}

// NewHTTPClient creates a new HTTP client with the given configuration
func NewHTTPClient(config HTTPClientConfig, logger zerolog.Logger) (*HTTPClient, error) {
	transport := &http.Transport{
		MaxIdleConns:          config.MaxIdleConns,
		MaxIdleConnsPerHost:   config.MaxIdleConnsPerHost,
		MaxConnsPerHost:       config.MaxConnsPerHost,
		IdleConnTimeout:       config.IdleConnTimeout,
		TLSHandshakeTimeout:   config.TLSHandshakeTimeout,
		ExpectContinueTimeout: config.ExpectContinueTimeout,
		DialContext: (&net.Dialer{
			Timeout:   config.DialTimeout,
			KeepAlive: config.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: config.InsecureSkipVerify,
		},
	}

	if config.EnableHTTP2 {
		if err := http2.ConfigureTransport(transport); err != nil {
			logger.Warn().Err(err).Msg("Failed to configure HTTP/2, falling back to HTTP/1.1")
		}
	}

	if config.Proxy != "" {
		proxyURL, err := url.Parse(config.Proxy)
		if err != nil {
			return nil, WrapError(err, "failed to parse proxy URL")
		}
		transport.Proxy = http.ProxyURL(proxyURL)
		logger.Info().Str("proxy", config.Proxy).Msg("HTTP client configured with proxy")
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   config.Timeout,
	}

	if !config.FollowRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	} else if config.MaxRedirects > 0 {
		maxRedirects := config.MaxRedirects
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		}
	}

	logger.Debug().
		Dur("timeout", config.Timeout).
		Bool("insecure_skip_verify", config.InsecureSkipVerify).
		Bool("follow_redirects", config.FollowRedirects).
		Int("max_redirects", config.MaxRedirects).
		Bool("http2_enabled", config.EnableHTTP2).
		Msg("HTTP client created")

	return &HTTPClient{
		client: client,
		config: config,
		logger: logger.With().Str("component", "HTTPClient").Logger(),
		bufferPool: sync.Pool{
			New: func() interface{} {
				return bytes.NewBuffer(make([]byte, 0, 32*1024))
			},
		},
	}, nil
}

// Do performs a single HTTP request. Any failure before a complete response
// was read is returned as a *NetworkError; HTTP error statuses are not errors.
// For 4xx/5xx responses the body is read best effort: at most
// maxErrorBodySize bytes are kept and read failures are ignored, so the
// status always reaches the caller.
func (c *HTTPClient) Do(req *HTTPRequest) (*HTTPResponse, error) {
	ctx := req.Context
	if ctx == nil {
		ctx = context.Background()
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URL, req.Body)
	if err != nil {
		return nil, NewNetworkError(req.URL, "failed to create HTTP request", err)
	}

	for key, value := range c.config.CustomHeaders {
		httpReq.Header.Set(key, value)
	}
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
	if c.config.UserAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", c.config.UserAgent)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, NewNetworkError(req.URL, "HTTP request failed", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := c.readBody(resp)
	if err != nil {
		return nil, NewNetworkError(req.URL, "failed to read response body", err)
	}

	httpResp := &HTTPResponse{
		StatusCode: resp.StatusCode,
		Status:     reasonPhrase(resp),
		Headers:    make(map[string]string, len(resp.Header)),
		Body:       bodyBytes,
	}
	for key, values := range resp.Header {
		if len(values) > 0 {
			httpResp.Headers[key] = values[0]
		}
	}

	c.logger.Debug().
		Str("url", req.URL).
		Int("status_code", resp.StatusCode).
		Int("content_size", len(bodyBytes)).
		Msg("Request completed")

	return httpResp, nil
}

func (c *HTTPClient) readBody(resp *http.Response) ([]byte, error) {
	buf := c.bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		if buf.Cap() <= maxPooledBufferSize {
			c.bufferPool.Put(buf)
		}
	}()

	if isErrorStatus(resp.StatusCode) {
		if _, err := io.Copy(buf, io.LimitReader(resp.Body, maxErrorBodySize)); err != nil {
			c.logger.Debug().Err(err).Int("status_code", resp.StatusCode).Msg("Ignoring error body read failure")
		}
	} else if _, err := io.Copy(buf, resp.Body); err != nil {
		return nil, err
	}

	// Copy out so the pooled buffer can be reused.
	body := make([]byte, buf.Len())
	copy(body, buf.Bytes())
	return body, nil
}

func isErrorStatus(code int) bool {
	return code >= 400 && code <= 599
}

// Get performs a single GET request with the given headers.
func (c *HTTPClient) Get(ctx context.Context, rawURL string, headers map[string]string) (*HTTPResponse, error) {
	return c.Do(NewGetRequest(ctx, rawURL, headers))
}

// reasonPhrase strips the numeric code from resp.Status ("503 Service Unavailable").
func reasonPhrase(resp *http.Response) string {
	status := strings.TrimSpace(resp.Status)
	prefix := strconv.Itoa(resp.StatusCode)
	if strings.HasPrefix(status, prefix) {
		status = strings.TrimSpace(strings.TrimPrefix(status, prefix))
	}
	if status == "" {
		status = http.StatusText(resp.StatusCode)
	}
	return status
}
