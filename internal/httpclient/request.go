package httpclient

import (
	"context"
	"io"
	"net/http"
)

// HTTPRequest represents a single outgoing request
type HTTPRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    io.Reader
	Context context.Context
}

// HTTPResponse is a fully buffered response
type HTTPResponse struct {
	StatusCode int
	// Status is the reason phrase sent by the server ("Service Unavailable"),
	// without the numeric code.
	Status  string
	Headers map[string]string
	Body    []byte
}

// StatusText returns the reason phrase for the response, falling back to the
// standard text for the code when the server sent none.
func (r *HTTPResponse) StatusText() string {
	if r == nil {
		return ""
	}
	if r.Status != "" {
		return r.Status
	}
	return http.StatusText(r.StatusCode)
}

// NewGetRequest builds a GET request bound to ctx
func NewGetRequest(ctx context.Context, url string, headers map[string]string) *HTTPRequest {
	return &HTTPRequest{
		URL:     url,
		Method:  http.MethodGet,
		Headers: headers,
		Context: ctx,
	}
}
