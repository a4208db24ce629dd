package retryfetch

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/ardriveapp/arnetwork/internal/httpclient"
)

// scriptedDoer replays a fixed list of responses; the last entry repeats.
type scriptedDoer struct {
	mu        sync.Mutex
	responses []scriptedResponse
	requests  []*httpclient.HTTPRequest
}

type scriptedResponse struct {
	status int
	body   string
	err    error
}

func newScriptedDoer(responses ...scriptedResponse) *scriptedDoer {
	return &scriptedDoer{responses: responses}
}

func statuses(codes ...int) []scriptedResponse {
	out := make([]scriptedResponse, len(codes))
	for i, c := range codes {
		out[i] = scriptedResponse{status: c, body: `{"error":"from server"}`}
	}
	return out
}

func (d *scriptedDoer) Do(req *httpclient.HTTPRequest) (*httpclient.HTTPResponse, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := len(d.requests)
	d.requests = append(d.requests, req)
	if idx >= len(d.responses) {
		idx = len(d.responses) - 1
	}
	r := d.responses[idx]
	if r.err != nil {
		return nil, r.err
	}
	return &httpclient.HTTPResponse{
		StatusCode: r.status,
		Status:     http.StatusText(r.status),
		Headers:    map[string]string{},
		Body:       []byte(r.body),
	}, nil
}

func (d *scriptedDoer) calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.requests)
}

// recordingSleeper records requested delays without sleeping.
type recordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.delays = append(s.delays, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *recordingSleeper) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

var errDNS = errors.New("dial tcp: lookup gateway.invalid: no such host")
