package differ

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ardriveapp/arnetwork/internal/common"
	"github.com/ardriveapp/arnetwork/internal/httpclient"
	"github.com/ardriveapp/arnetwork/internal/retryfetch"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher answers by URL prefix and records the order of calls.
type fakeFetcher struct {
	mu       sync.Mutex
	outcomes map[string]*retryfetch.Outcome
	urls     []string
	opts     []retryfetch.Options
}

func (f *fakeFetcher) FetchWithRetry(_ context.Context, url string, opts retryfetch.Options) *retryfetch.Outcome {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.urls = append(f.urls, url)
	f.opts = append(f.opts, opts)
	for prefix, o := range f.outcomes {
		if strings.HasPrefix(url, prefix) {
			return o
		}
	}
	return &retryfetch.Outcome{
		Kind:           retryfetch.KindTransportError,
		TransportError: &retryfetch.TransportError{URL: url, Err: errors.New("unknown host")},
	}
}

func success(body string) *retryfetch.Outcome {
	return &retryfetch.Outcome{
		Kind:    retryfetch.KindSuccess,
		Success: &retryfetch.Success{StatusCode: 200, StatusMessage: "OK", Body: []byte(body)},
	}
}

func statusError(code int) *retryfetch.Outcome {
	return &retryfetch.Outcome{
		Kind: retryfetch.KindStatusError,
		StatusError: &retryfetch.StatusError{
			StatusCode: code,
			Message:    "request failed: HTTP " + http.StatusText(code),
		},
	}
}

func newTestComparer(t *testing.T, f GatewayFetcher) *Comparer {
	t.Helper()
	c, err := NewComparerBuilder(f, zerolog.Nop()).
		WithGateways("https://a.example", "https://b.example/").
		Build()
	require.NoError(t, err)
	return c
}

func TestComparerBuilder_Validation(t *testing.T) {
	_, err := NewComparerBuilder(nil, zerolog.Nop()).WithGateways("a", "b").Build()
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = NewComparerBuilder(&fakeFetcher{}, zerolog.Nop()).WithGateways("", "b").Build()
	assert.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = NewComparerBuilder(&fakeFetcher{}, zerolog.Nop()).WithGateways("a", " ").Build()
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestComparer_ForcesBytesMode(t *testing.T) {
	f := &fakeFetcher{outcomes: map[string]*retryfetch.Outcome{
		"https://a.example": success("x"),
		"https://b.example": success("x"),
	}}
	c, err := NewComparerBuilder(f, zerolog.Nop()).
		WithGateways("https://a.example", "https://b.example").
		WithFetchOptions(retryfetch.Options{Retries: 2, RetryDelay: time.Millisecond, ResponseMode: retryfetch.ModeJSON}).
		Build()
	require.NoError(t, err)

	_, err = c.Compare(context.Background(), "info")
	require.NoError(t, err)
	require.Len(t, f.opts, 2)
	for _, o := range f.opts {
		assert.Equal(t, retryfetch.ModeBytes, o.ResponseMode)
		assert.Equal(t, 2, o.Retries)
	}
}

func TestComparer_IdenticalJSONDifferentKeyOrder(t *testing.T) {
	f := &fakeFetcher{outcomes: map[string]*retryfetch.Outcome{
		"https://a.example": success(`{"network":"arweave.N.1","height":100}`),
		"https://b.example": success(`{"height":100,"network":"arweave.N.1"}`),
	}}
	c := newTestComparer(t, f)

	result, err := c.Compare(context.Background(), "/info")
	require.NoError(t, err)

	assert.True(t, result.Comparable())
	assert.True(t, result.Identical())
	assert.True(t, result.A.IsJSON)
	assert.Equal(t, []string{"https://a.example/info", "https://b.example/info"}, f.urls)
}

func TestComparer_DifferentBodies(t *testing.T) {
	f := &fakeFetcher{outcomes: map[string]*retryfetch.Outcome{
		"https://a.example": success(`{"height":100}`),
		"https://b.example": success(`{"height":101}`),
	}}
	c := newTestComparer(t, f)

	result, err := c.Compare(context.Background(), "info")
	require.NoError(t, err)

	assert.False(t, result.Identical())
	assert.Equal(t, 1, result.Stats.LinesAdded)
	assert.Equal(t, 1, result.Stats.LinesDeleted)
	assert.Contains(t, result.PlainText(), "-  \"height\": 100")
	assert.Contains(t, result.PlainText(), "+  \"height\": 101")
	assert.NotEmpty(t, result.PrettyText())
}

func TestComparer_OneSideFails(t *testing.T) {
	f := &fakeFetcher{outcomes: map[string]*retryfetch.Outcome{
		"https://a.example": success(`{}`),
		"https://b.example": statusError(http.StatusNotFound),
	}}
	c := newTestComparer(t, f)

	result, err := c.Compare(context.Background(), "tx/abc")
	require.Error(t, err)
	require.NotNil(t, result)

	assert.False(t, result.Comparable())
	assert.False(t, result.Identical())
	assert.Nil(t, result.Diffs)
	assert.True(t, result.A.Outcome.OK())
	assert.Equal(t, retryfetch.KindStatusError, result.B.Outcome.Kind)
	assert.Contains(t, err.Error(), "https://b.example/")

	var statusErr *retryfetch.StatusError
	assert.True(t, errors.As(err, &statusErr))
}

func TestComparer_BothSidesFail(t *testing.T) {
	f := &fakeFetcher{}
	c := newTestComparer(t, f)

	result, err := c.Compare(context.Background(), "info")
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 2)
	assert.Equal(t, retryfetch.KindTransportError, result.A.Outcome.Kind)
	assert.Equal(t, retryfetch.KindTransportError, result.B.Outcome.Kind)
}

func TestJoinURL(t *testing.T) {
	assert.Equal(t, "https://a/info", JoinURL("https://a", "info"))
	assert.Equal(t, "https://a/info", JoinURL("https://a/", "/info"))
	assert.Equal(t, "https://a", JoinURL("https://a", ""))
	assert.Equal(t, "https://a/graphql?q=1", JoinURL("https://a//", "graphql?q=1"))
}

func TestComparer_WithRealGateways(t *testing.T) {
	var hitsA int
	var mu sync.Mutex
	gatewayA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hitsA++
		first := hitsA == 1
		mu.Unlock()
		if first {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"a":1,"b":[1,2]}`))
	}))
	defer gatewayA.Close()

	gatewayB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"b":[1,2],"a":1}`))
	}))
	defer gatewayB.Close()

	client, err := httpclient.NewHTTPClient(httpclient.DefaultHTTPClientConfig(), zerolog.Nop())
	require.NoError(t, err)
	fetcher := retryfetch.NewFetcher(client, zerolog.Nop(),
		retryfetch.WithSleeper(retryfetch.SleeperFunc(func(ctx context.Context, _ time.Duration) error { return ctx.Err() })))

	c, err := NewComparerBuilder(fetcher, zerolog.Nop()).
		WithGateways(gatewayA.URL, gatewayB.URL).
		WithFetchOptions(retryfetch.Options{Retries: 2, RetryDelay: time.Millisecond, SuppressLogs: true}).
		Build()
	require.NoError(t, err)

	result, err := c.Compare(context.Background(), "/info")
	require.NoError(t, err)
	assert.True(t, result.Identical())
	assert.Equal(t, 1, result.A.Outcome.AttemptNumber())
	assert.Equal(t, 0, result.B.Outcome.AttemptNumber())
}
