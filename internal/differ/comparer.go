package differ

import (
	"context"
	"fmt"
	"strings"

	"github.com/ardriveapp/arnetwork/internal/common"
	"github.com/ardriveapp/arnetwork/internal/retryfetch"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// GatewayFetcher is the subset of *retryfetch.Fetcher used by Comparer.
type GatewayFetcher interface {
	FetchWithRetry(ctx context.Context, url string, opts retryfetch.Options) *retryfetch.Outcome
}

// Comparer fetches the same path from two gateways and diffs the bodies.
type Comparer struct {
	fetcher   GatewayFetcher
	gatewayA  string
	gatewayB  string
	opts      retryfetch.Options
	processor *DiffProcessor
	logger    zerolog.Logger
}

// ComparerBuilder provides a fluent interface for creating Comparer
type ComparerBuilder struct {
	fetcher  GatewayFetcher
	gatewayA string
	gatewayB string
	opts     retryfetch.Options
	diffCfg  DiffConfig
	logger   zerolog.Logger
}

func NewComparerBuilder(fetcher GatewayFetcher, logger zerolog.Logger) *ComparerBuilder {
	return &ComparerBuilder{
		fetcher: fetcher,
		opts:    retryfetch.DefaultOptions(),
		diffCfg: DefaultDiffConfig(),
		logger:  logger,
	}
}

func (b *ComparerBuilder) WithGateways(gatewayA, gatewayB string) *ComparerBuilder {
	b.gatewayA = gatewayA
	b.gatewayB = gatewayB
	return b
}

// WithFetchOptions sets the retry settings; the response mode is always
// forced to bytes so bodies can be canonicalized before diffing.
func (b *ComparerBuilder) WithFetchOptions(opts retryfetch.Options) *ComparerBuilder {
	b.opts = opts
	return b
}

func (b *ComparerBuilder) WithDiffConfig(cfg DiffConfig) *ComparerBuilder {
	b.diffCfg = cfg
	return b
}

func (b *ComparerBuilder) Build() (*Comparer, error) {
	if b.fetcher == nil {
		return nil, common.NewValidationError("fetcher", nil, "fetcher cannot be nil")
	}
	if strings.TrimSpace(b.gatewayA) == "" {
		return nil, common.NewValidationError("gateway_a", b.gatewayA, "gateway cannot be empty")
	}
	if strings.TrimSpace(b.gatewayB) == "" {
		return nil, common.NewValidationError("gateway_b", b.gatewayB, "gateway cannot be empty")
	}

	opts := b.opts
	opts.ResponseMode = retryfetch.ModeBytes

	return &Comparer{
		fetcher:   b.fetcher,
		gatewayA:  b.gatewayA,
		gatewayB:  b.gatewayB,
		opts:      opts,
		processor: NewDiffProcessor(b.diffCfg),
		logger:    b.logger.With().Str("component", "GatewayComparer").Logger(),
	}, nil
}

// SideResult is one gateway's half of a comparison
type SideResult struct {
	Gateway string
	URL     string
	Outcome *retryfetch.Outcome
	// Content is the canonicalized body; empty unless Outcome succeeded.
	Content string
	IsJSON  bool
}

// ComparisonResult describes how two gateway responses differ
type ComparisonResult struct {
	Path  string
	A     SideResult
	B     SideResult
	Diffs []diffmatchpatch.Diff
	Stats DiffStatistics

	processor *DiffProcessor
}

// Comparable reports whether both gateways returned a body.
func (r *ComparisonResult) Comparable() bool {
	return r.A.Outcome.OK() && r.B.Outcome.OK()
}

// Identical reports whether both bodies were fetched and match.
func (r *ComparisonResult) Identical() bool {
	return r.Comparable() && r.Stats.IsIdentical
}

// PlainText renders the diff with +/- line prefixes.
func (r *ComparisonResult) PlainText() string {
	return PlainText(r.Diffs)
}

// PrettyText renders the diff with terminal colors.
func (r *ComparisonResult) PrettyText() string {
	if r.processor == nil {
		return PlainText(r.Diffs)
	}
	return r.processor.PrettyText(r.Diffs)
}

// Compare fetches path from gateway A, then gateway B, and diffs the bodies.
// When a side fails the result still records both outcomes and the returned
// error aggregates every failure.
func (c *Comparer) Compare(ctx context.Context, path string) (*ComparisonResult, error) {
	result := &ComparisonResult{
		Path:      path,
		A:         c.fetchSide(ctx, c.gatewayA, path),
		B:         c.fetchSide(ctx, c.gatewayB, path),
		processor: c.processor,
	}

	var errs *multierror.Error
	for _, side := range []SideResult{result.A, result.B} {
		if err := side.Outcome.Err(); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("gateway %s: %w", side.Gateway, err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		c.logger.Debug().Err(err).Str("path", path).Msg("Comparison incomplete")
		return result, err
	}

	result.Diffs = c.processor.ProcessDiff(result.A.Content, result.B.Content)
	result.Stats = CalculateStats(result.Diffs)

	c.logger.Debug().
		Str("path", path).
		Bool("identical", result.Stats.IsIdentical).
		Int("lines_added", result.Stats.LinesAdded).
		Int("lines_deleted", result.Stats.LinesDeleted).
		Msg("Gateway comparison finished")

	return result, nil
}

func (c *Comparer) fetchSide(ctx context.Context, gateway, path string) SideResult {
	url := JoinURL(gateway, path)
	side := SideResult{
		Gateway: gateway,
		URL:     url,
		Outcome: c.fetcher.FetchWithRetry(ctx, url, c.opts),
	}
	if side.Outcome.OK() {
		body, _ := side.Outcome.Success.Body.([]byte)
		side.Content, side.IsJSON = canonicalize(body)
	}
	return side
}

// JoinURL appends path to a gateway base URL with exactly one slash between.
func JoinURL(gateway, path string) string {
	if path == "" {
		return gateway
	}
	return strings.TrimRight(gateway, "/") + "/" + strings.TrimLeft(path, "/")
}
