// Package insight is the boundary to the remote insight-text provider: a
// fire-and-forget fetch of a short text string for the dashboard, with a
// static fallback. Failures are this package's responsibility to mask —
// callers never see an error and never retry.
package insight

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultTimeout = 3 * time.Second
	maxBodySize    = 4 * 1024
)

var defaultFallbacks = []string{
	"Ship something small today.",
	"Review yesterday's numbers before chasing new ones.",
	"A dashboard is only as honest as its inputs.",
	"Slow is smooth, smooth is fast.",
}

// Provider produces a short insight string for a display name within
// finite time. Implementations never fail visibly.
type Provider interface {
	Tip(ctx context.Context, displayName string) string
}

// Static serves insights from a fixed list, deterministically picked by
// display name. It is both the offline provider and the fallback pool for
// [HTTPProvider].
type Static struct {
	tips []string
}

// NewStatic describes the newstatic operation and its observable behavior.
// An empty list falls back to the built-in pool.
func NewStatic(tips []string) *Static {
	if len(tips) == 0 {
		tips = defaultFallbacks
	}
	return &Static{tips: tips}
}

// Tip implements [Provider].
func (s *Static) Tip(_ context.Context, displayName string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(displayName))
	return s.tips[int(h.Sum32())%len(s.tips)]
}

// HTTPProvider fetches the insight text from a remote endpoint and masks
// every failure — timeout, transport error, bad status, malformed body —
// with a static fallback.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
	fallback *Static
	logger   zerolog.Logger
}

// NewHTTP describes the newhttp operation and its observable behavior.
// A zero timeout uses the package default.
func NewHTTP(endpoint string, timeout time.Duration, fallbacks []string, logger zerolog.Logger) *HTTPProvider {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		fallback: NewStatic(fallbacks),
		logger:   logger.With().Str("component", "insight").Logger(),
	}
}

// Tip implements [Provider]. The remote contract is a JSON object with a
// "text" field; anything else degrades to the fallback pool.
func (p *HTTPProvider) Tip(ctx context.Context, displayName string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		p.endpoint+"?name="+url.QueryEscape(displayName), nil)
	if err != nil {
		return p.fallback.Tip(ctx, displayName)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Debug().Err(err).Msg("insight fetch failed, using fallback")
		return p.fallback.Tip(ctx, displayName)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		p.logger.Debug().Int("status", resp.StatusCode).Msg("insight fetch rejected, using fallback")
		return p.fallback.Tip(ctx, displayName)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return p.fallback.Tip(ctx, displayName)
	}

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Text == "" {
		return p.fallback.Tip(ctx, displayName)
	}

	return payload.Text
}
