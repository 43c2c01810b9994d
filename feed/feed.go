// Package feed obtains an external numeric signal on a slow schedule and
// derives the gravity interval from its trend. The transport is opaque to
// the rest of the game: anything that yields one reading per poll works.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lixenwraith/blockfall/constants"
)

// Source yields one numeric reading per poll. A failed poll is a skipped
// adjustment, never a fatal error.
type Source interface {
	Poll(ctx context.Context) (float64, error)
}

// HTTPSource polls a ticker-price REST endpoint returning
// {"symbol": "...", "price": "..."}. The default endpoint is the Binance
// spot ticker; any service with the same shape works.
type HTTPSource struct {
	client *http.Client
	url    string
}

// NewHTTPSource builds a source for baseURL with the symbol query set
func NewHTTPSource(baseURL, symbol string) *HTTPSource {
	return &HTTPSource{
		client: &http.Client{Timeout: 10 * time.Second},
		url:    baseURL + "?symbol=" + url.QueryEscape(symbol),
	}
}

// Poll fetches and parses one price reading. The response body is always
// fully consumed and closed so no connection leaks between polls.
func (s *HTTPSource) Poll(ctx context.Context) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return 0, fmt.Errorf("build feed request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("poll feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("poll feed: unexpected status %s", resp.Status)
	}

	var body struct {
		Price string `json:"price"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("decode feed response: %w", err)
	}

	price, err := strconv.ParseFloat(body.Price, 64)
	if err != nil {
		return 0, fmt.Errorf("parse feed price %q: %w", body.Price, err)
	}
	return price, nil
}

// Adjuster turns consecutive readings into gravity intervals: a rising
// signal speeds the game up by one step (never below the step itself), a
// flat or falling signal slows it down by the same step. There is no
// upper bound.
type Adjuster struct {
	interval time.Duration
	previous float64
	primed   bool
}

// NewAdjuster starts from the given gravity interval
func NewAdjuster(initial time.Duration) *Adjuster {
	return &Adjuster{interval: initial}
}

// Advance folds in one reading and returns the current interval. The
// first reading only primes the trend and leaves the interval unchanged.
func (a *Adjuster) Advance(reading float64) time.Duration {
	if a.primed {
		if reading > a.previous && a.interval >= constants.FeedStep {
			a.interval -= constants.FeedStep
		} else {
			a.interval += constants.FeedStep
		}
	}
	a.primed = true
	a.previous = reading
	return a.interval
}

// Interval returns the current interval without folding in a reading
func (a *Adjuster) Interval() time.Duration {
	return a.interval
}
