package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"GoogChfTracker/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Prices        map[string]float64                     // current price per symbol
	Series        map[string]map[string]model.TimeSeries // per symbol, per interval; nil series means unavailable
	EarningsDates []time.Time
	Err           error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchSeries(_ context.Context, symbol, _, interval string) (model.TimeSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if byInterval, ok := m.Series[symbol]; ok {
		if s, ok := byInterval[interval]; ok {
			if s == nil {
				return nil, fmt.Errorf("%w: mock has no %s data for %s", ErrDataUnavailable, interval, symbol)
			}
			return s, nil
		}
	}
	return generateMockSeries(m.Prices[symbol], 30), nil
}

func (m *MockFetcher) FetchCurrentPrice(_ context.Context, symbol string) (float64, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Prices[symbol], nil
}

func (m *MockFetcher) FetchEarningsDates(_ context.Context, _ string) ([]time.Time, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.EarningsDates, nil
}

func generateMockSeries(base float64, count int) model.TimeSeries {
	points := make([]model.Point, count)
	for i := 0; i < count; i++ {
		points[i] = model.Point{
			Time:  time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, -(count - i)),
			Value: base * (1 + float64(i-count/2)*0.001),
		}
	}
	return model.NewTimeSeries(points)
}

// Collector fetches the price and rate series for one timeframe.
type Collector struct {
	Fetcher Fetcher
	Symbol  string // asset symbol, e.g. "GOOG"
	Pair    string // currency pair symbol, e.g. "USDCHF=X"
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, symbol, pair string) *Collector {
	return &Collector{Fetcher: fetcher, Symbol: symbol, Pair: pair}
}

// Collect fetches both series at the timeframe's primary interval. If either
// comes back unavailable, both are refetched at the coarser fallback
// interval so their granularities stay matched.
func (c *Collector) Collect(ctx context.Context, tf model.Timeframe) (price, rate model.TimeSeries, err error) {
	p := tf.Params()

	price, rate, err = c.fetchBoth(ctx, p.Range, p.Interval)
	if err == nil || p.Fallback == p.Interval {
		return price, rate, err
	}
	if !errors.Is(err, ErrDataUnavailable) {
		return nil, nil, err
	}

	log.Printf("[WARN] %s interval %s unavailable, retrying at %s: %v", tf, p.Interval, p.Fallback, err)
	return c.fetchBoth(ctx, p.Range, p.Fallback)
}

func (c *Collector) fetchBoth(ctx context.Context, rng, interval string) (model.TimeSeries, model.TimeSeries, error) {
	price, err := c.Fetcher.FetchSeries(ctx, c.Symbol, rng, interval)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", c.Symbol, err)
	}
	rate, err := c.Fetcher.FetchSeries(ctx, c.Pair, rng, interval)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s: %w", c.Pair, err)
	}
	return price, rate, nil
}

// CollectQuote fetches the current prices and derives the converted value.
func (c *Collector) CollectQuote(ctx context.Context) (*model.Quote, error) {
	price, err := c.Fetcher.FetchCurrentPrice(ctx, c.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch current %s: %w", c.Symbol, err)
	}
	rate, err := c.Fetcher.FetchCurrentPrice(ctx, c.Pair)
	if err != nil {
		return nil, fmt.Errorf("fetch current %s: %w", c.Pair, err)
	}
	return &model.Quote{
		PriceUSD: price,
		Rate:     rate,
		PriceCHF: price * rate,
		At:       time.Now().UTC(),
	}, nil
}
