package collector

import (
	"context"
	"errors"
	"time"

	"GoogChfTracker/internal/model"
)

// ErrDataUnavailable is returned when the provider yields no usable rows for
// a request (network failure, invalid symbol, market closed with no data at
// the requested granularity).
var ErrDataUnavailable = errors.New("provider returned no usable data")

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchSeries(ctx context.Context, symbol, rng, interval string) (model.TimeSeries, error)
	FetchCurrentPrice(ctx context.Context, symbol string) (float64, error)
	FetchEarningsDates(ctx context.Context, symbol string) ([]time.Time, error)
	Name() string
}
