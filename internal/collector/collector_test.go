package collector

import (
	"context"
	"errors"
	"testing"
	"time"

	"GoogChfTracker/internal/model"
)

func hourly(base time.Time, values ...float64) model.TimeSeries {
	points := make([]model.Point, len(values))
	for i, v := range values {
		points[i] = model.Point{Time: base.Add(time.Duration(i) * time.Hour), Value: v}
	}
	return model.NewTimeSeries(points)
}

func TestCollect_PrimaryInterval(t *testing.T) {
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	fetcher := &MockFetcher{
		Series: map[string]map[string]model.TimeSeries{
			"GOOG":     {"1h": hourly(base, 100, 101, 102)},
			"USDCHF=X": {"1h": hourly(base, 0.9, 0.91, 0.92)},
		},
	}
	col := NewCollector(fetcher, "GOOG", "USDCHF=X")

	price, rate, err := col.Collect(context.Background(), model.TimeframeWeek)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(price) != 3 || len(rate) != 3 {
		t.Fatalf("expected 3 points each, got %d / %d", len(price), len(rate))
	}
}

func TestCollect_FallbackWhenPrimaryUnavailable(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	fetcher := &MockFetcher{
		Series: map[string]map[string]model.TimeSeries{
			// Hourly unavailable (market closed), daily fine.
			"GOOG":     {"1h": nil, "1d": hourly(base, 100, 101)},
			"USDCHF=X": {"1h": hourly(base, 0.9, 0.91), "1d": hourly(base, 0.9, 0.91)},
		},
	}
	col := NewCollector(fetcher, "GOOG", "USDCHF=X")

	price, rate, err := col.Collect(context.Background(), model.TimeframeWeek)
	if err != nil {
		t.Fatalf("expected fallback to succeed, got %v", err)
	}
	if len(price) != 2 || len(rate) != 2 {
		t.Fatalf("expected 2 daily points each, got %d / %d", len(price), len(rate))
	}
}

func TestCollect_BothIntervalsUnavailable(t *testing.T) {
	fetcher := &MockFetcher{
		Series: map[string]map[string]model.TimeSeries{
			"GOOG":     {"1h": nil, "1d": nil},
			"USDCHF=X": {"1h": nil, "1d": nil},
		},
	}
	col := NewCollector(fetcher, "GOOG", "USDCHF=X")

	_, _, err := col.Collect(context.Background(), model.TimeframeWeek)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestCollect_NoFallbackRetryForDailyTimeframes(t *testing.T) {
	// 1mo already fetches daily; a failure must not trigger a second fetch
	// with the identical interval.
	fetcher := &MockFetcher{
		Series: map[string]map[string]model.TimeSeries{
			"GOOG":     {"1d": nil},
			"USDCHF=X": {"1d": nil},
		},
	}
	col := NewCollector(fetcher, "GOOG", "USDCHF=X")

	_, _, err := col.Collect(context.Background(), model.TimeframeMonth)
	if !errors.Is(err, ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestCollectQuote(t *testing.T) {
	fetcher := &MockFetcher{
		Prices: map[string]float64{"GOOG": 200, "USDCHF=X": 0.9},
	}
	col := NewCollector(fetcher, "GOOG", "USDCHF=X")

	quote, err := col.CollectQuote(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.PriceCHF != 180 {
		t.Errorf("expected converted price 180, got %f", quote.PriceCHF)
	}
}

func TestCollectQuote_FetchError(t *testing.T) {
	fetcher := &MockFetcher{Err: errors.New("network down")}
	col := NewCollector(fetcher, "GOOG", "USDCHF=X")

	if _, err := col.CollectQuote(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
