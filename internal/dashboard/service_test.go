package dashboard

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"GoogChfTracker/internal/cache"
	"GoogChfTracker/internal/collector"
	"GoogChfTracker/internal/model"
	"GoogChfTracker/internal/store"
)

// countingFetcher wraps MockFetcher and counts series fetches.
type countingFetcher struct {
	collector.MockFetcher
	mu      sync.Mutex
	fetches int
}

func (c *countingFetcher) FetchSeries(ctx context.Context, symbol, rng, interval string) (model.TimeSeries, error) {
	c.mu.Lock()
	c.fetches++
	c.mu.Unlock()
	return c.MockFetcher.FetchSeries(ctx, symbol, rng, interval)
}

// memStore is an in-memory CalendarStore for tests.
type memStore struct {
	dates     []time.Time
	fetchedAt time.Time
}

func (m *memStore) SaveCalendar(_ string, dates []time.Time) error {
	m.dates = dates
	m.fetchedAt = time.Now()
	return nil
}
func (m *memStore) LoadCalendar(_ string) ([]time.Time, time.Time, error) {
	return m.dates, m.fetchedAt, nil
}
func (m *memStore) Close() error { return nil }

func dailySeries(base time.Time, values ...float64) model.TimeSeries {
	points := make([]model.Point, len(values))
	for i, v := range values {
		points[i] = model.Point{Time: base.AddDate(0, 0, i), Value: v}
	}
	return model.NewTimeSeries(points)
}

func newTestService(fetcher collector.Fetcher, cs store.CalendarStore) *Service {
	col := collector.NewCollector(fetcher, "GOOG", "USDCHF=X")
	return NewService(col, cache.NewDatasetCache(10*time.Minute), cs, 24*time.Hour)
}

func TestDataset_AlignsAndCaches(t *testing.T) {
	base := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	fetcher := &countingFetcher{MockFetcher: collector.MockFetcher{
		Series: map[string]map[string]model.TimeSeries{
			"GOOG":     {"1d": dailySeries(base, 100, 110, 120)},
			"USDCHF=X": {"1d": dailySeries(base, 0.9, 0.91, 0.92)},
		},
	}}
	svc := newTestService(fetcher, store.NewNoopStore())

	ds, err := svc.Dataset(context.Background(), model.TimeframeMonth)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ds.Len() != 3 {
		t.Fatalf("expected 3 aligned points, got %d", ds.Len())
	}
	if got := ds.PriceCHF[0].Value; got != 100*0.9 {
		t.Errorf("expected converted value 90, got %f", got)
	}

	// Second request must come from cache, not the provider.
	before := fetcher.fetches
	ds2, err := svc.Dataset(context.Background(), model.TimeframeMonth)
	if err != nil {
		t.Fatalf("unexpected error on cached request: %v", err)
	}
	if ds2 != ds {
		t.Error("expected the cached dataset instance")
	}
	if fetcher.fetches != before {
		t.Errorf("expected no extra fetches, got %d more", fetcher.fetches-before)
	}
}

func TestDataset_FetchFailureBeforeAlignment(t *testing.T) {
	fetcher := &collector.MockFetcher{Err: collector.ErrDataUnavailable}
	svc := newTestService(fetcher, store.NewNoopStore())

	_, err := svc.Dataset(context.Background(), model.TimeframeMonth)
	if !errors.Is(err, collector.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}

func TestRefreshCalendar_PopulatesAndPersists(t *testing.T) {
	earnings := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	fetcher := &collector.MockFetcher{EarningsDates: []time.Time{earnings}}
	ms := &memStore{}
	svc := newTestService(fetcher, ms)

	if err := svc.RefreshCalendar(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	periods := svc.FreezePeriods()
	if len(periods) != 1 {
		t.Fatalf("expected 1 freeze period, got %d", len(periods))
	}
	wantStart := time.Date(2025, time.December, 10, 0, 0, 0, 0, time.UTC)
	if !periods[0].Start.Equal(wantStart) {
		t.Errorf("expected lock start %v, got %v", wantStart, periods[0].Start)
	}
	if len(ms.dates) != 1 {
		t.Errorf("expected dates persisted to store, got %d", len(ms.dates))
	}
}

func TestRestoreCalendar_UsesFreshStore(t *testing.T) {
	earnings := time.Date(2026, time.February, 3, 0, 0, 0, 0, time.UTC)
	// Fetcher errors, so any periods must come from the store.
	fetcher := &collector.MockFetcher{Err: errors.New("provider down")}
	ms := &memStore{dates: []time.Time{earnings}, fetchedAt: time.Now()}
	svc := newTestService(fetcher, ms)

	svc.RestoreCalendar(context.Background())
	if len(svc.FreezePeriods()) != 1 {
		t.Fatalf("expected calendar restored from store, got %d periods", len(svc.FreezePeriods()))
	}
}
