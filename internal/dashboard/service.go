// Package dashboard assembles the data the web view renders: aligned
// datasets per timeframe, the live quote, and the trading freeze calendar.
package dashboard

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"GoogChfTracker/internal/align"
	"GoogChfTracker/internal/cache"
	"GoogChfTracker/internal/collector"
	"GoogChfTracker/internal/freeze"
	"GoogChfTracker/internal/model"
	"GoogChfTracker/internal/store"
)

// Service fetches, aligns, and caches the dashboard data.
type Service struct {
	Collector   *collector.Collector
	Cache       *cache.DatasetCache
	Store       store.CalendarStore
	CalendarTTL time.Duration

	mu      sync.RWMutex
	periods []model.FreezePeriod
}

// NewService creates a new Service.
func NewService(col *collector.Collector, dc *cache.DatasetCache, cs store.CalendarStore, calendarTTL time.Duration) *Service {
	return &Service{
		Collector:   col,
		Cache:       dc,
		Store:       cs,
		CalendarTTL: calendarTTL,
	}
}

// Dataset returns the aligned dataset for a timeframe, served from cache
// when fresh. A fetch failure surfaces before alignment is attempted.
func (s *Service) Dataset(ctx context.Context, tf model.Timeframe) (*model.AlignedDataset, error) {
	if ds, ok := s.Cache.Get(tf); ok {
		return ds, nil
	}

	price, rate, err := s.Collector.Collect(ctx, tf)
	if err != nil {
		return nil, err
	}
	ds, err := align.Align(price, rate)
	if err != nil {
		return nil, fmt.Errorf("align %s: %w", tf, err)
	}

	s.Cache.Put(tf, ds)
	return ds, nil
}

// Quote returns the current prices and their product.
func (s *Service) Quote(ctx context.Context) (*model.Quote, error) {
	return s.Collector.CollectQuote(ctx)
}

// FreezePeriods returns the blackout windows derived from the last
// successful calendar refresh. Empty until a refresh has run.
func (s *Service) FreezePeriods() []model.FreezePeriod {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.periods
}

// RestoreCalendar seeds the freeze calendar from the store when the stored
// copy is still within the calendar TTL; otherwise it refreshes from the
// provider. Calendar failures are never fatal: the dashboard just renders
// without freeze bands.
func (s *Service) RestoreCalendar(ctx context.Context) {
	dates, fetchedAt, err := s.Store.LoadCalendar(s.Collector.Symbol)
	if err != nil {
		log.Printf("[WARN] load calendar from store: %v", err)
	}
	if len(dates) > 0 && time.Since(fetchedAt) < s.CalendarTTL {
		s.setPeriods(dates)
		log.Printf("[INFO] calendar restored from store (%d dates, fetched %s)", len(dates), fetchedAt.Format(time.RFC3339))
		return
	}
	if err := s.RefreshCalendar(ctx); err != nil {
		log.Printf("[WARN] initial calendar refresh: %v", err)
	}
}

// RefreshCalendar fetches the earnings calendar, rebuilds the freeze
// periods, and persists the dates for the next restart.
func (s *Service) RefreshCalendar(ctx context.Context) error {
	dates, err := s.Collector.Fetcher.FetchEarningsDates(ctx, s.Collector.Symbol)
	if err != nil {
		return fmt.Errorf("fetch earnings dates: %w", err)
	}
	s.setPeriods(dates)
	if err := s.Store.SaveCalendar(s.Collector.Symbol, dates); err != nil {
		log.Printf("[WARN] persist calendar: %v", err)
	}
	log.Printf("[INFO] calendar refreshed: %d earnings dates", len(dates))
	return nil
}

func (s *Service) setPeriods(dates []time.Time) {
	periods := freeze.PeriodsFromEarnings(dates)
	s.mu.Lock()
	s.periods = periods
	s.mu.Unlock()
}
