package store

import "time"

// CalendarStore persists the fetched earnings calendar so its daily refresh
// cadence survives restarts. Price history is never persisted.
type CalendarStore interface {
	SaveCalendar(symbol string, dates []time.Time) error
	LoadCalendar(symbol string) (dates []time.Time, fetchedAt time.Time, err error)
	Close() error
}

// NoopStore is a no-op implementation used when SQLite is not configured.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) SaveCalendar(_ string, _ []time.Time) error { return nil }
func (n *NoopStore) LoadCalendar(_ string) ([]time.Time, time.Time, error) {
	return nil, time.Time{}, nil
}
func (n *NoopStore) Close() error { return nil }
