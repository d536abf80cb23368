package model

import (
	"testing"
	"time"
)

func TestNewTimeSeries_SortsAndDeduplicates(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 0, 1)
	t3 := t1.AddDate(0, 0, 2)

	ts := NewTimeSeries([]Point{
		{Time: t3, Value: 3},
		{Time: t1, Value: 1},
		{Time: t2, Value: 2},
		{Time: t2, Value: 99}, // duplicate, first value wins
	})

	if len(ts) != 3 {
		t.Fatalf("expected 3 points, got %d", len(ts))
	}
	for i := 1; i < len(ts); i++ {
		if !ts[i-1].Time.Before(ts[i].Time) {
			t.Errorf("timestamps not strictly increasing at index %d", i)
		}
	}
	if ts[1].Value != 2 {
		t.Errorf("expected first value to win for duplicate timestamp, got %f", ts[1].Value)
	}
}

func TestTimeSeries_Last(t *testing.T) {
	if _, ok := TimeSeries(nil).Last(); ok {
		t.Error("expected no last point for empty series")
	}
	ts := NewTimeSeries([]Point{
		{Time: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), Value: 1},
		{Time: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), Value: 2},
	})
	last, ok := ts.Last()
	if !ok || last.Value != 2 {
		t.Errorf("expected last value 2, got %v (%v)", last.Value, ok)
	}
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		in      string
		want    Timeframe
		wantErr bool
	}{
		{"1w", TimeframeWeek, false},
		{"1mo", TimeframeMonth, false},
		{"1y", TimeframeYear, false},
		{"10y", TimeframeDecade, false},
		{"", "", true},
		{"2w", "", true},
		{"1 Week", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTimeframe(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTimeframe(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeframe(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTimeframeParams(t *testing.T) {
	tests := []struct {
		tf       Timeframe
		rng      string
		interval string
		fallback string
	}{
		{TimeframeWeek, "7d", "1h", "1d"},
		{TimeframeMonth, "1mo", "1d", "1d"},
		{TimeframeYear, "1y", "1wk", "1d"},
		{TimeframeDecade, "10y", "1mo", "1d"},
	}
	for _, tt := range tests {
		p := tt.tf.Params()
		if p.Range != tt.rng || p.Interval != tt.interval || p.Fallback != tt.fallback {
			t.Errorf("%s: got (%s,%s,%s), want (%s,%s,%s)",
				tt.tf, p.Range, p.Interval, p.Fallback, tt.rng, tt.interval, tt.fallback)
		}
	}
}
