package model

import (
	"sort"
	"time"
)

// Point is a single observation in a time series.
type Point struct {
	Time  time.Time
	Value float64
}

// TimeSeries is an ordered sequence of observations with strictly
// increasing timestamps and no duplicates.
type TimeSeries []Point

// NewTimeSeries builds a TimeSeries from unordered points, sorting by time
// and keeping the first value for any duplicated timestamp.
func NewTimeSeries(points []Point) TimeSeries {
	ts := make(TimeSeries, len(points))
	copy(ts, points)
	sort.SliceStable(ts, func(i, j int) bool { return ts[i].Time.Before(ts[j].Time) })

	out := ts[:0]
	for _, p := range ts {
		if len(out) > 0 && !out[len(out)-1].Time.Before(p.Time) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Last returns the most recent point. The second return is false for an
// empty series.
func (s TimeSeries) Last() (Point, bool) {
	if len(s) == 0 {
		return Point{}, false
	}
	return s[len(s)-1], true
}

// Values returns the value column.
func (s TimeSeries) Values() []float64 {
	vals := make([]float64, len(s))
	for i, p := range s {
		vals[i] = p.Value
	}
	return vals
}

// Times returns the timestamp column.
func (s TimeSeries) Times() []time.Time {
	times := make([]time.Time, len(s))
	for i, p := range s {
		times[i] = p.Time
	}
	return times
}
