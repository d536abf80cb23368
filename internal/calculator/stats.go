package calculator

import (
	"errors"
	"math"

	"GoogChfTracker/internal/model"
)

// SeriesStats summarizes one series for the dashboard's metric row and
// MIN/MAX chart annotations.
type SeriesStats struct {
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Latest   float64 `json:"latest"`
	PctOfMax float64 `json:"pct_of_max"` // latest as a percentage of max
}

// CalculateStats scans a series and returns its summary values.
func CalculateStats(series model.TimeSeries) (SeriesStats, error) {
	if len(series) == 0 {
		return SeriesStats{}, errors.New("no points provided")
	}
	st := SeriesStats{
		Min:    math.Inf(1),
		Max:    math.Inf(-1),
		Latest: series[len(series)-1].Value,
	}
	for _, p := range series {
		if p.Value > st.Max {
			st.Max = p.Value
		}
		if p.Value < st.Min {
			st.Min = p.Value
		}
	}
	if st.Max != 0 {
		st.PctOfMax = st.Latest / st.Max * 100
	}
	return st, nil
}
