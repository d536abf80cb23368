package model

import "fmt"

// Timeframe is a named lookback window with an implied sampling granularity.
type Timeframe string

const (
	TimeframeWeek    Timeframe = "1w"
	TimeframeMonth   Timeframe = "1mo"
	TimeframeYear    Timeframe = "1y"
	TimeframeDecade  Timeframe = "10y"
	DefaultTimeframe           = TimeframeMonth
)

// FetchParams are the provider-side range and interval for a timeframe.
// Fallback is the coarser interval to retry with when the primary interval
// returns no rows (e.g. hourly data outside market hours).
type FetchParams struct {
	Range    string
	Interval string
	Fallback string
}

var fetchParams = map[Timeframe]FetchParams{
	TimeframeWeek:   {Range: "7d", Interval: "1h", Fallback: "1d"},
	TimeframeMonth:  {Range: "1mo", Interval: "1d", Fallback: "1d"},
	TimeframeYear:   {Range: "1y", Interval: "1wk", Fallback: "1d"},
	TimeframeDecade: {Range: "10y", Interval: "1mo", Fallback: "1d"},
}

// Timeframes lists all supported values in selector order.
func Timeframes() []Timeframe {
	return []Timeframe{TimeframeWeek, TimeframeMonth, TimeframeYear, TimeframeDecade}
}

// ParseTimeframe validates a selector value from the outside world.
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(s)
	if _, ok := fetchParams[tf]; !ok {
		return "", fmt.Errorf("unknown timeframe %q", s)
	}
	return tf, nil
}

// Params returns the fetch parameters for the timeframe.
func (tf Timeframe) Params() FetchParams {
	return fetchParams[tf]
}

// Label is the human-readable selector label.
func (tf Timeframe) Label() string {
	switch tf {
	case TimeframeWeek:
		return "1 Week"
	case TimeframeMonth:
		return "1 Month"
	case TimeframeYear:
		return "1 Year"
	case TimeframeDecade:
		return "10 Years"
	}
	return string(tf)
}
