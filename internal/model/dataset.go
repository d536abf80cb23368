package model

import "time"

// AlignedDataset holds the three co-indexed series the dashboard renders:
// the asset price in its quote currency, the exchange rate, and the
// converted price. All three share an identical timestamp index.
type AlignedDataset struct {
	PriceUSD TimeSeries
	Rate     TimeSeries
	PriceCHF TimeSeries
}

// Len returns the number of shared timestamps.
func (d *AlignedDataset) Len() int { return len(d.PriceUSD) }

// FreezePeriod is an employee-trading blackout window derived from an
// earnings date.
type FreezePeriod struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Quote is a point-in-time snapshot of the three dashboard values.
type Quote struct {
	PriceUSD float64   `json:"goog_usd"`
	Rate     float64   `json:"usd_chf"`
	PriceCHF float64   `json:"goog_chf"`
	At       time.Time `json:"at"`
}
