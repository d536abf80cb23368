// Package align joins two independently fetched time series on their shared
// timestamp index and derives the converted-value series.
package align

import (
	"errors"

	"GoogChfTracker/internal/model"
)

// ErrEmptyIntersection is returned when the two series share no timestamps,
// e.g. after fetching them at mismatched granularities.
var ErrEmptyIntersection = errors.New("aligned series share no timestamps")

// Align intersects the timestamp sets of price and rate, drops timestamps
// present in only one series, and computes the converted series as the
// pointwise product over the shared index. A missing rate observation makes
// the converted value undefined at that point, so dropping is deliberate;
// no interpolation or forward-fill is performed.
func Align(price, rate model.TimeSeries) (*model.AlignedDataset, error) {
	n := len(price)
	if len(rate) < n {
		n = len(rate)
	}
	ds := &model.AlignedDataset{
		PriceUSD: make(model.TimeSeries, 0, n),
		Rate:     make(model.TimeSeries, 0, n),
		PriceCHF: make(model.TimeSeries, 0, n),
	}

	// Both inputs are strictly increasing, so a single merge pass suffices.
	i, j := 0, 0
	for i < len(price) && j < len(rate) {
		switch {
		case price[i].Time.Before(rate[j].Time):
			i++
		case rate[j].Time.Before(price[i].Time):
			j++
		default:
			ds.PriceUSD = append(ds.PriceUSD, price[i])
			ds.Rate = append(ds.Rate, rate[j])
			ds.PriceCHF = append(ds.PriceCHF, model.Point{
				Time:  price[i].Time,
				Value: price[i].Value * rate[j].Value,
			})
			i++
			j++
		}
	}

	if ds.Len() == 0 {
		return nil, ErrEmptyIntersection
	}
	return ds, nil
}
