package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"GoogChfTracker/internal/align"
	"GoogChfTracker/internal/calculator"
	"GoogChfTracker/internal/collector"
	"GoogChfTracker/internal/freeze"
	"GoogChfTracker/internal/model"
)

type seriesPayload struct {
	Values []float64              `json:"values"`
	Stats  calculator.SeriesStats `json:"stats"`
}

type datasetResponse struct {
	Timeframe  string               `json:"timeframe"`
	Timestamps []int64              `json:"timestamps"` // unix seconds, shared by all three series
	GoogUSD    seriesPayload        `json:"goog_usd"`
	UsdCHF     seriesPayload        `json:"usd_chf"`
	GoogCHF    seriesPayload        `json:"goog_chf"`
	Freeze     []model.FreezePeriod `json:"freeze"`
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("range")
	if raw == "" {
		raw = string(model.DefaultTimeframe)
	}
	tf, err := model.ParseTimeframe(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	ds, err := s.provider.Dataset(r.Context(), tf)
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}

	resp := datasetResponse{
		Timeframe: string(tf),
		GoogUSD:   newSeriesPayload(ds.PriceUSD),
		UsdCHF:    newSeriesPayload(ds.Rate),
		GoogCHF:   newSeriesPayload(ds.PriceCHF),
		Freeze:    []model.FreezePeriod{},
	}
	resp.Timestamps = make([]int64, ds.Len())
	for i, t := range ds.PriceUSD.Times() {
		resp.Timestamps[i] = t.Unix()
	}
	if ds.Len() > 0 {
		from := ds.PriceUSD[0].Time
		to := ds.PriceUSD[ds.Len()-1].Time
		resp.Freeze = freeze.Overlapping(s.provider.FreezePeriods(), from, to)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	quote, err := s.provider.Quote(r.Context())
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

func newSeriesPayload(series model.TimeSeries) seriesPayload {
	stats, err := calculator.CalculateStats(series)
	if err != nil {
		log.Printf("[WARN] stats calculation failed: %v", err)
	}
	return seriesPayload{Values: series.Values(), Stats: stats}
}

// statusFor maps the error taxonomy to HTTP statuses. Both errors are
// terminal for the current rendering pass only; the page shows them inline
// and the user recovers by reselecting a timeframe.
func statusFor(err error) int {
	switch {
	case errors.Is(err, collector.ErrDataUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, align.ErrEmptyIntersection):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	log.Printf("[ERROR] request failed (%d): %v", status, err)
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
