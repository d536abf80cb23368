package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"GoogChfTracker/internal/model"
)

// YahooFetcher implements Fetcher using Yahoo Finance public API.
type YahooFetcher struct {
	Client *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yahooChart is the response structure from Yahoo Finance chart API.
type yahooChart struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []interface{} `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// yahooQuoteSummary is the response structure from the quoteSummary API,
// reduced to the earnings-calendar fields.
type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			CalendarEvents struct {
				Earnings struct {
					EarningsDate []struct {
						Raw int64 `json:"raw"`
					} `json:"earningsDate"`
				} `json:"earnings"`
			} `json:"calendarEvents"`
			EarningsHistory struct {
				History []struct {
					Quarter struct {
						Raw int64 `json:"raw"`
					} `json:"quarter"`
				} `json:"history"`
			} `json:"earningsHistory"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func toFloat(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	default:
		return 0
	}
}

func (f *YahooFetcher) get(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("yahoo decode: %w", err)
	}
	return nil
}

// FetchSeries returns the close-price series for a symbol over the given
// range and interval. Null bars (holidays, closed market hours) are skipped.
func (f *YahooFetcher) FetchSeries(ctx context.Context, symbol, rng, interval string) (model.TimeSeries, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v8/finance/chart/%s?interval=%s&range=%s",
		url.PathEscape(symbol), interval, rng)

	// Transport failures count as unavailable data: there are no rows to
	// align either way, and the caller's fallback logic treats them alike.
	var chart yahooChart
	if err := f.get(ctx, u, &chart); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}
	if chart.Chart.Error != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, chart.Chart.Error.Description)
	}
	if len(chart.Chart.Result) == 0 || len(chart.Chart.Result[0].Timestamp) == 0 ||
		len(chart.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("%w: empty chart result for %s", ErrDataUnavailable, symbol)
	}

	result := chart.Chart.Result[0]
	quote := result.Indicators.Quote[0]
	points := make([]model.Point, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) {
			break
		}
		c := toFloat(quote.Close[i])
		if c == 0 {
			continue // null bar
		}
		points = append(points, model.Point{Time: time.Unix(ts, 0).UTC(), Value: c})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: only null bars for %s", ErrDataUnavailable, symbol)
	}
	return model.NewTimeSeries(points), nil
}

// FetchCurrentPrice returns the most recent close for a symbol.
func (f *YahooFetcher) FetchCurrentPrice(ctx context.Context, symbol string) (float64, error) {
	series, err := f.FetchSeries(ctx, symbol, "1d", "1m")
	if err != nil {
		// Intraday data is gated for some symbols; fall back to the daily bar.
		series, err = f.FetchSeries(ctx, symbol, "1d", "1d")
		if err != nil {
			return 0, err
		}
	}
	last, _ := series.Last()
	return last.Value, nil
}

// FetchEarningsDates returns known earnings announcement dates for a symbol:
// upcoming ones from the calendar plus past quarters from the earnings
// history. History entries carry the fiscal quarter end; the announcement
// lands roughly a month later.
func (f *YahooFetcher) FetchEarningsDates(ctx context.Context, symbol string) ([]time.Time, error) {
	u := fmt.Sprintf("https://query1.finance.yahoo.com/v10/finance/quoteSummary/%s?modules=calendarEvents%%2CearningsHistory",
		url.PathEscape(symbol))

	var summary yahooQuoteSummary
	if err := f.get(ctx, u, &summary); err != nil {
		return nil, err
	}
	if summary.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%w: no quote summary for %s", ErrDataUnavailable, symbol)
	}

	result := summary.QuoteSummary.Result[0]
	var dates []time.Time
	for _, d := range result.CalendarEvents.Earnings.EarningsDate {
		if d.Raw > 0 {
			dates = append(dates, time.Unix(d.Raw, 0).UTC())
		}
	}
	for _, h := range result.EarningsHistory.History {
		if h.Quarter.Raw > 0 {
			dates = append(dates, time.Unix(h.Quarter.Raw, 0).UTC().AddDate(0, 1, 0))
		}
	}
	return dates, nil
}
