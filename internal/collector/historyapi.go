package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"sort"
	"time"

	"StockScope/internal/model"
)

// HistoryAPIFetcher implements Fetcher against a self-hosted history REST API.
type HistoryAPIFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewHistoryAPIFetcher creates a new fetcher with optional proxy support.
func NewHistoryAPIFetcher(baseURL, apiKey, proxyURL string) *HistoryAPIFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &HistoryAPIFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *HistoryAPIFetcher) Name() string { return "history-api" }

// apiBar is the expected JSON shape from the history API. High, low and
// volume may be null when the provider lacks intraday detail.
type apiBar struct {
	Timestamp int64    `json:"timestamp"`
	High      *float64 `json:"high"`
	Low       *float64 `json:"low"`
	Close     float64  `json:"close"`
	Volume    *float64 `json:"volume"`
}

func (f *HistoryAPIFetcher) FetchDailyBars(symbol string, days int) ([]model.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/api/v1/bars/daily?symbol=%s&limit=%d", f.BaseURL, url.QueryEscape(symbol), days)
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch bars: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("fetch bars: status %d, body: %s", resp.StatusCode, string(body))
	}
	var apiBars []apiBar
	if err := json.NewDecoder(resp.Body).Decode(&apiBars); err != nil {
		return nil, fmt.Errorf("decode bars: %w", err)
	}
	bars := make([]model.PricePoint, 0, len(apiBars))
	for _, b := range apiBars {
		bars = append(bars, model.PricePoint{
			Date:   time.Unix(b.Timestamp, 0).UTC(),
			High:   deref(b.High),
			Low:    deref(b.Low),
			Close:  b.Close,
			Volume: deref(b.Volume),
		})
	}
	// Ensure chronological order
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.Before(bars[j].Date) })
	return bars, nil
}

func deref(v *float64) float64 {
	if v == nil {
		return math.NaN()
	}
	return *v
}
