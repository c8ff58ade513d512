// Package api fetches historical OHLCV observations from an HTTP provider.
// The provider credential lives on the feed instance rather than in any
// shared global state
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 30 * time.Second

// Feed streams ticks retrieved from a historical prices endpoint
type Feed struct {
	data.Base
	Symbol    string
	BaseURL   string
	APIKey    string
	StartDate time.Time
	EndDate   time.Time
	Client    *http.Client
}

type candleResponse struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
}

// Load fetches the configured date range from the provider and takes the
// response on as the replay stream
func (f *Feed) Load() error {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	endpoint, err := f.historyURL()
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDataUnavailable, err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrDataUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request to %v failed: %v", common.ErrDataUnavailable, f.BaseURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: provider returned status %v", common.ErrDataUnavailable, resp.StatusCode)
	}

	var candles []candleResponse
	if err := json.NewDecoder(resp.Body).Decode(&candles); err != nil {
		return fmt.Errorf("%w: could not decode provider response: %v", common.ErrDataUnavailable, err)
	}
	if len(candles) == 0 {
		return fmt.Errorf("%w: provider returned no candles for %v between %v and %v",
			common.ErrDataUnavailable,
			f.Symbol,
			f.StartDate.Format(time.DateOnly),
			f.EndDate.Format(time.DateOnly))
	}

	stream := make([]tick.Event, len(candles))
	for i := range candles {
		stream[i] = &tick.Tick{
			Base: event.Base{
				Time:   candles[i].Timestamp.UTC(),
				Symbol: f.Symbol,
			},
			Open:   candles[i].Open,
			Close:  candles[i].Close,
			Volume: candles[i].Volume,
		}
	}
	log.Feed.Infof("loaded %v ticks for %v from %v", len(stream), f.Symbol, f.BaseURL)
	return f.SetStream(stream)
}

func (f *Feed) historyURL() (string, error) {
	u, err := url.Parse(f.BaseURL)
	if err != nil {
		return "", err
	}
	u = u.JoinPath("v1", "history")
	q := u.Query()
	q.Set("symbol", f.Symbol)
	q.Set("start", f.StartDate.Format(time.DateOnly))
	q.Set("end", f.EndDate.Format(time.DateOnly))
	q.Set("api_key", f.APIKey)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
