package rsi

import (
	"fmt"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/snapshot"
	"github.com/allaccountstaken/robo-advisors/strategies/base"
	"github.com/shopspring/decimal"
	"github.com/thrasher-corp/gct-ta/indicators"
)

const (
	// Name is the strategy name
	Name         = "rsi"
	rsiPeriodKey = "rsi-period"
	rsiLowKey    = "rsi-low"
	rsiHighKey   = "rsi-high"
	description  = `The relative strength index is a technical indicator charting the current and historical strength or weakness of an instrument based on the closing prices of a recent trading period`
)

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
	rsiPeriod decimal.Decimal
	rsiLow    decimal.Decimal
	rsiHigh   decimal.Decimal
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnTick handles a tick for the run's primary symbol, returning a buy order
// when rsi is at or below the low band and not already long, and a sell
// order when it is at or above the high band and not already short
func (s *Strategy) OnTick(d data.Handler, _ snapshot.Quoter) error {
	if d == nil {
		return common.ErrNilArguments
	}
	latest := d.Latest()
	if latest == nil {
		return common.ErrNilEvent
	}

	closes := d.StreamClose(latest.GetSymbol())
	if int64(len(closes)) <= s.rsiPeriod.IntPart() {
		// not enough data for signal generation
		return nil
	}

	massaged := make([]float64, len(closes))
	for i := range closes {
		massaged[i] = closes[i].InexactFloat64()
	}
	rsi := indicators.RSI(massaged, int(s.rsiPeriod.IntPart()))
	latestRSIValue := decimal.NewFromFloat(rsi[len(rsi)-1])

	switch {
	case latestRSIValue.GreaterThanOrEqual(s.rsiHigh) && !s.IsShort():
		return s.SendMarketOrder(latest.GetSymbol(), s.TradeQuantity(), order.Sell, latest.GetTime())
	case latestRSIValue.LessThanOrEqual(s.rsiLow) && !s.IsLong():
		return s.SendMarketOrder(latest.GetSymbol(), s.TradeQuantity(), order.Buy, latest.GetTime())
	}
	return nil
}

// SetCustomSettings allows a user to modify the RSI limits in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]any) error {
	for k, v := range customSettings {
		switch k {
		case rsiHighKey:
			rsiHigh, ok := v.(float64)
			if !ok || rsiHigh <= 0 {
				return fmt.Errorf("%w provided rsi-high value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiHigh = decimal.NewFromFloat(rsiHigh)
		case rsiLowKey:
			rsiLow, ok := v.(float64)
			if !ok || rsiLow <= 0 {
				return fmt.Errorf("%w provided rsi-low value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiLow = decimal.NewFromFloat(rsiLow)
		case rsiPeriodKey:
			rsiPeriod, ok := v.(float64)
			if !ok || rsiPeriod <= 0 {
				return fmt.Errorf("%w provided rsi-period value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.rsiPeriod = decimal.NewFromFloat(rsiPeriod)
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}

	return nil
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.rsiHigh = decimal.NewFromInt(70)
	s.rsiLow = decimal.NewFromInt(30)
	s.rsiPeriod = decimal.NewFromInt(14)
}
