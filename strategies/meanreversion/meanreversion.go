package meanreversion

import (
	"fmt"
	"math"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/snapshot"
	"github.com/allaccountstaken/robo-advisors/strategies/base"
	"github.com/shopspring/decimal"
)

const (
	// Name is the strategy name
	Name             = "meanreversion"
	lookbackKey      = "lookback"
	buyThresholdKey  = "buy-threshold"
	sellThresholdKey = "sell-threshold"
	description      = `Mean reversion assumes prices oscillate around their recent average. The strategy scores the latest return against the rolling window's return distribution and trades against large deviations`
)

// Strategy is an implementation of the Handler interface
type Strategy struct {
	base.Strategy
	lookback      decimal.Decimal
	buyThreshold  decimal.Decimal
	sellThreshold decimal.Decimal
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// Description provides a nice overview of the strategy
func (s *Strategy) Description() string {
	return description
}

// OnTick handles a tick for the run's primary symbol. It computes the
// z-score of the latest return against the rolling window's return mean and
// standard deviation, buying below the buy threshold when not already long
// and selling above the sell threshold when not already short. A window
// needs lookback+1 close prices before any signal is emitted
func (s *Strategy) OnTick(d data.Handler, _ snapshot.Quoter) error {
	if d == nil {
		return common.ErrNilArguments
	}
	latest := d.Latest()
	if latest == nil {
		return common.ErrNilEvent
	}

	lookback := int(s.lookback.IntPart())
	closes := d.StreamClose(latest.GetSymbol())
	if len(closes) <= lookback {
		// insufficient data guard
		return nil
	}

	window := closes[len(closes)-lookback-1:]
	returns := make([]float64, 0, lookback)
	for i := 1; i < len(window); i++ {
		if window[i-1].IsZero() {
			return nil
		}
		r := window[i].Sub(window[i-1]).Div(window[i-1])
		returns = append(returns, r.InexactFloat64())
	}
	z, ok := zScore(returns)
	if !ok {
		return nil
	}

	zDec := decimal.NewFromFloat(z)
	switch {
	case zDec.LessThan(s.buyThreshold) && !s.IsLong():
		return s.SendMarketOrder(latest.GetSymbol(), s.TradeQuantity(), order.Buy, latest.GetTime())
	case zDec.GreaterThan(s.sellThreshold) && !s.IsShort():
		return s.SendMarketOrder(latest.GetSymbol(), s.TradeQuantity(), order.Sell, latest.GetTime())
	}
	return nil
}

// zScore normalises the latest return against the window's sample mean and
// standard deviation. Not ok when the window has no variance to score
// against
func zScore(returns []float64) (float64, bool) {
	n := len(returns)
	if n < 2 {
		return 0, false
	}
	var mean float64
	for i := range returns {
		mean += returns[i]
	}
	mean /= float64(n)
	var variance float64
	for i := range returns {
		variance += (returns[i] - mean) * (returns[i] - mean)
	}
	std := math.Sqrt(variance / float64(n-1))
	if std == 0 {
		return 0, false
	}
	return (returns[n-1] - mean) / std, true
}

// SetCustomSettings allows a user to modify the lookback window and
// thresholds in their config
func (s *Strategy) SetCustomSettings(customSettings map[string]any) error {
	for k, v := range customSettings {
		switch k {
		case lookbackKey:
			lookback, ok := v.(float64)
			if !ok || lookback < 2 {
				return fmt.Errorf("%w provided lookback value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.lookback = decimal.NewFromFloat(lookback)
		case buyThresholdKey:
			buyThreshold, ok := v.(float64)
			if !ok {
				return fmt.Errorf("%w provided buy-threshold value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.buyThreshold = decimal.NewFromFloat(buyThreshold)
		case sellThresholdKey:
			sellThreshold, ok := v.(float64)
			if !ok {
				return fmt.Errorf("%w provided sell-threshold value could not be parsed: %v", base.ErrInvalidCustomSettings, v)
			}
			s.sellThreshold = decimal.NewFromFloat(sellThreshold)
		default:
			return fmt.Errorf("%w unrecognised custom setting key %v with value %v. Cannot apply", base.ErrInvalidCustomSettings, k, v)
		}
	}

	return nil
}

// SetDefaults sets the custom settings to their default values
func (s *Strategy) SetDefaults() {
	s.lookback = decimal.NewFromInt(20)
	s.buyThreshold = decimal.NewFromFloat(-1.5)
	s.sellThreshold = decimal.NewFromFloat(1.5)
}
