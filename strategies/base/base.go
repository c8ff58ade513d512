package base

import (
	"time"

	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/portfolio"
	"github.com/shopspring/decimal"
)

// SetSubmitter attaches the engine's order submission callback
func (s *Strategy) SetSubmitter(o OrderSubmitter) {
	s.submitter = o
}

// SetTradeQuantity sets the per-order quantity from the run configuration
func (s *Strategy) SetTradeQuantity(q decimal.Decimal) {
	s.tradeQty = q
}

// TradeQuantity returns the per-order quantity
func (s *Strategy) TradeQuantity() decimal.Decimal {
	return s.tradeQty
}

// SendMarketOrder submits a market order through the engine callback. The
// order only becomes eligible to fill from the next tick onwards
func (s *Strategy) SendMarketOrder(symbol string, quantity decimal.Decimal, direction order.Side, t time.Time) error {
	if s.submitter == nil {
		return ErrNoSubmitter
	}
	return s.submitter.SubmitOrder(symbol, quantity, direction, t)
}

// OnPositionUpdate refreshes the long/short flags from the fill's resulting
// position, before the next tick is processed
func (s *Strategy) OnPositionUpdate(p portfolio.PositionReader) {
	if p == nil {
		return
	}
	net := p.GetNet()
	s.long = net.IsPositive()
	s.short = net.IsNegative()
}

// IsLong returns whether the last position update left a positive net
func (s *Strategy) IsLong() bool {
	return s.long
}

// IsShort returns whether the last position update left a negative net
func (s *Strategy) IsShort() bool {
	return s.short
}
