package portfolio

import (
	"time"

	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
)

func (p *Position) update(direction order.Side, quantity, price decimal.Decimal, t time.Time) {
	p.Timestamp = t
	changedValue := quantity.Mul(price)
	if direction == order.Buy {
		p.Buys = p.Buys.Add(quantity)
		changedValue = changedValue.Neg()
	} else {
		p.Sells = p.Sells.Add(quantity)
	}
	p.Net = p.Buys.Sub(p.Sells)
	p.OpenValue = p.OpenValue.Add(changedValue)

	// Round-trip realisation: profit is locked in only at the moment the
	// position returns to exactly flat
	if p.Net.IsZero() {
		p.RealizedPNL = p.OpenValue
		p.OpenValue = decimal.Zero
	}
}

// UnrealizedPNL returns the point-in-time mark-to-market value of the open
// position at the given price. It is exactly zero whenever the position is
// flat, for any price input
func (p *Position) UnrealizedPNL(price decimal.Decimal) decimal.Decimal {
	if p.Net.IsZero() {
		return decimal.Zero
	}
	return p.OpenValue.Add(p.Net.Mul(price))
}

// GetSymbol returns the position's symbol
func (p *Position) GetSymbol() string {
	return p.Symbol
}

// GetNet returns cumulative bought quantity minus cumulative sold quantity
func (p *Position) GetNet() decimal.Decimal {
	return p.Net
}

// GetBuys returns the cumulative bought quantity
func (p *Position) GetBuys() decimal.Decimal {
	return p.Buys
}

// GetSells returns the cumulative sold quantity
func (p *Position) GetSells() decimal.Decimal {
	return p.Sells
}

// GetRealizedPNL returns the profit or loss locked in by the most recent
// round trip
func (p *Position) GetRealizedPNL() decimal.Decimal {
	return p.RealizedPNL
}

// GetOpenValue returns the signed open position value
func (p *Position) GetOpenValue() decimal.Decimal {
	return p.OpenValue
}
