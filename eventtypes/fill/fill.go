package fill

import (
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
)

// GetDirection returns the fill's side
func (f *Fill) GetDirection() order.Side {
	return f.Direction
}

// Value returns the notional value of the fill
func (f *Fill) Value() decimal.Decimal {
	return f.Quantity.Mul(f.Price)
}
