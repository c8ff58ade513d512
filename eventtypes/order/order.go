package order

import (
	"fmt"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"
)

// New validates and creates a market order with a unique ID at the provided
// submission timestamp
func New(symbol string, quantity decimal.Decimal, direction Side, t time.Time) (*Order, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: no symbol set", common.ErrInvalidOrder)
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: quantity %v must be positive", common.ErrInvalidOrder, quantity)
	}
	if direction != Buy && direction != Sell {
		return nil, fmt.Errorf("%w: unknown side %q", common.ErrInvalidOrder, direction)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	return &Order{
		Base: event.Base{
			Time:   t,
			Symbol: symbol,
		},
		ID:        id.String(),
		Direction: direction,
		OrderType: Market,
		Quantity:  quantity,
		Status:    Pending,
	}, nil
}

// IsFilled returns whether the order has been matched
func (o *Order) IsFilled() bool {
	return o.Status == Filled
}

// Fill marks the order as executed in full at the provided price and time.
// The fill time must be strictly after submission and an order can only
// ever be filled once
func (o *Order) Fill(price decimal.Decimal, t time.Time) error {
	if o.IsFilled() {
		return fmt.Errorf("%w: order %v already filled", common.ErrInvariantViolation, o.ID)
	}
	if !t.After(o.Time) {
		return fmt.Errorf("%w: fill time %v not after submission time %v for order %v",
			common.ErrInvariantViolation,
			t,
			o.Time,
			o.ID)
	}
	o.Status = Filled
	o.FilledPrice = price
	o.FilledQuantity = o.Quantity
	o.FilledTime = t
	return nil
}
