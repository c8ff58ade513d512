package fill

import (
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
)

// Fill is an event that details an order being matched and executed against
// a tick. The event time is the matching tick's timestamp
type Fill struct {
	event.Base
	OrderID   string          `json:"order-id"`
	Direction order.Side      `json:"direction"`
	Quantity  decimal.Decimal `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}
