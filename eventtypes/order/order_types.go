package order

import (
	"time"

	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Side is the direction of an order
type Side string

const (
	// Buy ...
	Buy Side = "BUY"
	// Sell ...
	Sell Side = "SELL"
)

// Type describes how an order is to be executed. Only market orders are
// supported, filled in full at the next available open price
type Type string

// Market ...
const Market Type = "MARKET"

// Status tracks an order through its lifecycle
type Status string

const (
	// Pending is a submitted order awaiting a matching tick
	Pending Status = "PENDING"
	// Filled is a matched order, read-only from then on
	Filled Status = "FILLED"
)

// Order contains all details for an order event. The event time is the
// submission timestamp; it is owned by the order book until filled, then
// transferred to history
type Order struct {
	event.Base
	ID             string          `json:"id"`
	Direction      Side            `json:"direction"`
	OrderType      Type            `json:"order-type"`
	Quantity       decimal.Decimal `json:"quantity"`
	Status         Status          `json:"status"`
	FilledPrice    decimal.Decimal `json:"filled-price"`
	FilledQuantity decimal.Decimal `json:"filled-quantity"`
	FilledTime     time.Time       `json:"filled-time"`
}
