package base

import (
	"errors"
	"time"

	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
)

var (
	// ErrCustomSettingsUnsupported used when custom settings are found in the
	// config when they shouldn't be
	ErrCustomSettingsUnsupported = errors.New("custom settings not supported")
	// ErrInvalidCustomSettings used when bad custom settings are found in the
	// config
	ErrInvalidCustomSettings = errors.New("invalid custom settings")
	// ErrNoSubmitter is returned when a strategy attempts to send an order
	// before the engine has attached its submission callback
	ErrNoSubmitter = errors.New("no order submitter set")
)

// OrderSubmitter is the strategy's one-way channel back into the engine.
// Strategies hold no reference to the order book or position ledger, only
// this callback and the views passed into their hooks
type OrderSubmitter interface {
	SubmitOrder(symbol string, quantity decimal.Decimal, direction order.Side, t time.Time) error
}

// Strategy is the base implementation of the Handler interface, carrying
// the submission callback and long/short state shared by all strategies
type Strategy struct {
	submitter OrderSubmitter
	tradeQty  decimal.Decimal
	long      bool
	short     bool
}
