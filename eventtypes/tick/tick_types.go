package tick

import (
	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/shopspring/decimal"
)

// Tick is a single timestamped price and volume observation for a symbol.
// Immutable once produced by a feed
type Tick struct {
	event.Base
	Open   decimal.Decimal `json:"open"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// Event interface used for loading and interacting with tick data
type Event interface {
	common.Event
	GetOpenPrice() decimal.Decimal
	GetClosePrice() decimal.Decimal
	GetVolume() decimal.Decimal
}
