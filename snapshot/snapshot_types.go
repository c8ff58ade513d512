package snapshot

import (
	"time"

	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/shopspring/decimal"
)

// Snapshot holds the most recent tick per symbol. It retains no history,
// matching the next-available-price execution model
type Snapshot struct {
	latest map[string]tick.Event
}

// Quoter is the read-only view of the snapshot handed to strategies
type Quoter interface {
	OpenPrice(symbol string) (decimal.Decimal, error)
	ClosePrice(symbol string) (decimal.Decimal, error)
	Timestamp(symbol string) (time.Time, error)
}
