package event

import (
	"time"
)

// Base is the underlying event across all actions that occur for the
// backtester, such as a tick arriving, an order being submitted or filled
type Base struct {
	Offset  int64     `json:"offset"`
	Time    time.Time `json:"timestamp"`
	Symbol  string    `json:"symbol"`
	Reasons []string  `json:"reasons"`
}
