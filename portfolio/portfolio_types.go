package portfolio

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is the per-symbol running position, created lazily on the first
// fill and mutated only through OnFill
type Position struct {
	Symbol      string
	Timestamp   time.Time
	Buys        decimal.Decimal
	Sells       decimal.Decimal
	Net         decimal.Decimal
	RealizedPNL decimal.Decimal
	// OpenValue is the signed cash flow accumulator for the open position,
	// decreased on buys and increased on sells. Nonzero only while Net != 0
	OpenValue decimal.Decimal
}

// RealizedPNLPoint is one entry of the timestamp-indexed realised PNL log.
// The log is append-only and used for reporting, never read by the core
type RealizedPNLPoint struct {
	Time        time.Time
	Symbol      string
	RealizedPNL decimal.Decimal
}

// Portfolio keys every position by symbol and owns the realised PNL log
type Portfolio struct {
	positions map[string]*Position
	series    []RealizedPNLPoint
}

// PositionReader is the read-only position view handed to strategies on
// every fill
type PositionReader interface {
	GetSymbol() string
	GetNet() decimal.Decimal
	GetBuys() decimal.Decimal
	GetSells() decimal.Decimal
	GetRealizedPNL() decimal.Decimal
	GetOpenValue() decimal.Decimal
	UnrealizedPNL(price decimal.Decimal) decimal.Decimal
}
