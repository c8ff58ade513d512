package data

import (
	"errors"

	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/shopspring/decimal"
)

var (
	// ErrOutOfOrder is returned when a feed produces ticks whose timestamps
	// are not strictly increasing for a symbol
	ErrOutOfOrder = errors.New("tick timestamps not strictly increasing for symbol")

	errNilTick = errors.New("nil tick in stream")
)

// Handler interface for loading and streaming tick data. A handler is not
// restartable mid-backtest; a fresh run requires a fresh feed instance
type Handler interface {
	Loader
	Streamer
	Reset()
}

// Loader interface for loading data into backtest supported format
type Loader interface {
	Load() error
}

// Streamer interface handles distributing loaded tick data
type Streamer interface {
	Next() (tick.Event, bool)
	GetStream() []tick.Event
	History() []tick.Event
	Latest() tick.Event
	List() []tick.Event
	Offset() int64

	StreamOpen(symbol string) []decimal.Decimal
	StreamClose(symbol string) []decimal.Decimal
	StreamVol(symbol string) []decimal.Decimal
}

// Base is the foundational implementation shared by the feed types, holding
// the loaded stream and replay offset
type Base struct {
	latest tick.Event
	stream []tick.Event
	offset int64
}
