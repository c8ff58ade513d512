package common

import (
	"errors"
	"time"
)

// EventKind describes the category of event emitted to the reporting stream
type EventKind string

const (
	// OrderSubmitted is emitted when a strategy order is accepted into the
	// pending order book
	OrderSubmitted EventKind = "ORDER_SUBMITTED"
	// OrderFilled is emitted when a pending order is matched against a tick
	OrderFilled EventKind = "ORDER_FILLED"
	// PositionStatus is emitted once per processed tick with the position's
	// open value, unrealised and realised PNL
	PositionStatus EventKind = "POSITION_STATUS"
)

var (
	// ErrNoData is returned when a symbol has never been observed by the
	// component being queried. Callers must not assume a default value
	ErrNoData = errors.New("no data for symbol")
	// ErrDataUnavailable is returned when the historical data source cannot
	// produce any ticks. It is raised before a run starts, never mid-replay
	ErrDataUnavailable = errors.New("historical data unavailable")
	// ErrInvalidOrder is returned when an order is rejected at submission,
	// for example a non-positive quantity or an unknown side. Recoverable
	ErrInvalidOrder = errors.New("invalid order")
	// ErrInvariantViolation is returned when continuing would corrupt the
	// ledger or violate temporal ordering. Fatal to the run
	ErrInvariantViolation = errors.New("invariant violation")
	// ErrNilArguments is a common error response to highlight that nils were
	// passed in when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent is a common error for whenever a nil event occurs when it
	// shouldn't have
	ErrNilEvent = errors.New("nil event received")
)

// Event interface implements required GetTime() & GetSymbol() returns
type Event interface {
	GetOffset() int64
	SetOffset(int64)
	IsEvent() bool
	GetTime() time.Time
	GetSymbol() string
	GetReason() string
	AppendReason(string)
}
