package engine

import (
	"errors"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/orderbook"
	"github.com/allaccountstaken/robo-advisors/portfolio"
	"github.com/allaccountstaken/robo-advisors/snapshot"
	"github.com/allaccountstaken/robo-advisors/strategies"
	"github.com/shopspring/decimal"
)

var (
	errNotIdle      = errors.New("a backtest run cannot be restarted, create a fresh engine instance")
	errNilConfig    = errors.New("received nil config")
	errNilReporter  = errors.New("received nil reporter")
	errNoDataSource = errors.New("no data source configured")
)

// Status is the engine's run state. A run either completes or fails, there
// is no retry or resume
type Status uint8

const (
	// Idle is a constructed engine that has not yet run
	Idle Status = iota
	// Running is a replay in progress
	Running
	// Completed is a terminal state reached on feed exhaustion
	Completed
	// Failed is a terminal state reached on any fatal error. The last
	// consistent positions and PNL remain readable
	Failed
)

// String stringifies the status
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// BackTest is the main holder of all backtesting functionality. It owns its
// snapshot, ledger and order book exclusively; concurrent backtests require
// separate instances with no shared mutable state
type BackTest struct {
	status    Status
	symbol    string
	feed      data.Handler
	book      *orderbook.OrderBook
	snapshot  *snapshot.Snapshot
	portfolio *portfolio.Portfolio
	strategy  strategies.Handler
	reporter  Reporter
}

// Event is a single entry in the reporting stream. Exactly one of Order,
// Fill and Status is set, according to Kind
type Event struct {
	Time   time.Time        `json:"timestamp"`
	Symbol string           `json:"symbol"`
	Kind   common.EventKind `json:"event-kind"`
	Order  *order.Order     `json:"order,omitempty"`
	Fill   *fill.Fill       `json:"fill,omitempty"`
	Status *PositionStatus  `json:"position-status,omitempty"`
}

// PositionStatus is the per-tick position observation emitted for reporting
type PositionStatus struct {
	OpenValue     decimal.Decimal `json:"open-value"`
	UnrealizedPNL decimal.Decimal `json:"unrealized-pnl"`
	RealizedPNL   decimal.Decimal `json:"realized-pnl"`
}

// Reporter consumes the engine's event stream. The engine has no knowledge
// of how events are displayed or persisted
type Reporter interface {
	OnEvent(e Event)
	Reset()
}
