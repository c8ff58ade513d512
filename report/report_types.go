package report

import (
	"github.com/allaccountstaken/robo-advisors/engine"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/shopspring/decimal"
)

// Statistic subscribes to the engine's event stream and accumulates the
// run's results. How events are displayed or persisted is entirely this
// package's concern, never the engine's
type Statistic struct {
	strategyName  string
	events        []engine.Event
	transactions  []fill.Fill
	realizedPNL   map[string]decimal.Decimal
	lastStatus    map[string]engine.PositionStatus
	ordersPlaced  int
	ordersFilled  int
	ticksObserved int
}
