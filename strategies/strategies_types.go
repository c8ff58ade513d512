package strategies

import (
	"errors"

	"github.com/allaccountstaken/robo-advisors/data"
	"github.com/allaccountstaken/robo-advisors/portfolio"
	"github.com/allaccountstaken/robo-advisors/snapshot"
	"github.com/allaccountstaken/robo-advisors/strategies/base"
	"github.com/shopspring/decimal"
)

// ErrStrategyNotFound used when a strategy specified in the config does not
// exist
var ErrStrategyNotFound = errors.New("not found. Cannot continue")

// Handler is the polymorphic decision unit. OnTick is invoked once per tick
// for the engine's primary symbol and may submit orders via the callback
// attached with SetSubmitter; OnPositionUpdate is invoked once per fill
type Handler interface {
	Name() string
	Description() string
	OnTick(d data.Handler, quotes snapshot.Quoter) error
	OnPositionUpdate(p portfolio.PositionReader)
	SetSubmitter(o base.OrderSubmitter)
	SetTradeQuantity(q decimal.Decimal)
	SetCustomSettings(map[string]any) error
	SetDefaults()
}
