package portfolio

import (
	"fmt"
	"sort"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
)

// New returns an empty portfolio
func New() *Portfolio {
	return &Portfolio{
		positions: make(map[string]*Position),
	}
}

// OnFill applies a fill to the symbol's position, creating it on first
// fill, and appends to the realised PNL log. It is the ledger's single
// mutation path. A fill that reaches the ledger malformed means the order
// book let something through it never should have, which is fatal
func (p *Portfolio) OnFill(f *fill.Fill) (*Position, error) {
	if f == nil {
		return nil, common.ErrNilEvent
	}
	if f.Quantity.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: fill quantity %v for order %v", common.ErrInvariantViolation, f.Quantity, f.OrderID)
	}
	if f.Direction != order.Buy && f.Direction != order.Sell {
		return nil, fmt.Errorf("%w: fill side %q for order %v", common.ErrInvariantViolation, f.Direction, f.OrderID)
	}

	pos, ok := p.positions[f.GetSymbol()]
	if !ok {
		pos = &Position{Symbol: f.GetSymbol()}
		p.positions[f.GetSymbol()] = pos
	}
	pos.update(f.Direction, f.Quantity, f.Price, f.GetTime())
	p.series = append(p.series, RealizedPNLPoint{
		Time:        f.GetTime(),
		Symbol:      f.GetSymbol(),
		RealizedPNL: pos.RealizedPNL,
	})
	return pos, nil
}

// Position returns the position for a symbol. Querying a symbol that has
// never been filled is an error, not an implicit zero position
func (p *Portfolio) Position(symbol string) (*Position, error) {
	pos, ok := p.positions[symbol]
	if !ok {
		return nil, fmt.Errorf("%w: no position for %q", common.ErrNoData, symbol)
	}
	return pos, nil
}

// Positions returns every position, sorted by symbol
func (p *Portfolio) Positions() []*Position {
	ret := make([]*Position, 0, len(p.positions))
	for _, pos := range p.positions {
		ret = append(ret, pos)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Symbol < ret[j].Symbol
	})
	return ret
}

// RealizedPNLSeries returns the append-only realised PNL log
func (p *Portfolio) RealizedPNLSeries() []RealizedPNLPoint {
	return p.series
}

// Reset returns the portfolio to a blank state
func (p *Portfolio) Reset() {
	p.positions = make(map[string]*Position)
	p.series = nil
}
