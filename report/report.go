package report

import (
	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/engine"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/shopspring/decimal"
)

// New returns a statistic collector for a run of the named strategy
func New(strategyName string) *Statistic {
	return &Statistic{
		strategyName: strategyName,
		realizedPNL:  make(map[string]decimal.Decimal),
		lastStatus:   make(map[string]engine.PositionStatus),
	}
}

// OnEvent consumes one entry of the engine's event stream
func (s *Statistic) OnEvent(e engine.Event) {
	s.events = append(s.events, e)
	switch e.Kind {
	case common.OrderSubmitted:
		s.ordersPlaced++
		if e.Order != nil {
			log.Report.Infof("%v ORDER %v %v %v %v, fills from next tick",
				e.Time.Format("2006-01-02"), e.Symbol, e.Order.Direction, e.Order.Quantity, e.Order.ID)
		}
	case common.OrderFilled:
		s.ordersFilled++
		if e.Fill != nil {
			s.transactions = append(s.transactions, *e.Fill)
			log.Report.Infof("%v FILL %v %v %v @ %v",
				e.Time.Format("2006-01-02"), e.Symbol, e.Fill.Direction, e.Fill.Quantity, e.Fill.Price)
		}
	case common.PositionStatus:
		s.ticksObserved++
		if e.Status != nil {
			s.realizedPNL[e.Symbol] = e.Status.RealizedPNL
			s.lastStatus[e.Symbol] = *e.Status
			log.Report.Debugf("%v STATUS %v open value %v unrealized %v realized %v",
				e.Time.Format("2006-01-02"), e.Symbol, e.Status.OpenValue, e.Status.UnrealizedPNL, e.Status.RealizedPNL)
		}
	}
}

// Events returns every event observed, in emission order
func (s *Statistic) Events() []engine.Event {
	return s.events
}

// Transactions returns every fill observed, in execution order
func (s *Statistic) Transactions() []fill.Fill {
	return s.transactions
}

// TotalRealizedPNL sums the latest realised PNL across symbols
func (s *Statistic) TotalRealizedPNL() decimal.Decimal {
	total := decimal.Zero
	for _, v := range s.realizedPNL {
		total = total.Add(v)
	}
	return total
}

// RealizedPNL returns the latest realised PNL for a symbol
func (s *Statistic) RealizedPNL(symbol string) decimal.Decimal {
	return s.realizedPNL[symbol]
}

// PrintResult prints the run's final summary
func (s *Statistic) PrintResult() {
	log.Report.Infof("------------------Results------------------------------------")
	log.Report.Infof("Strategy: %v", s.strategyName)
	log.Report.Infof("Ticks processed: %v", s.ticksObserved)
	log.Report.Infof("Orders placed: %v", s.ordersPlaced)
	log.Report.Infof("Orders filled: %v", s.ordersFilled)
	for symbol, status := range s.lastStatus {
		log.Report.Infof("%v open value: %v, unrealized PNL: %v, realized PNL: %v",
			symbol, status.OpenValue, status.UnrealizedPNL, status.RealizedPNL)
	}
	log.Report.Infof("Total realized PNL: %v", s.TotalRealizedPNL())
}

// Reset zeroes the collector for a fresh run
func (s *Statistic) Reset() {
	s.events = nil
	s.transactions = nil
	s.realizedPNL = make(map[string]decimal.Decimal)
	s.lastStatus = make(map[string]engine.PositionStatus)
	s.ordersPlaced = 0
	s.ordersFilled = 0
	s.ticksObserved = 0
}
