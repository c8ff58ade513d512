package engine

import (
	"errors"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/allaccountstaken/robo-advisors/log"
	"github.com/allaccountstaken/robo-advisors/portfolio"
	"github.com/shopspring/decimal"
)

// Status returns the engine's run state
func (bt *BackTest) Status() Status {
	return bt.status
}

// Portfolio returns the engine's position ledger. After a failed run it
// holds the last consistent state
func (bt *BackTest) Portfolio() *portfolio.Portfolio {
	return bt.portfolio
}

// Run replays the feed tick by tick until exhaustion. Matching, ledger
// updates, strategy notification and reporting for a tick complete before
// the next tick is pulled; the feed is the sole suspension point
func (bt *BackTest) Run() error {
	if bt.status != Idle {
		return errNotIdle
	}
	bt.book.Reset()
	bt.portfolio.Reset()
	bt.snapshot.Reset()
	bt.reporter.Reset()

	if err := bt.feed.Load(); err != nil {
		bt.status = Failed
		return err
	}
	bt.status = Running
	log.Engine.Infof("running %v strategy for %v", bt.strategy.Name(), bt.symbol)

	for t, ok := bt.feed.Next(); ok; t, ok = bt.feed.Next() {
		if err := bt.processTick(t); err != nil {
			bt.status = Failed
			log.Engine.Errorf("run failed at %v: %v", t.GetTime(), err)
			return err
		}
	}
	bt.status = Completed
	log.Engine.Infof("feed exhausted after %v ticks, run completed", bt.feed.Offset())
	return nil
}

// processTick performs the strict per-tick sequence: match pending orders,
// update the snapshot, let the strategy act, emit the position status
func (bt *BackTest) processTick(t tick.Event) error {
	fills, err := bt.book.Match(t)
	if err != nil {
		return err
	}
	for i := range fills {
		pos, err := bt.portfolio.OnFill(&fills[i])
		if err != nil {
			return err
		}
		bt.strategy.OnPositionUpdate(pos)
		bt.reporter.OnEvent(Event{
			Time:   fills[i].GetTime(),
			Symbol: fills[i].GetSymbol(),
			Kind:   common.OrderFilled,
			Fill:   &fills[i],
		})
	}

	if err := bt.snapshot.Record(t); err != nil {
		return err
	}

	if t.GetSymbol() == bt.symbol {
		if err := bt.strategy.OnTick(bt.feed, bt.snapshot); err != nil {
			if !errors.Is(err, common.ErrInvalidOrder) {
				return err
			}
			// malformed orders are rejected and logged, the run continues
			log.Engine.Warnf("strategy order rejected: %v", err)
		}
	}

	bt.reporter.OnEvent(Event{
		Time:   t.GetTime(),
		Symbol: t.GetSymbol(),
		Kind:   common.PositionStatus,
		Status: bt.positionStatus(t),
	})
	return nil
}

// positionStatus marks the tick symbol's position to the tick's close. A
// symbol with no fills yet reports a flat status
func (bt *BackTest) positionStatus(t tick.Event) *PositionStatus {
	pos, err := bt.portfolio.Position(t.GetSymbol())
	if err != nil {
		return &PositionStatus{}
	}
	return &PositionStatus{
		OpenValue:     pos.GetOpenValue(),
		UnrealizedPNL: pos.UnrealizedPNL(t.GetClosePrice()),
		RealizedPNL:   pos.GetRealizedPNL(),
	}
}

// SubmitOrder validates a strategy order and enters it into the pending
// order book; it becomes eligible to fill from the next tick onwards.
// Rejection is returned to the strategy and the run continues
func (bt *BackTest) SubmitOrder(symbol string, quantity decimal.Decimal, direction order.Side, t time.Time) error {
	o, err := order.New(symbol, quantity, direction, t)
	if err != nil {
		return err
	}
	o.AppendReasonf("%v signal from %v strategy", direction, bt.strategy.Name())
	if err := bt.book.Add(o); err != nil {
		return err
	}
	log.Engine.Infof("order %v submitted: %v %v %v", o.ID, direction, quantity, symbol)
	bt.reporter.OnEvent(Event{
		Time:   t,
		Symbol: symbol,
		Kind:   common.OrderSubmitted,
		Order:  o,
	})
	return nil
}
