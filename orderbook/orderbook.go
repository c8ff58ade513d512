package orderbook

import (
	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/allaccountstaken/robo-advisors/log"
)

// New returns an empty order book
func New() *OrderBook {
	return &OrderBook{}
}

// Add appends an order to the pending set in submission order
func (ob *OrderBook) Add(o *order.Order) error {
	if o == nil {
		return common.ErrNilArguments
	}
	ob.m.Lock()
	ob.pending = append(ob.pending, o)
	ob.m.Unlock()
	return nil
}

// Orders returns the pending orders in submission order
func (ob *OrderBook) Orders() []*order.Order {
	ob.m.Lock()
	defer ob.m.Unlock()
	ret := make([]*order.Order, len(ob.pending))
	copy(ret, ob.pending)
	return ret
}

// History returns all filled orders
func (ob *OrderBook) History() []*order.Order {
	ob.m.Lock()
	defer ob.m.Unlock()
	ret := make([]*order.Order, len(ob.history))
	copy(ret, ob.history)
	return ret
}

// Match fills every pending order for the tick's symbol that was submitted
// strictly before the tick's timestamp, all at the tick's open price with
// no volume cap, in submission order. Orders for other symbols or submitted
// on this very tick remain pending. A fill that would not be after its
// order's submission is an invariant violation and aborts matching
func (ob *OrderBook) Match(t tick.Event) ([]fill.Fill, error) {
	if t == nil {
		return nil, common.ErrNilEvent
	}
	ob.m.Lock()
	defer ob.m.Unlock()

	var fills []fill.Fill
	remaining := make([]*order.Order, 0, len(ob.pending))
	for i, o := range ob.pending {
		if o.GetSymbol() != t.GetSymbol() || !o.GetTime().Before(t.GetTime()) {
			remaining = append(remaining, o)
			continue
		}
		if err := o.Fill(t.GetOpenPrice(), t.GetTime()); err != nil {
			ob.pending = append(remaining, ob.pending[i:]...)
			return nil, err
		}
		log.OrderBook.Debugf("order %v filled %v %v %v @ %v",
			o.ID, o.Direction, o.Quantity, o.GetSymbol(), o.FilledPrice)
		ob.history = append(ob.history, o)
		fills = append(fills, fill.Fill{
			Base: event.Base{
				Time:   t.GetTime(),
				Symbol: t.GetSymbol(),
			},
			OrderID:   o.ID,
			Direction: o.Direction,
			Quantity:  o.FilledQuantity,
			Price:     o.FilledPrice,
		})
	}
	ob.pending = remaining
	return fills, nil
}

// Reset returns the order book to a blank state
func (ob *OrderBook) Reset() {
	ob.m.Lock()
	ob.pending = nil
	ob.history = nil
	ob.m.Unlock()
}
