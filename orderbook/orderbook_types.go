package orderbook

import (
	"sync"

	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
)

// OrderBook holds submitted-but-unfilled market orders until a matching
// tick arrives. Filled orders are transferred to history and are read-only
// from then on
type OrderBook struct {
	m       sync.Mutex
	pending []*order.Order
	history []*order.Order
}
