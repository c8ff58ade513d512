package report

import (
	"testing"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/engine"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

func submissionEvent(symbol string, d int) engine.Event {
	return engine.Event{
		Time:   day(d),
		Symbol: symbol,
		Kind:   common.OrderSubmitted,
		Order: &order.Order{
			Base:      event.Base{Time: day(d), Symbol: symbol},
			ID:        "order-1",
			Direction: order.Buy,
			OrderType: order.Market,
			Quantity:  decimal.NewFromInt(10),
			Status:    order.Pending,
		},
	}
}

func fillEvent(symbol string, d int, price float64) engine.Event {
	return engine.Event{
		Time:   day(d),
		Symbol: symbol,
		Kind:   common.OrderFilled,
		Fill: &fill.Fill{
			Base:      event.Base{Time: day(d), Symbol: symbol},
			OrderID:   "order-1",
			Direction: order.Buy,
			Quantity:  decimal.NewFromInt(10),
			Price:     decimal.NewFromFloat(price),
		},
	}
}

func statusEvent(symbol string, d int, realized float64) engine.Event {
	return engine.Event{
		Time:   day(d),
		Symbol: symbol,
		Kind:   common.PositionStatus,
		Status: &engine.PositionStatus{
			RealizedPNL: decimal.NewFromFloat(realized),
		},
	}
}

func TestOnEvent(t *testing.T) {
	t.Parallel()
	s := New("meanreversion")
	s.OnEvent(submissionEvent("X", 3))
	s.OnEvent(fillEvent("X", 4, 96))
	s.OnEvent(statusEvent("X", 4, 0))
	s.OnEvent(statusEvent("X", 5, 60))

	assert.Len(t, s.Events(), 4)
	require.Len(t, s.Transactions(), 1)
	assert.Equal(t, "96", s.Transactions()[0].Price.String())
	assert.Equal(t, 1, s.ordersPlaced)
	assert.Equal(t, 1, s.ordersFilled)
	assert.Equal(t, 2, s.ticksObserved)
	assert.Equal(t, "60", s.RealizedPNL("X").String())
}

func TestTotalRealizedPNL(t *testing.T) {
	t.Parallel()
	s := New("meanreversion")
	s.OnEvent(statusEvent("X", 1, 25))
	s.OnEvent(statusEvent("X", 2, 60))
	s.OnEvent(statusEvent("Y", 2, -10))

	// latest per symbol, not the sum of observations
	assert.Equal(t, "50", s.TotalRealizedPNL().String())
	assert.Equal(t, "60", s.RealizedPNL("X").String())
	assert.Equal(t, "-10", s.RealizedPNL("Y").String())
	assert.True(t, s.RealizedPNL("Z").IsZero())
}

func TestOnEventNilPayloads(t *testing.T) {
	t.Parallel()
	s := New("meanreversion")
	s.OnEvent(engine.Event{Time: day(1), Symbol: "X", Kind: common.OrderSubmitted})
	s.OnEvent(engine.Event{Time: day(1), Symbol: "X", Kind: common.OrderFilled})
	s.OnEvent(engine.Event{Time: day(1), Symbol: "X", Kind: common.PositionStatus})

	assert.Len(t, s.Events(), 3)
	assert.Empty(t, s.Transactions())
	assert.Equal(t, 1, s.ordersPlaced)
	assert.Equal(t, 1, s.ordersFilled)
	assert.Equal(t, 1, s.ticksObserved)
}

func TestPrintResult(t *testing.T) {
	t.Parallel()
	s := New("meanreversion")
	s.OnEvent(submissionEvent("X", 3))
	s.OnEvent(fillEvent("X", 4, 96))
	s.OnEvent(statusEvent("X", 5, 60))
	s.PrintResult()
}

func TestReset(t *testing.T) {
	t.Parallel()
	s := New("meanreversion")
	s.OnEvent(submissionEvent("X", 3))
	s.OnEvent(fillEvent("X", 4, 96))
	s.OnEvent(statusEvent("X", 5, 60))

	s.Reset()
	assert.Empty(t, s.Events())
	assert.Empty(t, s.Transactions())
	assert.True(t, s.TotalRealizedPNL().IsZero())
	assert.Equal(t, 0, s.ordersPlaced)
	assert.Equal(t, 0, s.ordersFilled)
	assert.Equal(t, 0, s.ticksObserved)
}
