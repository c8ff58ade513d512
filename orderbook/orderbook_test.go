package orderbook

import (
	"testing"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC)
}

func makeTick(symbol string, d int, open float64) *tick.Tick {
	return &tick.Tick{
		Base: event.Base{
			Time:   day(d),
			Symbol: symbol,
		},
		Open:  decimal.NewFromFloat(open),
		Close: decimal.NewFromFloat(open),
	}
}

func makeOrder(t *testing.T, symbol string, qty float64, side order.Side, d int) *order.Order {
	t.Helper()
	o, err := order.New(symbol, decimal.NewFromFloat(qty), side, day(d))
	require.NoError(t, err)
	return o
}

func TestMatchFillsOnNextTickOpen(t *testing.T) {
	t.Parallel()
	ob := New()
	o := makeOrder(t, "X", 10, order.Buy, 3)
	require.NoError(t, ob.Add(o))

	// a tick at the submission timestamp must never fill
	fills, err := ob.Match(makeTick("X", 3, 97))
	require.NoError(t, err)
	assert.Empty(t, fills)
	assert.Len(t, ob.Orders(), 1)

	fills, err = ob.Match(makeTick("X", 4, 96))
	require.NoError(t, err)
	require.Len(t, fills, 1)
	assert.Equal(t, "96", fills[0].Price.String())
	assert.Equal(t, "10", fills[0].Quantity.String())
	assert.Equal(t, day(4), fills[0].GetTime())
	assert.Equal(t, o.ID, fills[0].OrderID)
	assert.Empty(t, ob.Orders())
	require.Len(t, ob.History(), 1)
	assert.True(t, ob.History()[0].IsFilled())
}

func TestMatchIgnoresOtherSymbols(t *testing.T) {
	t.Parallel()
	ob := New()
	require.NoError(t, ob.Add(makeOrder(t, "Y", 5, order.Sell, 1)))

	fills, err := ob.Match(makeTick("X", 2, 100))
	require.NoError(t, err)
	assert.Empty(t, fills)
	// orders for symbols not yet ticked remain pending indefinitely
	assert.Len(t, ob.Orders(), 1)
}

func TestMatchFIFOAllAtSameOpen(t *testing.T) {
	t.Parallel()
	ob := New()
	first := makeOrder(t, "X", 10, order.Buy, 1)
	second := makeOrder(t, "X", 20, order.Sell, 2)
	require.NoError(t, ob.Add(first))
	require.NoError(t, ob.Add(second))

	fills, err := ob.Match(makeTick("X", 3, 50))
	require.NoError(t, err)
	require.Len(t, fills, 2)
	assert.Equal(t, first.ID, fills[0].OrderID)
	assert.Equal(t, second.ID, fills[1].OrderID)
	assert.Equal(t, "50", fills[0].Price.String())
	assert.Equal(t, "50", fills[1].Price.String())
}

func TestMatchAlreadyFilledOrderIsFatal(t *testing.T) {
	t.Parallel()
	ob := New()
	o := makeOrder(t, "X", 10, order.Buy, 1)
	require.NoError(t, o.Fill(decimal.NewFromInt(99), day(2)))
	require.NoError(t, ob.Add(o))

	_, err := ob.Match(makeTick("X", 3, 98))
	assert.ErrorIs(t, err, common.ErrInvariantViolation)
	// the offending order is retained so the failure can be inspected
	assert.Len(t, ob.Orders(), 1)
}

func TestAddNil(t *testing.T) {
	t.Parallel()
	ob := New()
	assert.ErrorIs(t, ob.Add(nil), common.ErrNilArguments)
}

func TestMatchNil(t *testing.T) {
	t.Parallel()
	ob := New()
	_, err := ob.Match(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)
}

func TestReset(t *testing.T) {
	t.Parallel()
	ob := New()
	require.NoError(t, ob.Add(makeOrder(t, "X", 10, order.Buy, 1)))
	ob.Reset()
	assert.Empty(t, ob.Orders())
	assert.Empty(t, ob.History())
}
