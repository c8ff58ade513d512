package portfolio

import (
	"testing"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/event"
	"github.com/allaccountstaken/robo-advisors/eventtypes/fill"
	"github.com/allaccountstaken/robo-advisors/eventtypes/order"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFill(symbol string, side order.Side, qty, price float64, d int) *fill.Fill {
	return &fill.Fill{
		Base: event.Base{
			Time:   time.Date(2021, 1, d, 0, 0, 0, 0, time.UTC),
			Symbol: symbol,
		},
		OrderID:   "test-order",
		Direction: side,
		Quantity:  decimal.NewFromFloat(qty),
		Price:     decimal.NewFromFloat(price),
	}
}

func TestOnFillCreatesPositionLazily(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.Position("X")
	assert.ErrorIs(t, err, common.ErrNoData)

	pos, err := p.OnFill(makeFill("X", order.Buy, 10, 96, 4))
	require.NoError(t, err)
	assert.Equal(t, "X", pos.GetSymbol())
	assert.Equal(t, "10", pos.GetNet().String())
	assert.Equal(t, "10", pos.GetBuys().String())
	assert.Equal(t, "0", pos.GetSells().String())
	assert.Equal(t, "-960", pos.GetOpenValue().String())

	got, err := p.Position("X")
	require.NoError(t, err)
	assert.Same(t, pos, got)
}

func TestNetInvariantHoldsAfterEveryFill(t *testing.T) {
	t.Parallel()
	p := New()
	fills := []*fill.Fill{
		makeFill("X", order.Buy, 10, 100, 1),
		makeFill("X", order.Sell, 4, 101, 2),
		makeFill("X", order.Sell, 6, 99, 3),
		makeFill("X", order.Sell, 3, 98, 4),
		makeFill("X", order.Buy, 3, 97, 5),
	}
	for i := range fills {
		pos, err := p.OnFill(fills[i])
		require.NoError(t, err)
		assert.True(t, pos.GetNet().Equal(pos.GetBuys().Sub(pos.GetSells())),
			"net %v does not equal buys %v - sells %v", pos.GetNet(), pos.GetBuys(), pos.GetSells())
	}
}

func TestRoundTripRealization(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(makeFill("X", order.Buy, 7, 50, 1))
	require.NoError(t, err)
	pos, err := p.OnFill(makeFill("X", order.Sell, 7, 55, 2))
	require.NoError(t, err)

	assert.True(t, pos.GetNet().IsZero())
	// (55 - 50) * 7
	assert.Equal(t, "35", pos.GetRealizedPNL().String())
	assert.True(t, pos.GetOpenValue().IsZero())
}

func TestShortRoundTripRealization(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(makeFill("X", order.Sell, 5, 55, 1))
	require.NoError(t, err)
	pos, err := p.OnFill(makeFill("X", order.Buy, 5, 50, 2))
	require.NoError(t, err)

	assert.True(t, pos.GetNet().IsZero())
	assert.Equal(t, "25", pos.GetRealizedPNL().String())
}

func TestUnrealizedPNL(t *testing.T) {
	t.Parallel()
	p := New()
	pos, err := p.OnFill(makeFill("X", order.Buy, 10, 96, 1))
	require.NoError(t, err)

	// -960 + 10*103
	assert.Equal(t, "70", pos.UnrealizedPNL(decimal.NewFromInt(103)).String())
	assert.Equal(t, "-60", pos.UnrealizedPNL(decimal.NewFromInt(90)).String())
}

func TestUnrealizedPNLZeroWhenFlat(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(makeFill("X", order.Buy, 10, 96, 1))
	require.NoError(t, err)
	pos, err := p.OnFill(makeFill("X", order.Sell, 10, 100, 2))
	require.NoError(t, err)

	for _, price := range []int64{0, 1, 96, 1000000} {
		assert.True(t, pos.UnrealizedPNL(decimal.NewFromInt(price)).IsZero())
	}
}

func TestOnFillRejectsMalformedFills(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)

	_, err = p.OnFill(makeFill("X", order.Buy, 0, 96, 1))
	assert.ErrorIs(t, err, common.ErrInvariantViolation)

	_, err = p.OnFill(makeFill("X", order.Buy, -2, 96, 1))
	assert.ErrorIs(t, err, common.ErrInvariantViolation)

	_, err = p.OnFill(makeFill("X", "SIDEWAYS", 1, 96, 1))
	assert.ErrorIs(t, err, common.ErrInvariantViolation)
}

func TestRealizedPNLSeries(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(makeFill("X", order.Buy, 10, 96, 1))
	require.NoError(t, err)
	_, err = p.OnFill(makeFill("X", order.Sell, 10, 100, 2))
	require.NoError(t, err)

	series := p.RealizedPNLSeries()
	require.Len(t, series, 2)
	assert.Equal(t, "0", series[0].RealizedPNL.String())
	assert.Equal(t, "40", series[1].RealizedPNL.String())
	assert.True(t, series[0].Time.Before(series[1].Time))
}

func TestPositionsSortedBySymbol(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(makeFill("ZZZ", order.Buy, 1, 10, 1))
	require.NoError(t, err)
	_, err = p.OnFill(makeFill("AAA", order.Buy, 1, 10, 1))
	require.NoError(t, err)

	positions := p.Positions()
	require.Len(t, positions, 2)
	assert.Equal(t, "AAA", positions[0].Symbol)
	assert.Equal(t, "ZZZ", positions[1].Symbol)
}

func TestReset(t *testing.T) {
	t.Parallel()
	p := New()
	_, err := p.OnFill(makeFill("X", order.Buy, 1, 10, 1))
	require.NoError(t, err)
	p.Reset()
	assert.Empty(t, p.Positions())
	assert.Empty(t, p.RealizedPNLSeries())
}
