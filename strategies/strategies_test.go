package strategies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStrategies(t *testing.T) {
	t.Parallel()
	resp := GetStrategies()
	require.Len(t, resp, 2)
	for i := range resp {
		assert.NotEmpty(t, resp[i].Name())
		assert.NotEmpty(t, resp[i].Description())
	}
}

func TestLoadStrategyByName(t *testing.T) {
	t.Parallel()
	s, err := LoadStrategyByName("meanreversion")
	require.NoError(t, err)
	assert.Equal(t, "meanreversion", s.Name())

	s, err = LoadStrategyByName("MEANREVERSION")
	require.NoError(t, err)
	assert.Equal(t, "meanreversion", s.Name())

	s, err = LoadStrategyByName("rsi")
	require.NoError(t, err)
	assert.Equal(t, "rsi", s.Name())

	_, err = LoadStrategyByName("buy-high-sell-low")
	assert.ErrorIs(t, err, ErrStrategyNotFound)
}

func TestLoadStrategyByNameReturnsFreshInstances(t *testing.T) {
	t.Parallel()
	a, err := LoadStrategyByName("rsi")
	require.NoError(t, err)
	b, err := LoadStrategyByName("rsi")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}
