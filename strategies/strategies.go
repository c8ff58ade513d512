package strategies

import (
	"fmt"
	"strings"

	"github.com/allaccountstaken/robo-advisors/strategies/meanreversion"
	"github.com/allaccountstaken/robo-advisors/strategies/rsi"
)

// LoadStrategyByName returns the strategy by its name
func LoadStrategyByName(name string) (Handler, error) {
	strats := GetStrategies()
	for i := range strats {
		if !strings.EqualFold(name, strats[i].Name()) {
			continue
		}
		return strats[i], nil
	}
	return nil, fmt.Errorf("strategy %q %w", name, ErrStrategyNotFound)
}

// GetStrategies returns a new instance of every strategy
func GetStrategies() []Handler {
	return []Handler{
		new(meanreversion.Strategy),
		new(rsi.Strategy),
	}
}
