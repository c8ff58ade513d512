package tick

import (
	"github.com/shopspring/decimal"
)

// GetOpenPrice returns the open price of the observation
func (t *Tick) GetOpenPrice() decimal.Decimal {
	return t.Open
}

// GetClosePrice returns the close price of the observation
func (t *Tick) GetClosePrice() decimal.Decimal {
	return t.Close
}

// GetVolume returns the traded volume of the observation
func (t *Tick) GetVolume() decimal.Decimal {
	return t.Volume
}
