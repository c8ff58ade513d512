package snapshot

import (
	"fmt"
	"time"

	"github.com/allaccountstaken/robo-advisors/common"
	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/shopspring/decimal"
)

// New returns an empty market snapshot
func New() *Snapshot {
	return &Snapshot{
		latest: make(map[string]tick.Event),
	}
}

// Record replaces the stored tick for the tick's symbol
func (s *Snapshot) Record(t tick.Event) error {
	if t == nil {
		return common.ErrNilEvent
	}
	s.latest[t.GetSymbol()] = t
	return nil
}

// OpenPrice returns the open price of the latest tick for the symbol
func (s *Snapshot) OpenPrice(symbol string) (decimal.Decimal, error) {
	t, ok := s.latest[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q never observed", common.ErrNoData, symbol)
	}
	return t.GetOpenPrice(), nil
}

// ClosePrice returns the close price of the latest tick for the symbol
func (s *Snapshot) ClosePrice(symbol string) (decimal.Decimal, error) {
	t, ok := s.latest[symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %q never observed", common.ErrNoData, symbol)
	}
	return t.GetClosePrice(), nil
}

// Timestamp returns the time of the latest tick for the symbol
func (s *Snapshot) Timestamp(symbol string) (time.Time, error) {
	t, ok := s.latest[symbol]
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q never observed", common.ErrNoData, symbol)
	}
	return t.GetTime(), nil
}

// Reset returns the snapshot to a blank state
func (s *Snapshot) Reset() {
	s.latest = make(map[string]tick.Event)
}
