package data

import (
	"fmt"
	"sort"

	"github.com/allaccountstaken/robo-advisors/eventtypes/tick"
	"github.com/shopspring/decimal"
)

// SetStream sorts the provided ticks by time and takes them on as the
// replay stream. Timestamps must be strictly increasing within a symbol,
// no duplicates, which is verified here so a bad source fails the load
// before any tick is replayed
func (b *Base) SetStream(s []tick.Event) error {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].GetTime().Before(s[j].GetTime())
	})
	lastPerSymbol := make(map[string]tick.Event)
	for i := range s {
		if s[i] == nil {
			return fmt.Errorf("stream position %v: %w", i, errNilTick)
		}
		if prev, ok := lastPerSymbol[s[i].GetSymbol()]; ok && !s[i].GetTime().After(prev.GetTime()) {
			return fmt.Errorf("%w %q at %v", ErrOutOfOrder, s[i].GetSymbol(), s[i].GetTime())
		}
		lastPerSymbol[s[i].GetSymbol()] = s[i]
		s[i].SetOffset(int64(i) + 1)
	}
	b.stream = s
	return nil
}

// GetStream returns the entire loaded stream
func (b *Base) GetStream() []tick.Event {
	return b.stream
}

// Offset returns the number of ticks that have been replayed so far
func (b *Base) Offset() int64 {
	return b.offset
}

// Next returns the next tick in the stream and shifts the offset along
func (b *Base) Next() (tick.Event, bool) {
	if int64(len(b.stream)) <= b.offset {
		return nil, false
	}
	ret := b.stream[b.offset]
	b.offset++
	b.latest = ret
	return ret, true
}

// History returns all ticks that have already been replayed
func (b *Base) History() []tick.Event {
	return b.stream[:b.offset]
}

// Latest returns the most recently replayed tick
func (b *Base) Latest() tick.Event {
	return b.latest
}

// List returns all ticks yet to be replayed. Ill-advised to use this in
// strategies because you don't know the future in real life
func (b *Base) List() []tick.Event {
	return b.stream[b.offset:]
}

// StreamOpen returns the symbol's open prices replayed so far
func (b *Base) StreamOpen(symbol string) []decimal.Decimal {
	var ret []decimal.Decimal
	for x := range b.stream[:b.offset] {
		if b.stream[x].GetSymbol() != symbol {
			continue
		}
		ret = append(ret, b.stream[x].GetOpenPrice())
	}
	return ret
}

// StreamClose returns the symbol's close prices replayed so far. Streams
// can interleave symbols, so indicator windows must be built from these
// per-symbol views, never from the raw replay history
func (b *Base) StreamClose(symbol string) []decimal.Decimal {
	var ret []decimal.Decimal
	for x := range b.stream[:b.offset] {
		if b.stream[x].GetSymbol() != symbol {
			continue
		}
		ret = append(ret, b.stream[x].GetClosePrice())
	}
	return ret
}

// StreamVol returns the symbol's volumes replayed so far
func (b *Base) StreamVol(symbol string) []decimal.Decimal {
	var ret []decimal.Decimal
	for x := range b.stream[:b.offset] {
		if b.stream[x].GetSymbol() != symbol {
			continue
		}
		ret = append(ret, b.stream[x].GetVolume())
	}
	return ret
}

// Reset returns loaded data to a blank state
func (b *Base) Reset() {
	b.latest = nil
	b.offset = 0
	b.stream = nil
}
