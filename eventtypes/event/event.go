package event

import (
	"fmt"
	"strings"
	"time"
)

// GetOffset returns the offset
func (b *Base) GetOffset() int64 {
	return b.Offset
}

// SetOffset sets the offset
func (b *Base) SetOffset(o int64) {
	b.Offset = o
}

// IsEvent returns whether the event is an event
func (b *Base) IsEvent() bool {
	return true
}

// GetTime returns the time
func (b *Base) GetTime() time.Time {
	return b.Time
}

// GetSymbol returns the symbol
func (b *Base) GetSymbol() string {
	return b.Symbol
}

// GetReason returns any reasons that have been attached to the event
func (b *Base) GetReason() string {
	return strings.Join(b.Reasons, ". ")
}

// AppendReason adds an explanation for what happened to the event
func (b *Base) AppendReason(y string) {
	b.Reasons = append(b.Reasons, y)
}

// AppendReasonf adds a formatted explanation for what happened to the event
func (b *Base) AppendReasonf(y string, addons ...any) {
	b.Reasons = append(b.Reasons, fmt.Sprintf(y, addons...))
}
