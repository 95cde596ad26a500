package availability

import (
	"fmt"
	"time"
)

// Slot is a candidate booking window, expressed in minutes from midnight.
// The interval is half-open: [StartMinutes, EndMinutes).
type Slot struct {
	StartMinutes int
	EndMinutes   int
}

// StartClock returns the slot start as "HH:MM"
func (s Slot) StartClock() string {
	return formatClock(s.StartMinutes)
}

// EndClock returns the slot end as "HH:MM"
func (s Slot) EndClock() string {
	return formatClock(s.EndMinutes)
}

// GenerateSlots produces the canonical slot sequence for one court: fixed-size
// non-overlapping steps covering [open, close), stopping before any slot would
// extend past closing time. Degenerate inputs (unparseable times, open at or
// after close, non-positive duration) yield an empty sequence, not an error —
// a court with no slots is a valid business state.
func GenerateSlots(openTime, closeTime string, duration time.Duration) []Slot {
	open, err := parseClock(openTime)
	if err != nil {
		return []Slot{}
	}
	closing, err := parseClock(closeTime)
	if err != nil {
		return []Slot{}
	}

	step := int(duration.Minutes())
	if step <= 0 || open >= closing {
		return []Slot{}
	}

	slots := make([]Slot, 0, (closing-open)/step)
	for start := open; start+step <= closing; start += step {
		slots = append(slots, Slot{
			StartMinutes: start,
			EndMinutes:   start + step,
		})
	}
	return slots
}

// parseClock converts "HH:MM" to minutes from midnight
func parseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", clock, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// formatClock converts minutes from midnight to "HH:MM"
func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
