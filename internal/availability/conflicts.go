package availability

import (
	"time"

	"courtly/internal/blocks"
	"courtly/internal/reservations"

	"github.com/google/uuid"
)

// ConflictCheck is the outcome of checking one candidate slot against the
// court's reservations and blocked intervals.
type ConflictCheck struct {
	Conflicts     []SlotConflict
	Blocked       bool
	BlockedReason string
}

// Available reports whether the slot can be booked: no reservation conflicts
// and no overlapping blocked interval.
func (c ConflictCheck) Available() bool {
	return len(c.Conflicts) == 0 && !c.Blocked
}

// DetectConflicts checks a candidate slot for a court on a date against the
// pre-fetched reservation and block lists. Cancelled reservations are excluded
// before the overlap test runs, so they can never affect availability.
//
// Two half-open intervals [a,b) and [c,d) overlap iff a < d && c < b;
// back-to-back bookings therefore never conflict.
func DetectConflicts(date string, courtID uuid.UUID, slot Slot, res []reservations.Reservation, blks []blocks.BlockedInterval) ConflictCheck {
	var check ConflictCheck
	check.Conflicts = []SlotConflict{}

	for _, r := range res {
		if r.CourtID != courtID || !r.Status.BlocksSlot() {
			continue
		}

		resStart, err := parseClock(r.StartTime)
		if err != nil {
			continue
		}
		resEnd, err := parseClock(r.EndTime)
		if err != nil {
			continue
		}

		if slot.StartMinutes < resEnd && resStart < slot.EndMinutes {
			check.Conflicts = append(check.Conflicts, SlotConflict{
				ReservationID: r.ID.String(),
				Status:        r.Status.String(),
				ClientName:    r.ClientName,
			})
		}
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return check
	}
	slotStart := day.Add(time.Duration(slot.StartMinutes) * time.Minute)
	slotEnd := day.Add(time.Duration(slot.EndMinutes) * time.Minute)

	for _, b := range blks {
		if b.CourtID != courtID {
			continue
		}
		if slotStart.Before(b.EndsAt) && b.StartsAt.Before(slotEnd) {
			check.Blocked = true
			check.BlockedReason = b.Reason
			if check.BlockedReason == "" {
				check.BlockedReason = "maintenance"
			}
			break
		}
	}

	return check
}
