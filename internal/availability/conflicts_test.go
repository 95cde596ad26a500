package availability

import (
	"testing"
	"time"

	"courtly/internal/blocks"
	"courtly/internal/reservations"

	"github.com/google/uuid"
)

func makeReservation(courtID uuid.UUID, start, end string, status reservations.Status) reservations.Reservation {
	return reservations.Reservation{
		ID:         uuid.New(),
		CourtID:    courtID,
		Date:       "2026-09-01",
		StartTime:  start,
		EndTime:    end,
		Status:     status,
		ClientName: "Test Client",
	}
}

func TestDetectConflictsOverlap(t *testing.T) {
	courtID := uuid.New()
	slot := Slot{StartMinutes: 600, EndMinutes: 690} // 10:00-11:30

	tests := []struct {
		name         string
		resStart     string
		resEnd       string
		wantConflict bool
	}{
		{"reservation inside slot", "10:15", "11:00", true},
		{"reservation covering slot", "09:00", "12:00", true},
		{"overlap at slot start", "09:00", "10:30", true},
		{"overlap at slot end", "11:00", "12:30", true},
		{"identical interval", "10:00", "11:30", true},
		{"back to back before", "08:30", "10:00", false},
		{"back to back after", "11:30", "13:00", false},
		{"well before", "08:00", "09:00", false},
		{"well after", "12:00", "13:30", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := []reservations.Reservation{
				makeReservation(courtID, tt.resStart, tt.resEnd, reservations.StatusConfirmed),
			}
			check := DetectConflicts("2026-09-01", courtID, slot, res, nil)
			if got := len(check.Conflicts) > 0; got != tt.wantConflict {
				t.Errorf("conflict = %t, want %t", got, tt.wantConflict)
			}
			if check.Available() == tt.wantConflict {
				t.Errorf("Available() = %t, want %t", check.Available(), !tt.wantConflict)
			}
		})
	}
}

func TestDetectConflictsStatusFilter(t *testing.T) {
	courtID := uuid.New()
	slot := Slot{StartMinutes: 600, EndMinutes: 690}

	tests := []struct {
		status       reservations.Status
		wantConflict bool
	}{
		{reservations.StatusConfirmed, true},
		{reservations.StatusPending, true},
		{reservations.StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			res := []reservations.Reservation{
				makeReservation(courtID, "10:00", "11:00", tt.status),
			}
			check := DetectConflicts("2026-09-01", courtID, slot, res, nil)
			if got := len(check.Conflicts) > 0; got != tt.wantConflict {
				t.Errorf("status %s: conflict = %t, want %t", tt.status, got, tt.wantConflict)
			}
		})
	}
}

func TestDetectConflictsIgnoresOtherCourts(t *testing.T) {
	courtID := uuid.New()
	otherCourt := uuid.New()
	slot := Slot{StartMinutes: 600, EndMinutes: 690}

	res := []reservations.Reservation{
		makeReservation(otherCourt, "10:00", "11:00", reservations.StatusConfirmed),
	}
	blks := []blocks.BlockedInterval{
		{
			ID:       uuid.New(),
			CourtID:  otherCourt,
			StartsAt: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
		},
	}

	check := DetectConflicts("2026-09-01", courtID, slot, res, blks)
	if !check.Available() {
		t.Errorf("slot should be available, got %+v", check)
	}
}

func TestDetectConflictsReportsDetails(t *testing.T) {
	courtID := uuid.New()
	slot := Slot{StartMinutes: 600, EndMinutes: 690}
	res := makeReservation(courtID, "10:00", "11:00", reservations.StatusPending)

	check := DetectConflicts("2026-09-01", courtID, slot, []reservations.Reservation{res}, nil)
	if len(check.Conflicts) != 1 {
		t.Fatalf("got %d conflicts, want 1", len(check.Conflicts))
	}
	conflict := check.Conflicts[0]
	if conflict.ReservationID != res.ID.String() {
		t.Errorf("ReservationID = %q, want %q", conflict.ReservationID, res.ID.String())
	}
	if conflict.Status != "PENDING" {
		t.Errorf("Status = %q, want PENDING", conflict.Status)
	}
	if conflict.ClientName != "Test Client" {
		t.Errorf("ClientName = %q, want %q", conflict.ClientName, "Test Client")
	}
}

func TestDetectConflictsBlockedIntervals(t *testing.T) {
	courtID := uuid.New()
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		slot        Slot
		startsAt    time.Time
		endsAt      time.Time
		reason      string
		wantBlocked bool
		wantReason  string
	}{
		{
			name:        "overlapping block with reason",
			slot:        Slot{600, 690},
			startsAt:    day.Add(10 * time.Hour),
			endsAt:      day.Add(12 * time.Hour),
			reason:      "court resurfacing",
			wantBlocked: true,
			wantReason:  "court resurfacing",
		},
		{
			name:        "overlapping block without reason gets default",
			slot:        Slot{600, 690},
			startsAt:    day.Add(11 * time.Hour),
			endsAt:      day.Add(12 * time.Hour),
			wantBlocked: true,
			wantReason:  "maintenance",
		},
		{
			name:     "block ends exactly at slot start",
			slot:     Slot{600, 690},
			startsAt: day.Add(8 * time.Hour),
			endsAt:   day.Add(10 * time.Hour),
		},
		{
			name:     "block starts exactly at slot end",
			slot:     Slot{600, 690},
			startsAt: day.Add(11*time.Hour + 30*time.Minute),
			endsAt:   day.Add(13 * time.Hour),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blks := []blocks.BlockedInterval{
				{
					ID:       uuid.New(),
					CourtID:  courtID,
					StartsAt: tt.startsAt,
					EndsAt:   tt.endsAt,
					Reason:   tt.reason,
				},
			}
			check := DetectConflicts("2026-09-01", courtID, tt.slot, nil, blks)
			if check.Blocked != tt.wantBlocked {
				t.Errorf("Blocked = %t, want %t", check.Blocked, tt.wantBlocked)
			}
			if check.BlockedReason != tt.wantReason {
				t.Errorf("BlockedReason = %q, want %q", check.BlockedReason, tt.wantReason)
			}
		})
	}
}

func TestDetectConflictsEmptyInputs(t *testing.T) {
	check := DetectConflicts("2026-09-01", uuid.New(), Slot{600, 690}, nil, nil)
	if !check.Available() {
		t.Errorf("empty inputs should yield an available slot, got %+v", check)
	}
	if check.Conflicts == nil {
		t.Error("Conflicts should be an empty slice, not nil")
	}
}
