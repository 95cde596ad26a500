package availability

import "time"

// Snapshot is the fully assembled availability and pricing view for one club
// and date. It is immutable once produced: the cache stores it as-is and the
// response layer copies rather than mutates it.
type Snapshot struct {
	ClubID          string              `json:"club_id"`
	Date            string              `json:"date"` // "YYYY-MM-DD"
	Currency        string              `json:"currency"`
	Courts          []CourtAvailability `json:"courts"`
	Summary         Summary             `json:"summary"`
	DegradedSources []string            `json:"degraded_sources,omitempty"`
	Fallback        bool                `json:"fallback"` // every upstream source failed
	ComputedAt      time.Time           `json:"computed_at"`
}

// Degraded reports whether at least one upstream source failed during assembly
func (s *Snapshot) Degraded() bool {
	return len(s.DegradedSources) > 0
}

// CourtAvailability is one court's slot list within a snapshot
type CourtAvailability struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	SurfaceType string             `json:"surface_type"`
	IsActive    bool               `json:"is_active"`
	Schedule    CourtSchedule      `json:"schedule"`
	Slots       []SlotAvailability `json:"slots"`
}

// CourtSchedule describes the court's operating window for the requested date
type CourtSchedule struct {
	OpenTime    string `json:"open_time"`  // "HH:MM"
	CloseTime   string `json:"close_time"` // "HH:MM"
	IsOpenToday bool   `json:"is_open_today"`
}

// SlotAvailability is one priced, flagged slot
type SlotAvailability struct {
	StartTime     string            `json:"start_time"` // "HH:MM"
	EndTime       string            `json:"end_time"`   // "HH:MM"
	IsAvailable   bool              `json:"is_available"`
	Price         *SlotPrice        `json:"price,omitempty"`
	Promotion     *AppliedPromotion `json:"promotion,omitempty"`
	Conflicts     []SlotConflict    `json:"conflicts"`
	BlockedReason string            `json:"blocked_reason,omitempty"`
}

// SlotPrice is the final price for a slot
type SlotPrice struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	IncludesTax bool    `json:"includes_tax"`
}

// AppliedPromotion records the promotion applied to a slot, together with the
// pre-discount price so clients can render both.
type AppliedPromotion struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DiscountPercent float64 `json:"discount_percent"`
	OriginalPrice   float64 `json:"original_price"`
}

// SlotConflict is an existing reservation overlapping a slot
type SlotConflict struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	ClientName    string `json:"client_name"`
}

// Summary aggregates a snapshot
type Summary struct {
	TotalSlots     int      `json:"total_slots"`
	AvailableSlots int      `json:"available_slots"`
	OccupancyRate  float64  `json:"occupancy_rate"`
	PeakHours      []string `json:"peak_hours"`
}
