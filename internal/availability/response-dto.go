package availability

// AvailabilityResponse wraps the shaped snapshot with request metadata. The
// fallback and degradation indicators live on the snapshot itself.
type AvailabilityResponse struct {
	Enabled  bool      `json:"enabled"`
	Cache    string    `json:"cache"` // "hit" or "miss"
	Snapshot *Snapshot `json:"snapshot"`
}

// DisabledResponse is returned when the aggregated endpoint is gated off.
// Clients should fall back to the direct per-resource endpoints.
type DisabledResponse struct {
	Enabled      bool `json:"enabled"`
	UseDirectAPI bool `json:"use_direct_api"`
}

// ShapeSnapshot applies the include_pricing and include_conflicts flags to a
// snapshot. The cached snapshot always carries full data; shaping happens per
// request so differently-flagged requests share one cache entry. The input is
// never mutated.
func ShapeSnapshot(s *Snapshot, includePricing, includeConflicts bool) *Snapshot {
	if s == nil || (includePricing && includeConflicts) {
		return s
	}

	shaped := *s
	shaped.Courts = make([]CourtAvailability, len(s.Courts))
	for i, court := range s.Courts {
		shapedCourt := court
		shapedCourt.Slots = make([]SlotAvailability, len(court.Slots))
		for j, slot := range court.Slots {
			if !includePricing {
				slot.Price = nil
				slot.Promotion = nil
			}
			if !includeConflicts {
				slot.Conflicts = nil
			}
			shapedCourt.Slots[j] = slot
		}
		shaped.Courts[i] = shapedCourt
	}
	return &shaped
}
