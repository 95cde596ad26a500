package analytics

import (
	"encoding/json"
	"time"
)

// SnapshotEvent is emitted every time an availability snapshot is computed
// from upstream data. Cache hits do not emit events; they describe no new
// computation.
type SnapshotEvent struct {
	EventID        string    `json:"event_id"`
	ClubID         string    `json:"club_id"`
	Date           string    `json:"date"`
	TotalSlots     int       `json:"total_slots"`
	AvailableSlots int       `json:"available_slots"`
	OccupancyRate  float64   `json:"occupancy_rate"`
	Degraded       bool      `json:"degraded"`
	Fallback       bool      `json:"fallback"`
	ComputedAt     time.Time `json:"computed_at"`
}

// ToJSON serializes the event for the wire
func (e *SnapshotEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey routes all events of a club to the same partition so
// downstream consumers see a club's snapshots in order
func (e *SnapshotEvent) GetPartitionKey() string {
	return e.ClubID
}
