package reservations

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusPending   Status = "PENDING"
	StatusCancelled Status = "CANCELLED"
)

// IsValid checks if the reservation status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// BlocksSlot reports whether a reservation with this status occupies its slot.
// Cancelled reservations never do.
func (s Status) BlocksSlot() bool {
	return s == StatusConfirmed || s == StatusPending
}
