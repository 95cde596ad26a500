package availability

import "strings"

// availabilityQuery is the raw query-string shape of the aggregated endpoint.
// Content validation (date format, UUIDs, clock range) happens in the service
// so every caller gets the same field-level errors.
type availabilityQuery struct {
	Date             string `form:"date"`
	CourtIDs         string `form:"court_ids"` // comma-separated UUIDs
	IncludePricing   string `form:"include_pricing,default=true"`
	IncludeConflicts string `form:"include_conflicts,default=true"`
	Start            string `form:"start"` // "HH:MM"
	End              string `form:"end"`   // "HH:MM"
}

// splitCourtIDs splits the comma-separated court_ids parameter, dropping
// empty entries so trailing commas do not fail validation
func splitCourtIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
