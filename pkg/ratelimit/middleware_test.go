package ratelimit

import "testing"

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/health", RateLimitTypeHealth},
		{"/ping", RateLimitTypeHealth},
		{"/status", RateLimitTypeHealth},
		{"/api/v1/clubs/:clubId/availability", RateLimitTypeAvailability},
		{"/api/v1/clubs/:clubId/courts", RateLimitTypePublic},
		{"/api/v1/courts/:id", RateLimitTypePublic},
		{"/api/v1/clubs/:clubId/reservations", RateLimitTypePublic},
		{"/api/v1/clubs/:clubId/pricing-rules", RateLimitTypePublic},
		{"/api/v1/clubs/:clubId/promotions", RateLimitTypePublic},
		{"/api/v1/admin/whatever", RateLimitTypeAdmin},
		{"/api/v1/something-else", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		if got := getRateLimitType(tt.path); got != tt.want {
			t.Errorf("getRateLimitType(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}
