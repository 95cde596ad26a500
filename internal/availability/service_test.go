package availability

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"courtly/internal/analytics"
	"courtly/internal/blocks"
	"courtly/internal/clubs"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/reservations"
	"courtly/internal/shared/config"

	"github.com/google/uuid"
)

// ---- fakes ----

type fakeClubRepo struct {
	club    *clubs.Club
	clubErr error
	role    clubs.Role
	roleErr error
}

func (f *fakeClubRepo) GetClubByID(_ context.Context, _ uuid.UUID) (*clubs.Club, error) {
	return f.club, f.clubErr
}

func (f *fakeClubRepo) GetMemberRole(_ context.Context, _, _ uuid.UUID) (clubs.Role, error) {
	return f.role, f.roleErr
}

type fakeCourtSource struct {
	courts []courts.Court
	err    error
}

func (f *fakeCourtSource) GetActiveCourtsByClub(_ context.Context, _ uuid.UUID, _ []uuid.UUID) ([]courts.Court, error) {
	return f.courts, f.err
}

type fakeReservationSource struct {
	reservations []reservations.Reservation
	err          error
}

func (f *fakeReservationSource) GetActiveByClubAndDate(_ context.Context, _ uuid.UUID, _ string) ([]reservations.Reservation, error) {
	return f.reservations, f.err
}

type fakePricingSource struct {
	rules     []pricing.Rule
	promos    []pricing.Promotion
	rulesErr  error
	promosErr error
}

func (f *fakePricingSource) GetRulesByClub(_ context.Context, _ uuid.UUID) ([]pricing.Rule, error) {
	return f.rules, f.rulesErr
}

func (f *fakePricingSource) GetActivePromotionsByClub(_ context.Context, _ uuid.UUID) ([]pricing.Promotion, error) {
	return f.promos, f.promosErr
}

type fakeBlockSource struct {
	blocks []blocks.BlockedInterval
	err    error
}

func (f *fakeBlockSource) GetByClubAndDate(_ context.Context, _ uuid.UUID, _ string) ([]blocks.BlockedInterval, error) {
	return f.blocks, f.err
}

type fakePublisher struct {
	events chan *analytics.SnapshotEvent
}

func (f *fakePublisher) PublishSnapshotComputed(_ context.Context, event *analytics.SnapshotEvent) error {
	f.events <- event
	return nil
}

func (f *fakePublisher) Close() error { return nil }

// ---- fixture ----

type fixture struct {
	clubID  uuid.UUID
	userID  uuid.UUID
	courtID uuid.UUID

	clubRepo  *fakeClubRepo
	courtSrc  *fakeCourtSource
	resSrc    *fakeReservationSource
	priceSrc  *fakePricingSource
	blockSrc  *fakeBlockSource
	cache     *MemoryCache
	publisher *fakePublisher
	cfg       config.AvailabilityConfig
}

func newFixture() *fixture {
	clubID := uuid.New()
	courtID := uuid.New()

	return &fixture{
		clubID:  clubID,
		userID:  uuid.New(),
		courtID: courtID,
		clubRepo: &fakeClubRepo{
			club: &clubs.Club{ID: clubID, Name: "Test Club", Currency: "EUR", Timezone: "UTC"},
			role: clubs.RoleAdmin,
		},
		courtSrc: &fakeCourtSource{
			courts: []courts.Court{{
				ID:             courtID,
				ClubID:         clubID,
				Name:           "Court 1",
				SurfaceType:    "CLAY",
				IsActive:       true,
				BaseHourlyRate: 40.0,
				OpenTime:       "10:00",
				CloseTime:      "13:00",
			}},
		},
		resSrc:   &fakeReservationSource{},
		priceSrc: &fakePricingSource{},
		blockSrc: &fakeBlockSource{},
		cache:    NewMemoryCache(time.Minute),
		cfg: config.AvailabilityConfig{
			Enabled:       true,
			SnapshotTTL:   time.Minute,
			FetchTimeout:  time.Second,
			SlotDuration:  90 * time.Minute,
			PeakHourCount: 3,
		},
	}
}

func (f *fixture) service() Service {
	var publisher analytics.Publisher
	if f.publisher != nil {
		publisher = f.publisher
	}
	return NewService(f.cfg, f.clubRepo, f.courtSrc, f.resSrc, f.priceSrc, f.blockSrc, f.cache, publisher)
}

func (f *fixture) request() Request {
	return Request{ClubID: f.clubID.String(), Date: "2026-09-01"}
}

// ---- tests ----

func TestGetAvailabilityFeatureGate(t *testing.T) {
	f := newFixture()
	f.cfg.Enabled = false

	result, err := f.service().GetAvailability(context.Background(), f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Enabled {
		t.Error("Enabled = true, want false when the gate is off")
	}
	if result.Snapshot != nil {
		t.Error("no snapshot should be computed when the gate is off")
	}
}

func TestGetAvailabilityValidation(t *testing.T) {
	f := newFixture()
	svc := f.service()
	ctx := context.Background()
	userID := f.userID.String()

	tests := []struct {
		name      string
		req       Request
		wantField string
	}{
		{"bad club id", Request{ClubID: "not-a-uuid", Date: "2026-09-01"}, "club_id"},
		{"missing date", Request{ClubID: f.clubID.String()}, "date"},
		{"bad date format", Request{ClubID: f.clubID.String(), Date: "01/09/2026"}, "date"},
		{"bad court id", Request{ClubID: f.clubID.String(), Date: "2026-09-01", CourtIDs: []string{"nope"}}, "court_ids"},
		{"window start without end", Request{ClubID: f.clubID.String(), Date: "2026-09-01", WindowStart: "10:00"}, "time_range"},
		{"window end without start", Request{ClubID: f.clubID.String(), Date: "2026-09-01", WindowEnd: "12:00"}, "time_range"},
		{"bad window clock", Request{ClubID: f.clubID.String(), Date: "2026-09-01", WindowStart: "ten", WindowEnd: "12:00"}, "time_range"},
		{"window start not before end", Request{ClubID: f.clubID.String(), Date: "2026-09-01", WindowStart: "12:00", WindowEnd: "12:00"}, "time_range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GetAvailability(ctx, userID, tt.req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if validationErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", validationErr.Field, tt.wantField)
			}
		})
	}
}

func TestGetAvailabilityAuthorization(t *testing.T) {
	ctx := context.Background()

	t.Run("caller identity is not a uuid", func(t *testing.T) {
		f := newFixture()
		_, err := f.service().GetAvailability(ctx, "anonymous", f.request())
		var authErr *AuthorizationError
		if !errors.As(err, &authErr) {
			t.Fatalf("error = %v, want *AuthorizationError", err)
		}
	})

	t.Run("not a club member", func(t *testing.T) {
		f := newFixture()
		f.clubRepo.roleErr = clubs.ErrNotMember
		_, err := f.service().GetAvailability(ctx, f.userID.String(), f.request())
		var authErr *AuthorizationError
		if !errors.As(err, &authErr) {
			t.Fatalf("error = %v, want *AuthorizationError", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newFixture()
		f.clubRepo.role = clubs.Role("GUEST")
		_, err := f.service().GetAvailability(ctx, f.userID.String(), f.request())
		var authErr *AuthorizationError
		if !errors.As(err, &authErr) {
			t.Fatalf("error = %v, want *AuthorizationError", err)
		}
	})

	t.Run("membership lookup infrastructure failure is not an authorization error", func(t *testing.T) {
		f := newFixture()
		f.clubRepo.roleErr = errors.New("connection refused")
		_, err := f.service().GetAvailability(ctx, f.userID.String(), f.request())
		if err == nil {
			t.Fatal("expected an error")
		}
		var authErr *AuthorizationError
		if errors.As(err, &authErr) {
			t.Errorf("error = %v, want a plain error", err)
		}
	})

	t.Run("every staff role may read", func(t *testing.T) {
		for _, role := range []clubs.Role{clubs.RoleOwner, clubs.RoleAdmin, clubs.RoleStaff} {
			f := newFixture()
			f.clubRepo.role = role
			if _, err := f.service().GetAvailability(ctx, f.userID.String(), f.request()); err != nil {
				t.Errorf("role %s: unexpected error %v", role, err)
			}
		}
	})
}

func TestGetAvailabilitySnapshotAssembly(t *testing.T) {
	f := newFixture()
	f.resSrc.reservations = []reservations.Reservation{{
		ID:         uuid.New(),
		ClubID:     f.clubID,
		CourtID:    f.courtID,
		Date:       "2026-09-01",
		StartTime:  "10:00",
		EndTime:    "11:00",
		Status:     reservations.StatusConfirmed,
		ClientName: "Ana García",
	}}

	result, err := f.service().GetAvailability(context.Background(), f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CacheHit {
		t.Error("first computation should not be a cache hit")
	}

	snapshot := result.Snapshot
	if snapshot.ClubID != f.clubID.String() || snapshot.Date != "2026-09-01" {
		t.Errorf("snapshot identity = %s/%s", snapshot.ClubID, snapshot.Date)
	}
	if snapshot.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", snapshot.Currency)
	}
	if snapshot.Fallback || snapshot.Degraded() {
		t.Errorf("healthy fetch marked degraded: %+v", snapshot)
	}
	if len(snapshot.Courts) != 1 {
		t.Fatalf("got %d courts, want 1", len(snapshot.Courts))
	}

	court := snapshot.Courts[0]
	if !court.Schedule.IsOpenToday {
		t.Error("court with slots should be open today")
	}
	// 10:00-13:00 with 90 minute slots
	if len(court.Slots) != 2 {
		t.Fatalf("got %d slots, want 2", len(court.Slots))
	}

	first, second := court.Slots[0], court.Slots[1]
	if first.StartTime != "10:00" || first.EndTime != "11:30" {
		t.Errorf("first slot = %s-%s", first.StartTime, first.EndTime)
	}
	if first.IsAvailable {
		t.Error("slot overlapping a confirmed reservation should be unavailable")
	}
	if len(first.Conflicts) != 1 || first.Conflicts[0].ClientName != "Ana García" {
		t.Errorf("Conflicts = %+v", first.Conflicts)
	}
	if !second.IsAvailable {
		t.Error("second slot should be available")
	}
	if first.Price == nil || first.Price.Amount != 60.0 || first.Price.Currency != "EUR" {
		t.Errorf("Price = %+v, want 60.00 EUR", first.Price)
	}

	if snapshot.Summary.TotalSlots != 2 || snapshot.Summary.AvailableSlots != 1 {
		t.Errorf("Summary = %+v", snapshot.Summary)
	}
}

func TestGetAvailabilityCacheRoundTrip(t *testing.T) {
	f := newFixture()
	svc := f.service()
	ctx := context.Background()

	first, err := svc.GetAvailability(ctx, f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.CacheHit {
		t.Fatal("first call should miss")
	}

	// Upstream now fails entirely; the cached snapshot must still be served
	f.courtSrc.err = errors.New("down")
	f.resSrc.err = errors.New("down")

	second, err := svc.GetAvailability(ctx, f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.CacheHit {
		t.Fatal("second call should hit the cache")
	}
	if !reflect.DeepEqual(first.Snapshot, second.Snapshot) {
		t.Error("cached snapshot differs from the computed one")
	}
}

func TestGetAvailabilityCacheKeyRespectsSelection(t *testing.T) {
	f := newFixture()
	svc := f.service()
	ctx := context.Background()

	if _, err := svc.GetAvailability(ctx, f.userID.String(), f.request()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A different court selection must not be served from the full-day entry
	req := f.request()
	req.CourtIDs = []string{f.courtID.String()}
	result, err := svc.GetAvailability(ctx, f.userID.String(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CacheHit {
		t.Error("different court selection should not alias the cached snapshot")
	}

	// Same goes for a windowed request
	req = f.request()
	req.WindowStart, req.WindowEnd = "10:00", "11:30"
	result, err = svc.GetAvailability(ctx, f.userID.String(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.CacheHit {
		t.Error("windowed request should not alias the full-day snapshot")
	}
}

func TestGetAvailabilityPartialDegradation(t *testing.T) {
	f := newFixture()
	f.resSrc.err = errors.New("reservation store timeout")

	result, err := f.service().GetAvailability(context.Background(), f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("degraded fetch must not fail the request: %v", err)
	}

	snapshot := result.Snapshot
	if !snapshot.Degraded() {
		t.Fatal("snapshot should be marked degraded")
	}
	if snapshot.Fallback {
		t.Error("partial failure is not a fallback")
	}
	if !reflect.DeepEqual(snapshot.DegradedSources, []string{"reservations"}) {
		t.Errorf("DegradedSources = %v, want [reservations]", snapshot.DegradedSources)
	}
	// Without reservation data every slot reads as available
	for _, slot := range snapshot.Courts[0].Slots {
		if !slot.IsAvailable {
			t.Errorf("slot %s should be available when reservations are degraded", slot.StartTime)
		}
	}
}

func TestGetAvailabilityTotalFailureFallback(t *testing.T) {
	f := newFixture()
	down := errors.New("everything is down")
	f.courtSrc.err = down
	f.resSrc.err = down
	f.priceSrc.rulesErr = down
	f.priceSrc.promosErr = down
	f.blockSrc.err = down

	result, err := f.service().GetAvailability(context.Background(), f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("total upstream failure must still produce a snapshot: %v", err)
	}

	snapshot := result.Snapshot
	if !snapshot.Fallback {
		t.Error("Fallback = false, want true when every source failed")
	}
	if len(snapshot.DegradedSources) != 5 {
		t.Errorf("DegradedSources = %v, want all five", snapshot.DegradedSources)
	}
	if len(snapshot.Courts) != 0 {
		t.Errorf("Courts = %d, want 0", len(snapshot.Courts))
	}
	if snapshot.Summary.TotalSlots != 0 {
		t.Errorf("Summary = %+v, want zeroed", snapshot.Summary)
	}
	if snapshot.ClubID != f.clubID.String() || snapshot.Date != "2026-09-01" {
		t.Error("fallback snapshot must still carry the request identity")
	}
}

func TestGetAvailabilityWindowFilter(t *testing.T) {
	f := newFixture()
	req := f.request()
	req.WindowStart, req.WindowEnd = "10:00", "11:30"

	result, err := f.service().GetAvailability(context.Background(), f.userID.String(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots := result.Snapshot.Courts[0].Slots
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1 inside the window", len(slots))
	}
	if slots[0].StartTime != "10:00" || slots[0].EndTime != "11:30" {
		t.Errorf("slot = %s-%s, want 10:00-11:30", slots[0].StartTime, slots[0].EndTime)
	}
}

func TestGetAvailabilityContextCancelled(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.service().GetAvailability(ctx, f.userID.String(), f.request())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestGetAvailabilityPublishesEvent(t *testing.T) {
	f := newFixture()
	f.publisher = &fakePublisher{events: make(chan *analytics.SnapshotEvent, 1)}

	result, err := f.service().GetAvailability(context.Background(), f.userID.String(), f.request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case event := <-f.publisher.events:
		if event.ClubID != f.clubID.String() || event.Date != "2026-09-01" {
			t.Errorf("event identity = %s/%s", event.ClubID, event.Date)
		}
		if event.TotalSlots != result.Snapshot.Summary.TotalSlots {
			t.Errorf("event TotalSlots = %d, want %d", event.TotalSlots, result.Snapshot.Summary.TotalSlots)
		}
		if event.EventID == "" {
			t.Error("event should carry a generated id")
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot event published")
	}
}

func TestShapeSnapshot(t *testing.T) {
	snapshot := &Snapshot{
		Courts: []CourtAvailability{{
			Slots: []SlotAvailability{{
				StartTime:   "10:00",
				EndTime:     "11:30",
				IsAvailable: false,
				Price:       &SlotPrice{Amount: 60, Currency: "EUR"},
				Promotion:   &AppliedPromotion{Name: "Deal"},
				Conflicts:   []SlotConflict{{ClientName: "Ana"}},
			}},
		}},
	}

	t.Run("both flags keep the snapshot as-is", func(t *testing.T) {
		if got := ShapeSnapshot(snapshot, true, true); got != snapshot {
			t.Error("expected the original pointer when nothing is stripped")
		}
	})

	t.Run("pricing stripped", func(t *testing.T) {
		got := ShapeSnapshot(snapshot, false, true)
		slot := got.Courts[0].Slots[0]
		if slot.Price != nil || slot.Promotion != nil {
			t.Errorf("pricing fields survived: %+v", slot)
		}
		if len(slot.Conflicts) != 1 {
			t.Errorf("conflicts should survive: %+v", slot)
		}
	})

	t.Run("conflicts stripped", func(t *testing.T) {
		got := ShapeSnapshot(snapshot, true, false)
		slot := got.Courts[0].Slots[0]
		if slot.Conflicts != nil {
			t.Errorf("conflicts survived: %+v", slot)
		}
		if slot.Price == nil {
			t.Errorf("price should survive: %+v", slot)
		}
	})

	t.Run("original is never mutated", func(t *testing.T) {
		ShapeSnapshot(snapshot, false, false)
		slot := snapshot.Courts[0].Slots[0]
		if slot.Price == nil || slot.Promotion == nil || slot.Conflicts == nil {
			t.Error("shaping mutated the cached snapshot")
		}
	})

	t.Run("nil snapshot", func(t *testing.T) {
		if got := ShapeSnapshot(nil, false, false); got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})
}
