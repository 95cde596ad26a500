package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courtly/internal/analytics"
	"courtly/internal/clubs"
	"courtly/internal/courts"
	"courtly/internal/shared/config"
	"courtly/internal/shared/constants"
	"courtly/pkg/logger"

	"github.com/google/uuid"
)

// Service is the availability aggregation orchestrator. For a club and a date
// it determines, per court and slot, whether the slot is bookable, at what
// price, and why it is blocked if not.
type Service interface {
	GetAvailability(ctx context.Context, userID string, req Request) (*Result, error)
}

// Request is the validated input of one availability computation
type Request struct {
	ClubID      string
	Date        string   // "YYYY-MM-DD"
	CourtIDs    []string // empty means all courts
	WindowStart string   // optional "HH:MM"
	WindowEnd   string   // optional "HH:MM"
}

// Result carries the snapshot plus the cache and feature-gate indicators
type Result struct {
	Snapshot *Snapshot
	CacheHit bool
	Enabled  bool
}

type service struct {
	cfg config.AvailabilityConfig

	clubRepo          clubs.Repository
	courtSource       CourtSource
	reservationSource ReservationSource
	pricingSource     PricingSource
	blockSource       BlockSource

	cache     SnapshotCache
	publisher analytics.Publisher
	log       *logger.Logger
}

// NewService creates the aggregation orchestrator. The publisher may be nil
// when no event stream is configured.
func NewService(
	cfg config.AvailabilityConfig,
	clubRepo clubs.Repository,
	courtSource CourtSource,
	reservationSource ReservationSource,
	pricingSource PricingSource,
	blockSource BlockSource,
	snapshotCache SnapshotCache,
	publisher analytics.Publisher,
) Service {
	return &service{
		cfg:               cfg,
		clubRepo:          clubRepo,
		courtSource:       courtSource,
		reservationSource: reservationSource,
		pricingSource:     pricingSource,
		blockSource:       blockSource,
		cache:             snapshotCache,
		publisher:         publisher,
		log:               logger.GetDefault(),
	}
}

// GetAvailability runs the full pipeline: feature gate, validation,
// authorization, cache lookup, concurrent upstream fetch, assembly, cache
// write. Upstream failures degrade individual sources; only validation and
// authorization failures surface as errors.
func (s *service) GetAvailability(ctx context.Context, userID string, req Request) (*Result, error) {
	// The gate short-circuits before any validation: callers are told to use
	// the direct per-resource endpoints instead. This is a rollout switch,
	// not an error.
	if !s.cfg.Enabled {
		return &Result{Enabled: false}, nil
	}

	clubID, courtIDs, err := s.validate(req)
	if err != nil {
		return nil, err
	}

	if err := s.authorize(ctx, clubID, userID); err != nil {
		return nil, err
	}

	club, err := s.clubRepo.GetClubByID(ctx, clubID)
	if err != nil {
		return nil, fmt.Errorf("failed to load club %s: %w", clubID, err)
	}

	cacheKey := constants.BuildAvailabilitySnapshotKey(
		req.ClubID, req.Date, req.CourtIDs, req.WindowStart, req.WindowEnd)

	if snapshot, ok := s.cache.Get(ctx, cacheKey); ok {
		s.log.LogCacheResult(ctx, cacheKey, true)
		return &Result{Snapshot: snapshot, CacheHit: true, Enabled: true}, nil
	}
	s.log.LogCacheResult(ctx, cacheKey, false)

	started := time.Now()
	data := s.fetchUpstream(ctx, clubID, req.Date, courtIDs)

	// Never return a half-built snapshot: if the caller is gone, stop here.
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	snapshot := s.assemble(req, club, data)

	s.cache.Set(ctx, cacheKey, snapshot)

	s.log.LogSnapshotComputed(ctx, req.ClubID, req.Date,
		len(snapshot.Courts), snapshot.Summary.TotalSlots, snapshot.Degraded(), time.Since(started))

	s.publishSnapshotComputed(snapshot)

	return &Result{Snapshot: snapshot, CacheHit: false, Enabled: true}, nil
}

// validate checks the request shape. It runs before any upstream call.
func (s *service) validate(req Request) (uuid.UUID, []uuid.UUID, error) {
	clubID, err := uuid.Parse(req.ClubID)
	if err != nil {
		return uuid.Nil, nil, &ValidationError{Field: "club_id", Reason: "must be a valid UUID"}
	}

	if req.Date == "" {
		return uuid.Nil, nil, &ValidationError{Field: "date", Reason: "is required"}
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return uuid.Nil, nil, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}

	courtIDs := make([]uuid.UUID, 0, len(req.CourtIDs))
	for _, raw := range req.CourtIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return uuid.Nil, nil, &ValidationError{Field: "court_ids", Reason: fmt.Sprintf("%q is not a valid UUID", raw)}
		}
		courtIDs = append(courtIDs, id)
	}

	if (req.WindowStart == "") != (req.WindowEnd == "") {
		return uuid.Nil, nil, &ValidationError{Field: "time_range", Reason: "start and end must be provided together"}
	}
	if req.WindowStart != "" {
		start, err := parseClock(req.WindowStart)
		if err != nil {
			return uuid.Nil, nil, &ValidationError{Field: "time_range", Reason: "start must be HH:MM"}
		}
		end, err := parseClock(req.WindowEnd)
		if err != nil {
			return uuid.Nil, nil, &ValidationError{Field: "time_range", Reason: "end must be HH:MM"}
		}
		if start >= end {
			return uuid.Nil, nil, &ValidationError{Field: "time_range", Reason: "start must be before end"}
		}
	}

	return clubID, courtIDs, nil
}

// authorize enforces the club-membership decision: the caller must hold a
// staff-level role in the target club.
func (s *service) authorize(ctx context.Context, clubID uuid.UUID, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return &AuthorizationError{Reason: "unknown caller identity"}
	}

	role, err := s.clubRepo.GetMemberRole(ctx, clubID, uid)
	if err != nil {
		if errors.Is(err, clubs.ErrNotMember) {
			s.log.LogAuthFailure(ctx, "not a club member", clubID.String(), userID)
			return &AuthorizationError{Reason: "not a member of this club"}
		}
		return fmt.Errorf("membership lookup failed: %w", err)
	}

	if !role.CanViewAvailability() {
		s.log.LogAuthFailure(ctx, "insufficient role "+role.String(), clubID.String(), userID)
		return &AuthorizationError{Reason: "requires owner, admin or staff role"}
	}

	return nil
}

// assemble builds the immutable snapshot from the fetched upstream data
func (s *service) assemble(req Request, club *clubs.Club, data *upstreamData) *Snapshot {
	windowStart, windowEnd := -1, -1
	if req.WindowStart != "" {
		// Already validated; parse errors cannot happen here
		windowStart, _ = parseClock(req.WindowStart)
		windowEnd, _ = parseClock(req.WindowEnd)
	}

	courtList := make([]CourtAvailability, 0, len(data.courts))
	for _, court := range data.courts {
		courtList = append(courtList, s.assembleCourt(req.Date, club, court, data, windowStart, windowEnd))
	}

	return &Snapshot{
		ClubID:          req.ClubID,
		Date:            req.Date,
		Currency:        club.Currency,
		Courts:          courtList,
		Summary:         computeSummary(courtList, s.cfg.PeakHourCount),
		DegradedSources: data.failed,
		Fallback:        data.allFailed(),
		ComputedAt:      time.Now().UTC(),
	}
}

func (s *service) assembleCourt(date string, club *clubs.Club, court courts.Court, data *upstreamData, windowStart, windowEnd int) CourtAvailability {
	slots := GenerateSlots(court.OpenTime, court.CloseTime, s.cfg.SlotDuration)

	slotList := make([]SlotAvailability, 0, len(slots))
	for _, slot := range slots {
		if windowStart >= 0 && (slot.StartMinutes < windowStart || slot.EndMinutes > windowEnd) {
			continue
		}

		check := DetectConflicts(date, court.ID, slot, data.reservations, data.blocks)
		quote := CalculateSlotPrice(slot, court.BaseHourlyRate, data.rules, data.promotions)

		slotList = append(slotList, SlotAvailability{
			StartTime:   slot.StartClock(),
			EndTime:     slot.EndClock(),
			IsAvailable: check.Available(),
			Price: &SlotPrice{
				Amount:   quote.Amount,
				Currency: club.Currency,
			},
			Promotion:     quote.Promotion,
			Conflicts:     check.Conflicts,
			BlockedReason: check.BlockedReason,
		})
	}

	return CourtAvailability{
		ID:          court.ID.String(),
		Name:        court.Name,
		SurfaceType: court.SurfaceType,
		IsActive:    court.IsActive,
		Schedule: CourtSchedule{
			OpenTime:    court.OpenTime,
			CloseTime:   court.CloseTime,
			IsOpenToday: len(slots) > 0,
		},
		Slots: slotList,
	}
}

// publishSnapshotComputed emits the analytics event without blocking the
// request path. Publish failures are logged and dropped.
func (s *service) publishSnapshotComputed(snapshot *Snapshot) {
	if s.publisher == nil {
		return
	}

	event := &analytics.SnapshotEvent{
		EventID:        uuid.New().String(),
		ClubID:         snapshot.ClubID,
		Date:           snapshot.Date,
		TotalSlots:     snapshot.Summary.TotalSlots,
		AvailableSlots: snapshot.Summary.AvailableSlots,
		OccupancyRate:  snapshot.Summary.OccupancyRate,
		Degraded:       snapshot.Degraded(),
		Fallback:       snapshot.Fallback,
		ComputedAt:     snapshot.ComputedAt,
	}

	go func() {
		if err := s.publisher.PublishSnapshotComputed(context.Background(), event); err != nil {
			s.log.Warn("failed to publish snapshot event",
				"club_id", event.ClubID, "date", event.Date, "error", err)
		}
	}()
}
