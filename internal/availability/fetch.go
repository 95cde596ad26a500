package availability

import (
	"context"
	"sync"

	"courtly/internal/blocks"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/reservations"

	"github.com/google/uuid"
)

// Upstream data sources, expressed as the narrow read interfaces the engine
// needs. The gorm repositories satisfy them in production; tests inject fakes.
type (
	CourtSource interface {
		GetActiveCourtsByClub(ctx context.Context, clubID uuid.UUID, courtIDs []uuid.UUID) ([]courts.Court, error)
	}

	ReservationSource interface {
		GetActiveByClubAndDate(ctx context.Context, clubID uuid.UUID, date string) ([]reservations.Reservation, error)
	}

	PricingSource interface {
		GetRulesByClub(ctx context.Context, clubID uuid.UUID) ([]pricing.Rule, error)
		GetActivePromotionsByClub(ctx context.Context, clubID uuid.UUID) ([]pricing.Promotion, error)
	}

	BlockSource interface {
		GetByClubAndDate(ctx context.Context, clubID uuid.UUID, date string) ([]blocks.BlockedInterval, error)
	}
)

// Upstream source names, used for degradation reporting and logging
const (
	sourceCourts       = "courts"
	sourceReservations = "reservations"
	sourcePricingRules = "pricing_rules"
	sourcePromotions   = "promotions"
	sourceBlocks       = "blocked_intervals"
)

// upstreamData collects the five upstream reads, each resolved independently
// as success or failure. A failed source leaves its slice empty and its name
// in failed: partial data is preferred over no data.
type upstreamData struct {
	courts       []courts.Court
	reservations []reservations.Reservation
	rules        []pricing.Rule
	promotions   []pricing.Promotion
	blocks       []blocks.BlockedInterval

	failed []string
}

// allFailed reports whether every upstream source failed
func (u *upstreamData) allFailed() bool {
	return len(u.failed) == 5
}

// fetchUpstream issues the five upstream reads concurrently and waits for all
// of them. Each branch runs under its own timeout so a single slow source
// cannot stall the aggregation, and each failure is contained to its branch —
// the fetch step never aborts on first error.
func (s *service) fetchUpstream(ctx context.Context, clubID uuid.UUID, date string, courtIDs []uuid.UUID) *upstreamData {
	data := &upstreamData{}

	// One error slot per branch; each is written by exactly one goroutine
	// and read only after the WaitGroup join.
	var courtErr, resErr, ruleErr, promoErr, blockErr error

	var wg sync.WaitGroup
	wg.Add(5)

	go func() {
		defer wg.Done()
		branchCtx, cancel := s.branchContext(ctx)
		defer cancel()
		data.courts, courtErr = s.courtSource.GetActiveCourtsByClub(branchCtx, clubID, courtIDs)
	}()

	go func() {
		defer wg.Done()
		branchCtx, cancel := s.branchContext(ctx)
		defer cancel()
		data.reservations, resErr = s.reservationSource.GetActiveByClubAndDate(branchCtx, clubID, date)
	}()

	go func() {
		defer wg.Done()
		branchCtx, cancel := s.branchContext(ctx)
		defer cancel()
		data.rules, ruleErr = s.pricingSource.GetRulesByClub(branchCtx, clubID)
	}()

	go func() {
		defer wg.Done()
		branchCtx, cancel := s.branchContext(ctx)
		defer cancel()
		data.promotions, promoErr = s.pricingSource.GetActivePromotionsByClub(branchCtx, clubID)
	}()

	go func() {
		defer wg.Done()
		branchCtx, cancel := s.branchContext(ctx)
		defer cancel()
		data.blocks, blockErr = s.blockSource.GetByClubAndDate(branchCtx, clubID, date)
	}()

	wg.Wait()

	branches := []struct {
		name string
		err  error
	}{
		{sourceCourts, courtErr},
		{sourceReservations, resErr},
		{sourcePricingRules, ruleErr},
		{sourcePromotions, promoErr},
		{sourceBlocks, blockErr},
	}
	for _, branch := range branches {
		if branch.err != nil {
			data.failed = append(data.failed, branch.name)
			s.log.LogUpstreamFailure(ctx, branch.name, clubID.String(), date, branch.err)
		}
	}

	// Failed branches degrade to empty result sets
	if courtErr != nil {
		data.courts = nil
	}
	if resErr != nil {
		data.reservations = nil
	}
	if ruleErr != nil {
		data.rules = nil
	}
	if promoErr != nil {
		data.promotions = nil
	}
	if blockErr != nil {
		data.blocks = nil
	}

	return data
}

func (s *service) branchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.FetchTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.FetchTimeout)
}
