package constants

import (
	"sort"
	"strings"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the courtly backend.
// Pattern: courtly:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_MEDIUM = 12 * time.Hour // court catalog
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // pricing rules
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // active promotions
)

// Highly Dynamic (Micro TTL: real-time sensitive)
const (
	TTL_REALTIME_MEDIUM = 1 * time.Minute // availability snapshots
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "courtly"
)

// ================== AVAILABILITY MODULE ==================

const (
	// Assembled availability snapshots, keyed per club/date/court selection
	CACHE_KEY_AVAILABILITY_SNAPSHOT = CACHE_PREFIX + ":availability:snapshot:" // + club-id:date:courts[...]

	// Sentinel used when no explicit court selection was requested
	AVAILABILITY_ALL_COURTS = "all"
)

const (
	TTL_AVAILABILITY_SNAPSHOT = TTL_REALTIME_MEDIUM // 1 minute
)

// ================== CATALOG MODULE ==================

const (
	CACHE_KEY_CLUB_COURTS   = CACHE_PREFIX + ":courts:club:"         // + club-id
	CACHE_KEY_COURT_DETAIL  = CACHE_PREFIX + ":courts:detail:uuid:"  // + court-id
	CACHE_KEY_PRICING_RULES = CACHE_PREFIX + ":pricing:rules:club:"  // + club-id
	CACHE_KEY_PROMOTIONS    = CACHE_PREFIX + ":pricing:promos:club:" // + club-id
)

const (
	TTL_CLUB_COURTS   = TTL_STATIC_MEDIUM      // 12 hours
	TTL_PRICING_RULES = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_PROMOTIONS    = TTL_SEMI_STATIC_QUICK  // 15 minutes
)

// ================== HELPER FUNCTIONS ==================

// BuildAvailabilitySnapshotKey constructs the snapshot cache key for a club,
// date and court selection. Court ids are sorted and comma-joined so the same
// selection always maps to the same key; an empty selection uses the "all"
// sentinel. A requested time window is appended so windowed snapshots never
// alias full-day ones.
func BuildAvailabilitySnapshotKey(clubID, date string, courtIDs []string, windowStart, windowEnd string) string {
	selection := AVAILABILITY_ALL_COURTS
	if len(courtIDs) > 0 {
		sorted := make([]string, len(courtIDs))
		copy(sorted, courtIDs)
		sort.Strings(sorted)
		selection = strings.Join(sorted, ",")
	}

	key := CACHE_KEY_AVAILABILITY_SNAPSHOT + clubID + ":" + date + ":" + selection
	if windowStart != "" || windowEnd != "" {
		key += ":window:" + windowStart + "-" + windowEnd
	}
	return key
}

func BuildClubCourtsKey(clubID string) string {
	return CACHE_KEY_CLUB_COURTS + clubID
}

func BuildCourtDetailKey(courtID string) string {
	return CACHE_KEY_COURT_DETAIL + courtID
}

func BuildPricingRulesKey(clubID string) string {
	return CACHE_KEY_PRICING_RULES + clubID
}

func BuildPromotionsKey(clubID string) string {
	return CACHE_KEY_PROMOTIONS + clubID
}
