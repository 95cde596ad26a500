package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"courtly/internal/blocks"
	"courtly/internal/clubs"
	"courtly/internal/courts"
	"courtly/internal/pricing"
	"courtly/internal/reservations"
	"courtly/internal/shared/config"
	"courtly/internal/shared/database"

	"github.com/google/uuid"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Courtly Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in the correct order (respecting foreign key constraints)
func (s *Seeder) CleanDatabase() error {
	// Delete in reverse dependency order
	tables := []string{
		"blocked_intervals",
		"reservations",
		"promotions",
		"rules",
		"courts",
		"memberships",
		"clubs",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	clubIDs, err := s.SeedClubs()
	if err != nil {
		return fmt.Errorf("failed to seed clubs: %w", err)
	}

	if err := s.SeedMemberships(clubIDs); err != nil {
		return fmt.Errorf("failed to seed memberships: %w", err)
	}

	courtIDs, err := s.SeedCourts(clubIDs)
	if err != nil {
		return fmt.Errorf("failed to seed courts: %w", err)
	}

	if err := s.SeedPricing(clubIDs); err != nil {
		return fmt.Errorf("failed to seed pricing: %w", err)
	}

	if err := s.SeedReservations(clubIDs, courtIDs); err != nil {
		return fmt.Errorf("failed to seed reservations: %w", err)
	}

	if err := s.SeedBlockedIntervals(clubIDs, courtIDs); err != nil {
		return fmt.Errorf("failed to seed blocked intervals: %w", err)
	}

	// Clear Redis cache to ensure fresh state
	if s.db.Redis != nil {
		if err := s.db.Redis.FlushDB(ctx).Err(); err != nil {
			log.Printf("Warning: Failed to clear Redis cache: %v", err)
		}
	}

	return nil
}

// SeedClubs creates 2 clubs with different currencies
func (s *Seeder) SeedClubs() (map[string]uuid.UUID, error) {
	fmt.Println("  🏢 Seeding clubs...")

	clubIDs := make(map[string]uuid.UUID)

	clubsData := []struct {
		key      string
		name     string
		currency string
		timezone string
	}{
		{"madrid", "Club de Tenis Madrid", "EUR", "Europe/Madrid"},
		{"london", "Riverside Racquets London", "GBP", "Europe/London"},
	}

	for _, clubData := range clubsData {
		club := clubs.Club{
			ID:        uuid.New(),
			Name:      clubData.name,
			Currency:  clubData.currency,
			Timezone:  clubData.timezone,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&club).Error; err != nil {
			return nil, fmt.Errorf("failed to create club %s: %w", club.Name, err)
		}

		clubIDs[clubData.key] = club.ID
		fmt.Printf("    ✅ Created club: %s (%s)\n", club.Name, club.Currency)
	}

	return clubIDs, nil
}

// SeedMemberships creates staff memberships with fixed user IDs so seeded
// tokens can be minted against known identities
func (s *Seeder) SeedMemberships(clubIDs map[string]uuid.UUID) error {
	fmt.Println("  👤 Seeding memberships...")

	membershipsData := []struct {
		club   string
		userID string
		role   clubs.Role
	}{
		{"madrid", "11111111-1111-1111-1111-111111111111", clubs.RoleOwner},
		{"madrid", "22222222-2222-2222-2222-222222222222", clubs.RoleAdmin},
		{"madrid", "33333333-3333-3333-3333-333333333333", clubs.RoleStaff},
		{"london", "11111111-1111-1111-1111-111111111111", clubs.RoleStaff},
		{"london", "44444444-4444-4444-4444-444444444444", clubs.RoleOwner},
	}

	for _, m := range membershipsData {
		membership := clubs.Membership{
			ID:        uuid.New(),
			ClubID:    clubIDs[m.club],
			UserID:    uuid.MustParse(m.userID),
			Role:      m.role,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&membership).Error; err != nil {
			return fmt.Errorf("failed to create membership for %s: %w", m.userID, err)
		}

		fmt.Printf("    ✅ Created membership: %s → %s (%s)\n", m.userID, m.club, m.role)
	}

	return nil
}

// SeedCourts creates courts with varied surfaces, rates and operating hours
func (s *Seeder) SeedCourts(clubIDs map[string]uuid.UUID) (map[string]uuid.UUID, error) {
	fmt.Println("  🎾 Seeding courts...")

	courtIDs := make(map[string]uuid.UUID)

	courtsData := []struct {
		key       string
		club      string
		name      string
		surface   string
		rate      float64
		openTime  string
		closeTime string
		active    bool
	}{
		{"madrid-1", "madrid", "Pista Central", "CLAY", 40.0, "08:00", "22:00", true},
		{"madrid-2", "madrid", "Pista 2", "CLAY", 32.0, "08:00", "22:00", true},
		{"madrid-3", "madrid", "Pista Cubierta", "HARD", 36.0, "07:00", "23:00", true},
		{"madrid-4", "madrid", "Pista 4", "CLAY", 28.0, "09:00", "21:00", false},
		{"london-1", "london", "Centre Court", "GRASS", 55.0, "09:00", "21:00", true},
		{"london-2", "london", "Court 2", "HARD", 42.0, "08:00", "22:00", true},
	}

	for _, courtData := range courtsData {
		court := courts.Court{
			ID:             uuid.New(),
			ClubID:         clubIDs[courtData.club],
			Name:           courtData.name,
			SurfaceType:    courtData.surface,
			IsActive:       courtData.active,
			BaseHourlyRate: courtData.rate,
			OpenTime:       courtData.openTime,
			CloseTime:      courtData.closeTime,
			CreatedAt:      time.Now(),
			UpdatedAt:      time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&court).Error; err != nil {
			return nil, fmt.Errorf("failed to create court %s: %w", court.Name, err)
		}

		courtIDs[courtData.key] = court.ID
		fmt.Printf("    ✅ Created court: %s (%s, %.2f/h)\n", court.Name, court.SurfaceType, court.BaseHourlyRate)
	}

	return courtIDs, nil
}

// SeedPricing creates time-of-day pricing rules and promotions
func (s *Seeder) SeedPricing(clubIDs map[string]uuid.UUID) error {
	fmt.Println("  💶 Seeding pricing rules and promotions...")

	rulesData := []struct {
		club      string
		name      string
		startTime string
		endTime   string
		price     float64
		priority  int
	}{
		{"madrid", "Evening peak", "18:00", "22:00", 50.0, 1},
		{"madrid", "Morning off-peak", "08:00", "11:00", 25.0, 2},
		{"london", "Prime time", "17:00", "21:00", 70.0, 1},
	}

	for _, ruleData := range rulesData {
		rule := pricing.Rule{
			ID:        uuid.New(),
			ClubID:    clubIDs[ruleData.club],
			Name:      ruleData.name,
			StartTime: ruleData.startTime,
			EndTime:   ruleData.endTime,
			Price:     ruleData.price,
			Priority:  ruleData.priority,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&rule).Error; err != nil {
			return fmt.Errorf("failed to create pricing rule %s: %w", rule.Name, err)
		}

		fmt.Printf("    ✅ Created rule: %s (%s-%s, %.2f)\n", rule.Name, rule.StartTime, rule.EndTime, rule.Price)
	}

	promotionsData := []struct {
		club      string
		name      string
		startTime string
		endTime   string
		discount  float64
		active    bool
	}{
		{"madrid", "Lunch deal", "12:00", "15:00", 10.0, true},
		{"madrid", "Old summer promo", "08:00", "22:00", 25.0, false},
		{"london", "Early bird", "09:00", "11:00", 15.0, true},
	}

	for _, promoData := range promotionsData {
		promo := pricing.Promotion{
			ID:              uuid.New(),
			ClubID:          clubIDs[promoData.club],
			Name:            promoData.name,
			StartTime:       promoData.startTime,
			EndTime:         promoData.endTime,
			DiscountPercent: promoData.discount,
			IsActive:        promoData.active,
			CreatedAt:       time.Now(),
			UpdatedAt:       time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&promo).Error; err != nil {
			return fmt.Errorf("failed to create promotion %s: %w", promo.Name, err)
		}

		fmt.Printf("    ✅ Created promotion: %s (%.0f%%, active=%t)\n", promo.Name, promo.DiscountPercent, promo.IsActive)
	}

	return nil
}

// SeedReservations creates reservations for today and tomorrow
func (s *Seeder) SeedReservations(clubIDs, courtIDs map[string]uuid.UUID) error {
	fmt.Println("  📅 Seeding reservations...")

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	reservationsData := []struct {
		club      string
		court     string
		date      string
		startTime string
		endTime   string
		status    reservations.Status
		client    string
	}{
		{"madrid", "madrid-1", today, "09:30", "11:00", reservations.StatusConfirmed, "Ana García"},
		{"madrid", "madrid-1", today, "18:00", "19:30", reservations.StatusPending, "Luis Ortega"},
		{"madrid", "madrid-2", today, "10:00", "11:30", reservations.StatusCancelled, "Marta Ruiz"},
		{"madrid", "madrid-3", tomorrow, "08:30", "10:00", reservations.StatusConfirmed, "Carlos Vega"},
		{"london", "london-1", today, "17:00", "18:30", reservations.StatusConfirmed, "James Walker"},
		{"london", "london-2", tomorrow, "09:00", "10:30", reservations.StatusPending, "Priya Nair"},
	}

	for _, resData := range reservationsData {
		reservation := reservations.Reservation{
			ID:         uuid.New(),
			ClubID:     clubIDs[resData.club],
			CourtID:    courtIDs[resData.court],
			Date:       resData.date,
			StartTime:  resData.startTime,
			EndTime:    resData.endTime,
			Status:     resData.status,
			ClientName: resData.client,
			CreatedAt:  time.Now(),
			UpdatedAt:  time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation for %s: %w", resData.client, err)
		}

		fmt.Printf("    ✅ Created reservation: %s %s-%s (%s)\n", resData.date, resData.startTime, resData.endTime, resData.status)
	}

	return nil
}

// SeedBlockedIntervals creates maintenance blocks for today
func (s *Seeder) SeedBlockedIntervals(clubIDs, courtIDs map[string]uuid.UUID) error {
	fmt.Println("  🚧 Seeding blocked intervals...")

	now := time.Now().UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	blocksData := []struct {
		club       string
		court      string
		startHour  int
		startMin   int
		durationMn int
		reason     string
	}{
		{"madrid", "madrid-2", 14, 0, 120, "court resurfacing"},
		{"london", "london-1", 12, 30, 90, ""},
	}

	for _, blockData := range blocksData {
		startsAt := day.Add(time.Duration(blockData.startHour)*time.Hour + time.Duration(blockData.startMin)*time.Minute)
		block := blocks.BlockedInterval{
			ID:        uuid.New(),
			ClubID:    clubIDs[blockData.club],
			CourtID:   courtIDs[blockData.court],
			StartsAt:  startsAt,
			EndsAt:    startsAt.Add(time.Duration(blockData.durationMn) * time.Minute),
			Reason:    blockData.reason,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := s.db.PostgreSQL.Create(&block).Error; err != nil {
			return fmt.Errorf("failed to create blocked interval on %s: %w", blockData.court, err)
		}

		fmt.Printf("    ✅ Created block: %s from %s (%d min)\n", blockData.court, startsAt.Format("15:04"), blockData.durationMn)
	}

	return nil
}
