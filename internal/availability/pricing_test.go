package availability

import (
	"testing"

	"courtly/internal/pricing"

	"github.com/google/uuid"
)

func TestCalculateSlotPriceBaseRate(t *testing.T) {
	tests := []struct {
		name string
		slot Slot
		rate float64
		want float64
	}{
		{"90 minutes at 40 per hour", Slot{600, 690}, 40.0, 60.0},
		{"60 minutes at 40 per hour", Slot{600, 660}, 40.0, 40.0},
		{"30 minutes at 45 per hour", Slot{600, 630}, 45.0, 22.5},
		{"rounding to two decimals", Slot{600, 650}, 39.99, 33.33}, // 50min × 39.99/60 = 33.325
		{"zero rate", Slot{600, 690}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := CalculateSlotPrice(tt.slot, tt.rate, nil, nil)
			if quote.Amount != tt.want {
				t.Errorf("Amount = %v, want %v", quote.Amount, tt.want)
			}
			if quote.Promotion != nil {
				t.Errorf("Promotion = %+v, want nil", quote.Promotion)
			}
		})
	}
}

func TestCalculateSlotPriceRuleOverride(t *testing.T) {
	rules := []pricing.Rule{
		{ID: uuid.New(), Name: "Evening peak", StartTime: "18:00", EndTime: "22:00", Price: 50.0, Priority: 1},
		{ID: uuid.New(), Name: "Late evening", StartTime: "20:00", EndTime: "22:00", Price: 35.0, Priority: 2},
	}

	tests := []struct {
		name string
		slot Slot
		want float64
	}{
		{"slot before any rule keeps base price", Slot{600, 690}, 60.0},
		{"slot start inside rule range", Slot{1080, 1170}, 50.0}, // 18:00
		{"first matching rule wins in overlap", Slot{1200, 1290}, 50.0}, // 20:00 matches both
		{"rule range end is exclusive", Slot{1320, 1410}, 60.0}, // 22:00
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := CalculateSlotPrice(tt.slot, 40.0, rules, nil)
			if quote.Amount != tt.want {
				t.Errorf("Amount = %v, want %v", quote.Amount, tt.want)
			}
		})
	}
}

func TestCalculateSlotPricePromotion(t *testing.T) {
	promoID := uuid.New()
	promos := []pricing.Promotion{
		{ID: promoID, Name: "Lunch deal", StartTime: "12:00", EndTime: "15:00", DiscountPercent: 10.0, IsActive: true},
	}

	// 12:00-13:30 at 40/h = 60.00, minus 10% = 54.00
	quote := CalculateSlotPrice(Slot{720, 810}, 40.0, nil, promos)
	if quote.Amount != 54.0 {
		t.Errorf("Amount = %v, want 54.0", quote.Amount)
	}
	if quote.Promotion == nil {
		t.Fatal("expected an applied promotion")
	}
	if quote.Promotion.ID != promoID.String() {
		t.Errorf("Promotion.ID = %q, want %q", quote.Promotion.ID, promoID.String())
	}
	if quote.Promotion.Name != "Lunch deal" {
		t.Errorf("Promotion.Name = %q, want %q", quote.Promotion.Name, "Lunch deal")
	}
	if quote.Promotion.DiscountPercent != 10.0 {
		t.Errorf("DiscountPercent = %v, want 10.0", quote.Promotion.DiscountPercent)
	}
	if quote.Promotion.OriginalPrice != 60.0 {
		t.Errorf("OriginalPrice = %v, want 60.0", quote.Promotion.OriginalPrice)
	}
}

func TestCalculateSlotPriceRuleThenPromotion(t *testing.T) {
	rules := []pricing.Rule{
		{ID: uuid.New(), StartTime: "12:00", EndTime: "15:00", Price: 50.0, Priority: 1},
	}
	promos := []pricing.Promotion{
		{ID: uuid.New(), Name: "Lunch deal", StartTime: "12:00", EndTime: "15:00", DiscountPercent: 10.0, IsActive: true},
	}

	// Rule fixes the price at 50.00, then the promotion discounts it to 45.00
	quote := CalculateSlotPrice(Slot{720, 810}, 40.0, rules, promos)
	if quote.Amount != 45.0 {
		t.Errorf("Amount = %v, want 45.0", quote.Amount)
	}
	if quote.Promotion == nil || quote.Promotion.OriginalPrice != 50.0 {
		t.Errorf("Promotion = %+v, want OriginalPrice 50.0", quote.Promotion)
	}
}

func TestCalculateSlotPricePromotionSelection(t *testing.T) {
	t.Run("inactive promotions are skipped", func(t *testing.T) {
		promos := []pricing.Promotion{
			{ID: uuid.New(), Name: "Expired", StartTime: "12:00", EndTime: "15:00", DiscountPercent: 50.0, IsActive: false},
			{ID: uuid.New(), Name: "Current", StartTime: "12:00", EndTime: "15:00", DiscountPercent: 10.0, IsActive: true},
		}
		quote := CalculateSlotPrice(Slot{720, 810}, 40.0, nil, promos)
		if quote.Promotion == nil || quote.Promotion.Name != "Current" {
			t.Errorf("Promotion = %+v, want the active one", quote.Promotion)
		}
		if quote.Amount != 54.0 {
			t.Errorf("Amount = %v, want 54.0", quote.Amount)
		}
	})

	t.Run("at most one promotion applies", func(t *testing.T) {
		promos := []pricing.Promotion{
			{ID: uuid.New(), Name: "First", StartTime: "12:00", EndTime: "15:00", DiscountPercent: 10.0, IsActive: true},
			{ID: uuid.New(), Name: "Second", StartTime: "12:00", EndTime: "15:00", DiscountPercent: 20.0, IsActive: true},
		}
		quote := CalculateSlotPrice(Slot{720, 810}, 40.0, nil, promos)
		if quote.Promotion == nil || quote.Promotion.Name != "First" {
			t.Errorf("Promotion = %+v, want only the first", quote.Promotion)
		}
		if quote.Amount != 54.0 {
			t.Errorf("Amount = %v, want 54.0 after a single discount", quote.Amount)
		}
	})

	t.Run("promotion outside the slot start does not apply", func(t *testing.T) {
		promos := []pricing.Promotion{
			{ID: uuid.New(), StartTime: "12:00", EndTime: "15:00", DiscountPercent: 10.0, IsActive: true},
		}
		quote := CalculateSlotPrice(Slot{900, 990}, 40.0, nil, promos) // 15:00, range end exclusive
		if quote.Promotion != nil {
			t.Errorf("Promotion = %+v, want nil", quote.Promotion)
		}
	})
}

func TestCalculateSlotPriceNeverNegative(t *testing.T) {
	promos := []pricing.Promotion{
		{ID: uuid.New(), StartTime: "00:00", EndTime: "23:59", DiscountPercent: 150.0, IsActive: true},
	}
	quote := CalculateSlotPrice(Slot{600, 690}, 40.0, nil, promos)
	if quote.Amount != 0 {
		t.Errorf("Amount = %v, want 0 (clamped)", quote.Amount)
	}
}

func TestCalculateSlotPriceIsPure(t *testing.T) {
	rules := []pricing.Rule{
		{ID: uuid.New(), StartTime: "10:00", EndTime: "12:00", Price: 50.0, Priority: 1},
	}
	promos := []pricing.Promotion{
		{ID: uuid.New(), Name: "Deal", StartTime: "10:00", EndTime: "12:00", DiscountPercent: 10.0, IsActive: true},
	}
	slot := Slot{600, 690}

	first := CalculateSlotPrice(slot, 40.0, rules, promos)
	second := CalculateSlotPrice(slot, 40.0, rules, promos)

	if first.Amount != second.Amount {
		t.Errorf("amounts differ across identical calls: %v vs %v", first.Amount, second.Amount)
	}
	if rules[0].Price != 50.0 || promos[0].DiscountPercent != 10.0 {
		t.Error("inputs were mutated")
	}
}
