package availability

import (
	"math"

	"courtly/internal/pricing"
)

// PriceQuote is the computed price for one slot
type PriceQuote struct {
	Amount    float64
	Promotion *AppliedPromotion
}

// CalculateSlotPrice computes a slot's price from the court's base hourly rate,
// the club's pricing rules and its active promotions.
//
// The base price is rate × slot duration in fractional hours. A matching rule
// (first one, in the declared priority order the repository returns) replaces
// that base with its fixed price. A matching active promotion is then applied
// multiplicatively, recording the pre-discount price. The result is rounded to
// two decimal places and never negative.
//
// The function is pure: identical inputs always produce an identical quote and
// the rule/promotion slices are never mutated.
func CalculateSlotPrice(slot Slot, baseHourlyRate float64, rules []pricing.Rule, promos []pricing.Promotion) PriceQuote {
	durationHours := float64(slot.EndMinutes-slot.StartMinutes) / 60.0
	amount := baseHourlyRate * durationHours

	for _, rule := range rules {
		if clockRangeContains(rule.StartTime, rule.EndTime, slot.StartMinutes) {
			amount = rule.Price
			break
		}
	}

	var applied *AppliedPromotion
	for _, promo := range promos {
		if !promo.IsActive {
			continue
		}
		if clockRangeContains(promo.StartTime, promo.EndTime, slot.StartMinutes) {
			applied = &AppliedPromotion{
				ID:              promo.ID.String(),
				Name:            promo.Name,
				DiscountPercent: promo.DiscountPercent,
				OriginalPrice:   roundCurrency(amount),
			}
			amount = amount * (1 - promo.DiscountPercent/100)
			break
		}
	}

	amount = roundCurrency(amount)
	if amount < 0 {
		amount = 0
	}

	return PriceQuote{
		Amount:    amount,
		Promotion: applied,
	}
}

// clockRangeContains reports whether the half-open "HH:MM" range
// [start, end) contains the given minute of the day
func clockRangeContains(start, end string, minute int) bool {
	rangeStart, err := parseClock(start)
	if err != nil {
		return false
	}
	rangeEnd, err := parseClock(end)
	if err != nil {
		return false
	}
	return minute >= rangeStart && minute < rangeEnd
}

// roundCurrency rounds to the fixed 2-decimal currency precision
func roundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
