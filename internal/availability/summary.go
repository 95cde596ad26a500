package availability

import (
	"fmt"
	"sort"
)

// computeSummary aggregates the assembled courts into the snapshot summary:
// total and available slot counts, the occupancy rate, and the busiest hours.
func computeSummary(courtList []CourtAvailability, peakHourCount int) Summary {
	summary := Summary{
		PeakHours: []string{},
	}

	bookedByHour := make(map[int]int)

	for _, court := range courtList {
		for _, slot := range court.Slots {
			summary.TotalSlots++
			if slot.IsAvailable {
				summary.AvailableSlots++
				continue
			}
			start, err := parseClock(slot.StartTime)
			if err != nil {
				continue
			}
			bookedByHour[start/60]++
		}
	}

	if summary.TotalSlots > 0 {
		occupied := summary.TotalSlots - summary.AvailableSlots
		summary.OccupancyRate = roundCurrency(float64(occupied) / float64(summary.TotalSlots))
	}

	summary.PeakHours = peakHours(bookedByHour, peakHourCount)
	return summary
}

// peakHours returns the top-N busiest hours, most-booked first, earlier hour
// first on a tie. Hours with no bookings are never reported.
func peakHours(bookedByHour map[int]int, n int) []string {
	type hourCount struct {
		hour  int
		count int
	}

	counts := make([]hourCount, 0, len(bookedByHour))
	for hour, count := range bookedByHour {
		counts = append(counts, hourCount{hour: hour, count: count})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].hour < counts[j].hour
	})

	if n > len(counts) {
		n = len(counts)
	}

	result := make([]string, 0, n)
	for _, hc := range counts[:n] {
		result = append(result, fmt.Sprintf("%02d:00", hc.hour))
	}
	return result
}
