package gen

import (
	"math/rand/v2"
	"time"

	"soundcheck/internal/rng"
)

// dateBetween returns a uniform date in [lo, hi]. Inverted ranges
// collapse to lo.
func dateBetween(r *rand.Rand, lo, hi time.Time) time.Time {
	days := int(hi.Sub(lo).Hours() / 24)
	if days <= 0 {
		return lo
	}
	return lo.AddDate(0, 0, r.IntN(days+1))
}

// seasonalDate draws a date in [lo, hi] with the month chosen from the
// seasonal weighting curve and the weekday skewed toward weekends.
func seasonalDate(r *rand.Rand, monthWeights []float64, lo, hi time.Time) time.Time {
	month := time.Month(rng.WeightedIndex(r, monthWeights) + 1)

	// Years in the window that contain the chosen month.
	var candidates []int
	for year := lo.Year(); year <= hi.Year(); year++ {
		day := time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
		if !day.Before(lo) && !day.After(hi) {
			candidates = append(candidates, year)
		}
	}
	if len(candidates) == 0 {
		return dateBetween(r, lo, hi)
	}

	year := candidates[r.IntN(len(candidates))]
	date := time.Date(year, month, rng.Between(r, 1, 28), 0, 0, 0, 0, time.UTC)

	// Nudge to a weighted day of week, Monday first.
	target := rng.WeightedIndex(r, dayOfWeekWeights)
	current := (int(date.Weekday()) + 6) % 7
	date = date.AddDate(0, 0, (target-current+7)%7)
	if date.After(hi) {
		date = date.AddDate(0, 0, -7)
	}
	if date.Before(lo) {
		return dateBetween(r, lo, hi)
	}
	return date
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Friday || t.Weekday() == time.Saturday
}
