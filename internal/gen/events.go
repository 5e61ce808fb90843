package gen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/shopspring/decimal"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// tourAttachChance is how often a touring artist's event is booked as a
// tour stop rather than a standalone show.
const tourAttachChance = 0.6

// genEvents assigns artist, venue, optional tour, date, pricing, and
// status per event. The artist/venue pairing is monotone with a small
// escape mass; a pairing band with no venues at all is a configuration
// error, reported before any event is produced.
func genEvents(cfg *config.Config, src *rng.Source, ref time.Time, artists []model.Artist, venues []model.Venue, tours []model.Tour) ([]model.Event, error) {
	if cfg.Rows.Events == 0 {
		return nil, nil
	}

	byCapTier := make(map[model.CapacityTier][]model.Venue)
	for _, v := range venues {
		t := model.CapacityTierOf(v.Capacity)
		byCapTier[t] = append(byCapTier[t], v)
	}

	// Fail fast: every tier present among artists needs at least one
	// venue inside its preferred capacity band.
	preferred := make(map[model.PopularityTier][]model.Venue)
	for _, tier := range model.Tiers {
		for _, capTier := range preferredCapacityTiers[tier] {
			preferred[tier] = append(preferred[tier], byCapTier[capTier]...)
		}
	}
	for _, a := range artists {
		if len(preferred[a.Tier]) == 0 {
			return nil, &ConfigError{
				Field:  "rows.venues",
				Reason: fmt.Sprintf("no venue in the capacity band required for %s artists", a.Tier),
			}
		}
	}

	artistWeights := make([]float64, len(artists))
	for i, a := range artists {
		artistWeights[i] = float64(a.Tier.Rank() + 1)
	}

	toursByArtist := make(map[string][]model.Tour)
	for _, t := range tours {
		toursByArtist[t.ArtistID] = append(toursByArtist[t.ArtistID], t)
	}

	var openers []model.Artist
	for _, a := range artists {
		if a.Tier == model.TierEmerging || a.Tier == model.TierRising {
			openers = append(openers, a)
		}
	}

	windowLo := ref.AddDate(-2, 0, 0)
	windowHi := ref.AddDate(1, 0, 0)
	booked := make(map[string]bool) // artistID+date, avoids double booking

	events := make([]model.Event, 0, cfg.Rows.Events)
	for i := 0; i < cfg.Rows.Events; i++ {
		r := src.Stream("events", uint64(i))

		artist := artists[rng.WeightedIndex(r, artistWeights)]

		var venue model.Venue
		if rng.Chance(r, offBandChance) {
			venue = rng.Pick(r, venues)
		} else {
			venue = rng.Pick(r, preferred[artist.Tier])
		}

		tourID := ""
		var date time.Time
		artistTours := toursByArtist[artist.ID]
		if len(artistTours) > 0 && rng.Chance(r, tourAttachChance) {
			tour := rng.Pick(r, artistTours)
			tourID = tour.ID
			date = dateBetween(r, tour.StartDate, tour.EndDate)
			for attempt := 0; attempt < 3 && booked[artist.ID+date.Format(model.DateLayout)]; attempt++ {
				date = dateBetween(r, tour.StartDate, tour.EndDate)
			}
		} else {
			date = seasonalDate(r, cfg.Season.MonthWeights, windowLo, windowHi)
			for attempt := 0; attempt < 3 && booked[artist.ID+date.Format(model.DateLayout)]; attempt++ {
				date = seasonalDate(r, cfg.Season.MonthWeights, windowLo, windowHi)
			}
		}
		booked[artist.ID+date.Format(model.DateLayout)] = true

		price := basePrice(r, cfg.Prices, artist.Tier, venue, isWeekend(date))
		var vip *decimal.Decimal
		if rng.Chance(r, 0.7) {
			v := price.Mul(decimal.NewFromFloat(2.5)).Round(2)
			vip = &v
		}

		profile := tierProfiles[artist.Tier]
		announced := date.AddDate(0, 0, -rng.Between(r, profile.leadLo, profile.leadHi))
		onSale := announced.AddDate(0, 0, rng.Between(r, 1, 7))

		status, reason := eventStatus(r, date, ref)

		var attendance *int
		if status == model.StatusCompleted {
			fill := rng.BetweenF(r, profile.fillLo, profile.fillHi)
			if date.Weekday() == time.Thursday {
				fill = min(1.0, fill*1.1)
			}
			n := int(float64(venue.Capacity) * fill)
			if n < 1 {
				n = 1
			}
			attendance = &n
		}

		weather := ""
		if venue.Type == model.VenueOutdoor {
			weather = rng.Pick(r, weatherBySeason[seasonOf(int(date.Month()))])
		}

		var acts []string
		if (venue.Type == model.VenueArena || venue.Type == model.VenueStadium) && len(openers) > 0 {
			for _, opener := range rng.Sample(r, openers, rng.Between(r, 1, 2)) {
				acts = append(acts, opener.Name)
			}
		}

		events = append(events, model.Event{
			ID:                 fmt.Sprintf("EVT_%05d", i+1),
			Name:               artist.Name + " at " + venue.Name,
			ArtistID:           artist.ID,
			VenueID:            venue.ID,
			TourID:             tourID,
			Date:               date,
			DayOfWeek:          date.Weekday().String(),
			DoorsTime:          showTime(r, true),
			ShowTime:           showTime(r, false),
			AnnouncedDate:      announced,
			OnSaleDate:         onSale,
			BasePrice:          price,
			VIPPrice:           vip,
			Vendor:             rng.Pick(r, ticketVendors),
			AgeRestriction:     rng.Pick(r, ageRestrictions),
			OpeningActs:        acts,
			Status:             status,
			CancellationReason: reason,
			Attendance:         attendance,
			Weather:            weather,
			SpecialEvent:       rng.Chance(r, 0.05),
		})
	}
	return events, nil
}

// eventStatus samples the lifecycle state. Past events mostly completed,
// future events scheduled, with a small cancellation mass either way.
func eventStatus(r *rand.Rand, date, ref time.Time) (model.EventStatus, string) {
	cancelChance := 0.02
	past := date.Before(ref)
	if past {
		cancelChance = 0.05
	}
	if rng.Chance(r, cancelChance) {
		return model.StatusCancelled, rng.Pick(r, cancellationReasons)
	}
	if past {
		return model.StatusCompleted, ""
	}
	return model.StatusScheduled, ""
}

func showTime(r *rand.Rand, doors bool) string {
	hours := []int{19, 20, 21}
	if doors {
		hours = []int{18, 19, 20}
	}
	hour := hours[rng.WeightedIndex(r, []float64{0.2, 0.6, 0.2})]
	minute := rng.Pick(r, []int{0, 30})
	return fmt.Sprintf("%02d:%02d:00", hour, minute)
}
