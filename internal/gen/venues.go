package gen

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genVenues produces venues whose capacity is always drawn from the range
// for their sampled type, so type/capacity coherence holds by construction.
// City assignment is weighted by population and scene score.
func genVenues(cfg *config.Config, src *rng.Source, cities []model.City) []model.Venue {
	cityWeights := make([]float64, len(cities))
	for i, c := range cities {
		cityWeights[i] = float64(c.Population) * c.SceneScore
	}

	venues := make([]model.Venue, 0, cfg.Rows.Venues)
	for i := 0; i < cfg.Rows.Venues; i++ {
		r := src.Stream("venues", uint64(i))

		city := cities[rng.WeightedIndex(r, cityWeights)]
		vtype := model.VenueTypes[rng.WeightedIndex(r, venueTypeWeights)]
		capRange := venueCapacity[vtype]
		capacity := rng.Between(r, capRange.lo, capRange.hi)

		standing := capacity
		if vtype == model.VenueClub || vtype == model.VenueTheater {
			standing = capacity + int(float64(capacity)*rng.BetweenF(r, 0.2, 0.5))
		}

		openedYear := rng.Between(r, 1970, 2023)
		if rng.Chance(r, 0.2) {
			openedYear = rng.Between(r, 1850, 1970)
		}

		name := venueName(r, string(vtype))
		website := ""
		if rng.Chance(r, 0.7) {
			clean := strings.ToLower(strings.NewReplacer(" ", "", "'", "").Replace(name))
			website = "www." + clean + ".com"
		}

		venues = append(venues, model.Venue{
			ID:               fmt.Sprintf("VEN_%04d", i+1),
			Name:             name,
			Address:          streetAddress(r),
			City:             city.Name,
			State:            city.State,
			Zip:              zipCode(r),
			Latitude:         rng.BetweenF(r, 25.5, 48.5),
			Longitude:        rng.BetweenF(r, -124.0, -67.0),
			Type:             vtype,
			Capacity:         capacity,
			StandingCapacity: standing,
			OpenedYear:       openedYear,
			Parking:          vtype == model.VenueStadium || rng.Chance(r, 0.6),
			Valet:            (vtype == model.VenueTheater || vtype == model.VenueArena) && rng.Chance(r, 0.3),
			Food:             rng.Chance(r, 0.7),
			FullBar:          vtype != model.VenueOutdoor,
			ADAAccessible:    rng.Chance(r, 0.85),
			BoxOffice:        vtype == model.VenueTheater || vtype == model.VenueArena || vtype == model.VenueStadium,
			TicketFee:        decimal.NewFromFloat(rng.BetweenF(r, 5, 25)).Round(2),
			Website:          website,
			Phone:            phoneNumber(r),
		})
	}
	return venues
}
