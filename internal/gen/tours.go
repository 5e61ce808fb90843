package gen

import (
	"fmt"
	"time"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genTours produces tours for tour-eligible artists (rising and above).
// The end date is always start plus a sampled duration, so start <= end
// holds by construction.
func genTours(cfg *config.Config, src *rng.Source, ref time.Time, artists []model.Artist) ([]model.Tour, error) {
	if cfg.Rows.Tours == 0 {
		return nil, nil
	}

	var eligible []model.Artist
	for _, a := range artists {
		if tierProfiles[a.Tier].tours {
			eligible = append(eligible, a)
		}
	}
	if len(eligible) == 0 {
		return nil, &ConfigError{
			Field:  "rows.tours",
			Reason: "no tour-eligible artists; raise rows.artists or the upper tier weights",
		}
	}

	tours := make([]model.Tour, 0, cfg.Rows.Tours)
	for i := 0; i < cfg.Rows.Tours; i++ {
		r := src.Stream("tours", uint64(i))
		artist := eligible[i%len(eligible)]
		profile := tierProfiles[artist.Tier]

		month := rng.WeightedIndex(r, cfg.Season.MonthWeights) + 1
		year := ref.Year() - rng.Between(r, 0, 2)
		start := time.Date(year, time.Month(month), rng.Between(r, 1, 28), 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 0, rng.Between(r, 60, 120))

		tours = append(tours, model.Tour{
			ID:              fmt.Sprintf("TOUR_%03d", i+1),
			Name:            tourName(r, artist.Name, start.Year()),
			ArtistID:        artist.ID,
			StartDate:       start,
			EndDate:         end,
			NumShows:        rng.Between(r, profile.showsLo, profile.showsHi),
			Type:            rng.Pick(r, tourTypes),
			Legs:            rng.Between(r, 1, 3),
			ProductionLevel: artist.Tier,
		})
	}
	return tours, nil
}
