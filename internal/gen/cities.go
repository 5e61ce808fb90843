package gen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genCities emits the city reference rows. A zero row count takes the
// whole built-in market table.
func genCities(cfg *config.Config, src *rng.Source) []model.City {
	n := cfg.Rows.Cities
	if n == 0 {
		n = len(cityTable)
	}

	cities := make([]model.City, 0, n)
	for i := 0; i < n; i++ {
		r := src.Stream("cities", uint64(i))
		row := cityTable[i]
		tz, ok := stateTimezones[row.state]
		if !ok {
			tz = "America/New_York"
		}
		cities = append(cities, model.City{
			ID:             fmt.Sprintf("CITY_%03d", i+1),
			Name:           row.name,
			State:          row.state,
			Population:     row.population,
			SceneScore:     row.sceneScore,
			PrimaryGenres:  row.genres,
			AvgTicketPrice: decimal.NewFromFloat(row.avgTicket).Round(2),
			TotalVenues:    rng.Between(r, 20, 200),
			Timezone:       tz,
		})
	}
	return cities
}
