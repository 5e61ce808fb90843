package gen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genUsers produces platform users. Segments split 10/30/60 across
// power/regular/casual, and power users skew toward earlier join dates.
func genUsers(cfg *config.Config, src *rng.Source, ref time.Time, cities []model.City) []model.User {
	n := cfg.Rows.Users
	powerCount := n / 10
	regularCount := n * 3 / 10

	users := make([]model.User, 0, n)
	for i := 0; i < n; i++ {
		r := src.Stream("users", uint64(i))

		segment := model.SegmentCasual
		switch {
		case i < powerCount:
			segment = model.SegmentPower
		case i < powerCount+regularCount:
			segment = model.SegmentRegular
		}

		city := rng.Pick(r, cities)
		ageGroup := ageGroups[rng.WeightedIndex(r, ageGroupWeights)]

		numGenres := 3
		if segment != model.SegmentPower {
			numGenres = rng.Between(r, 1, 3)
		}

		var joinLo, joinHi time.Time
		switch segment {
		case model.SegmentPower:
			joinLo, joinHi = ref.AddDate(-5, 0, 0), ref.AddDate(-2, 0, 0)
		case model.SegmentRegular:
			joinLo, joinHi = ref.AddDate(-3, 0, 0), ref.AddDate(0, -6, 0)
		default:
			joinLo, joinHi = ref.AddDate(-2, 0, 0), ref
		}
		joinDate := dateBetween(r, joinLo, joinHi)

		verifiedChance := 0.2
		if city.SceneScore > 9 {
			verifiedChance = 0.5
		}

		name := username(r)
		users = append(users, model.User{
			ID:                  fmt.Sprintf("USR_%05d", i+1),
			Username:            name,
			Email:               email(r, name),
			Verified:            rng.Chance(r, verifiedChance),
			Segment:             segment,
			JoinDate:            joinDate,
			HomeCity:            city.Name,
			HomeState:           city.State,
			AgeGroup:            ageGroup,
			PreferredGenres:     genrePreferences(r, city.PrimaryGenres, ageGroup, numGenres),
			ProfileCompleteness: rng.Pick(r, []float64{0.25, 0.5, 0.75, 1.0}),
			EmailVerified:       rng.Chance(r, 0.7),
			PushNotifications:   rng.Chance(r, 0.4),
			LastActive:          dateBetween(r, joinDate, ref),
		})
	}
	return users
}

// genrePreferences blends home-city genres, age-group bias, and a little
// random discovery into a distinct preference list.
func genrePreferences(r *rand.Rand, cityGenres []string, ageGroup string, count int) []string {
	var pool []string
	seen := make(map[string]bool)
	add := func(genres []string) {
		for _, g := range genres {
			if !seen[g] {
				seen[g] = true
				pool = append(pool, g)
			}
		}
	}
	add(cityGenres)
	add(ageGroupBias[ageGroup])
	add(rng.Sample(r, primaryGenres, 2))

	return rng.Sample(r, pool, count)
}
