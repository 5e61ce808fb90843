package gen

import (
	"fmt"
	"math/rand/v2"
	"time"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genFollows produces user-artist follow edges. Roughly 70% of a user's
// follows come from artists matching their preferred genres, weighted
// toward higher tiers; the rest is random discovery. Follow dates never
// precede the user's join date.
func genFollows(cfg *config.Config, src *rng.Source, ref time.Time, users []model.User, artists []model.Artist) []model.UserArtistFollow {
	if len(artists) == 0 {
		return nil
	}

	byGenre := make(map[string][]int)
	for i, a := range artists {
		byGenre[a.GenrePrimary] = append(byGenre[a.GenrePrimary], i)
		if a.GenreSecondary != a.GenrePrimary {
			byGenre[a.GenreSecondary] = append(byGenre[a.GenreSecondary], i)
		}
	}

	var follows []model.UserArtistFollow
	for i, user := range users {
		r := src.Stream("follows", uint64(i))

		var count int
		switch user.Segment {
		case model.SegmentPower:
			count = rng.Between(r, 20, 100)
		case model.SegmentRegular:
			count = rng.Between(r, 5, 20)
		default:
			count = rng.Between(r, 1, 5)
		}
		if count > len(artists) {
			count = len(artists)
		}

		// Genre-matched candidates, deduplicated in artist order.
		seen := make(map[int]bool)
		var matched []int
		for _, genre := range user.PreferredGenres {
			for _, idx := range byGenre[genre] {
				if !seen[idx] {
					seen[idx] = true
					matched = append(matched, idx)
				}
			}
		}

		chosen := make(map[int]bool)
		matchTarget := int(float64(count) * 0.7)
		for _, idx := range weightedSample(r, matched, artists, matchTarget) {
			chosen[idx] = true
		}
		for len(chosen) < count {
			idx := r.IntN(len(artists))
			chosen[idx] = true
		}

		// Emit in stable artist order, not map order.
		for idx := range artists {
			if !chosen[idx] {
				continue
			}
			follows = append(follows, model.UserArtistFollow{
				ID:            fmt.Sprintf("FOL_%06d", len(follows)+1),
				UserID:        user.ID,
				ArtistID:      artists[idx].ID,
				FollowDate:    dateBetween(r, user.JoinDate, ref),
				Notifications: rng.Chance(r, 0.3),
			})
		}
	}
	return follows
}

// weightedSample draws up to k distinct indices from candidates with
// probability proportional to artist tier rank.
func weightedSample(r *rand.Rand, candidates []int, artists []model.Artist, k int) []int {
	if k > len(candidates) {
		k = len(candidates)
	}
	remaining := append([]int(nil), candidates...)
	var out []int
	for len(out) < k && len(remaining) > 0 {
		weights := make([]float64, len(remaining))
		for i, idx := range remaining {
			weights[i] = float64(artists[idx].Tier.Rank() + 1)
		}
		pick := rng.WeightedIndex(r, weights)
		out = append(out, remaining[pick])
		remaining = append(remaining[:pick], remaining[pick+1:]...)
	}
	return out
}
