package gen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genArtists produces artists with tier-conditioned reach metrics. Tier
// ordering is preserved in expectation because each tier samples from its
// own non-inverted range; individual artists still vary within it.
func genArtists(cfg *config.Config, src *rng.Source, cities []model.City) []model.Artist {
	weights := tierWeightVector(cfg)

	artists := make([]model.Artist, 0, cfg.Rows.Artists)
	for i := 0; i < cfg.Rows.Artists; i++ {
		r := src.Stream("artists", uint64(i))

		tier := model.Tiers[rng.WeightedIndex(r, weights)]
		profile := tierProfiles[tier]

		origin := rng.Pick(r, cities)
		primary := rng.Pick(r, primaryGenres)
		secondary := primary
		if related, ok := relatedGenres[primary]; ok {
			secondary = rng.Pick(r, related)
		}

		// Booking range: tier bounds narrowed by noise, min below max
		// by construction.
		span := profile.bookingHi - profile.bookingLo
		bookingMin := profile.bookingLo + int(float64(span)*0.25*r.Float64())
		bookingMax := profile.bookingHi - int(float64(span)*0.25*r.Float64())
		if bookingMax <= bookingMin {
			bookingMax = bookingMin + 1
		}

		artists = append(artists, model.Artist{
			ID:               fmt.Sprintf("ART_%04d", i+1),
			Name:             artistName(r),
			FormedYear:       rng.Between(r, 1970, 2024),
			OriginCity:       origin.Name,
			OriginState:      origin.State,
			OriginCountry:    "USA",
			MonthlyListeners: profile.listenersLo + r.Int64N(profile.listenersHi-profile.listenersLo+1),
			SocialFollowers:  profile.followersLo + r.Int64N(profile.followersHi-profile.followersLo+1),
			GenrePrimary:     primary,
			GenreSecondary:   secondary,
			BookingPriceMin:  decimal.NewFromInt(int64(bookingMin)),
			BookingPriceMax:  decimal.NewFromInt(int64(bookingMax)),
			Tier:             tier,
			TourFrequency:    rng.Pick(r, tourFrequencies),
			HasLabel:         tier.Rank() >= model.TierEstablished.Rank(),
			VerifiedArtist:   tier.Rank() >= model.TierHeadliner.Rank(),
		})
	}
	return artists
}
