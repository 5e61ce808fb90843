package gen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// genEventRatings produces post-event sentiment for completed events.
// Rating volume scales with artist tier and venue size; scores center on
// a latent event quality factor so they correlate with the lineup rather
// than being pure noise. Fan-out mirrors genTicketSales: a stream per
// event index keeps parallel execution deterministic.
func genEventRatings(ctx context.Context, cfg *config.Config, src *rng.Source, events []model.Event, artists []model.Artist, venues []model.Venue, users []model.User) ([]model.EventRating, error) {
	artistsByID := make(map[string]model.Artist, len(artists))
	for _, a := range artists {
		artistsByID[a.ID] = a
	}
	venuesByID := make(map[string]model.Venue, len(venues))
	for _, v := range venues {
		venuesByID[v.ID] = v
	}

	results := make([][]model.EventRating, len(events))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for i, event := range events {
		if event.Status != model.StatusCompleted {
			continue
		}
		i, event := i, event
		g.Go(func() error {
			r := src.Stream("event_ratings", uint64(i))
			results[i] = eventRatings(r, cfg, event, artistsByID[event.ArtistID], venuesByID[event.VenueID], users)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var ratings []model.EventRating
	for _, batch := range results {
		for _, rt := range batch {
			rt.ID = fmt.Sprintf("RAT_%06d", len(ratings)+1)
			ratings = append(ratings, rt)
		}
	}
	return ratings, nil
}

func eventRatings(r *rand.Rand, cfg *config.Config, event model.Event, artist model.Artist, venue model.Venue, users []model.User) []model.EventRating {
	profile := tierProfiles[artist.Tier]

	expected := float64(cfg.Ratings.PerEventBase) * profile.ratingsMult
	switch {
	case venue.Capacity > 10000:
		expected *= 2
	case venue.Capacity > 1000:
		expected *= 1.5
	}
	count := int(rng.Gauss(r, expected, expected*0.3))
	if count < 1 {
		count = 1
	}
	if count > cfg.Ratings.MaxPerEvent {
		count = cfg.Ratings.MaxPerEvent
	}

	quality := eventQuality(r, event, artist, venue)
	raters := rng.Sample(r, users, count)

	ratings := make([]model.EventRating, 0, len(raters))
	for _, user := range raters {
		score := raterScore(r, quality, user)
		daysAfter := daysAfterEvent(r)

		title, text := "", ""
		helpful := 0
		if rng.Chance(r, 0.3) {
			title, text = reviewFor(r, score)
			helpful = rng.Between(r, 0, 20)
		}

		ratings = append(ratings, model.EventRating{
			EventID:            event.ID,
			UserID:             user.ID,
			Score:              score,
			Date:               event.Date.AddDate(0, 0, daysAfter),
			DaysAfterEvent:     daysAfter,
			ReviewTitle:        title,
			ReviewText:         text,
			VerifiedAttendance: rng.Chance(r, 0.7),
			HelpfulCount:       helpful,
			Reported:           rng.Chance(r, 0.01),
			Aspects:            eventAspects(r, score, venue),
		})
	}
	return ratings
}

// eventQuality is the latent quality factor: lineup tier, calendar, venue
// setting, and weather shift the center that individual raters score
// around. The center starts at the artist's tier base so bigger acts
// rate higher in expectation even after venue-scale penalties.
func eventQuality(r *rand.Rand, event model.Event, artist model.Artist, venue model.Venue) float64 {
	q := tierProfiles[artist.Tier].ratingBase

	switch event.Date.Weekday() {
	case time.Thursday:
		q += 0.3
	case time.Saturday:
		q -= 0.1
	}

	switch venue.Type {
	case model.VenueClub:
		q += 0.2
	case model.VenueTheater:
		q += 0.3
	case model.VenueArena:
		q -= 0.1
	case model.VenueStadium:
		q -= 0.3
	}

	if event.Weather != "" {
		adjustments := map[string]float64{
			"clear": 0.2, "mild": 0.1, "rain": -0.4, "snow": -0.5,
			"thunderstorm": -0.6, "hot": -0.2, "cold": -0.3,
		}
		q += adjustments[event.Weather]
	}

	if event.SpecialEvent {
		q += 0.4
	}

	q += rng.Gauss(r, 0, 0.2)
	if q < model.RatingMin {
		q = model.RatingMin
	}
	if q > model.RatingMax {
		q = model.RatingMax
	}
	return q
}

func raterScore(r *rand.Rand, quality float64, user model.User) float64 {
	score := quality
	switch user.Segment {
	case model.SegmentPower:
		score += rng.Gauss(r, -0.2, 0.3)
	case model.SegmentCasual:
		score += rng.Gauss(r, 0.1, 0.5)
	default:
		score += rng.Gauss(r, 0, 0.4)
	}
	if user.Verified {
		score -= 0.1
	}
	return rng.ClampScore(score, model.RatingMin, model.RatingMax)
}

// daysAfterEvent: most ratings land within the first week.
func daysAfterEvent(r *rand.Rand) int {
	switch u := r.Float64(); {
	case u < 0.6:
		return rng.Between(r, 1, 3)
	case u < 0.9:
		return rng.Between(r, 4, 7)
	default:
		return rng.Between(r, 8, 30)
	}
}

func eventAspects(r *rand.Rand, score float64, venue model.Venue) model.EventAspects {
	sound := map[model.VenueType]float64{
		model.VenueTheater: 0.5,
		model.VenueClub:    0.2,
		model.VenueArena:   -0.3,
		model.VenueStadium: -0.5,
	}[venue.Type]

	venueScore := score + rng.Gauss(r, 0, 0.4)
	if venue.Parking {
		venueScore += 0.2
	}
	if venue.ADAAccessible {
		venueScore += 0.1
	}

	clamp := func(v float64) float64 { return rng.ClampScore(v, model.RatingMin, model.RatingMax) }
	return model.EventAspects{
		SoundQuality:        clamp(score + sound + rng.Gauss(r, 0, 0.3)),
		VenueExperience:     clamp(venueScore),
		PerformanceEnergy:   clamp(score + rng.Gauss(r, 0.2, 0.3)),
		SetlistSatisfaction: clamp(score + rng.Gauss(r, 0, 0.5)),
		CrowdVibe:           clamp(score + rng.Gauss(r, 0, 0.4)),
		ValueForMoney:       clamp(score - 0.5 + rng.Gauss(r, 0, 0.5)),
	}
}

// genArtistRatings scores artists directly, volume and center keyed to
// tier.
func genArtistRatings(cfg *config.Config, src *rng.Source, ref time.Time, artists []model.Artist, users []model.User) []model.ArtistRating {
	if len(users) == 0 {
		return nil
	}
	windowLo := ref.AddDate(-2, 0, 0)

	var ratings []model.ArtistRating
	for i, artist := range artists {
		r := src.Stream("artist_ratings", uint64(i))
		profile := tierProfiles[artist.Tier]

		count := rng.Between(r, int(2*profile.ratingsMult), int(20*profile.ratingsMult))
		clamp := func(v float64) float64 { return rng.ClampScore(v, model.RatingMin, model.RatingMax) }

		for j := 0; j < count; j++ {
			user := rng.Pick(r, users)
			score := clamp(profile.ratingBase + rng.Gauss(r, 0, 0.5))
			ratings = append(ratings, model.ArtistRating{
				ID:       fmt.Sprintf("ARAT_%06d", len(ratings)+1),
				ArtistID: artist.ID,
				UserID:   user.ID,
				Date:     dateBetween(r, windowLo, ref),
				Score:    score,
				Aspects: model.ArtistAspects{
					LivePerformance: clamp(score + rng.Gauss(r, 0.1, 0.3)),
					StagePresence:   clamp(score + rng.Gauss(r, 0, 0.4)),
					SoundQuality:    clamp(score + rng.Gauss(r, 0, 0.3)),
					FanInteraction:  clamp(score + rng.Gauss(r, 0, 0.5)),
					SetlistVariety:  clamp(score + rng.Gauss(r, -0.2, 0.4)),
				},
			})
		}
	}
	return ratings
}

// genVenueReviews reviews venues independent of events; amenities shift
// the center and review volume follows venue scale.
func genVenueReviews(cfg *config.Config, src *rng.Source, ref time.Time, venues []model.Venue, users []model.User) []model.VenueReview {
	if len(users) == 0 {
		return nil
	}
	windowLo := ref.AddDate(-2, 0, 0)

	var reviews []model.VenueReview
	for i, venue := range venues {
		r := src.Stream("venue_reviews", uint64(i))

		var count int
		switch venue.Type {
		case model.VenueArena, model.VenueStadium:
			count = rng.Between(r, 30, 120)
		case model.VenueTheater, model.VenueOutdoor:
			count = rng.Between(r, 15, 60)
		default:
			count = rng.Between(r, 5, 30)
		}

		base := 3.5
		if venue.Parking {
			base += 0.2
		}
		if venue.Food {
			base += 0.1
		}
		if venue.ADAAccessible {
			base += 0.2
		}
		switch venue.Type {
		case model.VenueTheater:
			base += 0.3
		case model.VenueStadium:
			base -= 0.3
		}

		clamp := func(v float64) float64 { return rng.ClampScore(v, model.RatingMin, model.RatingMax) }
		for j := 0; j < count; j++ {
			user := rng.Pick(r, users)
			score := clamp(base + rng.Gauss(r, 0, 0.5))

			parking := score
			if !venue.Parking {
				parking = 2
			}
			reviews = append(reviews, model.VenueReview{
				ID:         fmt.Sprintf("VREV_%06d", len(reviews)+1),
				VenueID:    venue.ID,
				UserID:     user.ID,
				Date:       dateBetween(r, windowLo, ref),
				Score:      score,
				ReviewText: venueReviewText(r, score, string(venue.Type)),
				Aspects: model.VenueAspects{
					LocationConvenience: clamp(score + rng.Gauss(r, 0, 0.5)),
					SoundSystem:         clamp(score + rng.Gauss(r, 0, 0.4)),
					Sightlines:          clamp(score + rng.Gauss(r, 0, 0.4)),
					Cleanliness:         clamp(score + rng.Gauss(r, -0.2, 0.3)),
					StaffFriendliness:   clamp(score + rng.Gauss(r, 0, 0.5)),
					DrinkPrices:         clamp(score - 1 + rng.Gauss(r, 0, 0.5)),
					Parking:             clamp(parking + rng.Gauss(r, 0, 0.5)),
					Bathrooms:           clamp(score - 0.3 + rng.Gauss(r, 0, 0.4)),
				},
			})
		}
	}
	return reviews
}
