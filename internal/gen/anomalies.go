package gen

import (
	"fmt"
	"strings"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// Opt-in data quality anomalies for exercising downstream cleaning
// pipelines. Every injected row keeps referential integrity and date
// ordering intact; anomalies only add duplicates, suspicious rating
// bursts, and inconsistent display names.

func applyAnomalies(cfg *config.Config, src *rng.Source, ds *model.Dataset) {
	if !cfg.Anomalies.Enabled {
		return
	}
	injectDuplicateRatings(cfg, src, ds)
	injectBotRatings(cfg, src, ds)
	injectNameVariations(cfg, src, ds)
}

// injectDuplicateRatings re-submits a fraction of event ratings under
// fresh ids, same user and event.
func injectDuplicateRatings(cfg *config.Config, src *rng.Source, ds *model.Dataset) {
	r := src.Stream("anomalies_duplicates", 0)
	count := int(float64(len(ds.EventRatings)) * cfg.Anomalies.DuplicateRatingsPct)
	next := len(ds.EventRatings) + 1

	for _, dup := range rng.Sample(r, ds.EventRatings, count) {
		dup.ID = fmt.Sprintf("RAT_%06d", next)
		next++
		ds.EventRatings = append(ds.EventRatings, dup)
	}
}

// injectBotRatings adds same-day extreme-score bursts against a fraction
// of completed events. Bot raters are sampled from real users so the
// user foreign key still resolves.
func injectBotRatings(cfg *config.Config, src *rng.Source, ds *model.Dataset) {
	r := src.Stream("anomalies_bots", 0)
	if len(ds.Users) == 0 {
		return
	}

	var completed []model.Event
	for _, e := range ds.Events {
		if e.Status == model.StatusCompleted {
			completed = append(completed, e)
		}
	}
	attacked := rng.Sample(r, completed, int(float64(len(ds.Events))*cfg.Anomalies.BotAttackPct))
	next := len(ds.EventRatings) + 1

	for _, event := range attacked {
		burst := rng.Between(r, 20, 50)
		for i := 0; i < burst; i++ {
			score := 5.0
			if rng.Chance(r, 0.8) {
				score = 1.0
			}
			ds.EventRatings = append(ds.EventRatings, model.EventRating{
				ID:                 fmt.Sprintf("RAT_%06d", next),
				EventID:            event.ID,
				UserID:             rng.Pick(r, ds.Users).ID,
				Score:              score,
				Date:               event.Date.AddDate(0, 0, 1),
				DaysAfterEvent:     1,
				VerifiedAttendance: false,
				Reported:           rng.Chance(r, 0.3),
				Aspects: model.EventAspects{
					SoundQuality:        score,
					VenueExperience:     score,
					PerformanceEnergy:   score,
					SetlistSatisfaction: score,
					CrowdVibe:           score,
					ValueForMoney:       score,
				},
			})
			next++
		}
	}
}

// injectNameVariations rewrites some event display names with
// inconsistent renderings of the artist's name.
func injectNameVariations(cfg *config.Config, src *rng.Source, ds *model.Dataset) {
	r := src.Stream("anomalies_names", 0)

	varied := make(map[string]bool)
	for _, a := range ds.Artists {
		if rng.Chance(r, cfg.Anomalies.NameVariationPct) {
			varied[a.ID] = true
		}
	}
	artistsByID := make(map[string]model.Artist, len(ds.Artists))
	for _, a := range ds.Artists {
		artistsByID[a.ID] = a
	}

	for i, e := range ds.Events {
		if !varied[e.ArtistID] || !rng.Chance(r, 0.1) {
			continue
		}
		name := artistsByID[e.ArtistID].Name
		switch r.IntN(4) {
		case 0:
			name = strings.ToUpper(name)
		case 1:
			name = strings.ToLower(name)
		case 2:
			name = strings.TrimPrefix(name, "The ")
		default:
			name = strings.ReplaceAll(name, " and ", " & ")
		}
		ds.Events[i].Name = name + " at " + strings.TrimPrefix(e.Name, artistsByID[e.ArtistID].Name+" at ")
	}
}
