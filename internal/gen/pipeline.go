package gen

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// Pipeline runs the full generation sequence in dependency order.
// Everything is buffered in memory; nothing is written by the pipeline
// itself, so an aborted run leaves no partial state behind.
type Pipeline struct {
	cfg *config.Config
	src *rng.Source
	log zerolog.Logger
}

// New validates the configuration and prepares a pipeline.
func New(cfg *config.Config, log zerolog.Logger) (*Pipeline, error) {
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, src: rng.New(cfg.Seed), log: log}, nil
}

// Run generates the dataset. The returned dataset is complete and
// validated; any error means no usable output exists.
func (p *Pipeline) Run(ctx context.Context) (*model.Dataset, error) {
	ref, err := p.cfg.Reference()
	if err != nil {
		return nil, err
	}

	ds := &model.Dataset{}
	start := time.Now()

	stage := func(name string, n int, began time.Time) {
		p.log.Info().Str("stage", name).Int("rows", n).
			Dur("elapsed", time.Since(began)).Msg("stage complete")
	}

	t := time.Now()
	ds.Cities = genCities(p.cfg, p.src)
	stage("cities", len(ds.Cities), t)

	t = time.Now()
	ds.Users = genUsers(p.cfg, p.src, ref, ds.Cities)
	stage("users", len(ds.Users), t)

	t = time.Now()
	ds.Artists = genArtists(p.cfg, p.src, ds.Cities)
	stage("artists", len(ds.Artists), t)

	t = time.Now()
	ds.Venues = genVenues(p.cfg, p.src, ds.Cities)
	stage("venues", len(ds.Venues), t)

	t = time.Now()
	ds.Tours, err = genTours(p.cfg, p.src, ref, ds.Artists)
	if err != nil {
		return nil, err
	}
	stage("tours", len(ds.Tours), t)

	t = time.Now()
	ds.Events, err = genEvents(p.cfg, p.src, ref, ds.Artists, ds.Venues, ds.Tours)
	if err != nil {
		return nil, err
	}
	stage("events", len(ds.Events), t)

	t = time.Now()
	ds.TicketSales, err = genTicketSales(ctx, p.cfg, p.src, ds.Events, ds.Venues)
	if err != nil {
		return nil, err
	}
	stage("ticket_sales", len(ds.TicketSales), t)

	t = time.Now()
	ds.EventRatings, err = genEventRatings(ctx, p.cfg, p.src, ds.Events, ds.Artists, ds.Venues, ds.Users)
	if err != nil {
		return nil, err
	}
	stage("event_ratings", len(ds.EventRatings), t)

	t = time.Now()
	ds.ArtistRatings = genArtistRatings(p.cfg, p.src, ref, ds.Artists, ds.Users)
	stage("artist_ratings", len(ds.ArtistRatings), t)

	t = time.Now()
	ds.VenueReviews = genVenueReviews(p.cfg, p.src, ref, ds.Venues, ds.Users)
	stage("venue_reviews", len(ds.VenueReviews), t)

	t = time.Now()
	ds.Follows = genFollows(p.cfg, p.src, ref, ds.Users, ds.Artists)
	stage("user_artist_follows", len(ds.Follows), t)

	applyAnomalies(p.cfg, p.src, ds)

	p.log.Info().Dur("elapsed", time.Since(start)).Msg("generation complete")
	return ds, nil
}
