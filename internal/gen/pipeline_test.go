package gen

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Seed:          42,
		Workers:       4,
		ReferenceDate: "2026-06-15",
		Rows: config.RowCounts{
			Cities: 6, Users: 120, Artists: 40, Venues: 40, Tours: 10, Events: 150,
		},
		Tiers: config.TierConfig{Weights: map[string]float64{
			"emerging": 0.40, "rising": 0.25, "established": 0.20, "headliner": 0.11, "superstar": 0.04,
		}},
		Season:  config.SeasonConfig{MonthWeights: []float64{1, 1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 1}},
		Prices:  config.PriceBands{BudgetMax: 30, StandardMax: 75, PremiumMax: 150},
		Ratings: config.RatingConfig{PerEventBase: 4, MaxPerEvent: 30},
		Sales:   config.SalesConfig{AvgTicketsPerSale: 2.5},
	}
}

func genDataset(t *testing.T, cfg *config.Config) *model.Dataset {
	t.Helper()
	p, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ds, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return ds
}

func TestPipelineProducesValidDataset(t *testing.T) {
	cfg := testConfig()
	ds := genDataset(t, cfg)

	if len(ds.Cities) != cfg.Rows.Cities || len(ds.Users) != cfg.Rows.Users ||
		len(ds.Artists) != cfg.Rows.Artists || len(ds.Venues) != cfg.Rows.Venues ||
		len(ds.Tours) != cfg.Rows.Tours || len(ds.Events) != cfg.Rows.Events {
		t.Fatalf("row counts off: %d cities, %d users, %d artists, %d venues, %d tours, %d events",
			len(ds.Cities), len(ds.Users), len(ds.Artists), len(ds.Venues), len(ds.Tours), len(ds.Events))
	}
	if len(ds.TicketSales) == 0 || len(ds.EventRatings) == 0 ||
		len(ds.ArtistRatings) == 0 || len(ds.VenueReviews) == 0 || len(ds.Follows) == 0 {
		t.Fatalf("empty child tables: %d sales, %d event ratings, %d artist ratings, %d reviews, %d follows",
			len(ds.TicketSales), len(ds.EventRatings), len(ds.ArtistRatings), len(ds.VenueReviews), len(ds.Follows))
	}

	if err := Validate(cfg, ds); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestPipelineReproducible(t *testing.T) {
	cfg := testConfig()
	a := genDataset(t, cfg)
	b := genDataset(t, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed produced different datasets")
	}
}

func TestPipelineSeedChangesOutput(t *testing.T) {
	a := genDataset(t, testConfig())

	cfg := testConfig()
	cfg.Seed = 43
	b := genDataset(t, cfg)

	if reflect.DeepEqual(a.Events, b.Events) {
		t.Fatalf("different seeds produced identical events")
	}
}

func TestPipelineWorkerCountInvariant(t *testing.T) {
	serial := testConfig()
	serial.Workers = 1
	parallel := testConfig()
	parallel.Workers = 8

	a := genDataset(t, serial)
	b := genDataset(t, parallel)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("worker count changed the output")
	}
}

func TestPipelineEmptyChildTargets(t *testing.T) {
	cfg := testConfig()
	cfg.Rows.Tours = 0
	cfg.Rows.Events = 0

	ds := genDataset(t, cfg)
	if len(ds.Tours) != 0 || len(ds.Events) != 0 {
		t.Fatalf("expected no tours or events, got %d / %d", len(ds.Tours), len(ds.Events))
	}
	if len(ds.TicketSales) != 0 || len(ds.EventRatings) != 0 {
		t.Fatalf("child rows without parents: %d sales, %d ratings", len(ds.TicketSales), len(ds.EventRatings))
	}
	if err := Validate(cfg, ds); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Workers = 0
	if _, err := New(cfg, zerolog.Nop()); err == nil {
		t.Fatalf("expected config error")
	}
}
