package gen

import (
	"errors"
	"testing"
	"time"

	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

func TestGenEventsPairingMostlyInBand(t *testing.T) {
	cfg := testConfig()
	cfg.Rows.Events = 600
	ds := genDataset(t, cfg)

	artists := make(map[string]model.Artist)
	for _, a := range ds.Artists {
		artists[a.ID] = a
	}
	venues := make(map[string]model.Venue)
	for _, v := range ds.Venues {
		venues[v.ID] = v
	}

	offBand := 0
	for _, e := range ds.Events {
		capTier := model.CapacityTierOf(venues[e.VenueID].Capacity)
		inBand := false
		for _, preferred := range preferredCapacityTiers[artists[e.ArtistID].Tier] {
			if capTier == preferred {
				inBand = true
				break
			}
		}
		if !inBand {
			offBand++
		}
	}

	// The escape mass is 5%; anything near that is fine, a third is not.
	// It must stay strictly positive: off-band bookings are rare, never
	// forbidden.
	if offBand == 0 {
		t.Fatalf("no events landed off their preferred capacity band in %d draws", len(ds.Events))
	}
	if frac := float64(offBand) / float64(len(ds.Events)); frac > 0.15 {
		t.Fatalf("%.0f%% of events are off their preferred capacity band", frac*100)
	}
}

func TestGenEventsNoVenueForTier(t *testing.T) {
	ref := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	cfg := testConfig()
	src := rng.New(cfg.Seed)

	artists := []model.Artist{{ID: "ART_0001", Name: "Night Shift", Tier: model.TierSuperstar}}
	venues := []model.Venue{{ID: "VEN_0001", Name: "The Basement", Type: model.VenueClub, Capacity: 300}}

	_, err := genEvents(cfg, src, ref, artists, venues, nil)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cerr.Field != "rows.venues" {
		t.Fatalf("error field = %q, want rows.venues", cerr.Field)
	}
}

func TestGenEventsLifecycle(t *testing.T) {
	cfg := testConfig()
	ds := genDataset(t, cfg)
	ref, err := cfg.Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}

	statuses := map[model.EventStatus]int{}
	for _, e := range ds.Events {
		statuses[e.Status]++

		switch e.Status {
		case model.StatusScheduled:
			if e.Date.Before(ref) {
				t.Fatalf("event %s scheduled but dated %s, before %s", e.ID, e.Date, ref)
			}
			if e.Attendance != nil {
				t.Fatalf("event %s scheduled with attendance", e.ID)
			}
		case model.StatusCompleted:
			if !e.Date.Before(ref) {
				t.Fatalf("event %s completed but dated %s, not before %s", e.ID, e.Date, ref)
			}
			if e.Attendance == nil {
				t.Fatalf("event %s completed without attendance", e.ID)
			}
		case model.StatusCancelled:
			if e.CancellationReason == "" {
				t.Fatalf("event %s cancelled without a reason", e.ID)
			}
		}

		if !e.AnnouncedDate.Before(e.Date) {
			t.Fatalf("event %s announced %s, not before event date %s", e.ID, e.AnnouncedDate, e.Date)
		}
		if e.OnSaleDate.Before(e.AnnouncedDate) {
			t.Fatalf("event %s on sale %s, before announcement %s", e.ID, e.OnSaleDate, e.AnnouncedDate)
		}
	}

	if statuses[model.StatusCompleted] == 0 || statuses[model.StatusScheduled] == 0 {
		t.Fatalf("lifecycle mix missing states: %v", statuses)
	}
}

func TestGenEventsWeatherOnlyOutdoor(t *testing.T) {
	ds := genDataset(t, testConfig())
	venues := make(map[string]model.Venue)
	for _, v := range ds.Venues {
		venues[v.ID] = v
	}
	for _, e := range ds.Events {
		outdoor := venues[e.VenueID].Type == model.VenueOutdoor
		if outdoor && e.Weather == "" {
			t.Fatalf("outdoor event %s has no weather", e.ID)
		}
		if !outdoor && e.Weather != "" {
			t.Fatalf("indoor event %s has weather %q", e.ID, e.Weather)
		}
	}
}

func TestGenToursNoEligibleArtists(t *testing.T) {
	cfg := testConfig()
	src := rng.New(cfg.Seed)
	ref := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	artists := []model.Artist{{ID: "ART_0001", Tier: model.TierEmerging}}
	_, err := genTours(cfg, src, ref, artists)
	var cerr *ConfigError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cerr.Field != "rows.tours" {
		t.Fatalf("error field = %q, want rows.tours", cerr.Field)
	}
}

func TestGenToursSpan(t *testing.T) {
	ds := genDataset(t, testConfig())
	for _, tour := range ds.Tours {
		if tour.EndDate.Before(tour.StartDate) {
			t.Fatalf("tour %s ends %s before it starts %s", tour.ID, tour.EndDate, tour.StartDate)
		}
		span := int(tour.EndDate.Sub(tour.StartDate).Hours() / 24)
		if span < 60 || span > 120 {
			t.Fatalf("tour %s spans %d days", tour.ID, span)
		}
	}
}
