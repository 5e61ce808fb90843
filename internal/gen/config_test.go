package gen

import (
	"errors"
	"testing"

	"soundcheck/internal/config"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*config.Config)
		wantField string
	}{
		{"valid", func(c *config.Config) {}, ""},
		{"zero workers", func(c *config.Config) { c.Workers = 0 }, "workers"},
		{"bad reference date", func(c *config.Config) { c.ReferenceDate = "tomorrow" }, "reference_date"},
		{"negative rows", func(c *config.Config) { c.Rows.Users = -1 }, "rows.users"},
		{"too many cities", func(c *config.Config) { c.Rows.Cities = 1000 }, "rows.cities"},
		{"events without artists", func(c *config.Config) { c.Rows.Artists = 0; c.Rows.Tours = 0 }, "rows.artists"},
		{"events without venues", func(c *config.Config) { c.Rows.Venues = 0 }, "rows.venues"},
		{"events without users", func(c *config.Config) { c.Rows.Users = 0 }, "rows.users"},
		{"tours without artists", func(c *config.Config) {
			c.Rows.Events = 0
			c.Rows.Artists = 0
			c.Rows.Tours = 5
		}, "rows.artists"},
		{"unknown tier", func(c *config.Config) { c.Tiers.Weights["legendary"] = 0.5 }, "tiers.weights"},
		{"negative tier weight", func(c *config.Config) { c.Tiers.Weights["rising"] = -1 }, "tiers.weights"},
		{"all-zero tier weights", func(c *config.Config) {
			for k := range c.Tiers.Weights {
				c.Tiers.Weights[k] = 0
			}
		}, "tiers.weights"},
		{"wrong month weight count", func(c *config.Config) {
			c.Season.MonthWeights = []float64{1, 2, 3}
		}, "season.month_weights"},
		{"negative month weight", func(c *config.Config) {
			c.Season.MonthWeights[3] = -1
		}, "season.month_weights"},
		{"inverted price bands", func(c *config.Config) { c.Prices.StandardMax = 5 }, "prices"},
		{"zero ratings base", func(c *config.Config) { c.Ratings.PerEventBase = 0 }, "ratings.per_event_base"},
		{"max below base", func(c *config.Config) { c.Ratings.MaxPerEvent = 1 }, "ratings.max_per_event"},
		{"tickets per sale below one", func(c *config.Config) { c.Sales.AvgTicketsPerSale = 0.5 }, "sales.avg_tickets_per_sale"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			tc.mutate(cfg)

			err := ValidateConfig(cfg)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cerr.Field != tc.wantField {
				t.Fatalf("error field = %q, want %q (%v)", cerr.Field, tc.wantField, err)
			}
		})
	}
}

func TestTierWeightVector(t *testing.T) {
	cfg := testConfig()
	weights := tierWeightVector(cfg)
	if len(weights) != 5 {
		t.Fatalf("got %d weights, want 5", len(weights))
	}
	// Ascending tier order, independent of map iteration.
	want := []float64{0.40, 0.25, 0.20, 0.11, 0.04}
	for i, w := range want {
		if weights[i] != w {
			t.Fatalf("weights[%d] = %v, want %v", i, weights[i], w)
		}
	}
}
