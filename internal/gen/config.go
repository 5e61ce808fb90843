package gen

import (
	"fmt"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
)

// ValidateConfig rejects impossible or contradictory generation targets
// before any generation starts.
func ValidateConfig(cfg *config.Config) error {
	if cfg.Workers < 1 {
		return &ConfigError{Field: "workers", Reason: "must be at least 1"}
	}
	if _, err := cfg.Reference(); err != nil {
		return &ConfigError{Field: "reference_date", Reason: err.Error()}
	}

	rows := map[string]int{
		"rows.cities":  cfg.Rows.Cities,
		"rows.users":   cfg.Rows.Users,
		"rows.artists": cfg.Rows.Artists,
		"rows.venues":  cfg.Rows.Venues,
		"rows.tours":   cfg.Rows.Tours,
		"rows.events":  cfg.Rows.Events,
	}
	for field, n := range rows {
		if n < 0 {
			return &ConfigError{Field: field, Reason: "row count must not be negative"}
		}
	}
	if cfg.Rows.Cities > len(cityTable) {
		return &ConfigError{
			Field:  "rows.cities",
			Reason: fmt.Sprintf("at most %d cities are available", len(cityTable)),
		}
	}

	// Downstream dependencies: children with no possible parent.
	if cfg.Rows.Events > 0 {
		if cfg.Rows.Artists == 0 {
			return &ConfigError{Field: "rows.artists", Reason: "events require at least one artist"}
		}
		if cfg.Rows.Venues == 0 {
			return &ConfigError{Field: "rows.venues", Reason: "events require at least one venue"}
		}
		if cfg.Rows.Users == 0 {
			return &ConfigError{Field: "rows.users", Reason: "event ratings require at least one user"}
		}
	}
	if cfg.Rows.Tours > 0 && cfg.Rows.Artists == 0 {
		return &ConfigError{Field: "rows.artists", Reason: "tours require at least one artist"}
	}

	var totalWeight float64
	for name, w := range cfg.Tiers.Weights {
		if model.PopularityTier(name).Rank() < 0 {
			return &ConfigError{Field: "tiers.weights", Reason: fmt.Sprintf("unknown tier %q", name)}
		}
		if w < 0 {
			return &ConfigError{Field: "tiers.weights", Reason: "weights must not be negative"}
		}
		totalWeight += w
	}
	if cfg.Rows.Artists > 0 && totalWeight <= 0 {
		return &ConfigError{Field: "tiers.weights", Reason: "at least one positive tier weight is required"}
	}

	if len(cfg.Season.MonthWeights) != 12 {
		return &ConfigError{Field: "season.month_weights", Reason: "exactly 12 monthly weights are required"}
	}
	var seasonTotal float64
	for _, w := range cfg.Season.MonthWeights {
		if w < 0 {
			return &ConfigError{Field: "season.month_weights", Reason: "weights must not be negative"}
		}
		seasonTotal += w
	}
	if seasonTotal <= 0 {
		return &ConfigError{Field: "season.month_weights", Reason: "at least one positive month weight is required"}
	}

	p := cfg.Prices
	if p.BudgetMax <= 0 || p.StandardMax <= p.BudgetMax || p.PremiumMax <= p.StandardMax {
		return &ConfigError{Field: "prices", Reason: "bands must satisfy 0 < budget_max < standard_max < premium_max"}
	}

	if cfg.Ratings.PerEventBase < 1 {
		return &ConfigError{Field: "ratings.per_event_base", Reason: "must be at least 1"}
	}
	if cfg.Ratings.MaxPerEvent < cfg.Ratings.PerEventBase {
		return &ConfigError{Field: "ratings.max_per_event", Reason: "must be at least per_event_base"}
	}
	if cfg.Sales.AvgTicketsPerSale < 1 {
		return &ConfigError{Field: "sales.avg_tickets_per_sale", Reason: "must be at least 1"}
	}

	return nil
}

// tierWeightVector returns the configured tier weights in ascending tier
// order, so draws never depend on map iteration order.
func tierWeightVector(cfg *config.Config) []float64 {
	weights := make([]float64, len(model.Tiers))
	for i, tier := range model.Tiers {
		weights[i] = cfg.Tiers.Weights[string(tier)]
	}
	return weights
}
