// Package config loads the generation run configuration from a YAML file
// with SOUNDCHECK_-prefixed environment overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the full configuration surface for one generation run.
type Config struct {
	Seed          int64         `mapstructure:"seed"`
	OutDir        string        `mapstructure:"out_dir"`
	Workers       int           `mapstructure:"workers"`
	ReferenceDate string        `mapstructure:"reference_date"`
	Log           LogConfig     `mapstructure:"log"`
	Rows          RowCounts     `mapstructure:"rows"`
	Tiers         TierConfig    `mapstructure:"tiers"`
	Season        SeasonConfig  `mapstructure:"season"`
	Prices        PriceBands    `mapstructure:"prices"`
	Ratings       RatingConfig  `mapstructure:"ratings"`
	Sales         SalesConfig   `mapstructure:"sales"`
	Anomalies     AnomalyConfig `mapstructure:"anomalies"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RowCounts are the target row counts per root entity. Child entity
// volumes (sales, ratings, follows) derive from their parents.
type RowCounts struct {
	Cities  int `mapstructure:"cities"`
	Users   int `mapstructure:"users"`
	Artists int `mapstructure:"artists"`
	Venues  int `mapstructure:"venues"`
	Tours   int `mapstructure:"tours"`
	Events  int `mapstructure:"events"`
}

// TierConfig holds the popularity tier categorical distribution, keyed
// by tier name in ascending tier order.
type TierConfig struct {
	Weights map[string]float64 `mapstructure:"weights"`
}

// SeasonConfig weights event and tour start months, January first.
type SeasonConfig struct {
	MonthWeights []float64 `mapstructure:"month_weights"`
}

// PriceBands are the documented ticket price tier thresholds.
// budget < BudgetMax <= standard < StandardMax <= premium < PremiumMax <= luxury.
type PriceBands struct {
	BudgetMax   float64 `mapstructure:"budget_max"`
	StandardMax float64 `mapstructure:"standard_max"`
	PremiumMax  float64 `mapstructure:"premium_max"`
}

type RatingConfig struct {
	PerEventBase int `mapstructure:"per_event_base"`
	MaxPerEvent  int `mapstructure:"max_per_event"`
}

type SalesConfig struct {
	AvgTicketsPerSale float64 `mapstructure:"avg_tickets_per_sale"`
}

// AnomalyConfig enables opt-in data quality issues for downstream
// pipeline testing. All anomalies preserve referential integrity.
type AnomalyConfig struct {
	Enabled             bool    `mapstructure:"enabled"`
	DuplicateRatingsPct float64 `mapstructure:"duplicate_ratings_pct"`
	BotAttackPct        float64 `mapstructure:"bot_attack_pct"`
	NameVariationPct    float64 `mapstructure:"name_variation_pct"`
}

// Load reads configuration from path (optional when defaults suffice),
// applying a local .env and SOUNDCHECK_* environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("SOUNDCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("seed", 42)
	v.SetDefault("out_dir", "data/raw")
	v.SetDefault("workers", 4)
	v.SetDefault("reference_date", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("rows.cities", 0)
	v.SetDefault("rows.users", 1000)
	v.SetDefault("rows.artists", 200)
	v.SetDefault("rows.venues", 50)
	v.SetDefault("rows.tours", 40)
	v.SetDefault("rows.events", 500)
	v.SetDefault("tiers.weights", map[string]float64{
		"emerging": 0.40, "rising": 0.25, "established": 0.20, "headliner": 0.11, "superstar": 0.04,
	})
	v.SetDefault("season.month_weights", []float64{1, 1, 2, 3, 4, 5, 5, 4, 3, 2, 1, 1})
	v.SetDefault("prices.budget_max", 30)
	v.SetDefault("prices.standard_max", 75)
	v.SetDefault("prices.premium_max", 150)
	v.SetDefault("ratings.per_event_base", 6)
	v.SetDefault("ratings.max_per_event", 40)
	v.SetDefault("sales.avg_tickets_per_sale", 2.5)
	v.SetDefault("anomalies.enabled", false)
	v.SetDefault("anomalies.duplicate_ratings_pct", 0.15)
	v.SetDefault("anomalies.bot_attack_pct", 0.01)
	v.SetDefault("anomalies.name_variation_pct", 0.05)
}

// Reference returns the pinned reference date, or today (UTC midnight)
// when none is configured. Pinning it makes runs reproducible across days.
func (c *Config) Reference() (time.Time, error) {
	if c.ReferenceDate == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.Parse("2006-01-02", c.ReferenceDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse reference_date: %w", err)
	}
	return t, nil
}
