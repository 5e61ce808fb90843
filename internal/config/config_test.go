package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("default seed = %d, want 42", cfg.Seed)
	}
	if cfg.Workers != 4 {
		t.Fatalf("default workers = %d, want 4", cfg.Workers)
	}
	if cfg.Rows.Users != 1000 || cfg.Rows.Events != 500 {
		t.Fatalf("unexpected default rows: %+v", cfg.Rows)
	}
	if len(cfg.Season.MonthWeights) != 12 {
		t.Fatalf("expected 12 month weights, got %d", len(cfg.Season.MonthWeights))
	}
	if cfg.Prices.BudgetMax != 30 || cfg.Prices.StandardMax != 75 || cfg.Prices.PremiumMax != 150 {
		t.Fatalf("unexpected default prices: %+v", cfg.Prices)
	}
	if cfg.Anomalies.Enabled {
		t.Fatalf("anomalies enabled by default")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "soundcheck.yaml")
	body := `
seed: 99
out_dir: /tmp/out
rows:
  users: 10
  events: 20
prices:
  budget_max: 25
anomalies:
  enabled: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("seed = %d, want 99", cfg.Seed)
	}
	if cfg.OutDir != "/tmp/out" {
		t.Fatalf("out_dir = %q", cfg.OutDir)
	}
	if cfg.Rows.Users != 10 || cfg.Rows.Events != 20 {
		t.Fatalf("rows not overridden: %+v", cfg.Rows)
	}
	if cfg.Prices.BudgetMax != 25 || cfg.Prices.StandardMax != 75 {
		t.Fatalf("partial price override failed: %+v", cfg.Prices)
	}
	if !cfg.Anomalies.Enabled {
		t.Fatalf("anomalies.enabled not set")
	}
	// Untouched sections keep their defaults.
	if cfg.Ratings.PerEventBase != 6 {
		t.Fatalf("ratings default lost: %+v", cfg.Ratings)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SOUNDCHECK_SEED", "7")
	t.Setenv("SOUNDCHECK_OUT_DIR", "elsewhere")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("env seed override failed: %d", cfg.Seed)
	}
	if cfg.OutDir != "elsewhere" {
		t.Fatalf("env out_dir override failed: %q", cfg.OutDir)
	}
}

func TestReference(t *testing.T) {
	cfg := &Config{ReferenceDate: "2026-06-15"}
	got, err := cfg.Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	want := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("reference = %v, want %v", got, want)
	}

	cfg.ReferenceDate = "junk"
	if _, err := cfg.Reference(); err == nil {
		t.Fatalf("expected parse error")
	}

	cfg.ReferenceDate = ""
	got, err = cfg.Reference()
	if err != nil {
		t.Fatalf("Reference: %v", err)
	}
	if got.Hour() != 0 || got.Location() != time.UTC {
		t.Fatalf("unpinned reference not UTC midnight: %v", got)
	}
}
