package gen

import (
	"testing"
)

func TestAnomaliesDisabledByDefault(t *testing.T) {
	clean := genDataset(t, testConfig())

	withFlags := testConfig()
	withFlags.Anomalies.DuplicateRatingsPct = 0.5
	withFlags.Anomalies.BotAttackPct = 0.2
	ds := genDataset(t, withFlags)

	if len(ds.EventRatings) != len(clean.EventRatings) {
		t.Fatalf("anomaly percentages applied while disabled: %d vs %d ratings",
			len(ds.EventRatings), len(clean.EventRatings))
	}
}

func TestAnomaliesPreserveIntegrity(t *testing.T) {
	cfg := testConfig()
	cfg.Anomalies.Enabled = true
	cfg.Anomalies.DuplicateRatingsPct = 0.2
	cfg.Anomalies.BotAttackPct = 0.1
	cfg.Anomalies.NameVariationPct = 0.3

	ds := genDataset(t, cfg)
	if err := Validate(cfg, ds); err != nil {
		t.Fatalf("anomalous dataset failed validation: %v", err)
	}
}

func TestDuplicateRatingsInjected(t *testing.T) {
	clean := genDataset(t, testConfig())

	cfg := testConfig()
	cfg.Anomalies.Enabled = true
	cfg.Anomalies.DuplicateRatingsPct = 0.25
	cfg.Anomalies.BotAttackPct = 0
	cfg.Anomalies.NameVariationPct = 0
	ds := genDataset(t, cfg)

	if len(ds.EventRatings) <= len(clean.EventRatings) {
		t.Fatalf("no duplicate ratings injected: %d vs %d", len(ds.EventRatings), len(clean.EventRatings))
	}

	type key struct{ event, user, date string }
	seen := map[key]int{}
	for _, rt := range ds.EventRatings {
		seen[key{rt.EventID, rt.UserID, rt.Date.String()}]++
	}
	dups := 0
	for _, n := range seen {
		if n > 1 {
			dups++
		}
	}
	if dups == 0 {
		t.Fatalf("expected duplicate event/user rating pairs")
	}
}

func TestBotRatingsExtreme(t *testing.T) {
	cfg := testConfig()
	cfg.Anomalies.Enabled = true
	cfg.Anomalies.DuplicateRatingsPct = 0
	cfg.Anomalies.BotAttackPct = 0.2
	cfg.Anomalies.NameVariationPct = 0
	ds := genDataset(t, cfg)

	clean := genDataset(t, testConfig())
	injected := ds.EventRatings[len(clean.EventRatings):]
	if len(injected) == 0 {
		t.Fatalf("no bot ratings injected")
	}
	for _, rt := range injected {
		if rt.Score != 1.0 && rt.Score != 5.0 {
			t.Fatalf("bot rating %s has moderate score %v", rt.ID, rt.Score)
		}
		if rt.DaysAfterEvent != 1 {
			t.Fatalf("bot rating %s not part of a next-day burst", rt.ID)
		}
	}
}
