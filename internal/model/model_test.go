package model

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTierRank(t *testing.T) {
	for i, tier := range Tiers {
		if tier.Rank() != i {
			t.Fatalf("%s ranks %d, want %d", tier, tier.Rank(), i)
		}
	}
	if PopularityTier("legendary").Rank() != -1 {
		t.Fatalf("unknown tier should rank -1")
	}
}

func TestRecordsMatchHeaders(t *testing.T) {
	vip := decimal.NewFromInt(120)
	att := 850
	tests := []struct {
		name   string
		header []string
		record []string
	}{
		{"city", CityHeader, City{}.Record()},
		{"user", UserHeader, User{}.Record()},
		{"artist", ArtistHeader, Artist{}.Record()},
		{"venue", VenueHeader, Venue{}.Record()},
		{"tour", TourHeader, Tour{}.Record()},
		{"event", EventHeader, Event{VIPPrice: &vip, Attendance: &att}.Record()},
		{"event without optionals", EventHeader, Event{}.Record()},
		{"ticket sale", TicketSaleHeader, TicketSale{}.Record()},
		{"event rating", EventRatingHeader, EventRating{}.Record()},
		{"artist rating", ArtistRatingHeader, ArtistRating{}.Record()},
		{"venue review", VenueReviewHeader, VenueReview{}.Record()},
		{"follow", FollowHeader, UserArtistFollow{}.Record()},
	}
	for _, tc := range tests {
		if len(tc.record) != len(tc.header) {
			t.Fatalf("%s: record has %d fields, header has %d", tc.name, len(tc.record), len(tc.header))
		}
	}
}

func TestEventRecordOptionals(t *testing.T) {
	rec := Event{}.Record()
	idx := func(col string) int {
		for i, name := range EventHeader {
			if name == col {
				return i
			}
		}
		t.Fatalf("no column %s", col)
		return -1
	}
	if rec[idx("vip_ticket_price")] != "" {
		t.Fatalf("nil vip price rendered %q", rec[idx("vip_ticket_price")])
	}
	if rec[idx("estimated_attendance")] != "" {
		t.Fatalf("nil attendance rendered %q", rec[idx("estimated_attendance")])
	}

	vip := decimal.NewFromFloat(112.5)
	att := 200
	rec = Event{VIPPrice: &vip, Attendance: &att}.Record()
	if rec[idx("vip_ticket_price")] != "112.50" {
		t.Fatalf("vip price rendered %q", rec[idx("vip_ticket_price")])
	}
	if rec[idx("estimated_attendance")] != "200" {
		t.Fatalf("attendance rendered %q", rec[idx("estimated_attendance")])
	}
}

func TestAspectScoresCoverEveryField(t *testing.T) {
	if got := len(EventAspects{}.Scores()); got != 6 {
		t.Fatalf("event aspects expose %d scores, want 6", got)
	}
	if got := len(ArtistAspects{}.Scores()); got != 5 {
		t.Fatalf("artist aspects expose %d scores, want 5", got)
	}
	if got := len(VenueAspects{}.Scores()); got != 8 {
		t.Fatalf("venue aspects expose %d scores, want 8", got)
	}
}
