package gen

import (
	"testing"

	"soundcheck/internal/model"
)

func TestGenCitiesFromTable(t *testing.T) {
	cfg := testConfig()
	cfg.Rows.Cities = 0 // zero means the whole table
	ds := genDataset(t, cfg)
	if len(ds.Cities) != len(cityTable) {
		t.Fatalf("got %d cities, want the full table of %d", len(ds.Cities), len(cityTable))
	}
	for i, c := range ds.Cities {
		if c.Name != cityTable[i].name || c.State != cityTable[i].state {
			t.Fatalf("city %d is %s/%s, want %s/%s", i, c.Name, c.State, cityTable[i].name, cityTable[i].state)
		}
		if c.Timezone == "" {
			t.Fatalf("city %s has no timezone", c.Name)
		}
	}
}

func TestGenUsersSegments(t *testing.T) {
	cfg := testConfig()
	ds := genDataset(t, cfg)

	counts := map[model.Segment]int{}
	for _, u := range ds.Users {
		counts[u.Segment]++
	}
	n := cfg.Rows.Users
	if counts[model.SegmentPower] != n/10 {
		t.Fatalf("power users = %d, want %d", counts[model.SegmentPower], n/10)
	}
	if counts[model.SegmentRegular] != n*3/10 {
		t.Fatalf("regular users = %d, want %d", counts[model.SegmentRegular], n*3/10)
	}

	ref, _ := cfg.Reference()
	for _, u := range ds.Users {
		if u.JoinDate.After(ref) {
			t.Fatalf("user %s joined in the future: %s", u.ID, u.JoinDate)
		}
		if u.LastActive.Before(u.JoinDate) {
			t.Fatalf("user %s active %s before joining %s", u.ID, u.LastActive, u.JoinDate)
		}
		if len(u.PreferredGenres) == 0 {
			t.Fatalf("user %s has no genre preferences", u.ID)
		}
	}
}

func TestGenArtistsTierMetrics(t *testing.T) {
	ds := genDataset(t, testConfig())
	for _, a := range ds.Artists {
		profile, ok := tierProfiles[a.Tier]
		if !ok {
			t.Fatalf("artist %s has unknown tier %q", a.ID, a.Tier)
		}
		if a.MonthlyListeners < profile.listenersLo || a.MonthlyListeners > profile.listenersHi {
			t.Fatalf("artist %s (%s): %d listeners outside [%d, %d]",
				a.ID, a.Tier, a.MonthlyListeners, profile.listenersLo, profile.listenersHi)
		}
		if a.SocialFollowers < profile.followersLo || a.SocialFollowers > profile.followersHi {
			t.Fatalf("artist %s (%s): %d followers outside [%d, %d]",
				a.ID, a.Tier, a.SocialFollowers, profile.followersLo, profile.followersHi)
		}
		if a.BookingPriceMax.LessThan(a.BookingPriceMin) {
			t.Fatalf("artist %s booking range inverted: %s > %s", a.ID, a.BookingPriceMin, a.BookingPriceMax)
		}
	}
}

func TestGenVenuesTypeCapacityCoherent(t *testing.T) {
	ds := genDataset(t, testConfig())
	for _, v := range ds.Venues {
		cr, ok := venueCapacity[v.Type]
		if !ok {
			t.Fatalf("venue %s has unknown type %q", v.ID, v.Type)
		}
		if v.Capacity < cr.lo || v.Capacity > cr.hi {
			t.Fatalf("venue %s (%s): capacity %d outside [%d, %d]", v.ID, v.Type, v.Capacity, cr.lo, cr.hi)
		}
		if v.StandingCapacity < v.Capacity {
			t.Fatalf("venue %s standing capacity %d below seated %d", v.ID, v.StandingCapacity, v.Capacity)
		}
		if v.Type == model.VenueStadium && !v.Parking {
			t.Fatalf("stadium %s without parking", v.ID)
		}
		if v.Type == model.VenueOutdoor && v.FullBar {
			t.Fatalf("outdoor venue %s with a full bar", v.ID)
		}
	}
}

func TestGenSalesBounded(t *testing.T) {
	ds := genDataset(t, testConfig())

	events := make(map[string]model.Event)
	for _, e := range ds.Events {
		events[e.ID] = e
	}
	venues := make(map[string]model.Venue)
	for _, v := range ds.Venues {
		venues[v.ID] = v
	}

	sold := map[string]int{}
	for _, s := range ds.TicketSales {
		event := events[s.EventID]
		if event.Status != model.StatusCompleted {
			t.Fatalf("sale %s against %s event %s", s.ID, event.Status, event.ID)
		}
		if s.SaleDate.After(event.Date) {
			t.Fatalf("sale %s dated %s after event on %s", s.ID, s.SaleDate, event.Date)
		}
		if s.SaleDate.Before(event.OnSaleDate) {
			t.Fatalf("sale %s dated %s before tickets went on sale %s", s.ID, s.SaleDate, event.OnSaleDate)
		}
		sold[s.EventID] += s.Quantity
	}

	for _, e := range ds.Events {
		if e.Status == model.StatusCompleted && e.Attendance != nil && *e.Attendance > 0 && sold[e.ID] == 0 {
			t.Fatalf("completed event %s with attendance %d has no sales", e.ID, *e.Attendance)
		}
	}
	for id, n := range sold {
		if capacity := venues[events[id].VenueID].Capacity; n > capacity {
			t.Fatalf("event %s sold %d tickets into capacity %d", id, n, capacity)
		}
	}
}

func TestGenEventRatingsBounded(t *testing.T) {
	cfg := testConfig()
	ds := genDataset(t, cfg)

	events := make(map[string]model.Event)
	for _, e := range ds.Events {
		events[e.ID] = e
	}

	perEvent := map[string]int{}
	perEventUsers := map[string]map[string]bool{}
	for _, rt := range ds.EventRatings {
		event := events[rt.EventID]
		if event.Status != model.StatusCompleted {
			t.Fatalf("rating %s against %s event %s", rt.ID, event.Status, event.ID)
		}
		if rt.Date.Before(event.Date) {
			t.Fatalf("rating %s dated %s before event on %s", rt.ID, rt.Date, event.Date)
		}
		if rt.Score < model.RatingMin || rt.Score > model.RatingMax {
			t.Fatalf("rating %s score %v out of bounds", rt.ID, rt.Score)
		}
		for name, score := range rt.Aspects.Scores() {
			if score < model.RatingMin || score > model.RatingMax {
				t.Fatalf("rating %s aspect %s = %v out of bounds", rt.ID, name, score)
			}
		}
		perEvent[rt.EventID]++
		if perEventUsers[rt.EventID] == nil {
			perEventUsers[rt.EventID] = map[string]bool{}
		}
		if perEventUsers[rt.EventID][rt.UserID] {
			t.Fatalf("event %s rated twice by %s", rt.EventID, rt.UserID)
		}
		perEventUsers[rt.EventID][rt.UserID] = true
	}
	for id, n := range perEvent {
		if n > cfg.Ratings.MaxPerEvent {
			t.Fatalf("event %s has %d ratings, cap is %d", id, n, cfg.Ratings.MaxPerEvent)
		}
	}
}

func TestGenEventRatingsTrackArtistTier(t *testing.T) {
	cfg := testConfig()
	cfg.Rows.Users = 300
	cfg.Rows.Artists = 120
	cfg.Rows.Events = 600
	ds := genDataset(t, cfg)

	tierByEvent := make(map[string]model.PopularityTier)
	artists := make(map[string]model.Artist)
	for _, a := range ds.Artists {
		artists[a.ID] = a
	}
	for _, e := range ds.Events {
		tierByEvent[e.ID] = artists[e.ArtistID].Tier
	}

	sums := map[model.PopularityTier]float64{}
	counts := map[model.PopularityTier]int{}
	for _, rt := range ds.EventRatings {
		tier := tierByEvent[rt.EventID]
		sums[tier] += rt.Score
		counts[tier]++
	}

	mean := func(tiers ...model.PopularityTier) float64 {
		var sum float64
		var n int
		for _, tier := range tiers {
			sum += sums[tier]
			n += counts[tier]
		}
		if n == 0 {
			t.Fatalf("no ratings for tiers %v", tiers)
		}
		return sum / float64(n)
	}

	low := mean(model.TierEmerging)
	high := mean(model.TierHeadliner, model.TierSuperstar)
	if high < low+0.15 {
		t.Fatalf("event scores do not rise with artist tier: emerging mean %.3f, headliner+superstar mean %.3f", low, high)
	}
}

func TestGenFollowsDates(t *testing.T) {
	ds := genDataset(t, testConfig())

	users := make(map[string]model.User)
	for _, u := range ds.Users {
		users[u.ID] = u
	}
	seen := map[string]bool{}
	for _, f := range ds.Follows {
		if f.FollowDate.Before(users[f.UserID].JoinDate) {
			t.Fatalf("follow %s dated %s before user joined %s", f.ID, f.FollowDate, users[f.UserID].JoinDate)
		}
		pair := f.UserID + "/" + f.ArtistID
		if seen[pair] {
			t.Fatalf("duplicate follow edge %s", pair)
		}
		seen[pair] = true
	}
}
