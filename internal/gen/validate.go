package gen

import (
	"fmt"

	"github.com/shopspring/decimal"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
)

// Validate is a read-only pass over a complete dataset checking every
// cross-table invariant. It returns the first violation found; a nil
// result is the gate for emitting (or consuming) the dataset.
func Validate(cfg *config.Config, ds *model.Dataset) error {
	cityNames := make(map[string]bool, len(ds.Cities))
	for _, c := range ds.Cities {
		cityNames[c.Name] = true
	}
	userIDs := make(map[string]model.User, len(ds.Users))
	for _, u := range ds.Users {
		if len(ds.Cities) > 0 && !cityNames[u.HomeCity] {
			return &ViolationError{Entity: "user", ID: u.ID, Rule: "home_city does not resolve"}
		}
		userIDs[u.ID] = u
	}
	artistIDs := make(map[string]model.Artist, len(ds.Artists))
	for _, a := range ds.Artists {
		artistIDs[a.ID] = a
	}
	venueIDs := make(map[string]model.Venue, len(ds.Venues))
	for _, v := range ds.Venues {
		venueIDs[v.ID] = v
	}
	tourIDs := make(map[string]model.Tour, len(ds.Tours))
	for _, t := range ds.Tours {
		tourIDs[t.ID] = t
	}
	eventIDs := make(map[string]model.Event, len(ds.Events))
	for _, e := range ds.Events {
		eventIDs[e.ID] = e
	}

	for _, v := range ds.Venues {
		if v.Capacity <= 0 {
			return &ViolationError{Entity: "venue", ID: v.ID, Rule: "capacity must be positive"}
		}
		cr, ok := venueCapacity[v.Type]
		if !ok {
			return &ViolationError{Entity: "venue", ID: v.ID, Rule: fmt.Sprintf("unknown venue type %q", v.Type)}
		}
		if v.Capacity < cr.lo || v.Capacity > cr.hi {
			return &ViolationError{Entity: "venue", ID: v.ID,
				Rule: fmt.Sprintf("capacity %d outside %s range %d-%d", v.Capacity, v.Type, cr.lo, cr.hi)}
		}
	}

	for _, t := range ds.Tours {
		if _, ok := artistIDs[t.ArtistID]; !ok {
			return &ViolationError{Entity: "tour", ID: t.ID, Rule: "artist_id does not resolve"}
		}
		if t.EndDate.Before(t.StartDate) {
			return &ViolationError{Entity: "tour", ID: t.ID, Rule: "end_date precedes start_date"}
		}
	}

	for _, e := range ds.Events {
		artist, ok := artistIDs[e.ArtistID]
		if !ok {
			return &ViolationError{Entity: "event", ID: e.ID, Rule: "artist_id does not resolve"}
		}
		venue, ok := venueIDs[e.VenueID]
		if !ok {
			return &ViolationError{Entity: "event", ID: e.ID, Rule: "venue_id does not resolve"}
		}
		if e.TourID != "" {
			tour, ok := tourIDs[e.TourID]
			if !ok {
				return &ViolationError{Entity: "event", ID: e.ID, Rule: "tour_id does not resolve"}
			}
			if e.Date.Before(tour.StartDate) || e.Date.After(tour.EndDate) {
				return &ViolationError{Entity: "event", ID: e.ID, Rule: "event_date outside tour span"}
			}
		}

		band := bandFor(artist.Tier, model.CapacityTierOf(venue.Capacity))
		lo, hi := band.bounds(cfg.Prices)
		price, _ := e.BasePrice.Float64()
		if price < lo || price >= hi {
			return &ViolationError{Entity: "event", ID: e.ID,
				Rule: fmt.Sprintf("base_ticket_price %.2f outside %s band [%.2f, %.2f)", price, band, lo, hi)}
		}

		switch e.Status {
		case model.StatusCancelled:
			if e.CancellationReason == "" {
				return &ViolationError{Entity: "event", ID: e.ID, Rule: "cancelled without cancellation_reason"}
			}
			if e.Attendance != nil {
				return &ViolationError{Entity: "event", ID: e.ID, Rule: "cancelled event has attendance"}
			}
		case model.StatusCompleted, model.StatusScheduled:
			if e.CancellationReason != "" {
				return &ViolationError{Entity: "event", ID: e.ID, Rule: "cancellation_reason on a non-cancelled event"}
			}
		default:
			return &ViolationError{Entity: "event", ID: e.ID, Rule: fmt.Sprintf("unknown status %q", e.Status)}
		}
		if e.Attendance != nil && *e.Attendance > venue.Capacity {
			return &ViolationError{Entity: "event", ID: e.ID, Rule: "estimated_attendance exceeds venue capacity"}
		}
	}

	soldByEvent := make(map[string]int)
	for _, s := range ds.TicketSales {
		event, ok := eventIDs[s.EventID]
		if !ok {
			return &ViolationError{Entity: "ticket_sale", ID: s.ID, Rule: "event_id does not resolve"}
		}
		if event.Status == model.StatusCancelled {
			return &ViolationError{Entity: "ticket_sale", ID: s.ID, Rule: "sale against a cancelled event"}
		}
		if s.Quantity <= 0 {
			return &ViolationError{Entity: "ticket_sale", ID: s.ID, Rule: "quantity must be positive"}
		}
		if s.SaleDate.After(event.Date) {
			return &ViolationError{Entity: "ticket_sale", ID: s.ID, Rule: "sale_date after event_date"}
		}
		if s.Total.LessThan(decimal.Zero) {
			return &ViolationError{Entity: "ticket_sale", ID: s.ID, Rule: "negative total_amount"}
		}
		soldByEvent[s.EventID] += s.Quantity
	}
	for eventID, sold := range soldByEvent {
		venue := venueIDs[eventIDs[eventID].VenueID]
		if sold > venue.Capacity {
			return &ViolationError{Entity: "event", ID: eventID,
				Rule: fmt.Sprintf("ticket quantity %d exceeds capacity %d", sold, venue.Capacity)}
		}
	}

	checkScore := func(entity, id, name string, score float64) error {
		if score < model.RatingMin || score > model.RatingMax {
			return &ViolationError{Entity: entity, ID: id,
				Rule: fmt.Sprintf("%s %.2f outside [%.1f, %.1f]", name, score, model.RatingMin, model.RatingMax)}
		}
		return nil
	}

	for _, rt := range ds.EventRatings {
		event, ok := eventIDs[rt.EventID]
		if !ok {
			return &ViolationError{Entity: "event_rating", ID: rt.ID, Rule: "event_id does not resolve"}
		}
		if _, ok := userIDs[rt.UserID]; !ok {
			return &ViolationError{Entity: "event_rating", ID: rt.ID, Rule: "user_id does not resolve"}
		}
		if event.Status == model.StatusCancelled {
			return &ViolationError{Entity: "event_rating", ID: rt.ID, Rule: "rating against a cancelled event"}
		}
		if rt.Date.Before(event.Date) {
			return &ViolationError{Entity: "event_rating", ID: rt.ID, Rule: "rating_date precedes event_date"}
		}
		if err := checkScore("event_rating", rt.ID, "rating_score", rt.Score); err != nil {
			return err
		}
		for name, score := range rt.Aspects.Scores() {
			if err := checkScore("event_rating", rt.ID, name, score); err != nil {
				return err
			}
		}
	}

	for _, rt := range ds.ArtistRatings {
		if _, ok := artistIDs[rt.ArtistID]; !ok {
			return &ViolationError{Entity: "artist_rating", ID: rt.ID, Rule: "artist_id does not resolve"}
		}
		if _, ok := userIDs[rt.UserID]; !ok {
			return &ViolationError{Entity: "artist_rating", ID: rt.ID, Rule: "user_id does not resolve"}
		}
		if err := checkScore("artist_rating", rt.ID, "overall_rating", rt.Score); err != nil {
			return err
		}
		for name, score := range rt.Aspects.Scores() {
			if err := checkScore("artist_rating", rt.ID, name, score); err != nil {
				return err
			}
		}
	}

	for _, rv := range ds.VenueReviews {
		if _, ok := venueIDs[rv.VenueID]; !ok {
			return &ViolationError{Entity: "venue_review", ID: rv.ID, Rule: "venue_id does not resolve"}
		}
		if _, ok := userIDs[rv.UserID]; !ok {
			return &ViolationError{Entity: "venue_review", ID: rv.ID, Rule: "user_id does not resolve"}
		}
		if err := checkScore("venue_review", rv.ID, "overall_rating", rv.Score); err != nil {
			return err
		}
		for name, score := range rv.Aspects.Scores() {
			if err := checkScore("venue_review", rv.ID, name, score); err != nil {
				return err
			}
		}
	}

	for _, f := range ds.Follows {
		user, ok := userIDs[f.UserID]
		if !ok {
			return &ViolationError{Entity: "user_artist_follow", ID: f.ID, Rule: "user_id does not resolve"}
		}
		if _, ok := artistIDs[f.ArtistID]; !ok {
			return &ViolationError{Entity: "user_artist_follow", ID: f.ID, Rule: "artist_id does not resolve"}
		}
		if f.FollowDate.Before(user.JoinDate) {
			return &ViolationError{Entity: "user_artist_follow", ID: f.ID, Rule: "follow_date precedes user join_date"}
		}
	}

	return nil
}
