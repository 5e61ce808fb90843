package emit

import (
	"fmt"
	"io"

	"soundcheck/internal/model"
)

type column struct {
	typ  string
	desc string
}

type dictFile struct {
	name    string
	desc    string
	header  []string
	columns map[string]column
}

var dictionary = []dictFile{
	{
		name:   CitiesFile,
		desc:   "Reference markets with a music scene profile.",
		header: model.CityHeader,
		columns: map[string]column{
			"city_id":           {"string", "Primary key, CITY_ prefix."},
			"city":              {"string", "City name."},
			"state":             {"string", "Two-letter state code."},
			"population":        {"int", "Metro population."},
			"music_scene_score": {"float", "Scene strength on a 1-10 scale."},
			"primary_genres":    {"json array", "Genres the local scene favors."},
			"avg_ticket_price":  {"decimal", "Typical ticket price in the market."},
			"total_venues":      {"int", "Count of active venues in the market."},
			"timezone":          {"string", "IANA timezone name."},
		},
	},
	{
		name:   UsersFile,
		desc:   "Platform accounts that buy tickets, rate, and follow.",
		header: model.UserHeader,
		columns: map[string]column{
			"user_id":                    {"string", "Primary key, USR_ prefix."},
			"username":                   {"string", "Display handle."},
			"email":                      {"string", "Contact address."},
			"verified":                   {"bool", "Identity-verified account."},
			"user_segment":               {"string", "power, regular, or casual."},
			"join_date":                  {"date", "Account creation date."},
			"home_city":                  {"string", "Home market, references cities.city."},
			"home_state":                 {"string", "Home state code."},
			"age_group":                  {"string", "Age bracket label."},
			"preferred_genres":           {"json array", "Genres the user gravitates to."},
			"profile_completeness":       {"float", "Fraction of profile fields filled, 0-1."},
			"email_verified":             {"bool", "Email confirmed."},
			"push_notifications_enabled": {"bool", "Push opt-in."},
			"last_active_date":           {"date", "Most recent session date."},
		},
	},
	{
		name:   ArtistsFile,
		desc:   "Performing acts with audience metrics and a popularity tier.",
		header: model.ArtistHeader,
		columns: map[string]column{
			"artist_id":         {"string", "Primary key, ART_ prefix."},
			"artist_name":       {"string", "Act name."},
			"formed_year":       {"int", "Year the act formed."},
			"origin_city":       {"string", "Hometown."},
			"origin_state":      {"string", "Home state code."},
			"origin_country":    {"string", "Home country."},
			"monthly_listeners": {"int", "Streaming listeners per month."},
			"social_followers":  {"int", "Combined social following."},
			"genre_primary":     {"string", "Main genre."},
			"genre_secondary":   {"string", "Adjacent genre."},
			"booking_price_min": {"decimal", "Low end of the booking fee range."},
			"booking_price_max": {"decimal", "High end of the booking fee range."},
			"popularity_tier":   {"string", "emerging, rising, established, headliner, or superstar."},
			"tour_frequency":    {"string", "How often the act tours."},
			"has_label":         {"bool", "Signed to a label."},
			"verified_artist":   {"bool", "Platform-verified act."},
		},
	},
	{
		name:   VenuesFile,
		desc:   "Event locations. Capacity always matches the venue type.",
		header: model.VenueHeader,
		columns: map[string]column{
			"venue_id":               {"string", "Primary key, VEN_ prefix."},
			"venue_name":             {"string", "Venue name."},
			"address":                {"string", "Street address."},
			"city":                   {"string", "Market, references cities.city."},
			"state":                  {"string", "State code."},
			"zip_code":               {"string", "Postal code."},
			"latitude":               {"float", "Latitude in degrees."},
			"longitude":              {"float", "Longitude in degrees."},
			"venue_type":             {"string", "club, theater, arena, stadium, or outdoor."},
			"capacity":               {"int", "Maximum attendance."},
			"standing_room_capacity": {"int", "Standing-only capacity."},
			"opened_year":            {"int", "Year the venue opened."},
			"parking_available":      {"bool", "On-site parking."},
			"valet_parking":          {"bool", "Valet service."},
			"food_available":         {"bool", "Food service."},
			"full_bar":               {"bool", "Full bar."},
			"accessible_ada":         {"bool", "ADA accessible."},
			"box_office":             {"bool", "On-site box office."},
			"typical_ticket_fee":     {"decimal", "Per-ticket service fee."},
			"venue_website":          {"string", "Website URL, may be empty."},
			"phone":                  {"string", "Contact phone."},
		},
	},
	{
		name:   ToursFile,
		desc:   "Artist tours spanning multiple events.",
		header: model.TourHeader,
		columns: map[string]column{
			"tour_id":          {"string", "Primary key, TOUR_ prefix."},
			"tour_name":        {"string", "Tour title."},
			"artist_id":        {"string", "References artists.artist_id."},
			"start_date":       {"date", "First day of the tour."},
			"end_date":         {"date", "Last day of the tour, never before start_date."},
			"number_of_shows":  {"int", "Planned show count."},
			"tour_type":        {"string", "Tour category."},
			"tour_legs":        {"int", "Number of legs."},
			"production_level": {"string", "Production scale, mirrors the artist tier."},
		},
	},
	{
		name:   EventsFile,
		desc:   "Individual shows. Tour events fall inside their tour span.",
		header: model.EventHeader,
		columns: map[string]column{
			"event_id":             {"string", "Primary key, EVT_ prefix."},
			"event_name":           {"string", "Artist at venue."},
			"artist_id":            {"string", "References artists.artist_id."},
			"venue_id":             {"string", "References venues.venue_id."},
			"tour_id":              {"string", "References tours.tour_id, empty for standalone shows."},
			"event_date":           {"date", "Show date."},
			"event_day_of_week":    {"string", "Weekday name of event_date."},
			"doors_time":           {"string", "Doors open, HH:MM:SS."},
			"show_time":            {"string", "Show start, HH:MM:SS."},
			"announced_date":       {"date", "Announcement date, before event_date."},
			"on_sale_date":         {"date", "Tickets on sale, after announced_date."},
			"base_ticket_price":    {"decimal", "General admission price, inside the tier pricing band."},
			"vip_ticket_price":     {"decimal", "VIP price, empty when not offered."},
			"ticket_vendor":        {"string", "Primary ticketing vendor."},
			"age_restriction":      {"string", "Entry age policy."},
			"opening_acts":         {"json array", "Supporting artist names, empty when none."},
			"event_status":         {"string", "scheduled, completed, or cancelled."},
			"cancellation_reason":  {"string", "Set iff the event is cancelled."},
			"estimated_attendance": {"int", "Set only for completed events, never above capacity."},
			"weather_condition":    {"string", "Outdoor events only."},
			"special_event":        {"bool", "Festival or holiday show."},
		},
	},
	{
		name:   TicketSalesFile,
		desc:   "Purchase transactions. Quantities never oversell the venue.",
		header: model.TicketSaleHeader,
		columns: map[string]column{
			"sale_id":           {"string", "Primary key, TKT_ prefix."},
			"event_id":          {"string", "References events.event_id."},
			"sale_date":         {"date", "Purchase date, never after event_date."},
			"days_before_event": {"int", "Days between sale and show."},
			"quantity_sold":     {"int", "Tickets in the transaction."},
			"ticket_type":       {"string", "general or vip."},
			"unit_price":        {"decimal", "Price per ticket."},
			"fees":              {"decimal", "Service fees for the transaction."},
			"total_amount":      {"decimal", "unit_price * quantity_sold + fees."},
		},
	},
	{
		name:   EventRatingsFile,
		desc:   "Post-event user ratings with per-aspect scores.",
		header: model.EventRatingHeader,
		columns: map[string]column{
			"rating_id":           {"string", "Primary key, RAT_ prefix."},
			"event_id":            {"string", "References events.event_id."},
			"user_id":             {"string", "References users.user_id."},
			"rating_score":        {"float", "Overall score, 1.0-5.0 in half steps."},
			"rating_date":         {"date", "Never before event_date."},
			"days_after_event":    {"int", "Days between show and rating."},
			"review_title":        {"string", "Optional short title."},
			"review_text":         {"string", "Optional prose review."},
			"verified_attendance": {"bool", "Ticket matched to the rater."},
			"helpful_count":       {"int", "Helpful votes."},
			"reported":            {"bool", "Flagged for moderation."},
			"aspects":             {"json object", "Per-aspect scores, each 1.0-5.0."},
		},
	},
	{
		name:   ArtistRatingsFile,
		desc:   "Artist ratings independent of a specific show.",
		header: model.ArtistRatingHeader,
		columns: map[string]column{
			"artist_rating_id": {"string", "Primary key, ARAT_ prefix."},
			"artist_id":        {"string", "References artists.artist_id."},
			"user_id":          {"string", "References users.user_id."},
			"rating_date":      {"date", "Rating date."},
			"overall_rating":   {"float", "Overall score, 1.0-5.0 in half steps."},
			"aspects":          {"json object", "Per-aspect scores, each 1.0-5.0."},
		},
	},
	{
		name:   VenueReviewsFile,
		desc:   "Venue reviews independent of a specific show.",
		header: model.VenueReviewHeader,
		columns: map[string]column{
			"review_id":      {"string", "Primary key, VREV_ prefix."},
			"venue_id":       {"string", "References venues.venue_id."},
			"user_id":        {"string", "References users.user_id."},
			"review_date":    {"date", "Review date."},
			"overall_rating": {"float", "Overall score, 1.0-5.0 in half steps."},
			"review_text":    {"string", "Optional prose review."},
			"aspects":        {"json object", "Per-aspect scores, each 1.0-5.0."},
		},
	},
	{
		name:   FollowsFile,
		desc:   "Follow edges from users to artists.",
		header: model.FollowHeader,
		columns: map[string]column{
			"follow_id":             {"string", "Primary key, FOL_ prefix."},
			"user_id":               {"string", "References users.user_id."},
			"artist_id":             {"string", "References artists.artist_id."},
			"follow_date":           {"date", "Never before the user's join_date."},
			"notifications_enabled": {"bool", "New-event notification opt-in."},
		},
	},
}

// WriteDictionary renders the data dictionary for every emitted file as
// markdown.
func WriteDictionary(w io.Writer) error {
	if _, err := fmt.Fprint(w, "# Data dictionary\n"); err != nil {
		return err
	}
	for _, f := range dictionary {
		fmt.Fprintf(w, "\n## %s\n\n%s\n\n", f.name, f.desc)
		fmt.Fprint(w, "| Column | Type | Description |\n|---|---|---|\n")
		for _, name := range f.header {
			col, ok := f.columns[name]
			if !ok {
				return fmt.Errorf("no dictionary entry for %s.%s", f.name, name)
			}
			if _, err := fmt.Fprintf(w, "| %s | %s | %s |\n", name, col.typ, col.desc); err != nil {
				return err
			}
		}
	}
	return nil
}
