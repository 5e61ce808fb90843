package model

import (
	"encoding/json"
	"strconv"
	"time"
)

// Column headers for the emitted flat files. Order here is the column
// order on the wire and must match each type's Record method.
var (
	CityHeader = []string{"city_id", "city", "state", "population", "music_scene_score",
		"primary_genres", "avg_ticket_price", "total_venues", "timezone"}

	UserHeader = []string{"user_id", "username", "email", "verified", "user_segment",
		"join_date", "home_city", "home_state", "age_group", "preferred_genres",
		"profile_completeness", "email_verified", "push_notifications_enabled", "last_active_date"}

	ArtistHeader = []string{"artist_id", "artist_name", "formed_year", "origin_city",
		"origin_state", "origin_country", "monthly_listeners", "social_followers",
		"genre_primary", "genre_secondary", "booking_price_min", "booking_price_max",
		"popularity_tier", "tour_frequency", "has_label", "verified_artist"}

	VenueHeader = []string{"venue_id", "venue_name", "address", "city", "state", "zip_code",
		"latitude", "longitude", "venue_type", "capacity", "standing_room_capacity",
		"opened_year", "parking_available", "valet_parking", "food_available", "full_bar",
		"accessible_ada", "box_office", "typical_ticket_fee", "venue_website", "phone"}

	TourHeader = []string{"tour_id", "tour_name", "artist_id", "start_date", "end_date",
		"number_of_shows", "tour_type", "tour_legs", "production_level"}

	EventHeader = []string{"event_id", "event_name", "artist_id", "venue_id", "tour_id",
		"event_date", "event_day_of_week", "doors_time", "show_time", "announced_date",
		"on_sale_date", "base_ticket_price", "vip_ticket_price", "ticket_vendor",
		"age_restriction", "opening_acts", "event_status", "cancellation_reason",
		"estimated_attendance", "weather_condition", "special_event"}

	TicketSaleHeader = []string{"sale_id", "event_id", "sale_date", "days_before_event",
		"quantity_sold", "ticket_type", "unit_price", "fees", "total_amount"}

	EventRatingHeader = []string{"rating_id", "event_id", "user_id", "rating_score",
		"rating_date", "days_after_event", "review_title", "review_text",
		"verified_attendance", "helpful_count", "reported", "aspects"}

	ArtistRatingHeader = []string{"artist_rating_id", "artist_id", "user_id",
		"rating_date", "overall_rating", "aspects"}

	VenueReviewHeader = []string{"review_id", "venue_id", "user_id", "review_date",
		"overall_rating", "review_text", "aspects"}

	FollowHeader = []string{"follow_id", "user_id", "artist_id", "follow_date",
		"notifications_enabled"}
)

func fmtDate(t time.Time) string   { return t.Format(DateLayout) }
func fmtBool(b bool) string        { return strconv.FormatBool(b) }
func fmtInt(n int) string          { return strconv.Itoa(n) }
func fmtInt64(n int64) string      { return strconv.FormatInt(n, 10) }
func fmtFloat(f float64) string    { return strconv.FormatFloat(f, 'f', -1, 64) }
func fmtJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Record renders the row in CityHeader order.
func (c City) Record() []string {
	return []string{c.ID, c.Name, c.State, fmtInt(c.Population), fmtFloat(c.SceneScore),
		fmtJSON(c.PrimaryGenres), c.AvgTicketPrice.StringFixed(2), fmtInt(c.TotalVenues), c.Timezone}
}

func (u User) Record() []string {
	return []string{u.ID, u.Username, u.Email, fmtBool(u.Verified), string(u.Segment),
		fmtDate(u.JoinDate), u.HomeCity, u.HomeState, u.AgeGroup, fmtJSON(u.PreferredGenres),
		fmtFloat(u.ProfileCompleteness), fmtBool(u.EmailVerified), fmtBool(u.PushNotifications),
		fmtDate(u.LastActive)}
}

func (a Artist) Record() []string {
	return []string{a.ID, a.Name, fmtInt(a.FormedYear), a.OriginCity, a.OriginState,
		a.OriginCountry, fmtInt64(a.MonthlyListeners), fmtInt64(a.SocialFollowers),
		a.GenrePrimary, a.GenreSecondary, a.BookingPriceMin.StringFixed(2),
		a.BookingPriceMax.StringFixed(2), string(a.Tier), a.TourFrequency,
		fmtBool(a.HasLabel), fmtBool(a.VerifiedArtist)}
}

func (v Venue) Record() []string {
	return []string{v.ID, v.Name, v.Address, v.City, v.State, v.Zip,
		fmtFloat(v.Latitude), fmtFloat(v.Longitude), string(v.Type), fmtInt(v.Capacity),
		fmtInt(v.StandingCapacity), fmtInt(v.OpenedYear), fmtBool(v.Parking), fmtBool(v.Valet),
		fmtBool(v.Food), fmtBool(v.FullBar), fmtBool(v.ADAAccessible), fmtBool(v.BoxOffice),
		v.TicketFee.StringFixed(2), v.Website, v.Phone}
}

func (t Tour) Record() []string {
	return []string{t.ID, t.Name, t.ArtistID, fmtDate(t.StartDate), fmtDate(t.EndDate),
		fmtInt(t.NumShows), t.Type, fmtInt(t.Legs), string(t.ProductionLevel)}
}

func (e Event) Record() []string {
	vip := ""
	if e.VIPPrice != nil {
		vip = e.VIPPrice.StringFixed(2)
	}
	attendance := ""
	if e.Attendance != nil {
		attendance = fmtInt(*e.Attendance)
	}
	acts := ""
	if len(e.OpeningActs) > 0 {
		acts = fmtJSON(e.OpeningActs)
	}
	return []string{e.ID, e.Name, e.ArtistID, e.VenueID, e.TourID, fmtDate(e.Date),
		e.DayOfWeek, e.DoorsTime, e.ShowTime, fmtDate(e.AnnouncedDate), fmtDate(e.OnSaleDate),
		e.BasePrice.StringFixed(2), vip, e.Vendor, e.AgeRestriction, acts, string(e.Status),
		e.CancellationReason, attendance, e.Weather, fmtBool(e.SpecialEvent)}
}

func (s TicketSale) Record() []string {
	return []string{s.ID, s.EventID, fmtDate(s.SaleDate), fmtInt(s.DaysBeforeEvent),
		fmtInt(s.Quantity), s.Type, s.UnitPrice.StringFixed(2), s.Fees.StringFixed(2),
		s.Total.StringFixed(2)}
}

func (r EventRating) Record() []string {
	return []string{r.ID, r.EventID, r.UserID, fmtFloat(r.Score), fmtDate(r.Date),
		fmtInt(r.DaysAfterEvent), r.ReviewTitle, r.ReviewText, fmtBool(r.VerifiedAttendance),
		fmtInt(r.HelpfulCount), fmtBool(r.Reported), fmtJSON(r.Aspects)}
}

func (r ArtistRating) Record() []string {
	return []string{r.ID, r.ArtistID, r.UserID, fmtDate(r.Date), fmtFloat(r.Score),
		fmtJSON(r.Aspects)}
}

func (r VenueReview) Record() []string {
	return []string{r.ID, r.VenueID, r.UserID, fmtDate(r.Date), fmtFloat(r.Score),
		r.ReviewText, fmtJSON(r.Aspects)}
}

func (f UserArtistFollow) Record() []string {
	return []string{f.ID, f.UserID, f.ArtistID, fmtDate(f.FollowDate), fmtBool(f.Notifications)}
}
