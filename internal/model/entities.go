package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// City is a reference row describing a market's music scene.
type City struct {
	ID             string
	Name           string
	State          string
	Population     int
	SceneScore     float64
	PrimaryGenres  []string
	AvgTicketPrice decimal.Decimal
	TotalVenues    int
	Timezone       string
}

// User is a platform account that rates events and follows artists.
type User struct {
	ID                  string
	Username            string
	Email               string
	Verified            bool
	Segment             Segment
	JoinDate            time.Time
	HomeCity            string
	HomeState           string
	AgeGroup            string
	PreferredGenres     []string
	ProfileCompleteness float64
	EmailVerified       bool
	PushNotifications   bool
	LastActive          time.Time
}

// Artist is a performing act.
type Artist struct {
	ID               string
	Name             string
	FormedYear       int
	OriginCity       string
	OriginState      string
	OriginCountry    string
	MonthlyListeners int64
	SocialFollowers  int64
	GenrePrimary     string
	GenreSecondary   string
	BookingPriceMin  decimal.Decimal
	BookingPriceMax  decimal.Decimal
	Tier             PopularityTier
	TourFrequency    string
	HasLabel         bool
	VerifiedArtist   bool
}

// Venue hosts events. Capacity is always coherent with Type.
type Venue struct {
	ID               string
	Name             string
	Address          string
	City             string
	State            string
	Zip              string
	Latitude         float64
	Longitude        float64
	Type             VenueType
	Capacity         int
	StandingCapacity int
	OpenedYear       int
	Parking          bool
	Valet            bool
	Food             bool
	FullBar          bool
	ADAAccessible    bool
	BoxOffice        bool
	TicketFee        decimal.Decimal
	Website          string
	Phone            string
}

// Tour groups an artist's events over a date span. EndDate is always
// derived from StartDate plus a duration, never sampled independently.
type Tour struct {
	ID              string
	Name            string
	ArtistID        string
	StartDate       time.Time
	EndDate         time.Time
	NumShows        int
	Type            string
	Legs            int
	ProductionLevel PopularityTier
}

// Event is the central fact entity. TourID is empty for standalone shows.
// Attendance is nil unless the event completed. CancellationReason is
// non-empty iff Status is cancelled.
type Event struct {
	ID                 string
	Name               string
	ArtistID           string
	VenueID            string
	TourID             string
	Date               time.Time
	DayOfWeek          string
	DoorsTime          string
	ShowTime           string
	AnnouncedDate      time.Time
	OnSaleDate         time.Time
	BasePrice          decimal.Decimal
	VIPPrice           *decimal.Decimal
	Vendor             string
	AgeRestriction     string
	OpeningActs        []string
	Status             EventStatus
	CancellationReason string
	Attendance         *int
	Weather            string
	SpecialEvent       bool
}

// TicketSale is one purchase transaction against an event.
type TicketSale struct {
	ID              string
	EventID         string
	SaleDate        time.Time
	DaysBeforeEvent int
	Quantity        int
	Type            string
	UnitPrice       decimal.Decimal
	Fees            decimal.Decimal
	Total           decimal.Decimal
}

// EventRating is a user's post-event score with per-aspect detail.
type EventRating struct {
	ID                 string
	EventID            string
	UserID             string
	Score              float64
	Date               time.Time
	DaysAfterEvent     int
	ReviewTitle        string
	ReviewText         string
	VerifiedAttendance bool
	HelpfulCount       int
	Reported           bool
	Aspects            EventAspects
}

// ArtistRating scores an artist independent of a specific event.
type ArtistRating struct {
	ID       string
	ArtistID string
	UserID   string
	Date     time.Time
	Score    float64
	Aspects  ArtistAspects
}

// VenueReview scores a venue independent of a specific event.
type VenueReview struct {
	ID         string
	VenueID    string
	UserID     string
	Date       time.Time
	Score      float64
	ReviewText string
	Aspects    VenueAspects
}

// UserArtistFollow is a follow edge between a user and an artist.
type UserArtistFollow struct {
	ID            string
	UserID        string
	ArtistID      string
	FollowDate    time.Time
	Notifications bool
}

// Dataset holds one full generation run, in dependency order.
type Dataset struct {
	Cities        []City
	Users         []User
	Artists       []Artist
	Venues        []Venue
	Tours         []Tour
	Events        []Event
	TicketSales   []TicketSale
	EventRatings  []EventRating
	ArtistRatings []ArtistRating
	VenueReviews  []VenueReview
	Follows       []UserArtistFollow
}
