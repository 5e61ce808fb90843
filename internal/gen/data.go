package gen

import "soundcheck/internal/model"

// Reference tables and categorical pools. These mirror the live touring
// business the generator models: a fixed set of US music markets, genre
// relationships, and tier-conditioned ranges for artist metrics.

type cityRow struct {
	name       string
	state      string
	population int
	sceneScore float64
	genres     []string
	avgTicket  float64
}

var cityTable = []cityRow{
	{"Austin", "TX", 978908, 9.5, []string{"rock", "country", "indie"}, 48},
	{"Nashville", "TN", 689447, 9.8, []string{"country", "rock", "folk"}, 45},
	{"Los Angeles", "CA", 3967000, 9.0, []string{"pop", "hip-hop", "electronic"}, 65},
	{"New York", "NY", 8336000, 9.7, []string{"jazz", "hip-hop", "indie", "punk"}, 75},
	{"Seattle", "WA", 737015, 8.8, []string{"grunge", "indie", "electronic"}, 55},
	{"Portland", "OR", 652503, 8.5, []string{"indie", "folk", "punk"}, 45},
	{"Chicago", "IL", 2747000, 8.9, []string{"blues", "jazz", "hip-hop", "house"}, 50},
	{"San Francisco", "CA", 874784, 8.6, []string{"electronic", "indie", "jazz"}, 70},
	{"Denver", "CO", 715522, 8.3, []string{"jam", "folk", "electronic"}, 50},
	{"Atlanta", "GA", 498000, 8.7, []string{"hip-hop", "r&b", "trap"}, 55},
	{"Miami", "FL", 442241, 8.4, []string{"electronic", "latin", "hip-hop"}, 60},
	{"Boston", "MA", 694583, 8.2, []string{"punk", "indie", "folk"}, 55},
	{"Philadelphia", "PA", 1584000, 8.3, []string{"hip-hop", "punk", "indie"}, 48},
	{"Detroit", "MI", 674841, 8.5, []string{"techno", "rock", "hip-hop"}, 40},
	{"Minneapolis", "MN", 425403, 8.1, []string{"indie", "hip-hop", "folk"}, 45},
}

var stateTimezones = map[string]string{
	"CA": "America/Los_Angeles", "WA": "America/Los_Angeles", "OR": "America/Los_Angeles",
	"TX": "America/Chicago", "IL": "America/Chicago", "TN": "America/Chicago", "MN": "America/Chicago",
	"NY": "America/New_York", "MA": "America/New_York", "PA": "America/New_York",
	"GA": "America/New_York", "FL": "America/New_York",
	"MI": "America/Detroit",
	"CO": "America/Denver",
}

var primaryGenres = []string{
	"rock", "pop", "hip-hop", "country", "electronic", "indie",
	"jazz", "classical", "metal", "punk", "folk", "r&b", "reggae",
}

var relatedGenres = map[string][]string{
	"rock":       {"alternative", "indie", "punk", "metal", "grunge"},
	"pop":        {"dance", "indie-pop", "synth-pop", "electropop"},
	"hip-hop":    {"rap", "trap", "underground", "conscious"},
	"country":    {"folk", "americana", "bluegrass", "outlaw"},
	"electronic": {"house", "techno", "dubstep", "ambient", "trance"},
	"indie":      {"indie-rock", "indie-folk", "dream-pop", "lo-fi"},
	"jazz":       {"bebop", "fusion", "smooth", "free"},
	"metal":      {"heavy", "death", "black", "progressive"},
}

var ageGroupBias = map[string][]string{
	"18-24": {"pop", "hip-hop", "electronic", "indie"},
	"25-34": {"indie", "rock", "electronic", "hip-hop"},
	"35-44": {"rock", "alternative", "indie", "country"},
	"45-54": {"rock", "classic rock", "country", "jazz"},
	"55+":   {"classic rock", "jazz", "classical", "folk"},
}

var ageGroups = []string{"18-24", "25-34", "35-44", "45-54", "55+"}
var ageGroupWeights = []float64{0.30, 0.35, 0.20, 0.10, 0.05}

// tierProfile holds everything conditioned on popularity tier.
type tierProfile struct {
	listenersLo, listenersHi int64
	followersLo, followersHi int64
	bookingLo, bookingHi     int
	tours                    bool
	showsLo, showsHi         int
	fillLo, fillHi           float64
	ratingBase               float64
	ratingsMult              float64
	leadLo, leadHi           int // announcement lead time, days
}

var tierProfiles = map[model.PopularityTier]tierProfile{
	model.TierEmerging: {
		listenersLo: 100, listenersHi: 20000, followersLo: 100, followersHi: 2000,
		bookingLo: 500, bookingHi: 2000, tours: false,
		fillLo: 0.40, fillHi: 0.80, ratingBase: 3.3, ratingsMult: 1, leadLo: 30, leadHi: 90,
	},
	model.TierRising: {
		listenersLo: 20000, listenersHi: 100000, followersLo: 2000, followersHi: 10000,
		bookingLo: 2000, bookingHi: 10000, tours: true, showsLo: 5, showsHi: 15,
		fillLo: 0.45, fillHi: 0.85, ratingBase: 3.6, ratingsMult: 2, leadLo: 30, leadHi: 90,
	},
	model.TierEstablished: {
		listenersLo: 100000, listenersHi: 1000000, followersLo: 10000, followersHi: 100000,
		bookingLo: 10000, bookingHi: 50000, tours: true, showsLo: 10, showsHi: 25,
		fillLo: 0.55, fillHi: 0.90, ratingBase: 3.8, ratingsMult: 3, leadLo: 45, leadHi: 120,
	},
	model.TierHeadliner: {
		listenersLo: 1000000, listenersHi: 5000000, followersLo: 100000, followersHi: 1000000,
		bookingLo: 50000, bookingHi: 100000, tours: true, showsLo: 15, showsHi: 35,
		fillLo: 0.70, fillHi: 0.95, ratingBase: 4.0, ratingsMult: 5, leadLo: 90, leadHi: 180,
	},
	model.TierSuperstar: {
		listenersLo: 5000000, listenersHi: 50000000, followersLo: 1000000, followersHi: 10000000,
		bookingLo: 100000, bookingHi: 1000000, tours: true, showsLo: 20, showsHi: 75,
		fillLo: 0.85, fillHi: 1.00, ratingBase: 4.3, ratingsMult: 10, leadLo: 90, leadHi: 180,
	},
}

// preferredCapacityTiers implements the monotonic artist/venue pairing
// policy. A small escape probability lets events land outside the band.
var preferredCapacityTiers = map[model.PopularityTier][]model.CapacityTier{
	model.TierEmerging:    {model.CapacitySmall},
	model.TierRising:      {model.CapacitySmall, model.CapacityMedium},
	model.TierEstablished: {model.CapacityMedium, model.CapacityLarge},
	model.TierHeadliner:   {model.CapacityLarge, model.CapacityMassive},
	model.TierSuperstar:   {model.CapacityLarge, model.CapacityMassive},
}

// offBandChance is the escape mass for warm-up style off-band bookings.
const offBandChance = 0.05

type capacityRange struct{ lo, hi int }

var venueCapacity = map[model.VenueType]capacityRange{
	model.VenueClub:    {100, 500},
	model.VenueTheater: {500, 3000},
	model.VenueArena:   {5000, 20000},
	model.VenueStadium: {20000, 80000},
	model.VenueOutdoor: {2000, 25000},
}

var venueTypeWeights = []float64{0.40, 0.28, 0.15, 0.07, 0.10}

// venueTypePriceFactor adjusts the blended base price by setting.
var venueTypePriceFactor = map[model.VenueType]float64{
	model.VenueClub:    0.8,
	model.VenueTheater: 1.0,
	model.VenueArena:   1.3,
	model.VenueStadium: 1.5,
	model.VenueOutdoor: 1.1,
}

var ticketVendors = []string{"Ticketmaster", "AXS", "SeatGeek", "Venue Box Office", "Dice"}

var ageRestrictions = []string{"All Ages", "18+", "21+", ""}

var cancellationReasons = []string{
	"illness", "weather", "low ticket sales", "production issues", "scheduling conflict",
}

var tourTypes = []string{"headlining", "co-headlining", "supporting", "festival"}

var tourFrequencies = []string{"rare", "occasional", "moderate", "frequent", "constant"}

var weatherBySeason = map[string][]string{
	"winter": {"clear", "cold", "snow", "rain"},
	"spring": {"clear", "partly cloudy", "rain", "mild"},
	"summer": {"clear", "hot", "partly cloudy", "thunderstorm"},
	"fall":   {"clear", "cool", "partly cloudy", "rain"},
}

// dayOfWeekWeights skew events toward weekends, Monday first.
var dayOfWeekWeights = []float64{0.08, 0.08, 0.10, 0.15, 0.24, 0.28, 0.07}

func seasonOf(month int) string {
	switch {
	case month == 12 || month <= 2:
		return "winter"
	case month <= 5:
		return "spring"
	case month <= 8:
		return "summer"
	default:
		return "fall"
	}
}
