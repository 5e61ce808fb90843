package model

// PopularityTier is an ordered classification of an artist's market draw.
type PopularityTier string

const (
	TierEmerging    PopularityTier = "emerging"
	TierRising      PopularityTier = "rising"
	TierEstablished PopularityTier = "established"
	TierHeadliner   PopularityTier = "headliner"
	TierSuperstar   PopularityTier = "superstar"
)

// Tiers lists popularity tiers in ascending order of draw.
var Tiers = []PopularityTier{TierEmerging, TierRising, TierEstablished, TierHeadliner, TierSuperstar}

// Rank returns the tier's position in the ordering, 0 for emerging.
// Unknown tiers rank below emerging.
func (t PopularityTier) Rank() int {
	for i, tier := range Tiers {
		if t == tier {
			return i
		}
	}
	return -1
}

// VenueType categorizes venues by scale and setting.
type VenueType string

const (
	VenueClub    VenueType = "club"
	VenueTheater VenueType = "theater"
	VenueArena   VenueType = "arena"
	VenueStadium VenueType = "stadium"
	VenueOutdoor VenueType = "outdoor"
)

// VenueTypes lists all venue types.
var VenueTypes = []VenueType{VenueClub, VenueTheater, VenueArena, VenueStadium, VenueOutdoor}

// CapacityTier buckets venue capacity for artist pairing and pricing.
type CapacityTier int

const (
	CapacitySmall CapacityTier = iota
	CapacityMedium
	CapacityLarge
	CapacityMassive
)

func (c CapacityTier) String() string {
	switch c {
	case CapacitySmall:
		return "small"
	case CapacityMedium:
		return "medium"
	case CapacityLarge:
		return "large"
	default:
		return "massive"
	}
}

// CapacityTierOf buckets a raw capacity.
func CapacityTierOf(capacity int) CapacityTier {
	switch {
	case capacity <= 800:
		return CapacitySmall
	case capacity <= 5000:
		return CapacityMedium
	case capacity <= 20000:
		return CapacityLarge
	default:
		return CapacityMassive
	}
}

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	StatusScheduled EventStatus = "scheduled"
	StatusCompleted EventStatus = "completed"
	StatusCancelled EventStatus = "cancelled"
)

// Segment classifies users by engagement level.
type Segment string

const (
	SegmentPower   Segment = "power"
	SegmentRegular Segment = "regular"
	SegmentCasual  Segment = "casual"
)

// RatingMin and RatingMax bound every overall and aspect score.
const (
	RatingMin = 1.0
	RatingMax = 5.0
)

// DateLayout is the wire format for all date columns.
const DateLayout = "2006-01-02"
