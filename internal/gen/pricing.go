package gen

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"

	"soundcheck/internal/config"
	"soundcheck/internal/model"
	"soundcheck/internal/rng"
)

// priceBand is the documented ticket price tier.
type priceBand int

const (
	bandBudget priceBand = iota
	bandStandard
	bandPremium
	bandLuxury
)

func (b priceBand) String() string {
	switch b {
	case bandBudget:
		return "budget"
	case bandStandard:
		return "standard"
	case bandPremium:
		return "premium"
	default:
		return "luxury"
	}
}

// bandFor maps an artist tier / venue capacity tier pairing to its price
// band. The mapping is monotone in both inputs.
func bandFor(tier model.PopularityTier, capTier model.CapacityTier) priceBand {
	switch sum := tier.Rank() + int(capTier); {
	case sum <= 1:
		return bandBudget
	case sum <= 3:
		return bandStandard
	case sum <= 5:
		return bandPremium
	default:
		return bandLuxury
	}
}

// bounds returns the half-open price range [lo, hi) for a band.
func (b priceBand) bounds(p config.PriceBands) (lo, hi float64) {
	switch b {
	case bandBudget:
		return 10, p.BudgetMax
	case bandStandard:
		return p.BudgetMax, p.StandardMax
	case bandPremium:
		return p.StandardMax, p.PremiumMax
	default:
		return p.PremiumMax, p.PremiumMax * 2.5
	}
}

// basePrice blends the pairing band with venue and calendar effects, then
// clips back into the band so the documented pricing policy always holds.
func basePrice(r *rand.Rand, p config.PriceBands, tier model.PopularityTier, venue model.Venue, weekend bool) decimal.Decimal {
	band := bandFor(tier, model.CapacityTierOf(venue.Capacity))
	lo, hi := band.bounds(p)

	price := rng.BetweenF(r, lo, hi)
	price *= venueTypePriceFactor[venue.Type]
	if weekend {
		price *= 1.2
	}
	price *= 1 + rng.Gauss(r, 0, 0.05)

	d := decimal.NewFromFloat(price).Round(2)
	loD := decimal.NewFromFloat(lo)
	hiD := decimal.NewFromFloat(hi)
	if d.LessThan(loD) {
		d = loD
	}
	if d.GreaterThanOrEqual(hiD) {
		d = hiD.Sub(decimal.NewFromFloat(0.01))
	}
	return d
}
