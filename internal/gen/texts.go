package gen

import (
	"fmt"
	"math/rand/v2"

	"soundcheck/internal/rng"
)

// Score-banded review text banks.

var reviewTitlesHigh = []string{
	"Amazing show!", "Best concert ever!", "Incredible performance!",
	"Mind-blowing!", "Unforgettable night!", "Absolutely phenomenal!",
}

var reviewTextsHigh = []string{
	"The energy was electric from start to finish. The band was on fire and the crowd was totally into it.",
	"Perfect setlist, amazing sound quality, and incredible stage presence. Couldn't ask for more!",
	"This is why live music matters. An absolutely transcendent experience.",
}

var reviewTitlesGood = []string{
	"Great show", "Really enjoyed it", "Solid performance",
	"Good night out", "Worth seeing", "Entertaining show",
}

var reviewTextsGood = []string{
	"Overall a good show with a few minor issues. The band played well and the venue was decent.",
	"Enjoyed the performance though the sound could have been better. Still recommend seeing them live.",
	"Good energy from the band, crowd was into it. Venue was a bit crowded but manageable.",
}

var reviewTitlesMid = []string{
	"Just okay", "Mixed feelings", "Could've been better",
	"Average show", "Some issues", "Meh",
}

var reviewTextsMid = []string{
	"The performance was okay but nothing special. Sound issues throughout the night.",
	"Band seemed tired, setlist was predictable. Venue was overcrowded.",
	"Expected more based on their recordings. Live performance was disappointing.",
}

var reviewTitlesLow = []string{
	"Disappointing", "Not worth it", "Poor experience",
	"Skip this one", "Waste of money", "Terrible",
}

var reviewTextsLow = []string{
	"Major sound problems, could barely hear the vocals. Band seemed unprepared.",
	"Venue was a disaster - oversold, no air conditioning, terrible acoustics.",
	"Band showed up late, played for 45 minutes, no encore. Complete waste of time and money.",
}

func reviewFor(r *rand.Rand, score float64) (title, text string) {
	switch {
	case score >= 4.5:
		return rng.Pick(r, reviewTitlesHigh), rng.Pick(r, reviewTextsHigh)
	case score >= 3.5:
		return rng.Pick(r, reviewTitlesGood), rng.Pick(r, reviewTextsGood)
	case score >= 2.5:
		return rng.Pick(r, reviewTitlesMid), rng.Pick(r, reviewTextsMid)
	default:
		return rng.Pick(r, reviewTitlesLow), rng.Pick(r, reviewTextsLow)
	}
}

func venueReviewText(r *rand.Rand, score float64, venueType string) string {
	switch {
	case score >= 4:
		return rng.Pick(r, []string{
			fmt.Sprintf("Great venue with excellent sightlines. The %s has amazing acoustics.", venueType),
			"Easy to get to, plenty of parking, staff was super helpful. Will definitely come back!",
			"One of the best venues in the city. Sound quality is consistently excellent.",
		})
	case score >= 3:
		return rng.Pick(r, []string{
			"Decent venue but drinks are overpriced. Sound quality varies depending on where you stand.",
			"Good location but parking is a nightmare. Arrive early or take public transport.",
			"Nice venue but gets very crowded. Bathrooms could be cleaner.",
		})
	default:
		return rng.Pick(r, []string{
			"Poor acoustics, overcrowded, and overpriced everything. There are better venues in town.",
			"Terrible sightlines unless you're right up front. Drinks are ridiculously expensive.",
			"Avoid if possible. Bad sound, rude staff, and the whole place needs renovation.",
		})
	}
}
