package gen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"soundcheck/internal/rng"
)

// Word pools for synthesized names, addresses, and handles.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Nancy", "Matthew", "Emily",
	"Anthony", "Ashley", "Mark", "Amanda", "Steven", "Melissa", "Andrew", "Stephanie",
	"Joshua", "Rebecca", "Kevin", "Laura", "Brian", "Rachel", "George", "Hannah",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Thomas", "Taylor", "Moore",
	"Jackson", "Martin", "Lee", "Perez", "Thompson", "White", "Harris", "Sanchez",
	"Clark", "Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright",
	"Torres", "Nguyen", "Hill", "Flores", "Green", "Adams", "Nelson", "Baker", "Hall",
}

var bandAdjectives = []string{
	"Electric", "Cosmic", "Velvet", "Crimson", "Silver", "Golden", "Midnight",
	"Neon", "Crystal", "Shadow", "Wild", "Silent", "Broken", "Lost", "Flying",
}

var bandNouns = []string{
	"Wolves", "Tigers", "Eagles", "Ghosts", "Dreams", "Waves", "Stars",
	"Lights", "Shadows", "Hearts", "Souls", "Minds", "Riders", "Drifters",
}

var plainWords = []string{
	"paper", "garden", "harbor", "window", "summit", "meadow", "ember", "canyon",
	"willow", "lantern", "anchor", "marble", "cinder", "hollow", "prairie", "atlas",
}

var streetNames = []string{
	"Main St", "Oak Ave", "Maple St", "2nd Ave", "Park Blvd", "Elm St",
	"Washington Ave", "Lake St", "Hill Rd", "Sunset Blvd", "River Rd", "Broadway",
}

var emailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "protonmail.com"}

func personName(r *rand.Rand) (string, string) {
	return rng.Pick(r, firstNames), rng.Pick(r, lastNames)
}

func artistName(r *rand.Rand) string {
	switch r.IntN(7) {
	case 0:
		return fmt.Sprintf("The %s %s", rng.Pick(r, bandAdjectives), rng.Pick(r, bandNouns))
	case 1:
		return fmt.Sprintf("%s and the %s", rng.Pick(r, firstNames), rng.Pick(r, bandNouns))
	case 2:
		noun := rng.Pick(r, bandNouns)
		return fmt.Sprintf("%s %s", rng.Pick(r, bandAdjectives), noun[:len(noun)-1])
	case 3:
		return fmt.Sprintf("The %s", rng.Pick(r, bandNouns))
	case 4:
		first, last := personName(r)
		return first + " " + last
	case 5:
		return rng.Pick(r, lastNames)
	default:
		return strings.ToLower(rng.Pick(r, bandAdjectives)) + strings.ToLower(rng.Pick(r, bandNouns))
	}
}

func venueName(r *rand.Rand, kind string) string {
	switch kind {
	case "club":
		switch r.IntN(3) {
		case 0:
			return "The " + rng.Pick(r, []string{"Underground", "Basement", "Loft", "Cave", "Den"})
		case 1:
			return "Club " + rng.Pick(r, lastNames)
		default:
			return "The " + title(rng.Pick(r, plainWords)) + " Room"
		}
	case "theater":
		switch r.IntN(3) {
		case 0:
			return "The " + rng.Pick(r, lastNames) + " Theater"
		case 1:
			return rng.Pick(r, []string{"Paramount", "Palace", "Royal", "Grand"}) + " Theater"
		default:
			return "The " + title(rng.Pick(r, plainWords)) + " Playhouse"
		}
	case "arena", "stadium":
		return rng.Pick(r, lastNames) + " " + title(kind)
	default:
		return title(rng.Pick(r, plainWords)) + " " + rng.Pick(r, []string{"Amphitheater", "Pavilion", "Bowl", "Grounds"})
	}
}

func username(r *rand.Rand) string {
	first, last := personName(r)
	switch r.IntN(4) {
	case 0:
		return strings.ToLower(first) + "." + strings.ToLower(last)
	case 1:
		return fmt.Sprintf("%s%d", strings.ToLower(first), rng.Between(r, 1, 999))
	case 2:
		return fmt.Sprintf("music_%s_%d", rng.Pick(r, plainWords), rng.Between(r, 1, 99))
	default:
		prefix := rng.Pick(r, []string{"concert", "live", "music", "show"})
		return fmt.Sprintf("%s_%s%d", prefix, rng.Pick(r, plainWords), rng.Between(r, 1, 999))
	}
}

func email(r *rand.Rand, user string) string {
	return strings.ReplaceAll(user, ".", "") + "@" + rng.Pick(r, emailDomains)
}

func streetAddress(r *rand.Rand) string {
	return fmt.Sprintf("%d %s", rng.Between(r, 100, 9999), rng.Pick(r, streetNames))
}

func phoneNumber(r *rand.Rand) string {
	return fmt.Sprintf("(%d) %03d-%04d", rng.Between(r, 200, 989), rng.Between(r, 100, 999), rng.Between(r, 0, 9999))
}

func zipCode(r *rand.Rand) string {
	return fmt.Sprintf("%05d", rng.Between(r, 10000, 99999))
}

func tourName(r *rand.Rand, artist string, year int) string {
	switch r.IntN(4) {
	case 0:
		return fmt.Sprintf("%s World Tour %d", artist, year)
	case 1:
		return fmt.Sprintf("The %s Tour", title(rng.Pick(r, plainWords)))
	case 2:
		return fmt.Sprintf("%s - %s %s Tour", artist, title(rng.Pick(r, plainWords)), title(rng.Pick(r, plainWords)))
	default:
		return fmt.Sprintf("%s Tour %d", rng.Pick(r, []string{"Summer", "Fall", "Spring", "Winter"}), year)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
