package emit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"soundcheck/internal/model"
)

// Read loads a full dataset back from a previously written directory.
// Every file must be present and carry the expected header.
func Read(dir string) (*model.Dataset, error) {
	ds := &model.Dataset{}

	load := func(name string, header []string, row func(p *parser, rec []string) error) error {
		recs, err := readCSV(filepath.Join(dir, name), header)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
		for i, rec := range recs {
			p := &parser{}
			if err := row(p, rec); err != nil || p.err != nil {
				if err == nil {
					err = p.err
				}
				return fmt.Errorf("read %s: row %d: %w", name, i+1, err)
			}
		}
		return nil
	}

	if err := load(CitiesFile, model.CityHeader, func(p *parser, rec []string) error {
		ds.Cities = append(ds.Cities, model.City{
			ID: rec[0], Name: rec[1], State: rec[2],
			Population:     p.int(rec[3]),
			SceneScore:     p.float(rec[4]),
			PrimaryGenres:  p.strings(rec[5]),
			AvgTicketPrice: p.money(rec[6]),
			TotalVenues:    p.int(rec[7]),
			Timezone:       rec[8],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(UsersFile, model.UserHeader, func(p *parser, rec []string) error {
		ds.Users = append(ds.Users, model.User{
			ID: rec[0], Username: rec[1], Email: rec[2],
			Verified:            p.boolean(rec[3]),
			Segment:             model.Segment(rec[4]),
			JoinDate:            p.date(rec[5]),
			HomeCity:            rec[6],
			HomeState:           rec[7],
			AgeGroup:            rec[8],
			PreferredGenres:     p.strings(rec[9]),
			ProfileCompleteness: p.float(rec[10]),
			EmailVerified:       p.boolean(rec[11]),
			PushNotifications:   p.boolean(rec[12]),
			LastActive:          p.date(rec[13]),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(ArtistsFile, model.ArtistHeader, func(p *parser, rec []string) error {
		ds.Artists = append(ds.Artists, model.Artist{
			ID: rec[0], Name: rec[1],
			FormedYear:       p.int(rec[2]),
			OriginCity:       rec[3],
			OriginState:      rec[4],
			OriginCountry:    rec[5],
			MonthlyListeners: p.int64(rec[6]),
			SocialFollowers:  p.int64(rec[7]),
			GenrePrimary:     rec[8],
			GenreSecondary:   rec[9],
			BookingPriceMin:  p.money(rec[10]),
			BookingPriceMax:  p.money(rec[11]),
			Tier:             model.PopularityTier(rec[12]),
			TourFrequency:    rec[13],
			HasLabel:         p.boolean(rec[14]),
			VerifiedArtist:   p.boolean(rec[15]),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(VenuesFile, model.VenueHeader, func(p *parser, rec []string) error {
		ds.Venues = append(ds.Venues, model.Venue{
			ID: rec[0], Name: rec[1], Address: rec[2], City: rec[3], State: rec[4], Zip: rec[5],
			Latitude:         p.float(rec[6]),
			Longitude:        p.float(rec[7]),
			Type:             model.VenueType(rec[8]),
			Capacity:         p.int(rec[9]),
			StandingCapacity: p.int(rec[10]),
			OpenedYear:       p.int(rec[11]),
			Parking:          p.boolean(rec[12]),
			Valet:            p.boolean(rec[13]),
			Food:             p.boolean(rec[14]),
			FullBar:          p.boolean(rec[15]),
			ADAAccessible:    p.boolean(rec[16]),
			BoxOffice:        p.boolean(rec[17]),
			TicketFee:        p.money(rec[18]),
			Website:          rec[19],
			Phone:            rec[20],
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(ToursFile, model.TourHeader, func(p *parser, rec []string) error {
		ds.Tours = append(ds.Tours, model.Tour{
			ID: rec[0], Name: rec[1], ArtistID: rec[2],
			StartDate:       p.date(rec[3]),
			EndDate:         p.date(rec[4]),
			NumShows:        p.int(rec[5]),
			Type:            rec[6],
			Legs:            p.int(rec[7]),
			ProductionLevel: model.PopularityTier(rec[8]),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(EventsFile, model.EventHeader, func(p *parser, rec []string) error {
		e := model.Event{
			ID: rec[0], Name: rec[1], ArtistID: rec[2], VenueID: rec[3], TourID: rec[4],
			Date:               p.date(rec[5]),
			DayOfWeek:          rec[6],
			DoorsTime:          rec[7],
			ShowTime:           rec[8],
			AnnouncedDate:      p.date(rec[9]),
			OnSaleDate:         p.date(rec[10]),
			BasePrice:          p.money(rec[11]),
			Vendor:             rec[13],
			AgeRestriction:     rec[14],
			Status:             model.EventStatus(rec[16]),
			CancellationReason: rec[17],
			Weather:            rec[19],
			SpecialEvent:       p.boolean(rec[20]),
		}
		if rec[12] != "" {
			vip := p.money(rec[12])
			e.VIPPrice = &vip
		}
		if rec[15] != "" {
			e.OpeningActs = p.strings(rec[15])
		}
		if rec[18] != "" {
			att := p.int(rec[18])
			e.Attendance = &att
		}
		ds.Events = append(ds.Events, e)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(TicketSalesFile, model.TicketSaleHeader, func(p *parser, rec []string) error {
		ds.TicketSales = append(ds.TicketSales, model.TicketSale{
			ID: rec[0], EventID: rec[1],
			SaleDate:        p.date(rec[2]),
			DaysBeforeEvent: p.int(rec[3]),
			Quantity:        p.int(rec[4]),
			Type:            rec[5],
			UnitPrice:       p.money(rec[6]),
			Fees:            p.money(rec[7]),
			Total:           p.money(rec[8]),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(EventRatingsFile, model.EventRatingHeader, func(p *parser, rec []string) error {
		r := model.EventRating{
			ID: rec[0], EventID: rec[1], UserID: rec[2],
			Score:              p.float(rec[3]),
			Date:               p.date(rec[4]),
			DaysAfterEvent:     p.int(rec[5]),
			ReviewTitle:        rec[6],
			ReviewText:         rec[7],
			VerifiedAttendance: p.boolean(rec[8]),
			HelpfulCount:       p.int(rec[9]),
			Reported:           p.boolean(rec[10]),
		}
		p.aspects(rec[11], &r.Aspects)
		ds.EventRatings = append(ds.EventRatings, r)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(ArtistRatingsFile, model.ArtistRatingHeader, func(p *parser, rec []string) error {
		r := model.ArtistRating{
			ID: rec[0], ArtistID: rec[1], UserID: rec[2],
			Date:  p.date(rec[3]),
			Score: p.float(rec[4]),
		}
		p.aspects(rec[5], &r.Aspects)
		ds.ArtistRatings = append(ds.ArtistRatings, r)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(VenueReviewsFile, model.VenueReviewHeader, func(p *parser, rec []string) error {
		r := model.VenueReview{
			ID: rec[0], VenueID: rec[1], UserID: rec[2],
			Date:       p.date(rec[3]),
			Score:      p.float(rec[4]),
			ReviewText: rec[5],
		}
		p.aspects(rec[6], &r.Aspects)
		ds.VenueReviews = append(ds.VenueReviews, r)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := load(FollowsFile, model.FollowHeader, func(p *parser, rec []string) error {
		ds.Follows = append(ds.Follows, model.UserArtistFollow{
			ID: rec[0], UserID: rec[1], ArtistID: rec[2],
			FollowDate:    p.date(rec[3]),
			Notifications: p.boolean(rec[4]),
		})
		return nil
	}); err != nil {
		return nil, err
	}

	return ds, nil
}

func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row")
	}
	for i, col := range rows[0] {
		if col != header[i] {
			return nil, fmt.Errorf("unexpected column %d: got %q, want %q", i, col, header[i])
		}
	}
	return rows[1:], nil
}

// parser accumulates the first conversion error across a row so record
// builders can stay declarative.
type parser struct {
	err error
}

func (p *parser) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *parser) int(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		p.fail(err)
	}
	return n
}

func (p *parser) int64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		p.fail(err)
	}
	return n
}

func (p *parser) float(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		p.fail(err)
	}
	return f
}

func (p *parser) boolean(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		p.fail(err)
	}
	return b
}

func (p *parser) date(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		p.fail(err)
	}
	return t
}

func (p *parser) money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		p.fail(err)
	}
	return d
}

func (p *parser) strings(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		p.fail(err)
	}
	return out
}

func (p *parser) aspects(s string, v interface{}) {
	if err := json.Unmarshal([]byte(s), v); err != nil {
		p.fail(err)
	}
}
