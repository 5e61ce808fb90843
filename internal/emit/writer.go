// Package emit writes and reads the flat-file form of a generated
// dataset. A run is emitted into a temporary directory and renamed
// into place only after every file is flushed, so consumers never
// observe a half-written dataset.
package emit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"soundcheck/internal/model"
)

// File names inside an output directory.
const (
	CitiesFile        = "cities.csv"
	UsersFile         = "users.csv"
	ArtistsFile       = "artists.csv"
	VenuesFile        = "venues.csv"
	ToursFile         = "tours.csv"
	EventsFile        = "events.csv"
	TicketSalesFile   = "ticket_sales.csv"
	EventRatingsFile  = "event_ratings.csv"
	ArtistRatingsFile = "artist_ratings.csv"
	VenueReviewsFile  = "venue_reviews.csv"
	FollowsFile       = "user_artist_follows.csv"
	ManifestFile      = "manifest.json"
)

// Manifest records what a run produced, alongside the inputs needed to
// reproduce it. ReferenceDate is the resolved "today" the pipeline ran
// against; replaying the seed without it would drift once the calendar
// moves.
type Manifest struct {
	RunID         string         `json:"run_id"`
	Seed          int64          `json:"seed"`
	ReferenceDate string         `json:"reference_date"`
	GeneratedAt   time.Time      `json:"generated_at"`
	Rows          map[string]int `json:"rows"`
}

// Write emits the dataset under dir, replacing any previous contents.
// The swap is all-or-nothing: on error the existing directory is left
// untouched.
func Write(dir string, seed int64, ref time.Time, ds *model.Dataset) (*Manifest, error) {
	parent := filepath.Dir(dir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, fmt.Errorf("create output parent: %w", err)
	}
	tmp, err := os.MkdirTemp(parent, ".soundcheck-")
	if err != nil {
		return nil, fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	manifest := &Manifest{
		RunID:         uuid.NewString(),
		Seed:          seed,
		ReferenceDate: ref.Format(model.DateLayout),
		GeneratedAt:   time.Now().UTC(),
		Rows:          make(map[string]int),
	}

	write := func(name string, header []string, n int, record func(int) []string) {
		if err != nil {
			return
		}
		if werr := writeCSV(filepath.Join(tmp, name), header, n, record); werr != nil {
			err = fmt.Errorf("write %s: %w", name, werr)
			return
		}
		manifest.Rows[name] = n
	}

	write(CitiesFile, model.CityHeader, len(ds.Cities), func(i int) []string { return ds.Cities[i].Record() })
	write(UsersFile, model.UserHeader, len(ds.Users), func(i int) []string { return ds.Users[i].Record() })
	write(ArtistsFile, model.ArtistHeader, len(ds.Artists), func(i int) []string { return ds.Artists[i].Record() })
	write(VenuesFile, model.VenueHeader, len(ds.Venues), func(i int) []string { return ds.Venues[i].Record() })
	write(ToursFile, model.TourHeader, len(ds.Tours), func(i int) []string { return ds.Tours[i].Record() })
	write(EventsFile, model.EventHeader, len(ds.Events), func(i int) []string { return ds.Events[i].Record() })
	write(TicketSalesFile, model.TicketSaleHeader, len(ds.TicketSales), func(i int) []string { return ds.TicketSales[i].Record() })
	write(EventRatingsFile, model.EventRatingHeader, len(ds.EventRatings), func(i int) []string { return ds.EventRatings[i].Record() })
	write(ArtistRatingsFile, model.ArtistRatingHeader, len(ds.ArtistRatings), func(i int) []string { return ds.ArtistRatings[i].Record() })
	write(VenueReviewsFile, model.VenueReviewHeader, len(ds.VenueReviews), func(i int) []string { return ds.VenueReviews[i].Record() })
	write(FollowsFile, model.FollowHeader, len(ds.Follows), func(i int) []string { return ds.Follows[i].Record() })
	if err != nil {
		return nil, err
	}

	if err := writeManifest(filepath.Join(tmp, ManifestFile), manifest); err != nil {
		return nil, err
	}

	if err := os.RemoveAll(dir); err != nil {
		return nil, fmt.Errorf("remove previous output: %w", err)
	}
	if err := os.Rename(tmp, dir); err != nil {
		return nil, fmt.Errorf("move output into place: %w", err)
	}
	return manifest, nil
}

func writeCSV(path string, header []string, n int, record func(int) []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return err
	}
	for i := 0; i < n; i++ {
		if err := w.Write(record(i)); err != nil {
			f.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeManifest(path string, m *Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// ReadManifest loads the manifest from a previously written directory.
func ReadManifest(dir string) (*Manifest, error) {
	b, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return &m, nil
}
