package movie

import (
	"time"

	"movify/errs"
)

var (
	ErrNotFound = errs.Errorf(errs.ENOTFOUND, "movie not found")

	errMissingTitle    = errs.Errorf(errs.EINVALID, "title is required")
	errMissingGenre    = errs.Errorf(errs.EINVALID, "genre is required")
	errUnknownGenre    = errs.Errorf(errs.EINVALID, "unknown genre")
	errMissingDirector = errs.Errorf(errs.EINVALID, "director is required")
	errMissingYear     = errs.Errorf(errs.EINVALID, "release year is required")
	errMissingDuration = errs.Errorf(errs.EINVALID, "duration is required")
	errMissingImageURL = errs.Errorf(errs.EINVALID, "image url is required")
	errRatingRange     = errs.Errorf(errs.EINVALID, "rating must be between 0 and 10")
)

// Defaults applied on create when the submitter leaves the field blank.
const (
	DefaultLanguage = "English"
	DefaultCountry  = "USA"
)

// Genres is the closed set of genres a movie may carry.
var Genres = []string{
	"Action", "Adventure", "Animation", "Biography", "Comedy", "Crime",
	"Documentary", "Drama", "Family", "Fantasy", "History", "Horror",
	"Musical", "Mystery", "Romance", "Sci-Fi", "Sport", "Thriller", "War", "Western",
}

// Sort keys accepted by List. Anything else falls back to newest-updated
// first.
const (
	SortMostPopular = "Most Popular"
	SortLatest      = "Latest"
)

// SortKeys lists the sort options in the order the listing page offers them.
var SortKeys = []string{SortMostPopular, SortLatest}

// Movie is one catalog record. ID and the timestamps are assigned by the
// store and are immutable here.
type Movie struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Genre       string    `json:"genre"`
	Director    string    `json:"director"`
	ReleaseYear int       `json:"releaseYear"`
	Duration    int       `json:"duration"`
	Rating      float64   `json:"rating,omitempty"`
	Cast        []string  `json:"cast,omitempty"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language"`
	Country     string    `json:"country"`
	ImageURL    string    `json:"imageUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (m Movie) Validate() error {
	if m.Title == "" {
		return errMissingTitle
	}
	if m.Genre == "" {
		return errMissingGenre
	}
	if !ValidGenre(m.Genre) {
		return errUnknownGenre
	}
	if m.Director == "" {
		return errMissingDirector
	}
	if m.ReleaseYear == 0 {
		return errMissingYear
	}
	if m.Duration == 0 {
		return errMissingDuration
	}
	if m.ImageURL == "" {
		return errMissingImageURL
	}
	if m.Rating < 0 || m.Rating > 10 {
		return errRatingRange
	}
	return nil
}

// ValidGenre reports whether g belongs to the genre set. Comparison is
// case-sensitive, matching what the store enforces.
func ValidGenre(g string) bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}
