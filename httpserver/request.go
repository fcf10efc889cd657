package httpserver

import (
	"strings"

	"movify/movie"
)

// MovieRequest binds the post/edit form fields. Cast arrives as one
// comma-separated input and is split here.
type MovieRequest struct {
	Title       string  `form:"title" validate:"required"`
	Genre       string  `form:"genre" validate:"required,genre"`
	Director    string  `form:"director" validate:"required"`
	ReleaseYear int     `form:"releaseYear" validate:"required"`
	Duration    int     `form:"duration" validate:"required,min=1"`
	Rating      float64 `form:"rating" validate:"omitempty,min=0,max=10"`
	Cast        string  `form:"cast"`
	Description string  `form:"description"`
	Language    string  `form:"language"`
	Country     string  `form:"country"`
	ImageURL    string  `form:"imageUrl" validate:"required,url"`
}

func (r MovieRequest) ToMovie() movie.Movie {
	return movie.Movie{
		Title:       strings.TrimSpace(r.Title),
		Genre:       r.Genre,
		Director:    strings.TrimSpace(r.Director),
		ReleaseYear: r.ReleaseYear,
		Duration:    r.Duration,
		Rating:      r.Rating,
		Cast:        splitCast(r.Cast),
		Description: strings.TrimSpace(r.Description),
		Language:    strings.TrimSpace(r.Language),
		Country:     strings.TrimSpace(r.Country),
		ImageURL:    strings.TrimSpace(r.ImageURL),
	}
}

func splitCast(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	cast := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			cast = append(cast, name)
		}
	}
	return cast
}
