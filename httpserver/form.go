package httpserver

import (
	"fmt"
	"strconv"
	"strings"

	"movify/movie"
)

// MovieForm is the view data for the post/edit form. Every value is a
// string so the template never renders a Go zero value; blank means the
// field starts empty.
type MovieForm struct {
	ID         string
	Action     string
	FormTitle  string
	ButtonText string

	Title       string
	Genre       string
	Director    string
	ReleaseYear string
	Duration    string
	Rating      string
	Cast        string
	Language    string
	Country     string
	ImageURL    string
	Description string

	// Genres feeds the genre select box.
	Genres []string
}

// NewMovieForm assembles the form for m; a nil movie yields the blank
// "create" variant posting to the create endpoint, a stored movie yields
// the pre-filled "edit" variant targeting its update endpoint.
func NewMovieForm(m *movie.Movie) MovieForm {
	form := MovieForm{
		Action:     "/movie",
		FormTitle:  "Post Movie",
		ButtonText: "Post",
		Genres:     movie.Genres,
	}
	if m == nil {
		return form
	}

	form.ID = m.ID
	form.Action = fmt.Sprintf("/movie/%s?_method=PUT", m.ID)
	form.FormTitle = "Edit Movie"
	form.ButtonText = "Update"
	form.Title = m.Title
	form.Genre = m.Genre
	form.Director = m.Director
	form.ReleaseYear = intField(m.ReleaseYear)
	form.Duration = intField(m.Duration)
	form.Rating = ratingField(m.Rating)
	form.Cast = strings.Join(m.Cast, ", ")
	form.Language = m.Language
	form.Country = m.Country
	form.ImageURL = m.ImageURL
	form.Description = m.Description
	return form
}

func intField(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func ratingField(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
