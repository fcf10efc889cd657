package httpserver_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"movify/movie"
	"movify/pkg/config"

	"github.com/stretchr/testify/mock"
)

const testSecretKey = "test-secret-key"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey = testSecretKey
	return cfg
}

type MockMovieService struct {
	mock.Mock
}

func (m *MockMovieService) AddMovie(ctx context.Context, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) ListMovies(ctx context.Context, opts movie.ListOptions) ([]movie.Movie, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).([]movie.Movie), args.Error(1)
}

func (m *MockMovieService) GetMovie(ctx context.Context, id string) (movie.Movie, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id string, mv movie.Movie) (movie.Movie, error) {
	args := m.Called(ctx, id, mv)
	return args.Get(0).(movie.Movie), args.Error(1)
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func storedMovie() movie.Movie {
	return movie.Movie{
		ID:          "65a000000000000000000001",
		Title:       "Alien",
		Genre:       "Horror",
		Director:    "Ridley Scott",
		ReleaseYear: 1979,
		Duration:    117,
		Rating:      8.5,
		Cast:        []string{"Sigourney Weaver", "Tom Skerritt"},
		Description: "The crew of a commercial spacecraft encounters a lethal lifeform.",
		Language:    "English",
		Country:     "USA",
		ImageURL:    "https://example.com/alien.jpg",
	}
}

func movieFormValues() url.Values {
	return url.Values{
		"title":       {"Alien"},
		"genre":       {"Horror"},
		"director":    {"Ridley Scott"},
		"releaseYear": {"1979"},
		"duration":    {"117"},
		"rating":      {"8.5"},
		"cast":        {"Sigourney Weaver, Tom Skerritt"},
		"description": {"The crew of a commercial spacecraft encounters a lethal lifeform."},
		"language":    {"English"},
		"country":     {"USA"},
		"imageUrl":    {"https://example.com/alien.jpg"},
	}
}

func newFormRequest(target string, values url.Values) *http.Request {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return request
}
