package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"movify/mongodb"
	"movify/movie"
	"movify/pkg/config"
)

// sampleCatalog is inserted when no JSON file is given.
var sampleCatalog = []movie.Movie{
	{
		Title:       "The Thing",
		Genre:       "Horror",
		Director:    "John Carpenter",
		ReleaseYear: 1982,
		Duration:    109,
		Rating:      8.2,
		Cast:        []string{"Kurt Russell", "Keith David"},
		Description: "An Antarctic research crew finds a shape-shifting alien.",
		ImageURL:    "https://image.example.com/the-thing.jpg",
	},
	{
		Title:       "Chungking Express",
		Genre:       "Romance",
		Director:    "Wong Kar-wai",
		ReleaseYear: 1994,
		Duration:    102,
		Rating:      8.0,
		Cast:        []string{"Tony Leung", "Faye Wong"},
		Description: "Two Hong Kong policemen fall for very different women.",
		Language:    "Cantonese",
		Country:     "Hong Kong",
		ImageURL:    "https://image.example.com/chungking-express.jpg",
	},
	{
		Title:       "Spirited Away",
		Genre:       "Animation",
		Director:    "Hayao Miyazaki",
		ReleaseYear: 2001,
		Duration:    125,
		Rating:      8.6,
		Description: "A girl must free her parents from a spirit bathhouse.",
		Language:    "Japanese",
		Country:     "Japan",
		ImageURL:    "https://image.example.com/spirited-away.jpg",
	},
	{
		Title:       "Mad Max: Fury Road",
		Genre:       "Action",
		Director:    "George Miller",
		ReleaseYear: 2015,
		Duration:    120,
		Rating:      8.1,
		Cast:        []string{"Tom Hardy", "Charlize Theron"},
		Description: "A convoy flees a tyrant across the wasteland.",
		Country:     "Australia",
		ImageURL:    "https://image.example.com/fury-road.jpg",
	},
}

func main() {
	var jsonPath string
	flag.StringVar(&jsonPath, "json", "", "Path to a JSON array of movies (default: built-in sample catalog)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("load config failed", "error", err)
		os.Exit(1)
	}

	db, err := mongodb.NewConnection(context.Background(), mongodb.Options{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		slog.Error("cannot open mongodb connection", "error", err)
		os.Exit(1)
	}

	movies := sampleCatalog
	if jsonPath != "" {
		movies, err = loadMovies(jsonPath)
		if err != nil {
			slog.Error("load movies failed", "error", err)
			os.Exit(1)
		}
	}

	uc := movie.NewUsecase(mongodb.NewMovieRepository(db))
	count := 0
	for _, m := range movies {
		if _, err := uc.AddMovie(context.Background(), m); err != nil {
			slog.Error("skipping movie", "title", m.Title, "error", err)
			continue
		}
		count++
	}

	slog.Info("seed completed", "inserted", count, "total", len(movies))
}

func loadMovies(path string) ([]movie.Movie, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var movies []movie.Movie
	if err := json.Unmarshal(data, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}
