package mongodb

import (
	"context"
	"errors"
	"time"

	"movify/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const movieCollection = "movies"

// movieDocument is the stored shape of a movie.
type movieDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Genre       string             `bson:"genre"`
	Director    string             `bson:"director"`
	ReleaseYear int                `bson:"releaseYear"`
	Duration    int                `bson:"duration"`
	Rating      float64            `bson:"rating,omitempty"`
	Cast        []string           `bson:"cast,omitempty"`
	Description string             `bson:"description,omitempty"`
	Language    string             `bson:"language"`
	Country     string             `bson:"country"`
	ImageURL    string             `bson:"imageUrl"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

func (d movieDocument) toMovie() movie.Movie {
	return movie.Movie{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Genre:       d.Genre,
		Director:    d.Director,
		ReleaseYear: d.ReleaseYear,
		Duration:    d.Duration,
		Rating:      d.Rating,
		Cast:        d.Cast,
		Description: d.Description,
		Language:    d.Language,
		Country:     d.Country,
		ImageURL:    d.ImageURL,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// MovieRepository implements movie.Repository on a mongo collection.
type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{collection: db.Collection(movieCollection)}
}

func (r *MovieRepository) CreateMovie(ctx context.Context, m movie.Movie) (movie.Movie, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	doc := movieDocument{
		Title:       m.Title,
		Genre:       m.Genre,
		Director:    m.Director,
		ReleaseYear: m.ReleaseYear,
		Duration:    m.Duration,
		Rating:      m.Rating,
		Cast:        m.Cast,
		Description: m.Description,
		Language:    m.Language,
		Country:     m.Country,
		ImageURL:    m.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return movie.Movie{}, err
	}

	doc.ID = result.InsertedID.(primitive.ObjectID)
	return doc.toMovie(), nil
}

func (r *MovieRepository) AllMovies(ctx context.Context, opts movie.ListOptions) ([]movie.Movie, error) {
	filter := bson.M{}
	if opts.Genre != "" {
		filter["genre"] = opts.Genre
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sortOrder(opts.Sort)))
	if err != nil {
		return nil, err
	}

	var docs []movieDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	movies := make([]movie.Movie, len(docs))
	for i, doc := range docs {
		movies[i] = doc.toMovie()
	}
	return movies, nil
}

// sortOrder translates a listing sort key into a mongo sort document. The
// trailing _id keeps the order stable between equal keys.
func sortOrder(key string) bson.D {
	switch key {
	case movie.SortMostPopular:
		return bson.D{{Key: "rating", Value: -1}, {Key: "_id", Value: -1}}
	case movie.SortLatest:
		return bson.D{{Key: "releaseYear", Value: -1}, {Key: "_id", Value: -1}}
	default:
		return bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: -1}}
	}
}

func (r *MovieRepository) MovieByID(ctx context.Context, id string) (movie.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return movie.Movie{}, movie.ErrNotFound
	}

	var doc movieDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, movie.ErrNotFound
	} else if err != nil {
		return movie.Movie{}, err
	}

	return doc.toMovie(), nil
}

func (r *MovieRepository) UpdateMovie(ctx context.Context, id string, m movie.Movie) (movie.Movie, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return movie.Movie{}, movie.ErrNotFound
	}

	update := bson.M{
		"$set": bson.M{
			"title":       m.Title,
			"genre":       m.Genre,
			"director":    m.Director,
			"releaseYear": m.ReleaseYear,
			"duration":    m.Duration,
			"rating":      m.Rating,
			"cast":        m.Cast,
			"description": m.Description,
			"language":    m.Language,
			"country":     m.Country,
			"imageUrl":    m.ImageURL,
			"updatedAt":   time.Now().UTC().Truncate(time.Millisecond),
		},
	}

	var doc movieDocument
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return movie.Movie{}, movie.ErrNotFound
	} else if err != nil {
		return movie.Movie{}, err
	}

	return doc.toMovie(), nil
}

// DeleteMovie removes the document. Absence and malformed ids are treated as
// already deleted.
func (r *MovieRepository) DeleteMovie(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	err = r.collection.FindOneAndDelete(ctx, bson.M{"_id": oid}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil
	}
	return err
}
