package movie

import "context"

// ListOptions narrows and orders a listing. Zero value means every movie,
// newest-updated first.
type ListOptions struct {
	// Genre filters by exact match when non-empty.
	Genre string

	// Sort is one of the Sort* keys. Unrecognized values keep the
	// default order.
	Sort string
}

type Service interface {
	AddMovie(ctx context.Context, m Movie) (Movie, error)
	ListMovies(ctx context.Context, opts ListOptions) ([]Movie, error)
	GetMovie(ctx context.Context, id string) (Movie, error)
	UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type Repository interface {
	CreateMovie(ctx context.Context, m Movie) (Movie, error)
	AllMovies(ctx context.Context, opts ListOptions) ([]Movie, error)
	MovieByID(ctx context.Context, id string) (Movie, error)
	UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error)
	DeleteMovie(ctx context.Context, id string) error
}

type Usecase struct {
	r Repository
}

func NewUsecase(r Repository) *Usecase {
	return &Usecase{r: r}
}

// AddMovie validates m, fills the documented defaults and stores it. The
// returned movie carries the store-assigned ID and timestamps.
func (uc *Usecase) AddMovie(ctx context.Context, m Movie) (Movie, error) {
	if m.Language == "" {
		m.Language = DefaultLanguage
	}
	if m.Country == "" {
		m.Country = DefaultCountry
	}
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.CreateMovie(ctx, m)
}

func (uc *Usecase) ListMovies(ctx context.Context, opts ListOptions) ([]Movie, error) {
	return uc.r.AllMovies(ctx, opts)
}

func (uc *Usecase) GetMovie(ctx context.Context, id string) (Movie, error) {
	return uc.r.MovieByID(ctx, id)
}

func (uc *Usecase) UpdateMovie(ctx context.Context, id string, m Movie) (Movie, error) {
	if err := m.Validate(); err != nil {
		return Movie{}, err
	}
	return uc.r.UpdateMovie(ctx, id, m)
}

// DeleteMovie removes the record. Deleting an absent or malformed id is not
// an error; callers treat it as already gone.
func (uc *Usecase) DeleteMovie(ctx context.Context, id string) error {
	return uc.r.DeleteMovie(ctx, id)
}
