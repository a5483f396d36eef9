package domain

import (
	"context"
	"time"
)

// Genres is the closed set of accepted movie genres.
var Genres = []string{
	"Action", "Adventure", "Animation", "Comedy", "Crime", "Documentary",
	"Drama", "Family", "Fantasy", "Horror", "Mystery", "Romance", "Sci-Fi",
	"Thriller", "War",
}

type Movie struct {
	ID          int
	Title       string
	Description string
	Genre       string
	Duration    int
	ReleaseDate time.Time
	PosterUrl   string
	Rating      float64
	Featured    bool
	CreatedAt   time.Time
}

type MovieRepository interface {
	GetAll(ctx context.Context, pagination Pagination) ([]*Movie, *Metadata, error)
	GetFeatured(ctx context.Context) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) error
}
