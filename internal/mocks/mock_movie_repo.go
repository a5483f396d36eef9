package mocks

import (
	"context"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
)

type MockMovieRepo struct {
	domain.MovieRepository
	GetAllFunc      func(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error)
	GetFeaturedFunc func(ctx context.Context) ([]*domain.Movie, error)
	GetByIdFunc     func(ctx context.Context, id int) (*domain.Movie, error)
	CreateFunc      func(ctx context.Context, movie *domain.Movie) error
	UpdateFunc      func(ctx context.Context, movie *domain.Movie) error
	DeleteFunc      func(ctx context.Context, id int) error
}

func (m *MockMovieRepo) GetAll(ctx context.Context, pagination domain.Pagination) ([]*domain.Movie, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, pagination)
}

func (m *MockMovieRepo) GetFeatured(ctx context.Context) ([]*domain.Movie, error) {
	return m.GetFeaturedFunc(ctx)
}

func (m *MockMovieRepo) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockMovieRepo) Create(ctx context.Context, movie *domain.Movie) error {
	return m.CreateFunc(ctx, movie)
}

func (m *MockMovieRepo) Update(ctx context.Context, movie *domain.Movie) error {
	return m.UpdateFunc(ctx, movie)
}

func (m *MockMovieRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
