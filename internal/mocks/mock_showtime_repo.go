package mocks

import (
	"context"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
)

type MockShowtimeRepo struct {
	domain.ShowtimeRepository
	CreateFunc        func(ctx context.Context, showtime *domain.Showtime) error
	GetByIdFunc       func(ctx context.Context, id int) (*domain.Showtime, error)
	GetAllFunc        func(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.Showtime, *domain.Metadata, error)
	GetAllByMovieFunc func(ctx context.Context, movieID int) ([]*domain.Showtime, error)
	UpdateFunc        func(ctx context.Context, showtime *domain.Showtime) error
	DeleteFunc        func(ctx context.Context, id int) error
}

func (m *MockShowtimeRepo) Create(ctx context.Context, showtime *domain.Showtime) error {
	return m.CreateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	return m.GetByIdFunc(ctx, id)
}

func (m *MockShowtimeRepo) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.Showtime, *domain.Metadata, error) {
	return m.GetAllFunc(ctx, filters)
}

func (m *MockShowtimeRepo) GetAllByMovie(ctx context.Context, movieID int) ([]*domain.Showtime, error) {
	return m.GetAllByMovieFunc(ctx, movieID)
}

func (m *MockShowtimeRepo) Update(ctx context.Context, showtime *domain.Showtime) error {
	return m.UpdateFunc(ctx, showtime)
}

func (m *MockShowtimeRepo) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}
