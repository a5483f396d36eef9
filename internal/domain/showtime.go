package domain

import (
	"context"
	"time"
)

// Showtime is a scheduled screening. Capacity is a snapshot of the theater's
// capacity at creation time; AvailableSeats is the running counter owned by
// the inventory package, which is the only code allowed to change it.
// Version is bumped on every mutation (seat adjustments included) so that
// administrative edits and seat accounting cannot race destructively.
type Showtime struct {
	ID             int
	MovieID        int
	TheaterID      int
	MovieTitle     string
	TheaterName    string
	StartTime      time.Time
	EndTime        time.Time
	Price          float64
	Capacity       int
	AvailableSeats int
	Version        int
	CreatedAt      time.Time
}

type ShowtimeFilters struct {
	Pagination
	MovieID   int
	TheaterID int
	Date      time.Time
}

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *Showtime) error
	GetById(ctx context.Context, id int) (*Showtime, error)
	GetAll(ctx context.Context, filters ShowtimeFilters) ([]*Showtime, *Metadata, error)
	GetAllByMovie(ctx context.Context, movieID int) ([]*Showtime, error)
	Update(ctx context.Context, showtime *Showtime) error
	Delete(ctx context.Context, id int) error
}
