package domain

import (
	"context"
	"time"
)

// Amenities is the closed set of accepted theater amenities.
var Amenities = []string{
	"Dolby Atmos", "IMAX", "3D", "Recliner Seats", "Food Service",
	"Parking", "Wheelchair Accessible",
}

type Theater struct {
	ID        int
	Name      string
	Location  string
	Capacity  int
	Amenities []string
	CreatedAt time.Time
}

type TheaterRepository interface {
	GetAll(ctx context.Context) ([]*Theater, error)
	GetById(ctx context.Context, id int) (*Theater, error)
	Create(ctx context.Context, theater *Theater) error
	Update(ctx context.Context, theater *Theater) error
	Delete(ctx context.Context, id int) error
}
