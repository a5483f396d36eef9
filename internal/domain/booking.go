package domain

import (
	"context"
	"time"
)

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

// Active reports whether the booking currently holds seats. Confirmed and
// pending bookings are treated identically for seat accounting.
func (s BookingStatus) Active() bool {
	return s == BookingConfirmed || s == BookingPending
}

// Booking is immutable after creation except for the one-way transition to
// cancelled. TotalPrice is fixed at creation time from the showtime's price.
type Booking struct {
	ID              int
	Reference       string
	UserID          int
	ShowtimeID      int
	MovieTitle      string
	TheaterName     string
	StartTime       time.Time
	NumberOfTickets int
	TotalPrice      float64
	Status          BookingStatus
	CreatedAt       time.Time
}

type BookingRepository interface {
	// CreateWithReservation persists the booking and decrements the
	// showtime's seat inventory in a single transaction. It returns
	// ErrRecordNotFound when the showtime does not exist and
	// ErrInsufficientCapacity when fewer seats remain than requested;
	// in both cases no booking row is written.
	CreateWithReservation(ctx context.Context, booking *Booking) error

	// CancelWithRelease flips the booking to cancelled and releases its
	// tickets back to the showtime in a single transaction. It returns
	// ErrAlreadyCancelled when the booking was cancelled before.
	CancelWithRelease(ctx context.Context, booking *Booking) error

	GetById(ctx context.Context, id int) (*Booking, error)
	GetAllByUserId(ctx context.Context, userID int, pagination Pagination) ([]*Booking, *Metadata, error)
	GetAll(ctx context.Context, pagination Pagination) ([]*Booking, *Metadata, error)
}
