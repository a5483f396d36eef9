package repository

import (
	"context"
	"errors"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/cinetixhq/cinema-booking-system/internal/inventory"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

// CreateWithReservation runs the reserve-then-create protocol: the seat
// decrement and the booking INSERT share one transaction, so a failed
// reservation leaves no booking row and a failed insert returns the seats.
func (p *PostgresBookingRepository) CreateWithReservation(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		err := inventory.Reserve(ctx, tx, booking.ShowtimeID, booking.NumberOfTickets)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO bookings (reference, user_id, showtime_id, number_of_tickets, total_price, status)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at`

		return tx.QueryRow(ctx,
			query,
			booking.Reference,
			booking.UserID,
			booking.ShowtimeID,
			booking.NumberOfTickets,
			booking.TotalPrice,
			booking.Status).Scan(&booking.ID, &booking.CreatedAt)
	})
}

// CancelWithRelease flips the booking to cancelled and gives its tickets back
// to the showtime inside one transaction. The conditional UPDATE on status is
// the idempotency guard: a booking can only pass through it once, so seats
// are released exactly once no matter how often cancellation is retried.
func (p *PostgresBookingRepository) CancelWithRelease(ctx context.Context, booking *domain.Booking) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			UPDATE bookings
			SET status = $1
			WHERE id = $2 AND status <> $1`

		tag, err := tx.Exec(ctx, query, domain.BookingCancelled, booking.ID)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			var status domain.BookingStatus

			err := tx.QueryRow(ctx, `SELECT status FROM bookings WHERE id = $1`, booking.ID).Scan(&status)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return domain.ErrRecordNotFound
				}

				return err
			}

			return domain.ErrAlreadyCancelled
		}

		err = inventory.Release(ctx, tx, booking.ShowtimeID, booking.NumberOfTickets)
		if err != nil {
			return err
		}

		booking.Status = domain.BookingCancelled

		return nil
	})
}

const bookingColumns = `
	b.id, b.reference, b.user_id, b.showtime_id, m.title, t.name,
	s.start_time, b.number_of_tickets, b.total_price, b.status, b.created_at`

func (p *PostgresBookingRepository) GetById(ctx context.Context, id int) (*domain.Booking, error) {
	query := `
		SELECT` + bookingColumns + `
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE b.id = $1`

	var booking domain.Booking

	err := p.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.ShowtimeID,
		&booking.MovieTitle,
		&booking.TheaterName,
		&booking.StartTime,
		&booking.NumberOfTickets,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &booking, nil
}

func (p *PostgresBookingRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]*domain.Booking, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(),` + bookingColumns + `
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	return collectBookings(rows, pagination)
}

func (p *PostgresBookingRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]*domain.Booking, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(),` + bookingColumns + `
		FROM bookings b
		JOIN showtimes s ON b.showtime_id = s.id
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	return collectBookings(rows, pagination)
}

func collectBookings(rows pgx.Rows, pagination domain.Pagination) ([]*domain.Booking, *domain.Metadata, error) {
	totalRecords := 0
	bookings := []*domain.Booking{}

	for rows.Next() {
		var booking domain.Booking

		err := rows.Scan(
			&totalRecords,
			&booking.ID,
			&booking.Reference,
			&booking.UserID,
			&booking.ShowtimeID,
			&booking.MovieTitle,
			&booking.TheaterName,
			&booking.StartTime,
			&booking.NumberOfTickets,
			&booking.TotalPrice,
			&booking.Status,
			&booking.CreatedAt,
		)

		if err != nil {
			return nil, nil, err
		}

		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return bookings, metadata, nil
}
