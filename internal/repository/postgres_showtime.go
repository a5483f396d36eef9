package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresShowtimeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresShowtimeRepository(db *pgxpool.Pool) *PostgresShowtimeRepository {
	return &PostgresShowtimeRepository{
		db: db,
	}
}

// Create snapshots the theater's capacity into the showtime row; both
// capacity and available_seats start at that value. The INSERT ... SELECT
// keeps the snapshot atomic with the existence check on the theater.
func (p *PostgresShowtimeRepository) Create(ctx context.Context, showtime *domain.Showtime) error {
	query := `
		INSERT INTO showtimes (movie_id, theater_id, start_time, end_time, price, capacity, available_seats)
		SELECT $1, $2, $3, $4, $5, t.capacity, t.capacity
		FROM theaters t
		WHERE t.id = $2
		RETURNING id, capacity, available_seats, version, created_at`

	err := p.db.QueryRow(ctx,
		query,
		showtime.MovieID,
		showtime.TheaterID,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price).Scan(
		&showtime.ID,
		&showtime.Capacity,
		&showtime.AvailableSeats,
		&showtime.Version,
		&showtime.CreatedAt,
	)

	if err != nil {
		// No row from the SELECT means the theater does not exist.
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrRecordNotFound
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return domain.ErrShowtimeSlotTaken
			case pgerrcode.ForeignKeyViolation:
				return domain.ErrRecordNotFound
			}
		}

		return err
	}

	return nil
}

func (p *PostgresShowtimeRepository) GetById(ctx context.Context, id int) (*domain.Showtime, error) {
	query := `
		SELECT s.id, s.movie_id, s.theater_id, m.title, t.name,
			s.start_time, s.end_time, s.price, s.capacity, s.available_seats, s.version, s.created_at
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.id = $1`

	var showtime domain.Showtime

	err := p.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.TheaterID,
		&showtime.MovieTitle,
		&showtime.TheaterName,
		&showtime.StartTime,
		&showtime.EndTime,
		&showtime.Price,
		&showtime.Capacity,
		&showtime.AvailableSeats,
		&showtime.Version,
		&showtime.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &showtime, nil
}

func (p *PostgresShowtimeRepository) GetAll(ctx context.Context, filters domain.ShowtimeFilters) ([]*domain.Showtime, *domain.Metadata, error) {
	query := fmt.Sprintf(`
		SELECT count(*) OVER(), s.id, s.movie_id, s.theater_id, m.title, t.name,
			s.start_time, s.end_time, s.price, s.capacity, s.available_seats, s.version, s.created_at
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE ($1 = 0 OR s.movie_id = $1)
			AND ($2 = 0 OR s.theater_id = $2)
			AND ($3::date IS NULL OR s.start_time::date = $3::date)
		ORDER BY s.%s %s
		LIMIT $4 OFFSET $5`, filters.SortColumn(), filters.SortDirection())

	var dateArg any
	if !filters.Date.IsZero() {
		dateArg = filters.Date
	}

	rows, err := p.db.Query(ctx, query, filters.MovieID, filters.TheaterID, dateArg, filters.Limit(), filters.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	totalRecords := 0
	showtimes := []*domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&totalRecords,
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheaterID,
			&showtime.MovieTitle,
			&showtime.TheaterName,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
			&showtime.Capacity,
			&showtime.AvailableSeats,
			&showtime.Version,
			&showtime.CreatedAt,
		)

		if err != nil {
			return nil, nil, err
		}

		showtimes = append(showtimes, &showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, filters.Page, filters.PageSize)

	return showtimes, metadata, nil
}

func (p *PostgresShowtimeRepository) GetAllByMovie(ctx context.Context, movieID int) ([]*domain.Showtime, error) {
	query := `
		SELECT s.id, s.movie_id, s.theater_id, m.title, t.name,
			s.start_time, s.end_time, s.price, s.capacity, s.available_seats, s.version, s.created_at
		FROM showtimes s
		JOIN movies m ON s.movie_id = m.id
		JOIN theaters t ON s.theater_id = t.id
		WHERE s.movie_id = $1
		ORDER BY s.start_time`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	showtimes := []*domain.Showtime{}

	for rows.Next() {
		var showtime domain.Showtime

		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.TheaterID,
			&showtime.MovieTitle,
			&showtime.TheaterName,
			&showtime.StartTime,
			&showtime.EndTime,
			&showtime.Price,
			&showtime.Capacity,
			&showtime.AvailableSeats,
			&showtime.Version,
			&showtime.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		showtimes = append(showtimes, &showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return showtimes, nil
}

// Update changes schedule and price only, never the seat columns. The version
// guard rejects edits based on a stale read: any seat reservation or release
// in between bumps the version, so the administrative write fails with an
// edit conflict instead of clobbering the seat accounting.
func (p *PostgresShowtimeRepository) Update(ctx context.Context, showtime *domain.Showtime) error {
	query := `UPDATE showtimes
		SET start_time = $1, end_time = $2, price = $3, version = version + 1
		WHERE id = $4 AND version = $5
		RETURNING version`

	err := p.db.QueryRow(ctx,
		query,
		showtime.StartTime,
		showtime.EndTime,
		showtime.Price,
		showtime.ID,
		showtime.Version).Scan(&showtime.Version)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEditConflict
		}

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrShowtimeSlotTaken
		}

		return err
	}

	return nil
}

func (p *PostgresShowtimeRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM showtimes WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrResourceInUse
		}

		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
