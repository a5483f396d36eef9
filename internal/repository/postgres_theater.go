package repository

import (
	"context"
	"errors"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresTheaterRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTheaterRepository(db *pgxpool.Pool) *PostgresTheaterRepository {
	return &PostgresTheaterRepository{
		db: db,
	}
}

func (p *PostgresTheaterRepository) GetAll(ctx context.Context) ([]*domain.Theater, error) {
	query := `SELECT id, name, location, capacity, amenities, created_at
		FROM theaters
		ORDER BY name`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	theaters := []*domain.Theater{}

	for rows.Next() {
		var theater domain.Theater

		err := rows.Scan(
			&theater.ID,
			&theater.Name,
			&theater.Location,
			&theater.Capacity,
			&theater.Amenities,
			&theater.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		theaters = append(theaters, &theater)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return theaters, nil
}

func (p *PostgresTheaterRepository) GetById(ctx context.Context, id int) (*domain.Theater, error) {
	query := `SELECT id, name, location, capacity, amenities, created_at
		FROM theaters
		WHERE id = $1`

	var theater domain.Theater

	err := p.db.QueryRow(ctx, query, id).Scan(
		&theater.ID,
		&theater.Name,
		&theater.Location,
		&theater.Capacity,
		&theater.Amenities,
		&theater.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &theater, nil
}

func (p *PostgresTheaterRepository) Create(ctx context.Context, theater *domain.Theater) error {
	query := `INSERT INTO theaters (name, location, capacity, amenities)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`

	return p.db.QueryRow(ctx,
		query,
		theater.Name,
		theater.Location,
		theater.Capacity,
		theater.Amenities).Scan(&theater.ID, &theater.CreatedAt)
}

// Update deliberately leaves capacity alone: existing showtimes carry a
// capacity snapshot, and resizing a theater under them would break the seat
// accounting invariant.
func (p *PostgresTheaterRepository) Update(ctx context.Context, theater *domain.Theater) error {
	query := `UPDATE theaters
		SET name = $1, location = $2, amenities = $3
		WHERE id = $4`

	tag, err := p.db.Exec(ctx,
		query,
		theater.Name,
		theater.Location,
		theater.Amenities,
		theater.ID)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (p *PostgresTheaterRepository) Delete(ctx context.Context, id int) error {
	tag, err := p.db.Exec(ctx, `DELETE FROM theaters WHERE id = $1`, id)
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
