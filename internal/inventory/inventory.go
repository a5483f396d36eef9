// Package inventory owns the seat counter of a showtime. Every mutation of
// available_seats in the system goes through Reserve or Release; no other
// code writes that column.
//
// Both operations are single conditional UPDATE statements, so concurrent
// calls against the same showtime serialize on the row inside the database
// and the check-and-adjust is atomic without any in-process locking. Distinct
// showtimes stay fully parallel.
package inventory

import (
	"context"
	"fmt"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgx shared by *pgxpool.Pool and pgx.Tx. The
// booking protocols pass a transaction so the seat adjustment commits or
// rolls back together with the booking row.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Reserve decrements the showtime's available seats by count. It fails with
// domain.ErrInsufficientCapacity when fewer than count seats remain, leaving
// the counter untouched. The version bump invalidates concurrent
// administrative edits that read the row before this reservation.
func Reserve(ctx context.Context, q Querier, showtimeID, count int) error {
	if count < 1 {
		return fmt.Errorf("reserve count must be positive, got %d", count)
	}

	query := `
		UPDATE showtimes
		SET available_seats = available_seats - $2, version = version + 1
		WHERE id = $1 AND available_seats >= $2`

	tag, err := q.Exec(ctx, query, showtimeID, count)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return classifyNoRows(ctx, q, showtimeID, domain.ErrInsufficientCapacity)
	}

	return nil
}

// Release increments the showtime's available seats by count. The counter
// must never exceed the capacity snapshot; a violation means seats were
// double-released and surfaces as domain.ErrCapacityOverflow instead of
// being clamped silently.
func Release(ctx context.Context, q Querier, showtimeID, count int) error {
	if count < 1 {
		return fmt.Errorf("release count must be positive, got %d", count)
	}

	query := `
		UPDATE showtimes
		SET available_seats = available_seats + $2, version = version + 1
		WHERE id = $1 AND available_seats + $2 <= capacity`

	tag, err := q.Exec(ctx, query, showtimeID, count)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return classifyNoRows(ctx, q, showtimeID, domain.ErrCapacityOverflow)
	}

	return nil
}

// classifyNoRows distinguishes a failed precondition from a missing showtime.
func classifyNoRows(ctx context.Context, q Querier, showtimeID int, preconditionErr error) error {
	var exists bool

	err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM showtimes WHERE id = $1)`, showtimeID).Scan(&exists)
	if err != nil {
		return err
	}

	if !exists {
		return domain.ErrRecordNotFound
	}

	return preconditionErr
}
