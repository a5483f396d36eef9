package inventory

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/cinetixhq/cinema-booking-system/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShowtimes emulates the conditional-update semantics of the showtimes
// table: the check and the adjustment happen atomically under one lock, the
// same guarantee a single UPDATE statement gives against the real database.
type fakeShowtimes struct {
	mu   sync.Mutex
	rows map[int]*seatRow
}

type seatRow struct {
	available int
	capacity  int
	version   int
}

func newFakeShowtimes(rows map[int]*seatRow) *fakeShowtimes {
	return &fakeShowtimes{rows: rows}
}

func (f *fakeShowtimes) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	showtimeID := args[0].(int)
	count := args[1].(int)

	row, ok := f.rows[showtimeID]
	if !ok {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}

	switch {
	case strings.Contains(sql, "available_seats - "):
		if row.available < count {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		row.available -= count
	case strings.Contains(sql, "available_seats + "):
		if row.available+count > row.capacity {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}
		row.available += count
	default:
		panic("unexpected statement: " + sql)
	}

	row.version++

	return pgconn.NewCommandTag("UPDATE 1"), nil
}

func (f *fakeShowtimes) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.rows[args[0].(int)]

	return existsRow(ok)
}

func (f *fakeShowtimes) available(showtimeID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.rows[showtimeID].available
}

type existsRow bool

func (r existsRow) Scan(dest ...any) error {
	*(dest[0].(*bool)) = bool(r)
	return nil
}

func TestReserve(t *testing.T) {
	tests := []struct {
		name          string
		showtimeID    int
		count         int
		wantErr       error
		wantAvailable int
	}{
		{
			name:          "reserves seats when enough remain",
			showtimeID:    1,
			count:         3,
			wantAvailable: 2,
		},
		{
			name:          "takes the last seat",
			showtimeID:    1,
			count:         5,
			wantAvailable: 0,
		},
		{
			name:          "fails when fewer seats remain than requested",
			showtimeID:    1,
			count:         6,
			wantErr:       domain.ErrInsufficientCapacity,
			wantAvailable: 5,
		},
		{
			name:       "fails for unknown showtime",
			showtimeID: 99,
			count:      1,
			wantErr:    domain.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeShowtimes(map[int]*seatRow{
				1: {available: 5, capacity: 10},
			})

			err := Reserve(context.Background(), store, tt.showtimeID, tt.count)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.showtimeID == 1 {
				assert.Equal(t, tt.wantAvailable, store.available(1))
			}
		})
	}
}

func TestReserveRejectsNonPositiveCount(t *testing.T) {
	store := newFakeShowtimes(map[int]*seatRow{1: {available: 5, capacity: 10}})

	require.Error(t, Reserve(context.Background(), store, 1, 0))
	require.Error(t, Reserve(context.Background(), store, 1, -2))
	assert.Equal(t, 5, store.available(1))
}

func TestRelease(t *testing.T) {
	tests := []struct {
		name          string
		showtimeID    int
		count         int
		wantErr       error
		wantAvailable int
	}{
		{
			name:          "releases seats back to the showtime",
			showtimeID:    1,
			count:         3,
			wantAvailable: 8,
		},
		{
			name:          "fills the showtime back to capacity",
			showtimeID:    1,
			count:         5,
			wantAvailable: 10,
		},
		{
			name:          "fails when the release would exceed capacity",
			showtimeID:    1,
			count:         6,
			wantErr:       domain.ErrCapacityOverflow,
			wantAvailable: 5,
		},
		{
			name:       "fails for unknown showtime",
			showtimeID: 99,
			count:      1,
			wantErr:    domain.ErrRecordNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeShowtimes(map[int]*seatRow{
				1: {available: 5, capacity: 10},
			})

			err := Release(context.Background(), store, tt.showtimeID, tt.count)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			if tt.showtimeID == 1 {
				assert.Equal(t, tt.wantAvailable, store.available(1))
			}
		})
	}
}

func TestReserveReleaseRoundTrip(t *testing.T) {
	store := newFakeShowtimes(map[int]*seatRow{1: {available: 60, capacity: 100}})

	require.NoError(t, Reserve(context.Background(), store, 1, 40))
	assert.Equal(t, 20, store.available(1))

	require.NoError(t, Release(context.Background(), store, 1, 40))
	assert.Equal(t, 60, store.available(1))
}

// Two reservations race for a showtime holding five seats, each wanting
// three. Exactly one must win; the loser must observe the reduced count and
// fail cleanly, leaving two seats behind.
func TestConcurrentReserveExactlyOneWins(t *testing.T) {
	store := newFakeShowtimes(map[int]*seatRow{1: {available: 5, capacity: 5}})

	errs := make(chan error, 2)
	var wg sync.WaitGroup

	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Reserve(context.Background(), store, 1, 3)
		}()
	}

	wg.Wait()
	close(errs)

	var succeeded, failed int
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientCapacity)
			failed++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 2, store.available(1))
}

func TestConcurrentReserveNeverOversells(t *testing.T) {
	const capacity = 100
	const attempts = 150

	store := newFakeShowtimes(map[int]*seatRow{1: {available: capacity, capacity: capacity}})

	errs := make(chan error, attempts)
	var wg sync.WaitGroup

	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- Reserve(context.Background(), store, 1, 1)
		}()
	}

	wg.Wait()
	close(errs)

	var succeeded int
	for err := range errs {
		if err == nil {
			succeeded++
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, 0, store.available(1))
}
