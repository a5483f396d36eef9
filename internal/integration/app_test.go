package integration_test

import (
	"context"
	"io"
	"log/slog"

	"github.com/cinetixhq/cinema-booking-system/internal/app"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TestApp bundles the application under test with a direct database handle
// for seeding and asserting on state the HTTP surface does not expose.
type TestApp struct {
	App *app.Application
	DB  *pgxpool.Pool
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	application, err := app.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		application.Close()
		return nil, err
	}

	return &TestApp{
		App: application,
		DB:  db,
	}, nil
}
