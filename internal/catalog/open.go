package catalog

import (
	"context"
	"fmt"
	"time"

	"mangaapi/db/migrations"
	"mangaapi/internal/platform/database"
)

// Store is an opened repository with its health check and release func.
type Store struct {
	Repository
	Ping  func(context.Context) error
	Close func()
}

// OpenStore connects to driver. SQLite databases are migrated on open since
// they back local runs; Postgres is migrated by cmd/migrate.
func OpenStore(ctx context.Context, driver, dsn string, timeout time.Duration) (*Store, error) {
	switch driver {
	case migrations.SQLite:
		db, err := database.OpenSQLite(dsn)
		if err != nil {
			return nil, err
		}
		if err := migrations.Up(db.DB, migrations.SQLite); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return &Store{
			Repository: NewSQLiteRepo(db, timeout),
			Ping:       db.PingContext,
			Close:      func() { _ = db.Close() },
		}, nil
	case migrations.Postgres:
		pool, err := database.OpenPostgres(ctx, dsn)
		if err != nil {
			return nil, err
		}
		return &Store{
			Repository: NewPostgresRepo(pool, timeout),
			Ping:       pool.Ping,
			Close:      pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}
