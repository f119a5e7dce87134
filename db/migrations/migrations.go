// Package migrations embeds the goose SQL migrations for every supported store.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS

// Driver names accepted by DB_DRIVER.
const (
	Postgres = "postgres"
	SQLite   = "sqlite"
)

// Dir returns the embedded directory holding the migrations for driver.
func Dir(driver string) (string, error) {
	switch driver {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// Dialect maps a driver name to the goose dialect.
func Dialect(driver string) (string, error) {
	switch driver {
	case Postgres:
		return "postgres", nil
	case SQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported driver %q", driver)
	}
}

var (
	logMu  sync.Mutex
	logger = zap.NewNop()
)

// SetLogger routes goose progress output through log. A nil log silences it,
// which is the default.
func SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	logMu.Lock()
	logger = log
	logMu.Unlock()
}

// gooseLogger adapts zap to goose.Logger.
type gooseLogger struct {
	s *zap.SugaredLogger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.s.Infof(strings.TrimSuffix(format, "\n"), v...)
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.s.Fatalf(strings.TrimSuffix(format, "\n"), v...)
}

// Prepare points goose at the embedded migrations for driver and returns the
// directory to pass to goose commands.
func Prepare(driver string) (string, error) {
	dir, err := Dir(driver)
	if err != nil {
		return "", err
	}
	dialect, err := Dialect(driver)
	if err != nil {
		return "", err
	}
	logMu.Lock()
	goose.SetLogger(gooseLogger{s: logger.Named("goose").Sugar()})
	logMu.Unlock()
	goose.SetBaseFS(FS)
	if err := goose.SetDialect(dialect); err != nil {
		return "", err
	}
	return dir, nil
}

// Up applies all pending migrations for driver.
func Up(db *sql.DB, driver string) error {
	dir, err := Prepare(driver)
	if err != nil {
		return err
	}
	return goose.Up(db, dir)
}
