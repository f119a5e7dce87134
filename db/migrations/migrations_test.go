package migrations

import (
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"mangaapi/internal/platform/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSQLMigrations_HaveGooseDirectives(t *testing.T) {
	for _, driver := range []string{Postgres, SQLite} {
		dir, err := Dir(driver)
		require.NoError(t, err)

		entries, err := fs.ReadDir(FS, dir)
		require.NoError(t, err)
		require.NotEmpty(t, entries)

		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
				continue
			}
			b, err := fs.ReadFile(FS, dir+"/"+e.Name())
			require.NoError(t, err)
			s := string(b)
			assert.Contains(t, s, "-- +goose Up", "%s/%s", dir, e.Name())
			assert.Contains(t, s, "-- +goose Down", "%s/%s", dir, e.Name())
		}
	}
}

func TestDialects_MatchFileSets(t *testing.T) {
	pg, err := fs.ReadDir(FS, "postgres")
	require.NoError(t, err)
	lite, err := fs.ReadDir(FS, "sqlite")
	require.NoError(t, err)

	require.Len(t, lite, len(pg))
	for i := range pg {
		assert.Equal(t, pg[i].Name(), lite[i].Name())
	}
}

func TestDialect_Unsupported(t *testing.T) {
	_, err := Dialect("mysql")
	assert.Error(t, err)
	_, err = Dir("mysql")
	assert.Error(t, err)
}

func TestUp_LogsThroughZap(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Up(db.DB, SQLite))

	entries := logs.FilterLoggerName("goose").All()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.False(t, strings.HasSuffix(e.Message, "\n"), e.Message)
	}
}
