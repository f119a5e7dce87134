package main

import (
	"os"
	"path/filepath"

	"mangaapi/internal/config"
)

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	config.LoadEnvFiles()
}

// migrationsDir is the on-disk directory that 'create' writes new files to.
func migrationsDir(driver string) string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return filepath.Join("db", "migrations", driver)
}

func driverName() string {
	if v := os.Getenv("DB_DRIVER"); v != "" {
		return v
	}
	return "postgres"
}
