// Package testdb connects integration tests to a disposable PostgreSQL
// database. Tests are skipped unless QC_TEST_DATABASE_DSN is set.
package testdb

import (
	"database/sql"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/qc-lab/internal/migrations"
)

// EnvDSN names the variable holding the test database connection string.
const EnvDSN = "QC_TEST_DATABASE_DSN"

var (
	migrateOnce sync.Once
	migrateErr  error
)

// Open returns a migrated connection or skips the test.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s not set", EnvDSN)
	}

	migrateOnce.Do(func() {
		migrateErr = migrations.Up(dsn, Logger())
	})
	if migrateErr != nil {
		t.Fatalf("migrate test database: %v", migrateErr)
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

// Organization returns an organization id unlikely to collide with other
// tests and removes its rows when the test ends.
func Organization(t *testing.T, db *sql.DB) int {
	t.Helper()

	org := 1_000_000 + rand.IntN(1_000_000_000)
	t.Cleanup(func() {
		for _, table := range []string{"audit_logs", "imagecollections", "batches", "templates"} {
			if _, err := db.Exec("DELETE FROM "+table+" WHERE organization_id = $1", org); err != nil {
				t.Logf("cleanup %s: %v", table, err)
			}
		}
	})
	return org
}

// Logger discards output.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
