package migrations_test

import (
	"os"
	"testing"

	"github.com/JaimeStill/qc-lab/internal/migrations"
	"github.com/JaimeStill/qc-lab/internal/testdb"
)

func TestUp_Idempotent(t *testing.T) {
	db := testdb.Open(t)

	if err := migrations.Up(os.Getenv(testdb.EnvDSN), testdb.Logger()); err != nil {
		t.Fatalf("second Up() error = %v", err)
	}

	for _, table := range []string{"batches", "imagecollections", "templates", "audit_logs"} {
		var exists bool
		err := db.QueryRow(`SELECT to_regclass('public.' || $1) IS NOT NULL`, table).Scan(&exists)
		if err != nil {
			t.Fatalf("check %s: %v", table, err)
		}
		if !exists {
			t.Errorf("table %s missing after migrations", table)
		}
	}
}

func TestUp_InvalidDSN(t *testing.T) {
	if err := migrations.Up("host=127.0.0.1 port=1 dbname=none user=none sslmode=disable connect_timeout=1", testdb.Logger()); err == nil {
		t.Error("Up() error = nil, want connection error")
	}
}
