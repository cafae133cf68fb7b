package dashboard_test

import (
	"context"
	"testing"

	"github.com/JaimeStill/qc-lab/internal/dashboard"
	"github.com/JaimeStill/qc-lab/internal/testdb"
)

func TestSystem_Progress(t *testing.T) {
	db := testdb.Open(t)
	org := testdb.Organization(t, db)
	ctx := context.Background()

	mustExec := func(q string, args ...any) {
		t.Helper()
		if _, err := db.ExecContext(ctx, q, args...); err != nil {
			t.Fatalf("exec %q: %v", q, err)
		}
	}

	mustExec(`INSERT INTO batches (batchname, organization_id)
		VALUES ('done', $1), ('working', $1), ('waiting', $1), ('hidden', $1), ('empty', $1)`, org)
	mustExec(`INSERT INTO imagecollections (batchname, filename, organization_id, assigned, completed, imagestatus)
		VALUES ('done', 'a', $1, TRUE, TRUE, TRUE),
		       ('done', 'b', $1, TRUE, FALSE, FALSE),
		       ('working', 'c', $1, TRUE, TRUE, TRUE),
		       ('working', 'd', $1, TRUE, FALSE, TRUE),
		       ('waiting', 'e', $1, FALSE, FALSE, TRUE),
		       ('hidden', 'f', $1, FALSE, FALSE, FALSE)`, org)

	got, err := dashboard.New(db, testdb.Logger()).Progress(ctx, org)
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}

	if got.Finished != 1 || got.Pending != 1 || got.Total != 3 {
		t.Errorf("progress = %d/%d/%d, want finished 1 pending 1 total 3", got.Finished, got.Pending, got.Total)
	}
	if got.Gauge.InProgress.Count != 1 {
		t.Errorf("in progress = %d, want 1", got.Gauge.InProgress.Count)
	}
}

func TestSystem_Progress_Empty(t *testing.T) {
	db := testdb.Open(t)
	org := testdb.Organization(t, db)

	got, err := dashboard.New(db, testdb.Logger()).Progress(context.Background(), org)
	if err != nil {
		t.Fatalf("Progress() error = %v", err)
	}
	if got.Total != 0 || got.Gauge.Completed.Percentage != 0 {
		t.Errorf("progress = %+v, want zero", got)
	}
}
