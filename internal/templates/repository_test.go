package templates_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"

	"github.com/JaimeStill/qc-lab/internal/auditlog"
	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/internal/templates"
	"github.com/JaimeStill/qc-lab/internal/testdb"
	"github.com/JaimeStill/qc-lab/pkg/pagination"
)

type fixture struct {
	db    *sql.DB
	org   int
	sys   templates.System
	audit auditlog.System
	actor scope.Actor
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db := testdb.Open(t)
	org := testdb.Organization(t, db)
	audit := auditlog.New(db, testdb.Logger(), pageCfg)

	return &fixture{
		db:    db,
		org:   org,
		sys:   templates.New(db, audit, testdb.Logger(), pageCfg),
		audit: audit,
		actor: scope.Actor{OrganizationID: org, UserID: "u-1", Role: "admin"},
	}
}

func (f *fixture) insert(t *testing.T, name string, orderNo int, deleted bool) int {
	t.Helper()
	var id int
	err := f.db.QueryRow(`
		INSERT INTO templates (organization_id, name, orderno, is_delete)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		f.org, name, orderNo, deleted,
	).Scan(&id)
	if err != nil {
		t.Fatalf("insert template: %v", err)
	}
	return id
}

func TestRepository_Reorder_RecordsAudit(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.insert(t, "A", 1, false)
	id := f.insert(t, "B", 2, false)

	got, err := f.sys.Reorder(ctx, f.actor, id, templates.ReorderCommand{OrderNo: 3})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	if got.OrderNo != 3 {
		t.Errorf("orderno = %d, want 3", got.OrderNo)
	}

	entries, err := f.audit.List(ctx, f.org, pagination.PageRequest{}, auditlog.Filters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if entries.Total != 1 {
		t.Fatalf("audit entries = %d, want 1", entries.Total)
	}

	e := entries.Data[0]
	if want := templates.ReorderAction(id, 3); e.Action != want {
		t.Errorf("action = %q, want %q", e.Action, want)
	}
	if e.UserID != "u-1" || e.Role != "admin" || e.OrganizationID != f.org {
		t.Errorf("entry = %+v, want actor fields", e)
	}
}

func TestRepository_Reorder_SameOrderNo(t *testing.T) {
	f := setup(t)
	id := f.insert(t, "A", 1, false)

	if _, err := f.sys.Reorder(context.Background(), f.actor, id, templates.ReorderCommand{OrderNo: 1}); err != nil {
		t.Errorf("Reorder() to own order number error = %v", err)
	}
}

func TestRepository_Reorder_Errors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.insert(t, "A", 1, false)
	f.insert(t, "B", 2, false)
	target := f.insert(t, "C", 3, false)
	deleted := f.insert(t, "D", 7, true)

	tests := []struct {
		name    string
		id      int
		orderNo int
		is      error
		message string
	}{
		{"unknown template", 0, 1, templates.ErrNotFound, "Template not found for the given organization"},
		{"deleted template", deleted, 1, templates.ErrNotFound, "Template not found for the given organization"},
		{"held by another", target, 2, templates.ErrDuplicate, "Order number 2 is already used by another template"},
		{"beyond next", target, 5, templates.ErrOutOfRange, "Cannot assign order number 5. The next available order number is 4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.sys.Reorder(ctx, f.actor, tt.id, templates.ReorderCommand{OrderNo: tt.orderNo})
			if !errors.Is(err, tt.is) {
				t.Fatalf("error = %v, want %v", err, tt.is)
			}
			if err.Error() != tt.message {
				t.Errorf("message = %q, want %q", err.Error(), tt.message)
			}
		})
	}

	entries, err := f.audit.List(ctx, f.org, pagination.PageRequest{}, auditlog.Filters{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if entries.Total != 0 {
		t.Errorf("audit entries = %d, want 0 after rejected reorders", entries.Total)
	}
}

func TestRepository_Reorder_IgnoresDeletedTemplates(t *testing.T) {
	f := setup(t)
	id := f.insert(t, "A", 1, false)
	f.insert(t, "Old", 2, true)

	got, err := f.sys.Reorder(context.Background(), f.actor, id, templates.ReorderCommand{OrderNo: 2})
	if err != nil {
		t.Fatalf("Reorder() error = %v", err)
	}
	if got.OrderNo != 2 {
		t.Errorf("orderno = %d, want 2", got.OrderNo)
	}
}

func TestRepository_Reorder_OtherOrganization(t *testing.T) {
	f := setup(t)
	id := f.insert(t, "A", 1, false)

	other := f.actor
	other.OrganizationID = testdb.Organization(t, f.db)

	_, err := f.sys.Reorder(context.Background(), other, id, templates.ReorderCommand{OrderNo: 1})
	if !errors.Is(err, templates.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRepository_Reorder_ConcurrentClaims(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	ids := []int{f.insert(t, "A", 1, false), f.insert(t, "B", 2, false)}

	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Go(func() {
			_, errs[i] = f.sys.Reorder(ctx, f.actor, id, templates.ReorderCommand{OrderNo: 3})
		})
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, templates.ErrDuplicate):
			conflicted++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || conflicted != 1 {
		t.Errorf("succeeded = %d, conflicted = %d, want 1 and 1", succeeded, conflicted)
	}
}

func TestRepository_ListAndFind(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	second := f.insert(t, "Second", 2, false)
	f.insert(t, "First", 1, false)
	f.insert(t, "Gone", 3, true)

	result, err := f.sys.List(ctx, f.org, pagination.PageRequest{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if result.Total != 2 {
		t.Fatalf("total = %d, want 2", result.Total)
	}
	if result.Data[0].Name != "First" || result.Data[1].Name != "Second" {
		t.Errorf("order = [%s %s], want [First Second]", result.Data[0].Name, result.Data[1].Name)
	}

	got, err := f.sys.Find(ctx, f.org, second)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if got.OrderNo != 2 {
		t.Errorf("orderno = %d, want 2", got.OrderNo)
	}

	if _, err := f.sys.Find(ctx, f.org+1, second); !errors.Is(err, templates.ErrNotFound) {
		t.Errorf("Find() other organization error = %v, want ErrNotFound", err)
	}
}
