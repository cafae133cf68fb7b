package api

import (
	"github.com/JaimeStill/qc-lab/internal/auditlog"
	"github.com/JaimeStill/qc-lab/internal/batches"
	"github.com/JaimeStill/qc-lab/internal/dashboard"
	"github.com/JaimeStill/qc-lab/internal/templates"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Batches   batches.System
	Templates templates.System
	AuditLog  auditlog.System
	Dashboard dashboard.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	auditSys := auditlog.New(db, runtime.Logger, runtime.Pagination)

	return &Domain{
		Batches:   batches.New(db, runtime.Logger),
		Templates: templates.New(db, auditSys, runtime.Logger, runtime.Pagination),
		AuditLog:  auditSys,
		Dashboard: dashboard.New(db, runtime.Logger),
	}
}
