// Package dashboard reports review progress across an organization's batches.
package dashboard

import "github.com/JaimeStill/qc-lab/pkg/gauge"

// Progress counts batches by review state. Only batches with at least one
// active image are counted.
type Progress struct {
	Finished int         `json:"finishedbatchcount"`
	Pending  int         `json:"pendingbatchescount"`
	Total    int         `json:"totalbatch"`
	Gauge    gauge.Gauge `json:"gauge"`
}

// NewProgress computes the gauge for the given counts.
func NewProgress(finished, pending, total int) Progress {
	return Progress{
		Finished: finished,
		Pending:  pending,
		Total:    total,
		Gauge:    gauge.Compute(finished, pending, total),
	}
}
