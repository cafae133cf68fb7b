package batches

import "context"

// System defines read access to batches.
type System interface {
	// ListActive returns the organization's batches that have at least one
	// active image, each with its active images.
	ListActive(ctx context.Context, organizationID int) ([]Batch, error)
}
