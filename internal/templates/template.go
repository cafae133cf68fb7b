// Package templates manages the ordering of an organization's review
// templates. Within an organization the order numbers of live templates are
// unique and never skip past the current maximum plus one.
package templates

import "time"

// Template is a review template. Deleted templates are retained with
// IsDelete set and take no part in ordering.
type Template struct {
	ID             int       `json:"id"`
	OrganizationID int       `json:"organizationId"`
	Name           string    `json:"name"`
	OrderNo        int       `json:"orderno"`
	IsDelete       bool      `json:"isDelete"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// ReorderCommand is the request body of a reorder.
type ReorderCommand struct {
	OrderNo int `json:"orderno"`
}

// ReorderResult is the success body of a reorder.
type ReorderResult struct {
	Success bool      `json:"success"`
	Data    *Template `json:"data"`
}
