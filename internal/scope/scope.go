// Package scope extracts the tenant and actor identity that callers pass in
// request headers.
package scope

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
)

// Header names.
const (
	HeaderOrganizationID = "x-organization-id"
	HeaderUserID         = "x-user-id"
	HeaderRole           = "x-role"
)

// Errors carry the exact client-facing messages.
var (
	ErrMissingOrganization = errors.New("Organization ID is required")
	ErrInvalidOrganization = errors.New("Organization ID must be a valid integer")
	ErrMissingHeaders      = errors.New("Missing required headers: x-organization-id, x-user-id, x-role")
)

// Actor identifies who is acting on behalf of which organization.
type Actor struct {
	OrganizationID int
	UserID         string
	Role           string
}

// OrganizationID returns the parsed x-organization-id header.
func OrganizationID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.Header.Get(HeaderOrganizationID))
	if raw == "" {
		return 0, ErrMissingOrganization
	}
	return parseOrganization(raw)
}

// ActorFromRequest requires all three identity headers before validating the
// organization id.
func ActorFromRequest(r *http.Request) (Actor, error) {
	org := strings.TrimSpace(r.Header.Get(HeaderOrganizationID))
	user := strings.TrimSpace(r.Header.Get(HeaderUserID))
	role := strings.TrimSpace(r.Header.Get(HeaderRole))

	if org == "" || user == "" || role == "" {
		return Actor{}, ErrMissingHeaders
	}

	id, err := parseOrganization(org)
	if err != nil {
		return Actor{}, err
	}

	return Actor{OrganizationID: id, UserID: user, Role: role}, nil
}

// MapHTTPStatus maps scope errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingOrganization) ||
		errors.Is(err, ErrInvalidOrganization) ||
		errors.Is(err, ErrMissingHeaders) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func parseOrganization(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidOrganization
	}
	return id, nil
}
