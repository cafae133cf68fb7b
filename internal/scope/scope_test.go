package scope_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/qc-lab/internal/scope"
)

func request(headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestOrganizationID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr error
	}{
		{"valid", "42", 42, nil},
		{"padded", " 7 ", 7, nil},
		{"missing", "", 0, scope.ErrMissingOrganization},
		{"non integer", "acme", 0, scope.ErrInvalidOrganization},
		{"trailing garbage", "12abc", 0, scope.ErrInvalidOrganization},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := scope.OrganizationID(request(map[string]string{scope.HeaderOrganizationID: tt.value}))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("id = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestActorFromRequest(t *testing.T) {
	full := map[string]string{
		scope.HeaderOrganizationID: "3",
		scope.HeaderUserID:         "u-17",
		scope.HeaderRole:           "admin",
	}

	actor, err := scope.ActorFromRequest(request(full))
	if err != nil {
		t.Fatalf("ActorFromRequest() error = %v", err)
	}
	if actor != (scope.Actor{OrganizationID: 3, UserID: "u-17", Role: "admin"}) {
		t.Errorf("actor = %+v", actor)
	}

	for _, missing := range []string{scope.HeaderOrganizationID, scope.HeaderUserID, scope.HeaderRole} {
		t.Run("missing "+missing, func(t *testing.T) {
			h := map[string]string{}
			for k, v := range full {
				if k != missing {
					h[k] = v
				}
			}
			if _, err := scope.ActorFromRequest(request(h)); !errors.Is(err, scope.ErrMissingHeaders) {
				t.Errorf("err = %v, want ErrMissingHeaders", err)
			}
		})
	}

	t.Run("headers checked before organization format", func(t *testing.T) {
		_, err := scope.ActorFromRequest(request(map[string]string{scope.HeaderOrganizationID: "abc"}))
		if !errors.Is(err, scope.ErrMissingHeaders) {
			t.Errorf("err = %v, want ErrMissingHeaders", err)
		}
	})

	t.Run("invalid organization", func(t *testing.T) {
		h := map[string]string{scope.HeaderOrganizationID: "abc", scope.HeaderUserID: "u", scope.HeaderRole: "r"}
		if _, err := scope.ActorFromRequest(request(h)); !errors.Is(err, scope.ErrInvalidOrganization) {
			t.Errorf("err = %v, want ErrInvalidOrganization", err)
		}
	})
}

func TestMapHTTPStatus(t *testing.T) {
	if scope.MapHTTPStatus(scope.ErrMissingHeaders) != http.StatusBadRequest {
		t.Error("missing headers should map to 400")
	}
	if scope.MapHTTPStatus(errors.New("other")) != http.StatusInternalServerError {
		t.Error("unknown errors should map to 500")
	}
}
