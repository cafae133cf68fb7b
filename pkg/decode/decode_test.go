package decode_test

import (
	"testing"

	"github.com/JaimeStill/qc-lab/pkg/decode"
)

type target struct {
	Name  string         `json:"name"`
	Count int            `json:"count"`
	Meta  map[string]any `json:"meta"`
}

func TestFromMap(t *testing.T) {
	got, err := decode.FromMap[target](map[string]any{
		"name":  "intake",
		"count": 3,
		"meta":  map[string]any{"k": "v"},
		"extra": true,
	})
	if err != nil {
		t.Fatalf("FromMap() error = %v", err)
	}
	if got.Name != "intake" || got.Count != 3 || got.Meta["k"] != "v" {
		t.Errorf("FromMap() = %+v", got)
	}
}

func TestFromMap_TypeMismatch(t *testing.T) {
	if _, err := decode.FromMap[target](map[string]any{"count": "three"}); err == nil {
		t.Error("FromMap() error = nil, want type mismatch")
	}
}

func TestFromMap_Nil(t *testing.T) {
	got, err := decode.FromMap[target](nil)
	if err != nil {
		t.Fatalf("FromMap(nil) error = %v", err)
	}
	if got.Name != "" || got.Count != 0 {
		t.Errorf("FromMap(nil) = %+v, want zero", got)
	}
}
