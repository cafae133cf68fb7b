// Package decode converts loosely typed maps into typed values.
package decode

import "encoding/json"

// FromMap decodes data into T by round-tripping through JSON, so T's json
// tags govern field names. Values that do not fit T's fields return an error.
func FromMap[T any](data map[string]any) (T, error) {
	var result T
	b, err := json.Marshal(data)
	if err != nil {
		return result, err
	}
	err = json.Unmarshal(b, &result)
	return result, err
}
