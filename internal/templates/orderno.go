package templates

import (
	"encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
)

// ParseTemplateID parses a template id path value.
func ParseTemplateID(raw string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidTemplateID
	}
	return id, nil
}

// ParseOrderNo accepts a JSON number whose value is a positive integer that
// fits the orderno column. Integral floats such as 2.0 or 1e2 are accepted.
func ParseOrderNo(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return checkOrderNo(float64(i))
	}

	f, err := n.Float64()
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, ErrInvalidOrderNo
	}
	return checkOrderNo(f)
}

func checkOrderNo(v float64) (int, error) {
	if v <= 0 || v > math.MaxInt32 {
		return 0, ErrInvalidOrderNo
	}
	return int(v), nil
}

// DecodeReorder reads a reorder body. Anything other than a JSON object
// whose orderno is a JSON number holding a positive integer is rejected.
func DecodeReorder(r io.Reader) (ReorderCommand, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return ReorderCommand{}, ErrBodyTooLarge
		}
		return ReorderCommand{}, ErrInvalidOrderNo
	}

	n, ok := body["orderno"].(json.Number)
	if !ok {
		return ReorderCommand{}, ErrInvalidOrderNo
	}

	orderNo, err := ParseOrderNo(n)
	if err != nil {
		return ReorderCommand{}, err
	}
	return ReorderCommand{OrderNo: orderNo}, nil
}

// CheckPlacement validates orderNo against the organization's live
// templates: taken reports whether another template holds it and max is the
// highest order number in use, including the template being moved.
func CheckPlacement(orderNo int, taken bool, max int) error {
	if taken {
		return &ConflictError{OrderNo: orderNo}
	}
	if orderNo > max+1 {
		return &RangeError{OrderNo: orderNo, Next: max + 1}
	}
	return nil
}
