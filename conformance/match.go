package conformance

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"

	"github.com/wippyai/writ/errors"
)

// Match reports whether expected and actual are structurally equal. Both
// are canonicalised through JSON first; numbers compare by value and
// records compare by field name.
func Match(expected, actual any) (bool, error) {
	e, err := Canonical(expected)
	if err != nil {
		return false, err
	}
	a, err := Canonical(actual)
	if err != nil {
		return false, err
	}
	return reflect.DeepEqual(e, a), nil
}

// Canonical returns v re-decoded from its JSON encoding, with numbers as
// json.Number in their shortest form.
func Canonical(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseExpect, errors.KindInvalidData, err, "encode value")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, errors.Wrap(errors.PhaseExpect, errors.KindInvalidData, err, "decode value")
	}
	return normalizeNumbers(out), nil
}

// normalizeNumbers rewrites integral numbers like 3.0 to 3 so that values
// decoded from YAML floats and Go ints agree.
func normalizeNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if _, err := x.Int64(); err == nil {
			return x
		}
		if f, err := x.Float64(); err == nil && integral(f) {
			return json.Number(strconv.FormatInt(int64(f), 10))
		}
		return x
	case []any:
		for i := range x {
			x[i] = normalizeNumbers(x[i])
		}
		return x
	case map[string]any:
		for k, val := range x {
			x[k] = normalizeNumbers(val)
		}
		return x
	}
	return v
}

// integral reports whether f is a whole number that int64 can hold.
func integral(f float64) bool {
	return math.Trunc(f) == f && f >= math.MinInt64 && f < math.MaxInt64
}
