package export

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/wippyai/writ/errors"
)

// shapeArg converts a generic argument into a value of the parameter's Go
// type. Values already of that type pass through unchanged.
func shapeArg(op string, p Param, raw any) (reflect.Value, error) {
	if raw != nil && reflect.TypeOf(raw) == p.GoType {
		return reflect.ValueOf(raw), nil
	}

	norm, err := normalize(raw, p.GoType, []string{p.Name})
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Op = op
		}
		return reflect.Value{}, err
	}

	out := reflect.New(p.GoType)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      out.Interface(),
		TagName:     "wit",
		ErrorUnused: true,
		ZeroFields:  true,
	})
	if err != nil {
		return reflect.Value{}, errors.New(errors.PhaseArgs, errors.KindInvalidData).
			Op(op).
			Path(p.Name).
			Cause(err).
			Detail("build decoder").
			Build()
	}
	if err := dec.Decode(norm); err != nil {
		return reflect.Value{}, errors.New(errors.PhaseArgs, errors.KindInvalidData).
			Op(op).
			Path(p.Name).
			GoType(p.GoType.String()).
			Cause(err).
			Build()
	}
	return out.Elem(), nil
}

// normalize checks raw against t and rebuilds it from plain maps, slices
// and scalars keyed the way mapstructure expects.
func normalize(raw any, t reflect.Type, path []string) (any, error) {
	switch t.Kind() {
	case reflect.Bool:
		b, ok := raw.(bool)
		if !ok {
			return nil, mismatch(path, t, raw)
		}
		return b, nil

	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return nil, mismatch(path, t, raw)
		}
		return s, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := wholeNumber(raw, path, t)
		if err != nil {
			return nil, err
		}
		bits := t.Bits()
		lo, hi := int64(math.MinInt64)>>(64-bits), int64(math.MaxInt64)>>(64-bits)
		if n < lo || n > hi {
			return nil, errors.Overflow(errors.PhaseArgs, path, n, t.String())
		}
		return n, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := wholeNumber(raw, path, t)
		if err != nil {
			return nil, err
		}
		bits := t.Bits()
		if n < 0 || (bits < 64 && uint64(n) > uint64(math.MaxUint64)>>(64-bits)) {
			return nil, errors.Overflow(errors.PhaseArgs, path, n, t.String())
		}
		return n, nil

	case reflect.Float32, reflect.Float64:
		f, ok := floatValue(raw)
		if !ok {
			return nil, mismatch(path, t, raw)
		}
		return f, nil

	case reflect.Slice:
		items, ok := asList(raw)
		if !ok {
			return nil, mismatch(path, t, raw)
		}
		out := make([]any, len(items))
		for i, item := range items {
			v, err := normalize(item, t.Elem(), child(path, fmt.Sprintf("[%d]", i)))
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case reflect.Struct:
		m, ok := asRecord(raw, t)
		if !ok {
			return nil, mismatch(path, t, raw)
		}
		fields := recordFields(t)
		known := make(map[string]bool, len(fields))
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			known[f.name] = true
			v, present := m[f.name]
			if !present {
				return nil, errors.FieldMissing(errors.PhaseArgs, path, f.name)
			}
			nv, err := normalize(v, f.typ, child(path, f.name))
			if err != nil {
				return nil, err
			}
			out[f.decode] = nv
		}
		var unknown []string
		for k := range m {
			if !known[k] {
				unknown = append(unknown, k)
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return nil, errors.FieldUnknown(errors.PhaseArgs, path, unknown[0])
		}
		return out, nil
	}

	return nil, errors.New(errors.PhaseArgs, errors.KindTypeMismatch).
		Path(path...).
		GoType(t.String()).
		Detail("unsupported parameter type").
		Build()
}

func wholeNumber(raw any, path []string, t reflect.Type) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		return unsignedWhole(uint64(v), path, t)
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		return unsignedWhole(v, path, t)
	case float32:
		return floatWhole(float64(v), path, t, raw)
	case float64:
		return floatWhole(v, path, t, raw)
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		f, err := v.Float64()
		if err != nil {
			return 0, mismatch(path, t, raw)
		}
		return floatWhole(f, path, t, raw)
	}
	return 0, mismatch(path, t, raw)
}

func unsignedWhole(v uint64, path []string, t reflect.Type) (int64, error) {
	if v > math.MaxInt64 {
		return 0, errors.Overflow(errors.PhaseArgs, path, v, t.String())
	}
	return int64(v), nil
}

func floatWhole(f float64, path []string, t reflect.Type, raw any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, mismatch(path, t, raw)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, errors.Overflow(errors.PhaseArgs, path, raw, t.String())
	}
	return int64(f), nil
}

func floatValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	return 0, false
}

func asList(raw any) ([]any, bool) {
	if l, ok := raw.([]any); ok {
		return l, true
	}
	if raw == nil {
		return nil, false
	}
	rv := reflect.ValueOf(raw)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// asRecord returns raw as a map keyed by WIT field name. It accepts string
// keyed maps and values of the record's own Go type.
func asRecord(raw any, t reflect.Type) (map[string]any, bool) {
	switch m := raw.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = v
		}
		return out, true
	case nil:
		return nil, false
	}

	rv := reflect.ValueOf(raw)
	if rv.Type() != t {
		return nil, false
	}
	out := make(map[string]any, t.NumField())
	for _, f := range recordFields(t) {
		out[f.name] = rv.Field(f.index).Interface()
	}
	return out, true
}

func mismatch(path []string, t reflect.Type, raw any) *errors.Error {
	err := errors.TypeMismatch(errors.PhaseArgs, path, t.String(), "")
	err.Detail = "got " + describe(raw)
	err.Value = raw
	return err
}

func describe(raw any) string {
	switch raw.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "bool"
	case json.Number, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return "number " + fmt.Sprint(raw)
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "record"
	}
	return fmt.Sprintf("%T", raw)
}

func child(path []string, seg string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, seg)
}
