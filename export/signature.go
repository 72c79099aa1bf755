package export

import (
	"reflect"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/writ/errors"
)

// Param is a named, typed export parameter.
type Param struct {
	Type   wit.Type
	GoType reflect.Type
	Name   string
}

// Signature describes an export's parameters and result.
type Signature struct {
	Result       wit.Type // nil when the export returns no value
	Params       []Param
	ReturnsError bool
}

// String renders the signature as "func(a: string, b: s32) -> flat-record".
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString("func(")
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
		b.WriteString(": ")
		b.WriteString(TypeString(p.Type))
	}
	b.WriteByte(')')
	if s.Result != nil {
		b.WriteString(" -> ")
		b.WriteString(TypeString(s.Result))
	}
	return b.String()
}

// TypeString renders a WIT type reference the way it appears in a
// signature: primitives by keyword, named types by name, anonymous lists
// as list<T>.
func TypeString(t wit.Type) string {
	switch v := t.(type) {
	case nil:
		return "_"
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		switch kind := v.Kind.(type) {
		case *wit.List:
			return "list<" + TypeString(kind.Type) + ">"
		case *wit.Record:
			return RecordString(kind)
		}
		return "typedef"
	default:
		return "unknown"
	}
}

// RecordString renders a record body: "{ name: string, age: s32 }".
func RecordString(r *wit.Record) string {
	var b strings.Builder
	b.WriteString("{ ")
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(TypeString(f.Type))
	}
	b.WriteString(" }")
	return b.String()
}

// typeDeriver maps Go types to WIT types. Named records are cached so a
// struct type always maps to the same *wit.TypeDef.
type typeDeriver struct {
	records map[reflect.Type]*wit.TypeDef
}

func newTypeDeriver() *typeDeriver {
	return &typeDeriver{records: make(map[reflect.Type]*wit.TypeDef)}
}

func (d *typeDeriver) derive(t reflect.Type) (wit.Type, error) {
	switch t.Kind() {
	case reflect.Bool:
		return wit.Bool{}, nil
	case reflect.Int8:
		return wit.S8{}, nil
	case reflect.Int16:
		return wit.S16{}, nil
	case reflect.Int32:
		return wit.S32{}, nil
	case reflect.Int64:
		return wit.S64{}, nil
	case reflect.Uint8:
		return wit.U8{}, nil
	case reflect.Uint16:
		return wit.U16{}, nil
	case reflect.Uint32:
		return wit.U32{}, nil
	case reflect.Uint64:
		return wit.U64{}, nil
	case reflect.Float32:
		return wit.F32{}, nil
	case reflect.Float64:
		return wit.F64{}, nil
	case reflect.String:
		return wit.String{}, nil
	case reflect.Slice:
		elem, err := d.derive(t.Elem())
		if err != nil {
			return nil, err
		}
		return &wit.TypeDef{Kind: &wit.List{Type: elem}}, nil
	case reflect.Struct:
		return d.deriveRecord(t)
	}
	return nil, errors.New(errors.PhaseRegister, errors.KindTypeMismatch).
		GoType(t.String()).
		Detail("no WIT equivalent").
		Build()
}

func (d *typeDeriver) deriveRecord(t reflect.Type) (wit.Type, error) {
	if td, ok := d.records[t]; ok {
		return td, nil
	}

	name := toKebabCase(t.Name())
	rec := &wit.Record{}
	td := &wit.TypeDef{Kind: rec}
	if name != "" {
		td.Name = &name
	}
	// Cache before descending so self-referencing types terminate.
	d.records[t] = td

	for _, f := range recordFields(t) {
		ft, err := d.derive(f.typ)
		if err != nil {
			return nil, err
		}
		rec.Fields = append(rec.Fields, wit.Field{Name: f.name, Type: ft})
	}
	return td, nil
}

// RecordDefs returns every named record referenced by the signature,
// nested records before their parents, rendered as
// "record flat-record { name: string, age: s32 }".
func (s Signature) RecordDefs() []string {
	seen := make(map[*wit.TypeDef]bool)
	var out []string
	var walk func(t wit.Type)
	walk = func(t wit.Type) {
		td, ok := t.(*wit.TypeDef)
		if !ok || seen[td] {
			return
		}
		seen[td] = true
		switch kind := td.Kind.(type) {
		case *wit.List:
			walk(kind.Type)
		case *wit.Record:
			for _, f := range kind.Fields {
				walk(f.Type)
			}
			if td.Name != nil {
				out = append(out, "record "+*td.Name+" "+RecordString(kind))
			}
		}
	}
	for _, p := range s.Params {
		walk(p.Type)
	}
	walk(s.Result)
	return out
}

type recordField struct {
	typ    reflect.Type
	name   string // WIT field name
	decode string // key mapstructure matches against the "wit" tag or Go name
	index  int
}

// recordFields lists the exported fields of a struct with their WIT names
// taken from the `wit` tag, falling back to the kebab-cased Go name.
func recordFields(t reflect.Type) []recordField {
	fields := make([]recordField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		name := f.Tag.Get("wit")
		if name == "-" {
			continue
		}
		decode := name
		if name == "" {
			name = toKebabCase(f.Name)
			decode = f.Name
		}
		fields = append(fields, recordField{name: name, decode: decode, typ: f.Type, index: i})
	}
	return fields
}
