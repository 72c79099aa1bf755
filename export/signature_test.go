package export

import (
	"reflect"
	"testing"

	"go.bytecodealliance.org/wit"
)

func newRecordRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	reg := NewRegistry(opts...)
	if err := reg.RegisterHost(NewRecordHost(nil)); err != nil {
		t.Fatalf("register record host: %v", err)
	}
	return reg
}

func TestRecordHostSignatures(t *testing.T) {
	reg := newRecordRegistry(t)

	tests := []struct {
		name string
		want string
	}{
		{"extract-age", "func(r: flat-record) -> s32"},
		{"extract-age-through-one-level", "func(n: nested-record) -> s32"},
		{"extract-age-through-two-levels", "func(d: deep-nested-record) -> s32"},
		{"construct-flat", "func(name: string, age: s32) -> flat-record"},
		{"age-by-ten", "func(r: flat-record) -> flat-record"},
		{"wrap-one-level", "func(r: flat-record) -> nested-record"},
		{"wrap-two-levels", "func(r: flat-record) -> deep-nested-record"},
		{"bump-deep-id", "func(d: deep-nested-record) -> deep-nested-record"},
		{"sample-collection", "func() -> collection-record"},
		{"transform-collection", "func(c: collection-record) -> collection-record"},
		{"sum-ages", "func(rs: list<flat-record>) -> s32"},
	}

	if got := len(reg.Exports()); got != len(tests) {
		t.Errorf("registered %d exports, want %d", got, len(tests))
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, err := reg.Lookup(tt.name)
			if err != nil {
				t.Fatalf("lookup: %v", err)
			}
			if got := exp.Signature.String(); got != tt.want {
				t.Errorf("signature = %q, want %q", got, tt.want)
			}
		})
	}

	exp, _ := reg.Lookup("transform-collection")
	if !exp.Signature.ReturnsError {
		t.Error("transform-collection should report an error result")
	}
}

func TestSignatureRecordDefs(t *testing.T) {
	reg := newRecordRegistry(t)

	exp, err := reg.Lookup("wrap-two-levels")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		"record flat-record { name: string, age: s32 }",
		"record nested-record { id: s32, payload: flat-record }",
		"record deep-nested-record { id: s32, payload: nested-record }",
	}
	if got := exp.Signature.RecordDefs(); !reflect.DeepEqual(got, want) {
		t.Errorf("RecordDefs = %q, want %q", got, want)
	}

	exp, err = reg.Lookup("transform-collection")
	if err != nil {
		t.Fatal(err)
	}
	want = []string{
		"record flat-record { name: string, age: s32 }",
		"record collection-record { titles: list<string>, codes: list<s32>, records: list<flat-record>, flags: list<bool> }",
	}
	if got := exp.Signature.RecordDefs(); !reflect.DeepEqual(got, want) {
		t.Errorf("RecordDefs = %q, want %q", got, want)
	}
}

func TestTypeDeriver_SharesRecordDefs(t *testing.T) {
	reg := newRecordRegistry(t)

	a, _ := reg.Lookup("age-by-ten")
	b, _ := reg.Lookup("sum-ages")

	list, ok := b.Signature.Params[0].Type.(*wit.TypeDef)
	if !ok {
		t.Fatalf("sum-ages param is %T, want *wit.TypeDef", b.Signature.Params[0].Type)
	}
	elem := list.Kind.(*wit.List).Type
	if elem != a.Signature.Params[0].Type {
		t.Error("flat-record should be derived once and shared")
	}
}

func TestTypeDeriver_Unsupported(t *testing.T) {
	d := newTypeDeriver()
	if _, err := d.derive(reflect.TypeOf(map[string]int{})); err == nil {
		t.Error("maps have no WIT equivalent and should be rejected")
	}
	if _, err := d.derive(reflect.TypeOf(struct{ C chan int }{})); err == nil {
		t.Error("records with unsupported fields should be rejected")
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ  wit.Type
		want string
	}{
		{wit.Bool{}, "bool"},
		{wit.S32{}, "s32"},
		{wit.U64{}, "u64"},
		{wit.String{}, "string"},
		{&wit.TypeDef{Kind: &wit.List{Type: wit.S32{}}}, "list<s32>"},
		{&wit.TypeDef{Kind: &wit.Record{Fields: []wit.Field{{Name: "x", Type: wit.F64{}}}}}, "{ x: f64 }"},
		{nil, "_"},
	}

	for _, tt := range tests {
		if got := TypeString(tt.typ); got != tt.want {
			t.Errorf("TypeString(%T) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
