package records

import "slices"

// FlatRecord is a name and an age.
type FlatRecord struct {
	Name string `json:"name" yaml:"name" wit:"name"`
	Age  int32  `json:"age" yaml:"age" wit:"age"`
}

// NestedRecord wraps a FlatRecord with an identifier.
type NestedRecord struct {
	ID      int32      `json:"id" yaml:"id" wit:"id"`
	Payload FlatRecord `json:"payload" yaml:"payload" wit:"payload"`
}

// DeepNestedRecord wraps a NestedRecord with an identifier, holding a
// FlatRecord two levels down.
type DeepNestedRecord struct {
	ID      int32        `json:"id" yaml:"id" wit:"id"`
	Payload NestedRecord `json:"payload" yaml:"payload" wit:"payload"`
}

// CollectionRecord holds four independent ordered sequences.
type CollectionRecord struct {
	Titles  []string     `json:"titles" yaml:"titles" wit:"titles"`
	Codes   []int32      `json:"codes" yaml:"codes" wit:"codes"`
	Records []FlatRecord `json:"records" yaml:"records" wit:"records"`
	Flags   []bool       `json:"flags" yaml:"flags" wit:"flags"`
}

// Clone returns a deep copy. Nil sequences become empty sequences so the
// clone always marshals as lists.
func (c CollectionRecord) Clone() CollectionRecord {
	return CollectionRecord{
		Titles:  cloneSeq(c.Titles),
		Codes:   cloneSeq(c.Codes),
		Records: cloneSeq(c.Records),
		Flags:   cloneSeq(c.Flags),
	}
}

// Equal reports structural equality. Nil and empty sequences are equal.
func (c CollectionRecord) Equal(o CollectionRecord) bool {
	return slices.Equal(c.Titles, o.Titles) &&
		slices.Equal(c.Codes, o.Codes) &&
		slices.Equal(c.Records, o.Records) &&
		slices.Equal(c.Flags, o.Flags)
}

func cloneSeq[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
