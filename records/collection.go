package records

import (
	"github.com/wippyai/writ/errors"
)

// SampleVariant selects which golden collection SampleCollection returns.
type SampleVariant int

const (
	// SamplePopulated carries two literal records.
	SamplePopulated SampleVariant = iota
	// SampleEmpty carries no records.
	SampleEmpty
)

// Variant names accepted by ParseSampleVariant.
const (
	SamplePopulatedName = "populated"
	SampleEmptyName     = "empty"
)

func (v SampleVariant) String() string {
	switch v {
	case SamplePopulated:
		return SamplePopulatedName
	case SampleEmpty:
		return SampleEmptyName
	default:
		return "unknown"
	}
}

// ParseSampleVariant resolves a variant name. The empty string selects
// SamplePopulated.
func ParseSampleVariant(name string) (SampleVariant, error) {
	switch name {
	case SamplePopulatedName, "":
		return SamplePopulated, nil
	case SampleEmptyName:
		return SampleEmpty, nil
	default:
		return 0, errors.InvalidInput(errors.PhaseConfig, "unknown sample variant "+name)
	}
}

// SampleCollection returns the fixed reference collection for v.
func SampleCollection(v SampleVariant) CollectionRecord {
	c := CollectionRecord{
		Titles:  []string{"star wars 1", "star wars 2"},
		Codes:   []int32{99, 98, 97},
		Records: []FlatRecord{},
		Flags:   []bool{true, false, true},
	}
	if v == SamplePopulated {
		c.Records = []FlatRecord{
			{Name: "name1", Age: 1},
			{Name: "name2", Age: 2},
		}
	}
	return c
}

// TransformCollection returns a new collection with titles reversed, the
// first code dropped, every record mapped through t and flags copied.
//
// c.Codes must hold at least one element; otherwise an out_of_bounds error
// naming transform-collection is returned.
func TransformCollection(c CollectionRecord, t RecordTransform) (CollectionRecord, error) {
	if len(c.Codes) == 0 {
		return CollectionRecord{}, errors.OutOfBounds(errors.PhaseTransform, "transform-collection", []string{"codes"}, 1, 0)
	}
	if t == nil {
		t = AgeByTenPolicy
	}

	titles := make([]string, len(c.Titles))
	for i, s := range c.Titles {
		titles[len(titles)-1-i] = s
	}

	recs := make([]FlatRecord, len(c.Records))
	for i, r := range c.Records {
		recs[i] = t.TransformRecord(r)
	}

	return CollectionRecord{
		Titles:  titles,
		Codes:   cloneSeq(c.Codes[1:]),
		Records: recs,
		Flags:   cloneSeq(c.Flags),
	}, nil
}

// SumAges sums the ages with int32 wraparound. An empty slice sums to 0.
func SumAges(rs []FlatRecord) int32 {
	var sum int32
	for _, r := range rs {
		sum += r.Age
	}
	return sum
}
