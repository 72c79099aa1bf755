package conformance

import (
	"github.com/wippyai/writ/errors"
	"github.com/wippyai/writ/records"
)

// Suite returns the built-in cases for the records exports. Cases that
// depend on the record-transform policy or the sample variant derive their
// expectations from policy and variant; a nil policy means
// records.AgeByTenPolicy.
func Suite(policy records.RecordTransform, variant records.SampleVariant) []Case {
	if policy == nil {
		policy = records.AgeByTenPolicy
	}

	alice := records.FlatRecord{Name: "Alice", Age: 30}
	bob := records.FlatRecord{Name: "Bob", Age: 5}
	neg := records.FlatRecord{Name: "", Age: -5}
	deep := records.DeepNestedRecord{
		ID: 7,
		Payload: records.NestedRecord{
			ID:      3,
			Payload: records.FlatRecord{Name: "deep", Age: 42},
		},
	}

	cases := []Case{
		{
			Name:   "construct-flat",
			Export: "construct-flat",
			Args:   []any{"Alice", 30},
			Expect: alice,
		},
		{
			Name:   "age-by-ten",
			Export: "age-by-ten",
			Args:   []any{alice},
			Expect: records.FlatRecord{Name: "Alice", Age: 40},
		},
		{
			Name:   "age-by-ten negative",
			Export: "age-by-ten",
			Args:   []any{neg},
			Expect: records.FlatRecord{Name: "", Age: 5},
		},
		{
			Name:   "extract-age",
			Export: "extract-age",
			Args:   []any{alice},
			Expect: 30,
		},
		{
			Name:   "extract-age-through-one-level",
			Export: "extract-age-through-one-level",
			Args:   []any{deep.Payload},
			Expect: 42,
		},
		{
			Name:   "extract-age-through-two-levels",
			Export: "extract-age-through-two-levels",
			Args:   []any{deep},
			Expect: 42,
		},
		{
			Name:   "wrap-one-level",
			Export: "wrap-one-level",
			Args:   []any{bob},
			Expect: records.NestedRecord{ID: 1, Payload: records.FlatRecord{Name: "Bob", Age: 15}},
		},
		{
			Name:   "wrap-two-levels",
			Export: "wrap-two-levels",
			Args:   []any{bob},
			Expect: map[string]any{
				"id": 2,
				"payload": map[string]any{
					"id":      1,
					"payload": map[string]any{"name": "Bob", "age": 15},
				},
			},
		},
		{
			Name:   "bump-deep-id",
			Export: "bump-deep-id",
			Args:   []any{deep},
			Expect: records.DeepNestedRecord{ID: 9, Payload: deep.Payload},
		},
		{
			Name:   "sum-ages",
			Export: "sum-ages",
			Args: []any{[]any{
				map[string]any{"name": "x", "age": 1},
				map[string]any{"name": "y", "age": 2},
			}},
			Expect: 3,
		},
		{
			Name:   "sum-ages empty",
			Export: "sum-ages",
			Args:   []any{[]any{}},
			Expect: 0,
		},
		{
			Name:   "transform-collection",
			Export: "transform-collection",
			Args: []any{map[string]any{
				"titles":  []any{"a", "b"},
				"codes":   []any{1, 2, 3},
				"records": []any{},
				"flags":   []any{true, false},
			}},
			Expect: map[string]any{
				"titles":  []any{"b", "a"},
				"codes":   []any{2, 3},
				"records": []any{},
				"flags":   []any{true, false},
			},
		},
		{
			Name:   "transform-collection empty codes",
			Export: "transform-collection",
			Args: []any{map[string]any{
				"titles":  []any{},
				"codes":   []any{},
				"records": []any{},
				"flags":   []any{},
			}},
			WantKind: errors.KindOutOfBounds,
		},
	}

	sample := records.SampleCollection(variant)
	cases = append(cases,
		Case{
			Name:   "sample-collection " + variant.String(),
			Export: "sample-collection",
			Expect: sample,
		},
		Case{
			Name:   "transform-collection sample " + variant.String(),
			Export: "transform-collection",
			Args:   []any{sample},
			Expect: transformedSample(sample, policy),
		},
	)
	return cases
}

// transformedSample spells out the expected transform of a sample
// collection rather than calling records.TransformCollection.
func transformedSample(sample records.CollectionRecord, policy records.RecordTransform) records.CollectionRecord {
	recs := make([]records.FlatRecord, len(sample.Records))
	for i, r := range sample.Records {
		recs[i] = policy.TransformRecord(r)
	}
	return records.CollectionRecord{
		Titles:  []string{"star wars 2", "star wars 1"},
		Codes:   []int32{98, 97},
		Records: recs,
		Flags:   []bool{true, false, true},
	}
}
