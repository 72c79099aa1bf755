package records

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/writ/errors"
)

func TestSampleCollection(t *testing.T) {
	t.Run("populated", func(t *testing.T) {
		c := SampleCollection(SamplePopulated)
		assert.Equal(t, []string{"star wars 1", "star wars 2"}, c.Titles)
		assert.Equal(t, []int32{99, 98, 97}, c.Codes)
		assert.Equal(t, []FlatRecord{{"name1", 1}, {"name2", 2}}, c.Records)
		assert.Equal(t, []bool{true, false, true}, c.Flags)
	})

	t.Run("empty", func(t *testing.T) {
		c := SampleCollection(SampleEmpty)
		assert.Equal(t, []string{"star wars 1", "star wars 2"}, c.Titles)
		assert.Equal(t, []int32{99, 98, 97}, c.Codes)
		assert.NotNil(t, c.Records)
		assert.Empty(t, c.Records)
		assert.Equal(t, []bool{true, false, true}, c.Flags)
	})

	t.Run("fresh per call", func(t *testing.T) {
		a := SampleCollection(SamplePopulated)
		a.Titles[0] = "changed"
		a.Records[0].Age = 100
		b := SampleCollection(SamplePopulated)
		assert.Equal(t, "star wars 1", b.Titles[0])
		assert.Equal(t, int32(1), b.Records[0].Age)
	})
}

func TestTransformCollection_Scenario(t *testing.T) {
	in := CollectionRecord{
		Titles: []string{"a", "b"},
		Codes:  []int32{1, 2, 3},
		Flags:  []bool{true, false},
	}

	got, err := TransformCollection(in, AgeByTenPolicy)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, got.Titles)
	assert.Equal(t, []int32{2, 3}, got.Codes)
	assert.Equal(t, []bool{true, false}, got.Flags)
	assert.Empty(t, got.Records)
}

func TestTransformCollection_Policies(t *testing.T) {
	in := SampleCollection(SamplePopulated)

	t.Run("age-by-ten", func(t *testing.T) {
		got, err := TransformCollection(in, AgeByTenPolicy)
		require.NoError(t, err)
		assert.Equal(t, []FlatRecord{{"name1", 11}, {"name2", 12}}, got.Records)
	})

	t.Run("fixture", func(t *testing.T) {
		got, err := TransformCollection(in, NormalizeTo(DefaultFixture))
		require.NoError(t, err)
		assert.Equal(t, []FlatRecord{{"test", 1}, {"test", 1}}, got.Records)
	})

	t.Run("nil defaults to age-by-ten", func(t *testing.T) {
		got, err := TransformCollection(in, nil)
		require.NoError(t, err)
		assert.Equal(t, []FlatRecord{{"name1", 11}, {"name2", 12}}, got.Records)
	})
}

func TestTransformCollection_SingleCode(t *testing.T) {
	got, err := TransformCollection(CollectionRecord{Codes: []int32{42}}, AgeByTenPolicy)
	require.NoError(t, err)
	assert.NotNil(t, got.Codes)
	assert.Empty(t, got.Codes)
	assert.NotNil(t, got.Titles)
	assert.NotNil(t, got.Flags)
}

func TestTransformCollection_EmptyCodes(t *testing.T) {
	in := CollectionRecord{
		Titles:  []string{"a"},
		Records: []FlatRecord{{"x", 1}},
		Flags:   []bool{true},
	}

	got, err := TransformCollection(in, AgeByTenPolicy)
	require.Error(t, err)
	assert.True(t, got.Equal(CollectionRecord{}), "no partial result on failure")

	var werr *errors.Error
	require.True(t, stderrors.As(err, &werr))
	assert.Equal(t, errors.PhaseTransform, werr.Phase)
	assert.Equal(t, errors.KindOutOfBounds, werr.Kind)
	assert.Equal(t, "transform-collection", werr.Op)
	assert.Equal(t, []string{"codes"}, werr.Path)
	assert.Contains(t, err.Error(), "transform-collection")
	assert.Equal(t, 1, werr.Value)
	assert.Equal(t, "index 1 out of bounds (length 0)", werr.Detail)
}

func TestTransformCollection_NoAliasing(t *testing.T) {
	in := SampleCollection(SamplePopulated)
	snapshot := in.Clone()

	got, err := TransformCollection(in, AgeByTenPolicy)
	require.NoError(t, err)
	assert.True(t, in.Equal(snapshot), "input must not be mutated")

	got.Codes[0] = -1
	got.Flags[0] = false
	got.Titles[0] = "mutated"
	assert.True(t, in.Equal(snapshot), "output must not alias input")
}

func TestSumAges(t *testing.T) {
	tests := []struct {
		name string
		in   []FlatRecord
		want int32
	}{
		{"nil", nil, 0},
		{"empty", []FlatRecord{}, 0},
		{"scenario", []FlatRecord{{"x", 1}, {"y", 2}}, 3},
		{"negative", []FlatRecord{{"a", -5}, {"b", 3}}, -2},
		{"wraps", []FlatRecord{{"a", math.MaxInt32}, {"b", 1}}, math.MinInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SumAges(tt.in))
		})
	}
}

func TestCollectionRecord_Clone(t *testing.T) {
	var zero CollectionRecord
	c := zero.Clone()
	assert.NotNil(t, c.Titles)
	assert.NotNil(t, c.Records)
	assert.True(t, c.Equal(zero))

	src := SampleCollection(SamplePopulated)
	cp := src.Clone()
	cp.Records[1].Name = "other"
	assert.Equal(t, "name2", src.Records[1].Name)
}

func TestParseSampleVariant(t *testing.T) {
	v, err := ParseSampleVariant("empty")
	require.NoError(t, err)
	assert.Equal(t, SampleEmpty, v)
	assert.Equal(t, "empty", v.String())

	v, err = ParseSampleVariant("")
	require.NoError(t, err)
	assert.Equal(t, SamplePopulated, v)

	_, err = ParseSampleVariant("bogus")
	assert.Error(t, err)
}
