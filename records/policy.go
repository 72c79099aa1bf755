package records

import (
	"github.com/wippyai/writ/errors"
)

// Policy names accepted by PolicyByName.
const (
	PolicyAgeByTen = "age-by-ten"
	PolicyFixture  = "fixture"
)

// RecordTransform maps one record of a collection to its replacement.
type RecordTransform interface {
	TransformRecord(r FlatRecord) FlatRecord
}

// RecordTransformFunc adapts a function to RecordTransform.
type RecordTransformFunc func(r FlatRecord) FlatRecord

func (f RecordTransformFunc) TransformRecord(r FlatRecord) FlatRecord {
	return f(r)
}

// AgeByTenPolicy applies AgeByTen to each record.
var AgeByTenPolicy RecordTransform = RecordTransformFunc(AgeByTen)

// DefaultFixture is the record NormalizeTo uses when none is configured.
var DefaultFixture = FlatRecord{Name: "test", Age: 1}

// NormalizeTo replaces every record with fixture, whatever its input.
func NormalizeTo(fixture FlatRecord) RecordTransform {
	return RecordTransformFunc(func(FlatRecord) FlatRecord {
		return fixture
	})
}

// PolicyByName resolves a policy name from configuration.
func PolicyByName(name string, fixture FlatRecord) (RecordTransform, error) {
	switch name {
	case PolicyAgeByTen, "":
		return AgeByTenPolicy, nil
	case PolicyFixture:
		return NormalizeTo(fixture), nil
	default:
		return nil, errors.InvalidInput(errors.PhaseConfig, "unknown record-transform policy "+name)
	}
}
