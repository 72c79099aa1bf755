// Package records implements the record and collection operations exercised
// by the conformance surface.
//
// # Data Model
//
//	FlatRecord        { name: string, age: s32 }
//	NestedRecord      { id: s32, payload: FlatRecord }
//	DeepNestedRecord  { id: s32, payload: NestedRecord }
//	CollectionRecord  { titles: list<string>, codes: list<s32>,
//	                    records: list<FlatRecord>, flags: list<bool> }
//
// Records are Go value types. Nested payloads are embedded by value, so a
// record owns its payload and copying the parent copies the payload.
// Collections own their slices; every operation that returns a collection
// allocates fresh backing arrays and never aliases its input.
//
// # Operations
//
// Extraction (ExtractAge and the one- and two-level variants), construction
// (ConstructFlat), field rewriting (AgeByTen, WrapOneLevel, WrapTwoLevels,
// BumpDeepID) and whole-collection rewriting (SampleCollection,
// TransformCollection, SumAges).
//
// The ids produced by WrapOneLevel and WrapTwoLevels are fixture constants,
// not computed identifiers.
//
// # Record-Transform Policy
//
// TransformCollection maps every record through a RecordTransform. Two
// policies are provided:
//
//	AgeByTenPolicy       age + 10, name kept (default)
//	NormalizeTo(fixture) every record replaced by fixture
//
// # Arithmetic
//
// All integer arithmetic is native int32 and wraps on overflow.
//
// # Thread Safety
//
// Every function is pure. Engine is immutable after construction and safe
// for concurrent use.
package records
