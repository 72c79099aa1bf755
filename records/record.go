package records

// Fixture constants used by the wrap and bump operations.
const (
	WrapOneLevelID  int32 = 1
	WrapTwoLevelsID int32 = 2
	DeepIDStep      int32 = 2
	AgeStep         int32 = 10
)

// ExtractAge returns r.Age.
func ExtractAge(r FlatRecord) int32 {
	return r.Age
}

// ExtractAgeThroughOneLevel returns n.Payload.Age.
func ExtractAgeThroughOneLevel(n NestedRecord) int32 {
	return n.Payload.Age
}

// ExtractAgeThroughTwoLevels returns d.Payload.Payload.Age.
func ExtractAgeThroughTwoLevels(d DeepNestedRecord) int32 {
	return d.Payload.Payload.Age
}

// ConstructFlat builds a FlatRecord. Any name and age are accepted.
func ConstructFlat(name string, age int32) FlatRecord {
	return FlatRecord{Name: name, Age: age}
}

// AgeByTen returns a copy of r with Age increased by AgeStep.
func AgeByTen(r FlatRecord) FlatRecord {
	return FlatRecord{Name: r.Name, Age: r.Age + AgeStep}
}

// WrapOneLevel returns {id: 1, payload: AgeByTen(r)}.
func WrapOneLevel(r FlatRecord) NestedRecord {
	return NestedRecord{ID: WrapOneLevelID, Payload: AgeByTen(r)}
}

// WrapTwoLevels returns {id: 2, payload: WrapOneLevel(r)}.
func WrapTwoLevels(r FlatRecord) DeepNestedRecord {
	return DeepNestedRecord{ID: WrapTwoLevelsID, Payload: WrapOneLevel(r)}
}

// BumpDeepID increments the top-level id by DeepIDStep. The payload is
// copied through untouched.
func BumpDeepID(d DeepNestedRecord) DeepNestedRecord {
	return DeepNestedRecord{ID: d.ID + DeepIDStep, Payload: d.Payload}
}
