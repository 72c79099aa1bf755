package export

import (
	"github.com/wippyai/writ/records"
)

// RecordNamespace is the namespace RecordHost registers under.
const RecordNamespace = "writ:records/records@0.1.0"

// RecordHost exposes the records operations as exports. The collection
// operations use the policy and sample variant of the wrapped Engine.
type RecordHost struct {
	engine *records.Engine
}

// NewRecordHost wraps engine. A nil engine uses records.NewEngine().
func NewRecordHost(engine *records.Engine) *RecordHost {
	if engine == nil {
		engine = records.NewEngine()
	}
	return &RecordHost{engine: engine}
}

func (h *RecordHost) Namespace() string {
	return RecordNamespace
}

func (h *RecordHost) ParamNames() map[string][]string {
	return map[string][]string{
		"extract-age":                    {"r"},
		"extract-age-through-one-level":  {"n"},
		"extract-age-through-two-levels": {"d"},
		"construct-flat":                 {"name", "age"},
		"age-by-ten":                     {"r"},
		"wrap-one-level":                 {"r"},
		"wrap-two-levels":                {"r"},
		"bump-deep-id":                   {"d"},
		"transform-collection":           {"c"},
		"sum-ages":                       {"rs"},
	}
}

func (h *RecordHost) ExtractAge(r records.FlatRecord) int32 {
	return records.ExtractAge(r)
}

func (h *RecordHost) ExtractAgeThroughOneLevel(n records.NestedRecord) int32 {
	return records.ExtractAgeThroughOneLevel(n)
}

func (h *RecordHost) ExtractAgeThroughTwoLevels(d records.DeepNestedRecord) int32 {
	return records.ExtractAgeThroughTwoLevels(d)
}

func (h *RecordHost) ConstructFlat(name string, age int32) records.FlatRecord {
	return records.ConstructFlat(name, age)
}

func (h *RecordHost) AgeByTen(r records.FlatRecord) records.FlatRecord {
	return records.AgeByTen(r)
}

func (h *RecordHost) WrapOneLevel(r records.FlatRecord) records.NestedRecord {
	return records.WrapOneLevel(r)
}

func (h *RecordHost) WrapTwoLevels(r records.FlatRecord) records.DeepNestedRecord {
	return records.WrapTwoLevels(r)
}

func (h *RecordHost) BumpDeepID(d records.DeepNestedRecord) records.DeepNestedRecord {
	return records.BumpDeepID(d)
}

func (h *RecordHost) SampleCollection() records.CollectionRecord {
	return h.engine.SampleCollection()
}

func (h *RecordHost) TransformCollection(c records.CollectionRecord) (records.CollectionRecord, error) {
	return h.engine.TransformCollection(c)
}

func (h *RecordHost) SumAges(rs []records.FlatRecord) int32 {
	return records.SumAges(rs)
}
