package records

// Engine binds a record-transform policy and a sample variant to the
// collection operations.
type Engine struct {
	transform RecordTransform
	variant   SampleVariant
}

// Option configures an Engine.
type Option func(*Engine)

// WithTransform sets the policy used by TransformCollection.
func WithTransform(t RecordTransform) Option {
	return func(e *Engine) {
		if t != nil {
			e.transform = t
		}
	}
}

// WithSampleVariant sets the variant returned by SampleCollection.
func WithSampleVariant(v SampleVariant) Option {
	return func(e *Engine) {
		e.variant = v
	}
}

// NewEngine returns an Engine using AgeByTenPolicy and SamplePopulated
// unless overridden.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		transform: AgeByTenPolicy,
		variant:   SamplePopulated,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Variant returns the configured sample variant.
func (e *Engine) Variant() SampleVariant {
	return e.variant
}

// Transform returns the configured record-transform policy.
func (e *Engine) Transform() RecordTransform {
	return e.transform
}

func (e *Engine) SampleCollection() CollectionRecord {
	return SampleCollection(e.variant)
}

func (e *Engine) TransformCollection(c CollectionRecord) (CollectionRecord, error) {
	return TransformCollection(c, e.transform)
}
