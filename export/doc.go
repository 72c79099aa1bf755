// Package export exposes Go operations under stable kebab-case names and
// invokes them with generic, already-decoded arguments.
//
// # Registration
//
// A writ.Host registers every exported method as an export of its
// namespace. Method names are converted from PascalCase to kebab-case,
// keeping acronyms together (BumpDeepID -> bump-deep-id). Single functions
// may be registered with RegisterFunc.
//
// A handler may take a leading context.Context, which is supplied by Invoke
// and does not count towards the export's arity. Handlers return nothing, a
// value, an error, or a value and an error.
//
// # Signatures
//
// Each export carries a Signature derived from its Go parameter and result
// types as WIT types:
//
//	int32            s32
//	string           string
//	bool             bool
//	[]T              list<T>
//	struct           record (fields named by the `wit` tag)
//
// # Argument Shaping
//
// Invoke accepts arguments as generic values (maps, slices, numbers,
// strings, bools), typically decoded from JSON or YAML. Each argument is
// checked against the parameter type (missing and unknown record fields,
// kind mismatches, integer range) and then decoded into the typed value
// with mapstructure. Arguments that already have the parameter's Go type
// are passed through.
//
// # Observability
//
// Every call is logged at debug level with a call id, recorded in a span
// from the configured OpenTelemetry tracer, and counted in the optional
// Prometheus Metrics.
//
// # Thread Safety
//
// Registry is safe for concurrent use. Handlers run without the registry
// lock held.
package export
