// Package errors provides structured error types for writ.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the failing export or operation name, the field path,
// Go/WIT type names and the cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseArgs, errors.KindTypeMismatch).
//		Op("construct-flat").
//		Path("age").
//		GoType("string").
//		WitType("s32").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseTransform, "transform-collection", []string{"codes"}, 1, 0)
//	err := errors.NotFound(errors.PhaseInvoke, "export", "age-by-ten")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
