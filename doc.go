// Package writ is a conformance surface for structured values crossing an
// interface boundary.
//
// A set of record and collection operations is registered under stable
// kebab-case export names and invoked with fully-materialized generic
// arguments (decoded JSON or YAML). Results are compared against expected
// values, one call at a time, in batches, or through a built-in suite.
//
// # Architecture Overview
//
//	writ/                Root package with the Host contract
//	├── records/         Record types and the transformation engine
//	├── export/          Named-export registry, signatures and invocation
//	├── conformance/     Cases, batch files, expected-result matching, suite
//	├── config/          YAML configuration and validation
//	├── errors/          Structured error types
//	└── cmd/writ/        Command-line tester and interactive TUI
//
// # Quick Start
//
//	engine := records.NewEngine()
//	reg := export.NewRegistry()
//	if err := reg.RegisterHost(export.NewRecordHost(engine)); err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := reg.Invoke(ctx, "wrap-two-levels",
//	    map[string]any{"name": "Bob", "age": 5})
//	// records.DeepNestedRecord{ID: 2, Payload: {ID: 1, Payload: {Bob 15}}}
//
// # Export Names
//
// Method names are converted from PascalCase to kebab-case:
//
//	ExtractAge       -> extract-age
//	BumpDeepID       -> bump-deep-id
//	SumAges          -> sum-ages
//
// Exports may be addressed as "namespace#name" or by bare name when the
// name is unique across namespaces.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[transform] out_of_bounds in transform-collection at codes: ...
//	[args] field_missing in wrap-one-level at r: required field "age" not found
package writ
