// Package conformance runs cases against named exports and checks their
// results.
//
// A Case names an export, its generic arguments and, optionally, the
// expected result. Runner invokes each case through an Invoker (normally an
// *export.Registry) and collects a Report. Expected and actual values are
// compared structurally after canonicalising both through JSON, so a Go
// record and the map decoded from its JSON form compare equal.
//
// Suite returns the built-in cases for the records exports under a given
// record-transform policy and sample variant. LoadBatch reads batch files:
// a list of argument lists, or a list of single arguments.
package conformance
