// Package iso19115 converts loosely-typed dataset records into typed
// ISO 19115-3 metadata documents.
//
// Package iso19115 provides:
//
//   - The shared error model: Issues (JSON Pointer, code, message) for soft
//     field-level findings, and typed errors for fatal resolver problems
//     (ResolverError, InvalidCodeValue), build-time invariant violations
//     (ConstructionError) and collaborator failures (StageError).
//   - Path helpers for addressing document elements in issues.
//   - Struct tag helpers shared by the document model and the type resolver.
//
// Design policy:
//
//   - Keep only shared contracts in the root package; the document model lives
//     in model/, the conversion pipeline in converter/, extents in extent/ and
//     crs/, keywords in keyword/, and the CLI under cmd/iso19115.
//   - Field-level problems never abort a conversion; they are collected as
//     Issues and the offending element is omitted.
//
// Typical usage:
//
//	rec, err := source.FromJSON(bytes.NewReader(data))
//	doc, issues, err := converter.Convert(ctx, rec, converter.DefaultProfile())
package iso19115
