// Package converter runs the conversion pipeline that turns a source record
// into an ISO 19115-3 document.
//
// A Converter holds a profile (the ordered stage list plus its settings) and
// the read-only registries shared by every conversion. A Controller owns one
// conversion and walks it through Initialize, Process, Finalize and Build.
// Convert and ConvertAll wrap that lifecycle for the common cases.
//
// Stages read the source record and document fields populated by earlier
// stages, and write only their own fields. Running a stage twice leaves the
// document unchanged. Field-level problems are collected as soft issues;
// resolver failures and out-of-enumeration codelist literals abort the
// conversion.
package converter
