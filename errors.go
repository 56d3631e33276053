package iso19115

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// Field-level (soft) codes: the element is omitted, conversion continues.
	CodeInvalidDate          = "invalid_date"
	CodeKeywordMismatch      = "keyword_mismatch"
	CodeInvalidGeometry      = "invalid_geometry"
	CodeTransformUnavailable = "transform_unavailable"
	CodeMalformedLiteral     = "malformed_literal"
	CodeInvalidType          = "invalid_type"
	CodeDefaulted            = "defaulted"
	CodeFolded               = "folded"
	// Fatal codes: the conversion is aborted.
	CodeInvalidCodeValue = "invalid_code_value"
	CodeUnknownType      = "unknown_type"
	// Build-time codes.
	CodeRequired = "required"
)

// Issue represents a single field-level finding.
type Issue struct {
	Path    string // JSON Pointer into the document (for example: /identificationInfo/0/extent).
	Code    string // One of the codes listed above.
	Message string
	Stage   string // Pipeline stage that produced the issue, when known.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"labels":3, "codes":2})
	// for i18n and observability.
	Params map[string]any
}

// Issues is a collection of field-level findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the issue codes in order.
func (iss Issues) Codes() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.Code)
	}
	return out
}

// Has reports whether any issue carries the given code.
func (iss Issues) Has(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// ErrorClass classifies errors by how the pipeline reacts to them.
type ErrorClass int

const (
	// ClassSoft marks a malformed optional sub-structure. It is logged and the
	// element is omitted.
	ClassSoft ErrorClass = iota
	// ClassFatal marks resolver configuration errors and out-of-enumeration
	// codelist literals. The conversion is aborted.
	ClassFatal
	// ClassConstruction marks required document fields missing at build time.
	ClassConstruction
	// ClassCollaborator marks a failure of the external serializer or
	// validator after a successful construction.
	ClassCollaborator
)

// String returns the string representation of ErrorClass
func (c ErrorClass) String() string {
	switch c {
	case ClassSoft:
		return "soft"
	case ClassFatal:
		return "fatal"
	case ClassConstruction:
		return "construction"
	case ClassCollaborator:
		return "collaborator"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownNamespace is wrapped by ResolverError when the namespace prefix
	// of a qualified name is not registered.
	ErrUnknownNamespace = errors.New("unknown namespace")
	// ErrUnknownType is wrapped by ResolverError when the namespace is known but
	// the type is not.
	ErrUnknownType = errors.New("unknown type")
	// ErrMissingCodelistTag is wrapped by ResolverError when a struct field
	// carries no codelist restriction.
	ErrMissingCodelistTag = errors.New("field is not restricted to a codelist")
)

// InvalidCodeValue reports a literal that is not a member of a codelist.
type InvalidCodeValue struct {
	CodeList string // Qualified codelist name, e.g. cit:CI_RoleCode.
	Value    string
	Allowed  []string
}

func (e *InvalidCodeValue) Error() string {
	return fmt.Sprintf("invalid code value %q for %s", e.Value, e.CodeList)
}

// ResolverError reports a mismatch between the document model and the type
// resolver registry. It is a configuration error, never a data error.
type ResolverError struct {
	QName string
	Err   error
}

func (e *ResolverError) Error() string {
	return fmt.Sprintf("resolver: %s: %v", e.QName, e.Err)
}

func (e *ResolverError) Unwrap() error { return e.Err }

// ConstructionError reports required fields still missing when the document
// is built.
type ConstructionError struct {
	Missing Issues
}

func (e *ConstructionError) Error() string {
	return "construction: " + e.Missing.Error()
}

func (e *ConstructionError) Unwrap() error { return e.Missing }

// Stage names a step of the hand-off after construction.
type Stage string

const (
	StageConstruct Stage = "construct"
	StageSerialize Stage = "serialize"
	StageValidate  Stage = "validate"
)

// StageError attributes a failure to a hand-off stage, so that collaborator
// failures stay distinct from construction failures.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string { return string(e.Stage) + ": " + e.Err.Error() }

func (e *StageError) Unwrap() error { return e.Err }

// Classify maps an error onto the pipeline's error taxonomy.
func Classify(err error) ErrorClass {
	var (
		ice *InvalidCodeValue
		re  *ResolverError
		ce  *ConstructionError
		se  *StageError
	)
	switch {
	case errors.As(err, &se) && se.Stage != StageConstruct:
		return ClassCollaborator
	case errors.As(err, &ce):
		return ClassConstruction
	case errors.As(err, &ice), errors.As(err, &re):
		return ClassFatal
	default:
		return ClassSoft
	}
}

// IsFatal reports whether err must abort the current conversion.
func IsFatal(err error) bool {
	return err != nil && Classify(err) == ClassFatal
}
