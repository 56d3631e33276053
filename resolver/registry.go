// Package resolver turns a namespace-qualified type name and a literal into a
// typed codelist value.
//
// The registry is built once from the document model and is read-only
// afterwards, so a single instance may be shared by concurrent conversions.
// Every failure here is a configuration error: an unknown namespace or type
// means the model and the registry disagree, and an out-of-enumeration literal
// is reported as InvalidCodeValue. Nothing is defaulted.
package resolver

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/model"
)

// QName is a namespace-qualified type name such as cit:CI_RoleCode.
type QName struct {
	Namespace string
	Type      string
}

func (q QName) String() string { return q.Namespace + ":" + q.Type }

// ParseQName accepts "ns:Type" and the dotted form "ns.Type".
func ParseQName(s string) (QName, error) {
	s = strings.TrimSpace(s)
	i := strings.IndexAny(s, ":.")
	if i <= 0 || i == len(s)-1 {
		return QName{}, &iso.ResolverError{QName: s, Err: fmt.Errorf("malformed qualified name")}
	}
	return QName{Namespace: s[:i], Type: s[i+1:]}, nil
}

// Constructor builds a validated codelist value from a literal.
type Constructor func(literal string) (model.Codelist, error)

// Registry maps qualified names to constructors.
type Registry struct {
	ctors      map[QName]Constructor
	namespaces map[string]struct{}
}

// New builds a registry from codelist specs.
func New(specs ...model.CodelistSpec) (*Registry, error) {
	r := &Registry{ctors: map[QName]Constructor{}, namespaces: map[string]struct{}{}}
	for _, s := range specs {
		q, err := ParseQName(s.QName)
		if err != nil {
			return nil, err
		}
		if _, dup := r.ctors[q]; dup {
			return nil, &iso.ResolverError{QName: s.QName, Err: fmt.Errorf("registered twice")}
		}
		r.ctors[q] = s.Make
		r.namespaces[q.Namespace] = struct{}{}
	}
	return r, nil
}

var defaultRegistry = mustNew(model.Codelists()...)

func mustNew(specs ...model.CodelistSpec) *Registry {
	r, err := New(specs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Default returns the registry of every codelist in the document model.
func Default() *Registry { return defaultRegistry }

// Names returns the registered qualified names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.ctors))
	for q := range r.ctors {
		out = append(out, q.String())
	}
	sort.Strings(out)
	return out
}

// Lookup returns the constructor for a qualified name.
func (r *Registry) Lookup(qname string) (Constructor, error) {
	q, err := ParseQName(qname)
	if err != nil {
		return nil, err
	}
	if _, ok := r.namespaces[q.Namespace]; !ok {
		return nil, &iso.ResolverError{QName: q.String(), Err: iso.ErrUnknownNamespace}
	}
	ctor, ok := r.ctors[q]
	if !ok {
		return nil, &iso.ResolverError{QName: q.String(), Err: iso.ErrUnknownType}
	}
	return ctor, nil
}

// Make constructs the codelist value named by qname from literal.
func (r *Registry) Make(qname, literal string) (model.Codelist, error) {
	ctor, err := r.Lookup(qname)
	if err != nil {
		return nil, err
	}
	return ctor(literal)
}

// ForField constructs a value for the named field of structValue, using the
// codelist declared by the field's iso:"codelist=..." tag. structValue may be
// a struct or a pointer to one.
func (r *Registry) ForField(structValue any, field, literal string) (model.Codelist, error) {
	rt := reflect.TypeOf(structValue)
	for rt != nil && rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	if rt == nil || rt.Kind() != reflect.Struct {
		return nil, &iso.ResolverError{QName: field, Err: fmt.Errorf("not a struct: %T", structValue)}
	}
	sf, ok := rt.FieldByName(field)
	if !ok {
		return nil, &iso.ResolverError{QName: rt.Name() + "." + field, Err: fmt.Errorf("no such field")}
	}
	qname, ok := iso.CodelistOf(sf)
	if !ok {
		return nil, &iso.ResolverError{QName: rt.Name() + "." + field, Err: iso.ErrMissingCodelistTag}
	}
	return r.Make(qname, literal)
}

// Verify walks the given struct values' types and reports every codelist tag
// that has no registered constructor or whose field type is not a codelist.
// It is meant to run once at startup.
func (r *Registry) Verify(values ...any) error {
	seen := map[reflect.Type]bool{}
	var errs []error
	for _, v := range values {
		errs = r.verifyType(reflect.TypeOf(v), seen, errs)
	}
	if len(errs) == 0 {
		return nil
	}
	return errs[0]
}

var codelistType = reflect.TypeOf((*model.Codelist)(nil)).Elem()

func (r *Registry) verifyType(t reflect.Type, seen map[reflect.Type]bool, errs []error) []error {
	t = indirect(t)
	if t == nil || t.Kind() != reflect.Struct || seen[t] {
		return errs
	}
	seen[t] = true
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if qname, ok := iso.CodelistOf(sf); ok {
			if _, err := r.Lookup(qname); err != nil {
				errs = append(errs, err)
			}
			if !indirect(sf.Type).Implements(codelistType) {
				errs = append(errs, &iso.ResolverError{
					QName: qname,
					Err:   fmt.Errorf("element %s.%s of type %s is not a codelist", t.Name(), iso.ElementName(sf), sf.Type),
				})
			}
			continue
		}
		errs = r.verifyType(sf.Type, seen, errs)
	}
	return errs
}

// indirect strips pointers, slices and arrays down to the element type.
func indirect(t reflect.Type) reflect.Type {
	for t != nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			t = t.Elem()
		default:
			return t
		}
	}
	return nil
}

// VerifyModel verifies every struct reachable from the document root,
// including the concrete party and geographic element types behind the
// model's interfaces.
func (r *Registry) VerifyModel() error {
	return r.Verify(
		model.Document{},
		model.Organisation{},
		model.Individual{},
		model.BoundingBox{},
		model.GeographicDescription{},
	)
}
