package iso19115

import (
	"fmt"
	"strconv"
	"strings"
)

// PathRef addresses an element of the metadata document as a JSON Pointer
// (RFC 6901) and creates Issues located there. Paths are immutable; every
// step returns a new path.
type PathRef interface {
	Field(name string) PathRef
	Index(i int) PathRef
	Pointer() string
	Issue(code, msg string, kv ...any) Issue
}

// Root returns the path of the document root.
func Root() PathRef { return docPath(nil) }

// At parses a JSON Pointer. Escaped segments are decoded, so
// At(p.Pointer()) is equivalent to p.
func At(pointer string) PathRef {
	pointer = strings.Trim(pointer, "/")
	if pointer == "" {
		return Root()
	}
	segs := strings.Split(pointer, "/")
	for i, s := range segs {
		segs[i] = unescaper.Replace(s)
	}
	return docPath(segs)
}

var (
	escaper   = strings.NewReplacer("~", "~0", "/", "~1")
	unescaper = strings.NewReplacer("~1", "/", "~0", "~")
)

// docPath holds unescaped segments.
type docPath []string

func (p docPath) with(seg string) docPath {
	out := make(docPath, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

func (p docPath) Field(name string) PathRef {
	if name == "" {
		return p
	}
	return p.with(name)
}

func (p docPath) Index(i int) PathRef { return p.with(strconv.Itoa(i)) }

func (p docPath) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	var b strings.Builder
	for _, s := range p {
		b.WriteByte('/')
		_, _ = escaper.WriteString(&b, s)
	}
	return b.String()
}

// Issue creates an issue at p. kv holds parameter names and values in
// pairs; a trailing key without a value is dropped.
func (p docPath) Issue(code, msg string, kv ...any) Issue {
	params := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return IssueAt(p, code, msg, params)
}
