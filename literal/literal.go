// Package literal parses literal-encoded structures embedded in single string
// fields of a source record: lists and objects written either as JSON or as
// Python-style literals ('single quotes', True/False/None, tuples, trailing
// commas). Parsing never panics and never evaluates anything; malformed input
// yields "no value".
package literal

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Kind is the type of a parsed value.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Dict
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case List:
		return "list"
	case Dict:
		return "dict"
	default:
		return "unknown"
	}
}

// Pair is one dict entry. Keys are rendered as strings.
type Pair struct {
	Key   string
	Value Value
}

// Value is a parsed literal tree.
type Value struct {
	Kind  Kind
	Bool  bool
	Num   float64
	Text  string // String value, or the source text of a Number.
	Items []Value
	Pairs []Pair
}

// Parse parses s. The second result is false when s is not a well-formed
// literal.
func Parse(s string) (Value, bool) {
	p := &parser{src: s}
	p.skipSpace()
	v, ok := p.value(0)
	if !ok {
		return Value{}, false
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Value{}, false
	}
	return v, true
}

// Get returns the value of a dict key.
func (v Value) Get(key string) (Value, bool) {
	for _, p := range v.Pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return Value{}, false
}

// Str returns the string form of a scalar; lists and dicts yield "".
func (v Value) Str() string {
	switch v.Kind {
	case String, Number:
		return v.Text
	case Bool:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// Strings returns the string forms of a list of scalars.
func (v Value) Strings() ([]string, bool) {
	if v.Kind != List {
		return nil, false
	}
	out := make([]string, 0, len(v.Items))
	for _, it := range v.Items {
		if it.Kind == List || it.Kind == Dict || it.Kind == Null {
			return nil, false
		}
		out = append(out, it.Str())
	}
	return out, true
}

// Any converts the tree into map[string]any, []any, string, float64, bool
// and nil values.
func (v Value) Any() any {
	switch v.Kind {
	case Bool:
		return v.Bool
	case Number:
		return v.Num
	case String:
		return v.Text
	case List:
		out := make([]any, 0, len(v.Items))
		for _, it := range v.Items {
			out = append(out, it.Any())
		}
		return out
	case Dict:
		out := make(map[string]any, len(v.Pairs))
		for _, p := range v.Pairs {
			out[p.Key] = p.Value.Any()
		}
		return out
	default:
		return nil
	}
}

// maxDepth bounds nesting so hostile input cannot exhaust the stack.
const maxDepth = 64

type parser struct {
	src string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser) value(depth int) (Value, bool) {
	if depth > maxDepth {
		return Value{}, false
	}
	switch c := p.peek(); {
	case c == '[':
		items, ok := p.sequence(depth, '[', ']')
		return Value{Kind: List, Items: items}, ok
	case c == '(':
		items, ok := p.sequence(depth, '(', ')')
		return Value{Kind: List, Items: items}, ok
	case c == '{':
		return p.dict(depth)
	case c == '\'' || c == '"':
		s, ok := p.str()
		return Value{Kind: String, Text: s}, ok
	case c == 'u' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '\'' || p.src[p.pos+1] == '"'):
		p.pos++
		s, ok := p.str()
		return Value{Kind: String, Text: s}, ok
	case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	default:
		return p.keyword()
	}
}

func (p *parser) sequence(depth int, open, close byte) ([]Value, bool) {
	p.pos++ // open
	items := []Value{}
	for {
		p.skipSpace()
		if p.peek() == close {
			p.pos++
			return items, true
		}
		v, ok := p.value(depth + 1)
		if !ok {
			return nil, false
		}
		items = append(items, v)
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case close:
			p.pos++
			return items, true
		default:
			return nil, false
		}
	}
}

func (p *parser) dict(depth int) (Value, bool) {
	p.pos++ // {
	out := Value{Kind: Dict, Pairs: []Pair{}}
	for {
		p.skipSpace()
		if p.peek() == '}' {
			p.pos++
			return out, true
		}
		k, ok := p.value(depth + 1)
		if !ok || k.Kind == List || k.Kind == Dict {
			return Value{}, false
		}
		p.skipSpace()
		if p.peek() != ':' {
			return Value{}, false
		}
		p.pos++
		p.skipSpace()
		v, ok := p.value(depth + 1)
		if !ok {
			return Value{}, false
		}
		key := k.Str()
		if k.Kind == Null {
			key = "None"
		}
		out.Pairs = append(out.Pairs, Pair{Key: key, Value: v})
		p.skipSpace()
		switch p.peek() {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return out, true
		default:
			return Value{}, false
		}
	}
}

func (p *parser) str() (string, bool) {
	quote := p.src[p.pos]
	p.pos++
	var b strings.Builder
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), true
		case c == '\\':
			if p.pos+1 >= len(p.src) {
				return "", false
			}
			p.pos++
			e := p.src[p.pos]
			switch e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case '0':
				b.WriteByte(0)
			case '\\', '\'', '"', '/':
				b.WriteByte(e)
			case 'u':
				r, ok := p.hex(4)
				if !ok {
					return "", false
				}
				if utf16.IsSurrogate(r) {
					r = p.lowSurrogate(r)
				}
				b.WriteRune(r)
			case 'U':
				r, ok := p.hex(8)
				if !ok {
					return "", false
				}
				b.WriteRune(r)
			case 'x':
				r, ok := p.hex(2)
				if !ok {
					return "", false
				}
				b.WriteRune(r)
			default:
				// Unknown escapes are kept verbatim.
				b.WriteByte('\\')
				b.WriteByte(e)
			}
			p.pos++
		case c == '\n':
			return "", false
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
	return "", false
}

func (p *parser) number() (Value, bool) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == '+' || c == 'e' || c == 'E' || c == '_' {
			p.pos++
			continue
		}
		break
	}
	text := p.src[start:p.pos]
	f, err := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
	if err != nil {
		return Value{}, false
	}
	return Value{Kind: Number, Num: f, Text: strings.TrimPrefix(text, "+")}, true
}

func (p *parser) keyword() (Value, bool) {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			p.pos++
			continue
		}
		break
	}
	switch p.src[start:p.pos] {
	case "True", "true":
		return Value{Kind: Bool, Bool: true}, true
	case "False", "false":
		return Value{Kind: Bool, Bool: false}, true
	case "None", "null":
		return Value{Kind: Null}, true
	default:
		return Value{}, false
	}
}

// StringsOf accepts either an already-decoded list or a literal-encoded string
// and returns its scalar members as strings.
func StringsOf(v any) ([]string, bool) {
	switch x := v.(type) {
	case []string:
		return append([]string(nil), x...), true
	case []any:
		out := make([]string, 0, len(x))
		for _, it := range x {
			switch s := it.(type) {
			case string:
				out = append(out, s)
			case float64:
				out = append(out, strconv.FormatFloat(s, 'f', -1, 64))
			case int:
				out = append(out, strconv.Itoa(s))
			case interface{ String() string }:
				out = append(out, s.String())
			default:
				return nil, false
			}
		}
		return out, true
	case string:
		lv, ok := Parse(x)
		if !ok {
			return nil, false
		}
		return lv.Strings()
	default:
		return nil, false
	}
}

// RecordsOf accepts either decoded records or a literal-encoded list of dicts.
// Non-dict members make the whole value invalid.
func RecordsOf(v any) ([]map[string]any, bool) {
	switch x := v.(type) {
	case []map[string]any:
		return x, true
	case []any:
		out := make([]map[string]any, 0, len(x))
		for _, it := range x {
			m, ok := it.(map[string]any)
			if !ok {
				return nil, false
			}
			out = append(out, m)
		}
		return out, true
	case string:
		lv, ok := Parse(x)
		if !ok || lv.Kind != List {
			return nil, false
		}
		return RecordsOf(lv.Any())
	default:
		return nil, false
	}
}

// hex reads n hex digits following the escape letter at p.pos and leaves
// p.pos on the last digit.
func (p *parser) hex(n int) (rune, bool) {
	if p.pos+n >= len(p.src) {
		return 0, false
	}
	v, err := strconv.ParseUint(p.src[p.pos+1:p.pos+1+n], 16, 32)
	if err != nil {
		return 0, false
	}
	p.pos += n
	return rune(v), true
}

// lowSurrogate combines hi with an immediately following \u escape when the
// two form a UTF-16 pair. Otherwise it returns unicode.ReplacementChar and
// leaves p.pos alone.
func (p *parser) lowSurrogate(hi rune) rune {
	if !strings.HasPrefix(p.src[p.pos+1:], `\u`) {
		return unicode.ReplacementChar
	}
	save := p.pos
	p.pos += 2
	lo, ok := p.hex(4)
	if ok {
		if r := utf16.DecodeRune(hi, lo); r != unicode.ReplacementChar {
			return r
		}
	}
	p.pos = save
	return unicode.ReplacementChar
}
