package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// FromJSON decodes a single JSON object. Numbers keep their literal text.
func FromJSON(r io.Reader) (Record, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return Record{}, fmt.Errorf("source: decode json: %w", err)
	}
	if m == nil {
		return Record{}, errors.New("source: json document is not an object")
	}
	return FromMap(m), nil
}

// FromYAML decodes a single YAML mapping.
func FromYAML(r io.Reader) (Record, error) {
	var node any
	if err := yaml.NewDecoder(r).Decode(&node); err != nil {
		return Record{}, fmt.Errorf("source: decode yaml: %w", err)
	}
	m := yamlAnyToStringMap(node)
	if m == nil {
		return Record{}, errors.New("source: yaml document is not a mapping")
	}
	return FromMap(m), nil
}

// Format selects the batch decoder.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ReadAll decodes every record in r. JSON input is either an array of
// objects or a stream of objects (one per line or concatenated); YAML input
// is a multi-document stream. Documents that are not objects are rejected.
func ReadAll(r io.Reader, format Format) ([]Record, error) {
	switch format {
	case FormatYAML:
		return readAllYAML(r)
	case FormatJSON, "":
		return readAllJSON(r)
	default:
		return nil, fmt.Errorf("source: unknown format %q", format)
	}
}

func readAllJSON(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	first, err := peekNonSpace(br)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	dec := json.NewDecoder(br)
	dec.UseNumber()
	if first == '[' {
		var arr []map[string]any
		if err := dec.Decode(&arr); err != nil {
			return nil, fmt.Errorf("source: decode json array: %w", err)
		}
		out := make([]Record, 0, len(arr))
		for i, m := range arr {
			if m == nil {
				return nil, fmt.Errorf("source: element %d is not an object", i)
			}
			out = append(out, FromMap(m))
		}
		return out, nil
	}
	var out []Record
	for {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("source: decode json record %d: %w", len(out), err)
		}
		if m == nil {
			return nil, fmt.Errorf("source: record %d is not an object", len(out))
		}
		out = append(out, FromMap(m))
	}
}

func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return b, br.UnreadByte()
	}
}

func readAllYAML(r io.Reader) ([]Record, error) {
	dec := yaml.NewDecoder(r)
	var out []Record
	for {
		var node any
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return nil, fmt.Errorf("source: decode yaml record %d: %w", len(out), err)
		}
		if node == nil {
			continue
		}
		m := yamlAnyToStringMap(node)
		if m == nil {
			return nil, fmt.Errorf("source: yaml document %d is not a mapping", len(out))
		}
		out = append(out, FromMap(m))
	}
}

// yamlAnyToStringMap converts YAML-decoded values (which may contain map[any]any)
// into JSON-like map[string]any recursively. Non-map roots return nil.
func yamlAnyToStringMap(v any) map[string]any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = yamlNormalizeValue(vv)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[fmt.Sprint(k)] = yamlNormalizeValue(vv)
		}
		return out
	default:
		return nil
	}
}

func yamlNormalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any, map[any]any:
		return yamlAnyToStringMap(t)
	case []any:
		arr := make([]any, len(t))
		for i := range t {
			arr[i] = yamlNormalizeValue(t[i])
		}
		return arr
	default:
		return v
	}
}
