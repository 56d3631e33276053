package iso19115

import (
	"reflect"
	"strings"
)

// TagName is the struct tag key used by the document model.
const TagName = "iso"

// CodelistOf resolves the codelist restriction declared on a struct field.
// A field restricted to a codelist carries iso:"codelist=cit:CI_RoleCode".
// The second result is false when the field carries no restriction.
func CodelistOf(sf reflect.StructField) (string, bool) {
	gt := sf.Tag.Get(TagName)
	if gt == "" {
		return "", false
	}
	for _, p := range strings.Split(gt, ",") {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, "codelist=") {
			q := strings.TrimPrefix(p, "codelist=")
			return q, q != ""
		}
	}
	return "", false
}

// ElementName returns the ISO element name of a struct field.
// Priority: iso:"name=..." > json tag name > field name; "-" disables the field.
func ElementName(sf reflect.StructField) string {
	if gt := sf.Tag.Get(TagName); gt != "" {
		for _, p := range strings.Split(gt, ",") {
			p = strings.TrimSpace(p)
			if strings.HasPrefix(p, "name=") {
				return strings.TrimPrefix(p, "name=")
			}
		}
	}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			return "-"
		}
		if i := strings.IndexByte(jt, ','); i >= 0 {
			return jt[:i]
		}
		return jt
	}
	return sf.Name
}
