package model

import "time"

// Text is a gco:CharacterString or, when Href is set, a gcx:Anchor.
type Text struct {
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

// String returns a plain character string.
func String(s string) Text { return Text{Value: s} }

// Anchor returns a URI-bearing anchor.
func Anchor(value, href string) Text { return Text{Value: value, Href: href} }

// IsAnchor reports whether the text carries a URI.
func (t Text) IsAnchor() bool { return t.Href != "" }

func (t Text) QName() string {
	if t.IsAnchor() {
		return "gcx:Anchor"
	}
	return "gco:CharacterString"
}

// DateValue is a gco:Date or gco:DateTime.
type DateValue struct {
	Time     time.Time
	DateOnly bool
}

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02T15:04:05"
)

// NewDate returns a date-only value.
func NewDate(t time.Time) DateValue { return DateValue{Time: t, DateOnly: true} }

// NewDateTime returns a date-time value.
func NewDateTime(t time.Time) DateValue { return DateValue{Time: t} }

func (d DateValue) QName() string {
	if d.DateOnly {
		return "gco:Date"
	}
	return "gco:DateTime"
}

// IsZero reports whether no date is set.
func (d DateValue) IsZero() bool { return d.Time.IsZero() }

func (d DateValue) String() string {
	if d.DateOnly {
		return d.Time.Format(dateLayout)
	}
	if d.Time.Location() == time.UTC {
		return d.Time.Format(dateTimeLayout)
	}
	return d.Time.Format(time.RFC3339)
}

// Equal reports whether both values render identically.
func (d DateValue) Equal(o DateValue) bool { return d.DateOnly == o.DateOnly && d.String() == o.String() }

func (d DateValue) MarshalText() ([]byte, error) { return []byte(d.String()), nil }
