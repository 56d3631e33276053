package i18n

import "testing"

func TestTranslator_DefaultAndFrench(t *testing.T) {
	// default is en
	if msg := T("invalid_date", nil); msg == "invalid_date" || msg == "" {
		t.Fatalf("expected a human message, got %q", msg)
	}

	SetLanguage("fr")
	if msg := T("invalid_date", nil); msg != "date invalide" {
		t.Fatalf("expected french message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeAndData(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown codes echo the code, got %q", msg)
	}
	got := T("transform_unavailable", map[string]string{"epsg": "9999", "at": "/x"})
	want := "no coordinate transform available (at=/x, epsg=9999)"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestSetTranslator(t *testing.T) {
	SetTranslator(fixed("x"))
	if msg := T("required", nil); msg != "x" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required element missing" {
		t.Fatalf("nil translator must restore the default, got %q", msg)
	}
	SetLanguage("xx")
	if msg := T("required", nil); msg != "required element missing" {
		t.Fatalf("unknown language must fall back to en, got %q", msg)
	}
}

type fixed string

func (f fixed) Message(string, map[string]string) string { return string(f) }
