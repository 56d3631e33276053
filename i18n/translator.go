package i18n

import (
	"sort"
	"strings"
	"sync/atomic"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "value" or "epsg").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"invalid_date":          "invalid date",
		"keyword_mismatch":      "keyword labels and codes do not align",
		"invalid_geometry":      "geometry could not be read",
		"transform_unavailable": "no coordinate transform available",
		"malformed_literal":     "malformed literal structure",
		"invalid_type":          "invalid type",
		"defaulted":             "value defaulted",
		"folded":                "identification records folded into the first",
		"invalid_code_value":    "value is not a member of the codelist",
		"unknown_type":          "unknown type",
		"required":              "required element missing",
	},
	"fr": {
		"invalid_date":          "date invalide",
		"keyword_mismatch":      "les libellés et les codes des mots-clés ne correspondent pas",
		"invalid_geometry":      "géométrie illisible",
		"transform_unavailable": "aucune transformation de coordonnées disponible",
		"malformed_literal":     "structure littérale mal formée",
		"invalid_type":          "type invalide",
		"defaulted":             "valeur par défaut appliquée",
		"folded":                "identifications fusionnées dans la première",
		"invalid_code_value":    "valeur absente de la liste de codes",
		"unknown_type":          "type inconnu",
		"required":              "élément obligatoire manquant",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	if len(data) == 0 {
		return msg
	}
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+data[k])
	}
	return msg + " (" + strings.Join(parts, ", ") + ")"
}

var currentTranslator atomic.Value

func init() { currentTranslator.Store(holder{dictTranslator{lang: "en"}}) }

// holder keeps the stored dynamic type constant for atomic.Value.
type holder struct{ Translator }

// Languages lists the built-in dictionary languages.
func Languages() []string {
	out := make([]string, 0, len(dictionaries))
	for l := range dictionaries {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// SetLanguage switches the built-in Translator language. Unknown languages
// fall back to "en".
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	currentTranslator.Store(holder{dictTranslator{lang: lang}})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	currentTranslator.Store(holder{tr})
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	return currentTranslator.Load().(holder).Message(code, data)
}
