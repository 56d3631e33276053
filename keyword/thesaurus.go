package keyword

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/auscope/iso19115/codec"
	"github.com/auscope/iso19115/model"
)

// Thesaurus is a citable controlled vocabulary together with the source
// keys holding its labels and codes.
type Thesaurus struct {
	ID         string                `yaml:"id"`
	Title      string                `yaml:"title"`
	Date       string                `yaml:"date,omitempty"`
	Edition    string                `yaml:"edition,omitempty"`
	Identifier string                `yaml:"identifier,omitempty"`
	URL        string                `yaml:"url,omitempty"`
	Type       model.KeywordTypeCode `yaml:"type"`
	LabelsKey  string                `yaml:"labels_key"`
	CodesKey   string                `yaml:"codes_key"`
}

// Citation returns the thesaurus citation used as the keyword thesaurus name.
func (t Thesaurus) Citation() *model.Citation {
	c := &model.Citation{Title: t.Title, Edition: t.Edition}
	if t.Date != "" {
		if d, err := codec.ParseDate(t.Date); err == nil {
			c.Dates = append(c.Dates, model.Date{Date: d, DateType: model.DatePublication})
		}
	}
	if t.Identifier != "" {
		c.Identifiers = append(c.Identifiers, model.Identifier{Code: model.Anchor(t.Identifier, t.URL)})
	}
	if t.URL != "" {
		c.OnlineResources = append(c.OnlineResources, model.Link(t.URL))
	}
	return c
}

// Align aligns the thesaurus label and code sources of a record.
func (t Thesaurus) Align(labelsSrc, codesSrc any) (*model.Keywords, error) {
	typ := t.Type
	return AlignSource(labelsSrc, codesSrc, &typ, t.Citation())
}

func (t Thesaurus) validate() error {
	switch {
	case t.ID == "":
		return errors.New("thesaurus id is required")
	case t.Title == "":
		return fmt.Errorf("thesaurus %q: title is required", t.ID)
	case t.LabelsKey == "" || t.CodesKey == "":
		return fmt.Errorf("thesaurus %q: labels_key and codes_key are required", t.ID)
	}
	if _, err := model.ParseKeywordTypeCode(string(t.Type)); err != nil {
		return fmt.Errorf("thesaurus %q: %w", t.ID, err)
	}
	return nil
}

// Built-in thesauri.
var (
	GCMD = Thesaurus{
		ID:         "gcmd",
		Title:      "NASA/Global Change Master Directory (GCMD) Science Keywords",
		Date:       "2023-08-21",
		Edition:    "16.5",
		Identifier: "https://gcmd.earthdata.nasa.gov/kms/concepts/concept_scheme/sciencekeywords",
		URL:        "https://gcmd.earthdata.nasa.gov/kms/concepts/concept_scheme/sciencekeywords",
		Type:       model.KeywordTheme,
		LabelsKey:  "gcmd_keywords",
		CodesKey:   "gcmd_keywords_code",
	}
	ANZSRCFoR = Thesaurus{
		ID:         "anzsrc-for",
		Title:      "Australian and New Zealand Standard Research Classification (ANZSRC): Fields of Research",
		Date:       "2020-06-30",
		Edition:    "2020",
		Identifier: "https://linked.data.gov.au/def/anzsrc-for/2020",
		URL:        "https://linked.data.gov.au/def/anzsrc-for/2020",
		Type:       model.KeywordDiscipline,
		LabelsKey:  "fields_of_research",
		CodesKey:   "fields_of_research_code",
	}
)

// Registry holds thesauri by id. It is read-only once built and safe for
// concurrent use.
type Registry struct {
	byID  map[string]Thesaurus
	order []string
}

// NewRegistry validates ts and registers them in order. A later entry with
// an existing id replaces the earlier one in place.
func NewRegistry(ts ...Thesaurus) (*Registry, error) {
	r := &Registry{byID: make(map[string]Thesaurus, len(ts))}
	for _, t := range ts {
		if err := t.validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byID[t.ID]; !dup {
			r.order = append(r.order, t.ID)
		}
		r.byID[t.ID] = t
	}
	return r, nil
}

var defaultRegistry = func() *Registry {
	r, err := NewRegistry(GCMD, ANZSRCFoR)
	if err != nil {
		panic(err)
	}
	return r
}()

// Default returns the registry of built-in thesauri.
func Default() *Registry { return defaultRegistry }

// Get returns the thesaurus registered under id.
func (r *Registry) Get(id string) (Thesaurus, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// All returns the thesauri in registration order.
func (r *Registry) All() []Thesaurus {
	out := make([]Thesaurus, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out
}

// IDs returns the registered ids sorted.
func (r *Registry) IDs() []string {
	ids := append([]string(nil), r.order...)
	sort.Strings(ids)
	return ids
}

type thesaurusFile struct {
	Thesauri []Thesaurus `yaml:"thesauri"`
}

// LoadThesauri reads a YAML document of the form
//
//	thesauri:
//	  - id: gcmd-platforms
//	    title: GCMD Platforms
//	    type: platform
//	    labels_key: platforms
//	    codes_key: platforms_code
//
// and returns the built-in thesauri extended (or overridden by id) with the
// loaded ones.
func LoadThesauri(r io.Reader) (*Registry, error) {
	var f thesaurusFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("keyword: decode thesauri: %w", err)
	}
	return NewRegistry(append(Default().All(), f.Thesauri...)...)
}
