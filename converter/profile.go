package converter

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/auscope/iso19115/model"
)

// Revision date sources.
const (
	RevisionFromCreated  = "created"
	RevisionFromModified = "modified"
)

// Settings are the per-profile defaults used by the stages.
type Settings struct {
	PublisherName   string `yaml:"publisher_name,omitempty"`
	PublisherEmail  string `yaml:"publisher_email,omitempty"`
	FixedKeyword    string `yaml:"fixed_keyword,omitempty"`
	StandardName    string `yaml:"standard_name,omitempty"`
	StandardEdition string `yaml:"standard_edition,omitempty"`
	ProfileName     string `yaml:"profile_name,omitempty"`
	ProfileURL      string `yaml:"profile_url,omitempty"`
	SiteURL         string `yaml:"site_url,omitempty"`
	Language        string `yaml:"language,omitempty"`
	TopicCategory   string `yaml:"topic_category,omitempty"`
	DOIResolver     string `yaml:"doi_resolver,omitempty"`
	// RevisionDateSource selects the value of the emitted revision date:
	// "created" repeats the creation value (historic behaviour), "modified"
	// uses metadata_modified.
	RevisionDateSource string `yaml:"revision_date_source,omitempty"`
	// MaintenanceFrequency is an mmi:MD_MaintenanceFrequencyCode value.
	MaintenanceFrequency string   `yaml:"maintenance_frequency,omitempty"`
	MetadataLicence      string   `yaml:"metadata_licence,omitempty"`
	MetadataLicenceURL   string   `yaml:"metadata_licence_url,omitempty"`
	Thesauri             []string `yaml:"thesauri,omitempty"`
}

// merge overlays the non-zero fields of o onto s.
func (s Settings) merge(o Settings) Settings {
	pick := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	pick(&s.PublisherName, o.PublisherName)
	pick(&s.PublisherEmail, o.PublisherEmail)
	pick(&s.FixedKeyword, o.FixedKeyword)
	pick(&s.StandardName, o.StandardName)
	pick(&s.StandardEdition, o.StandardEdition)
	pick(&s.ProfileName, o.ProfileName)
	pick(&s.ProfileURL, o.ProfileURL)
	pick(&s.SiteURL, o.SiteURL)
	pick(&s.Language, o.Language)
	pick(&s.TopicCategory, o.TopicCategory)
	pick(&s.DOIResolver, o.DOIResolver)
	pick(&s.RevisionDateSource, o.RevisionDateSource)
	pick(&s.MaintenanceFrequency, o.MaintenanceFrequency)
	pick(&s.MetadataLicence, o.MetadataLicence)
	pick(&s.MetadataLicenceURL, o.MetadataLicenceURL)
	s.Thesauri = append([]string(nil), s.Thesauri...)
	if o.Thesauri != nil {
		s.Thesauri = append([]string(nil), o.Thesauri...)
	}
	return s
}

func (s Settings) validate() error {
	switch s.RevisionDateSource {
	case "", RevisionFromCreated, RevisionFromModified:
	default:
		return fmt.Errorf("revision_date_source %q: want %q or %q",
			s.RevisionDateSource, RevisionFromCreated, RevisionFromModified)
	}
	if s.TopicCategory != "" {
		if _, err := model.ParseTopicCategoryCode(s.TopicCategory); err != nil {
			return err
		}
	}
	if s.Language != "" {
		if _, err := isoLanguage(s.Language); err != nil {
			return err
		}
	}
	if s.MaintenanceFrequency != "" {
		if _, err := model.ParseMaintenanceFrequencyCode(s.MaintenanceFrequency); err != nil {
			return err
		}
	}
	return nil
}

// Profile is a named, ordered list of stages with its settings.
type Profile struct {
	Name     string    `yaml:"name"`
	Stages   []StageID `yaml:"stages"`
	Settings Settings  `yaml:"settings"`
}

// Validate checks the stage list and settings.
func (p Profile) Validate() error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if len(p.Stages) == 0 {
		return fmt.Errorf("profile %q: no stages", p.Name)
	}
	seen := make(map[StageID]bool, len(p.Stages))
	for _, id := range p.Stages {
		if !KnownStage(id) {
			return fmt.Errorf("profile %q: unknown stage %q", p.Name, id)
		}
		if seen[id] {
			return fmt.Errorf("profile %q: stage %q listed twice", p.Name, id)
		}
		seen[id] = true
	}
	if err := p.Settings.validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}

func (p Profile) clone() Profile {
	p.Stages = append([]StageID(nil), p.Stages...)
	p.Settings.Thesauri = append([]string(nil), p.Settings.Thesauri...)
	return p
}

var baseSettings = Settings{
	PublisherName:      "AuScope Pty Ltd",
	FixedKeyword:       "AuScope",
	StandardName:       "ISO 19115-3",
	StandardEdition:    "2018",
	Language:           "en",
	TopicCategory:      string(model.TopicGeoscientificInformation),
	DOIResolver:        "https://doi.org/",
	RevisionDateSource: RevisionFromCreated,
	Thesauri:           []string{"gcmd", "anzsrc-for"},
}

// DefaultProfile is the generic ISO 19115-3 profile.
func DefaultProfile() Profile {
	return Profile{
		Name: "iso19115-3",
		Stages: []StageID{
			StageIdentifier,
			StageDefaultLocale,
			StageScope,
			StageStandard,
			StageSpatialRepresentation,
			StageDataQuality,
			StageContacts,
			StageLineage,
			StageMetadataLinkage,
			StageIdentification,
			StageDates,
			StageReferenceSystem,
		},
		Settings: baseSettings.merge(Settings{}),
	}
}

// AuScopeProfile runs every stage in the AuScope portal order.
func AuScopeProfile() Profile {
	return Profile{
		Name: "auscope",
		Stages: []StageID{
			StageIdentifier,
			StageDefaultLocale,
			StageParent,
			StageScope,
			StageContacts,
			StageDates,
			StageStandard,
			StageProfile,
			StageAlternativeReference,
			StageOtherLocale,
			StageMetadataLinkage,
			StageSpatialRepresentation,
			StageReferenceSystem,
			StageMetadataExtension,
			StageIdentification,
			StageDistribution,
			StageDataQuality,
			StageLineage,
			StageMetadataConstraints,
			StageMaintenance,
		},
		Settings: baseSettings.merge(Settings{
			ProfileName:          "AuScope Data Repository",
			ProfileURL:           "https://data.auscope.org.au",
			SiteURL:              "https://data.auscope.org.au",
			MaintenanceFrequency: string(model.MaintenanceAsNeeded),
			MetadataLicence:      "Creative Commons Attribution 4.0 International",
			MetadataLicenceURL:   "https://creativecommons.org/licenses/by/4.0/",
		}),
	}
}

// BuiltinProfiles returns the built-in profiles by name.
func BuiltinProfiles() map[string]Profile {
	return map[string]Profile{
		"iso19115-3": DefaultProfile(),
		"auscope":    AuScopeProfile(),
	}
}

type profileSpec struct {
	Name     string    `yaml:"name"`
	Base     string    `yaml:"base"`
	Stages   []StageID `yaml:"stages"`
	Settings Settings  `yaml:"settings"`
}

type profileFile struct {
	Profiles []profileSpec `yaml:"profiles"`
}

// LoadProfiles reads profiles from YAML:
//
//	profiles:
//	  - name: portal
//	    base: iso19115-3        # optional: inherit stages and settings
//	    stages: [identifier, scope, contacts, identification, dates]
//	    settings:
//	      publisher_name: Example Org
//	      revision_date_source: modified
//
// A profile may use a built-in or an earlier profile of the same file as its
// base. The result includes the built-ins; loaded profiles replace built-ins
// of the same name.
func LoadProfiles(r io.Reader) (map[string]Profile, error) {
	var f profileFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("converter: decode profiles: %w", err)
	}
	out := BuiltinProfiles()
	for _, ps := range f.Profiles {
		p := Profile{Name: ps.Name, Settings: baseSettings.merge(Settings{})}
		if ps.Base != "" {
			base, ok := out[ps.Base]
			if !ok {
				return nil, fmt.Errorf("converter: profile %q: unknown base %q", ps.Name, ps.Base)
			}
			p = base.clone()
			p.Name = ps.Name
		}
		if len(ps.Stages) > 0 {
			p.Stages = append([]StageID(nil), ps.Stages...)
		}
		p.Settings = p.Settings.merge(ps.Settings)
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("converter: %w", err)
		}
		out[p.Name] = p
	}
	return out, nil
}

// ProfileNames returns the names of profiles sorted.
func ProfileNames(ps map[string]Profile) []string {
	names := make([]string, 0, len(ps))
	for n := range ps {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
