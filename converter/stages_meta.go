package converter

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/crs"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

// Every stage starts by checking whether its own fields are already
// populated and returns early if so. That makes re-running a stage a no-op.

// codeOf constructs a codelist value through the resolver and asserts its Go
// type.
func codeOf[T model.Codelist](st *State, structValue any, field, lit string) (T, error) {
	var zero T
	cl, err := st.Codelist(structValue, field, lit)
	if err != nil {
		return zero, err
	}
	v, ok := cl.(T)
	if !ok {
		return zero, &iso.ResolverError{QName: cl.CodeList(), Err: fmt.Errorf("constructor returned %T, want %T", cl, zero)}
	}
	return v, nil
}

func identifierStage(_ context.Context, st *State) error {
	if st.Doc.Document().MetadataIdentifier != nil {
		return nil
	}
	if id, ok := st.Record.NonEmpty("id"); ok {
		st.Doc.SetMetadataIdentifier(recordIdentifier(id))
		return nil
	}
	title := st.Record.StringOr("title", st.Record.StringOr("name", ""))
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(st.Settings.SiteURL+"#"+title))
	st.Doc.SetMetadataIdentifier(model.ID(id.String(), "urn:uuid"))
	st.Report(iso.Root().Field("metadataIdentifier").Issue(iso.CodeDefaulted, "", "field", "id", "value", id.String()))
	return nil
}

// recordIdentifier uses the urn:uuid code space for ids that parse as UUIDs.
func recordIdentifier(id string) model.Identifier {
	if u, err := uuid.Parse(id); err == nil {
		return model.ID(u.String(), "urn:uuid")
	}
	return model.ID(id, "")
}

// isoLanguage converts a BCP 47 tag to its ISO 639-2/T code.
func isoLanguage(s string) (model.LanguageCode, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("language %q: %w", s, err)
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", fmt.Errorf("language %q: no base language", s)
	}
	return model.ParseLanguageCode(base.ISO3())
}

func locale(s string) (model.Locale, error) {
	code, err := isoLanguage(s)
	if err != nil {
		return model.Locale{}, err
	}
	loc := model.Locale{Language: code, CharacterEncoding: model.CharsetUTF8}
	if tag, err := language.Parse(strings.TrimSpace(s)); err == nil {
		if region, conf := tag.Region(); conf == language.Exact {
			loc.Country = region.ISO3()
		}
	}
	return loc, nil
}

func defaultLocaleStage(_ context.Context, st *State) error {
	if st.Doc.Document().DefaultLocale != nil {
		return nil
	}
	fallback := st.Settings.Language
	if fallback == "" {
		fallback = "en"
	}
	lang := st.Record.StringOr("language", fallback)
	loc, err := locale(lang)
	if err != nil {
		is := iso.Root().Field("defaultLocale").Issue(iso.CodeDefaulted, "", "value", lang, "default", fallback)
		is.Cause = err
		st.Report(is)
		if loc, err = locale(fallback); err != nil {
			loc = model.Locale{Language: model.LanguageEnglish, CharacterEncoding: model.CharsetUTF8}
		}
	}
	st.Doc.SetDefaultLocale(loc)
	return nil
}

func parentStage(_ context.Context, st *State) error {
	if st.Doc.Document().ParentMetadata != nil {
		return nil
	}
	id, ok := st.Record.NonEmpty("parent_identifier")
	if !ok {
		return nil
	}
	st.Doc.SetParentMetadata(model.Citation{
		Title:       st.Record.StringOr("parent_title", id),
		Identifiers: []model.Identifier{recordIdentifier(id)},
	})
	return nil
}

func scopeStage(_ context.Context, st *State) error {
	if _, ok := st.Doc.Scope(); ok {
		return nil
	}
	level, err := codeOf[model.ScopeCode](st, model.Scope{}, "Level", st.Record.StringOr("scope", string(model.ScopeDataset)))
	if err != nil {
		return err
	}
	st.Doc.SetScope(model.Scope{Level: level})
	return nil
}

func standardStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().MetadataStandards) > 0 || st.Settings.StandardName == "" {
		return nil
	}
	st.Doc.AddMetadataStandard(model.Citation{
		Title:   st.Settings.StandardName,
		Edition: st.Settings.StandardEdition,
	})
	return nil
}

func profileStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().MetadataProfiles) > 0 || st.Settings.ProfileName == "" {
		return nil
	}
	c := model.Citation{Title: st.Settings.ProfileName}
	if st.Settings.ProfileURL != "" {
		c.OnlineResources = []model.OnlineResource{model.Link(st.Settings.ProfileURL)}
	}
	st.Doc.AddMetadataProfile(c)
	return nil
}

func alternativeReferenceStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().AlternativeMetadataReferences) > 0 {
		return nil
	}
	ids, ok := st.Record.Strings("alternate_identifier")
	if !ok {
		if st.Record.Has("alternate_identifier") {
			st.Report(iso.Root().Field("alternativeMetadataReference").Issue(iso.CodeMalformedLiteral, "", "field", "alternate_identifier"))
		}
		return nil
	}
	for _, id := range ids {
		if id = strings.TrimSpace(id); id == "" {
			continue
		}
		st.Doc.AddAlternativeMetadataReference(model.Citation{
			Title:       id,
			Identifiers: []model.Identifier{recordIdentifier(id)},
		})
	}
	return nil
}

func otherLocaleStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().OtherLocales) > 0 {
		return nil
	}
	langs, ok := st.Record.Strings("other_languages")
	if !ok {
		return nil
	}
	at := iso.Root().Field("otherLocale")
	n := 0
	for _, l := range langs {
		loc, err := locale(l)
		if err != nil {
			is := at.Index(n).Issue(iso.CodeInvalidType, "", "value", l)
			is.Cause = err
			st.Report(is)
			continue
		}
		st.Doc.AddOtherLocale(loc)
		n++
	}
	return nil
}

func spatialRepresentationStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().SpatialRepresentationInfo) > 0 {
		return nil
	}
	var objType string
	switch strings.ToLower(st.Record.StringOr("location_choice", "")) {
	case "point":
		objType = string(model.GeometricPoint)
	case "area":
		objType = string(model.GeometricSurface)
	default:
		return nil
	}
	typ, err := codeOf[model.GeometricObjectTypeCode](st, model.GeometricObjects{}, "Type", objType)
	if err != nil {
		return err
	}
	st.Doc.AddSpatialRepresentation(model.SpatialRepresentation{
		TopologyLevel:    model.TopologyGeometryOnly,
		GeometricObjects: []model.GeometricObjects{{Type: typ, Count: 1}},
	})
	return nil
}

func referenceSystemStage(_ context.Context, st *State) error {
	if _, ok := st.Doc.ReferenceSystem(); ok {
		return nil
	}
	code, ok := epsgCode(st.Record)
	if !ok {
		return nil
	}
	id := model.Identifier{Code: model.String(strconv.Itoa(code)), CodeSpace: "EPSG"}
	rs := model.ReferenceSystem{Identifier: &id}
	tr, err := crs.Lookup(code)
	if err != nil {
		is := iso.Root().Field("referenceSystemInfo").Issue(iso.CodeTransformUnavailable, "", "epsg", code)
		is.Cause = err
		st.Report(is)
	} else {
		info := tr.Describe()
		id.Description = info.Name
		typ, err := codeOf[model.ReferenceSystemTypeCode](st, model.ReferenceSystem{}, "Type", string(crs.ReferenceSystemType(info.Kind)))
		if err != nil {
			return err
		}
		rs.Type = &typ
	}
	st.Doc.SetReferenceSystem(rs)
	return nil
}

// epsgCode reads epsg_code as a number or an "EPSG:n" string. Non-numeric
// values are the "no reference system" sentinel.
func epsgCode(rec source.Record) (int, bool) {
	if code, ok := rec.Int("epsg_code"); ok {
		return code, true
	}
	raw, ok := rec.NonEmpty("epsg_code")
	if !ok {
		return 0, false
	}
	code, err := strconv.Atoi(strings.TrimPrefix(strings.ToUpper(raw), "EPSG:"))
	return code, err == nil
}

func metadataExtensionStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().MetadataExtensionInfo) > 0 {
		return nil
	}
	link := st.Settings.ProfileURL
	if link == "" {
		link = st.Settings.SiteURL
	}
	if link == "" {
		return nil
	}
	res := model.Link(link)
	res.Name = st.Profile
	res.Description = st.Settings.ProfileName
	fn, err := codeOf[model.OnLineFunctionCode](st, model.OnlineResource{}, "Function", string(model.FunctionInformation))
	if err != nil {
		return err
	}
	res.Function = fn
	st.Doc.AddExtensionInfo(model.ExtensionInfo{ExtensionOnLineResource: res})
	return nil
}

func dataQualityStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().DataQualityInfo) > 0 {
		return nil
	}
	stmt, ok := st.Record.NonEmpty("data_quality_statement")
	if !ok {
		return nil
	}
	scope, ok := st.Doc.Scope()
	if !ok {
		scope = model.Scope{Level: model.ScopeDataset}
	}
	st.Doc.AddDataQuality(model.DataQuality{Scope: scope, Report: stmt})
	return nil
}

func lineageStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().ResourceLineage) > 0 {
		return nil
	}
	if stmt, ok := st.Record.NonEmpty("lineage"); ok {
		st.Doc.AddLineage(model.Lineage{Statement: stmt})
	}
	return nil
}

func metadataLinkageStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().MetadataLinkages) > 0 {
		return nil
	}
	link, ok := st.Record.NonEmpty("url")
	if !ok {
		site := strings.TrimRight(st.Settings.SiteURL, "/")
		name := st.Record.StringOr("name", st.Record.StringOr("id", ""))
		if site == "" || name == "" {
			return nil
		}
		link = site + "/dataset/" + name
	}
	res := model.Link(link)
	fn, err := codeOf[model.OnLineFunctionCode](st, model.OnlineResource{}, "Function", string(model.FunctionCompleteMetadata))
	if err != nil {
		return err
	}
	res.Function = fn
	st.Doc.AddMetadataLinkage(res)
	return nil
}

func contactsStage(_ context.Context, st *State) error {
	if len(st.Doc.Contacts()) > 0 {
		return nil
	}
	name := st.Record.StringOr("primary_contact_name", st.Settings.PublisherName)
	email := st.Record.StringOr("primary_contact_email", st.Settings.PublisherEmail)
	st.Doc.AddContact(model.NewResponsibility(model.RolePublisher, &model.Organisation{
		Name:        name,
		ContactInfo: []model.Contact{model.EmailContact(email)},
	}))
	return extraContacts(st)
}

// extraContacts appends the pre-structured entries of "contacts". Typed
// responsibilities are kept as they are; objects are adapted.
func extraContacts(st *State) error {
	raw, ok := st.Record.Raw("contacts")
	if !ok {
		return nil
	}
	at := iso.Root().Field("contact")
	var entries []any
	switch t := raw.(type) {
	case []model.Responsibility:
		for _, r := range t {
			st.Doc.AddContact(r)
		}
		return nil
	case []any:
		entries = t
	default:
		recs, ok := st.Record.Records("contacts")
		if !ok {
			st.Report(at.Issue(iso.CodeMalformedLiteral, "", "field", "contacts"))
			return nil
		}
		for _, r := range recs {
			entries = append(entries, r)
		}
	}
	for i, e := range entries {
		var rec source.Record
		switch v := e.(type) {
		case model.Responsibility:
			st.Doc.AddContact(v)
			continue
		case *model.Responsibility:
			if v != nil {
				st.Doc.AddContact(*v)
			}
			continue
		case map[string]any:
			rec = source.FromMap(v)
		case source.Record:
			rec = v
		default:
			st.Report(at.Index(i+1).Issue(iso.CodeInvalidType, "", "type", fmt.Sprintf("%T", e)))
			continue
		}
		r, err := adaptContact(st, rec)
		if err != nil {
			return err
		}
		if r.Party == nil {
			st.Report(at.Index(i+1).Issue(iso.CodeInvalidType, "", "reason", "contact without name"))
			continue
		}
		st.Doc.AddContact(r)
	}
	return nil
}

// adaptContact turns {role, name, email, phone, url, organisation,
// individual} into a responsibility. An unknown role is fatal.
func adaptContact(st *State, rec source.Record) (model.Responsibility, error) {
	role, err := codeOf[model.RoleCode](st, model.Responsibility{}, "Role", rec.StringOr("role", string(model.RolePointOfContact)))
	if err != nil {
		return model.Responsibility{}, err
	}
	var contact model.Contact
	if email, ok := rec.NonEmpty("email"); ok {
		contact = model.EmailContact(email)
	}
	if phone, ok := rec.NonEmpty("phone"); ok {
		contact.Phones = append(contact.Phones, model.Telephone{Number: phone})
	}
	if link, ok := rec.NonEmpty("url"); ok {
		contact.OnlineResources = append(contact.OnlineResources, model.Link(link))
	}
	var info []model.Contact
	if len(contact.Addresses)+len(contact.Phones)+len(contact.OnlineResources) > 0 {
		info = []model.Contact{contact}
	}

	name, hasName := rec.NonEmpty("name")
	if !hasName {
		name, hasName = rec.NonEmpty("individual")
	}
	orgName, hasOrg := rec.NonEmpty("organisation")
	if !hasOrg {
		orgName, hasOrg = rec.NonEmpty("organization")
	}
	switch {
	case hasOrg && hasName:
		ind := &model.Individual{Name: name, PositionName: rec.StringOr("position", ""), ContactInfo: info}
		return model.NewResponsibility(role, &model.Organisation{Name: orgName, Individuals: []*model.Individual{ind}}), nil
	case hasOrg:
		return model.NewResponsibility(role, &model.Organisation{Name: orgName, ContactInfo: info}), nil
	case hasName && strings.EqualFold(rec.StringOr("type", ""), "individual"):
		return model.NewResponsibility(role, &model.Individual{Name: name, PositionName: rec.StringOr("position", ""), ContactInfo: info}), nil
	case hasName:
		return model.NewResponsibility(role, &model.Organisation{Name: name, ContactInfo: info}), nil
	default:
		return model.Responsibility{Role: role}, nil
	}
}

// metadataConstraintsStage states the licence of the metadata record itself,
// as opposed to the licence of the described data.
func metadataConstraintsStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().MetadataConstraints) > 0 {
		return nil
	}
	title := st.Settings.MetadataLicence
	if title == "" {
		return nil
	}
	ref := model.Citation{Title: title}
	if u := st.Settings.MetadataLicenceURL; u != "" {
		ref.OnlineResources = []model.OnlineResource{model.Link(u)}
	}
	use, err := codeOf[model.RestrictionCode](st, model.LegalConstraints{}, "UseConstraints", string(model.RestrictionLicence))
	if err != nil {
		return err
	}
	st.Doc.AddMetadataConstraints(model.LegalConstraints{
		References:       []model.Citation{ref},
		UseConstraints:   []model.RestrictionCode{use},
		OtherConstraints: []string{title},
	})
	return nil
}

// maintenanceStage records how often the metadata is updated. The record's
// update_frequency overrides the profile default.
func maintenanceStage(_ context.Context, st *State) error {
	if st.Doc.Document().MetadataMaintenance != nil {
		return nil
	}
	freq := st.Record.StringOr("update_frequency", st.Settings.MaintenanceFrequency)
	note, hasNote := st.Record.NonEmpty("maintenance_note")
	if freq == "" && !hasNote {
		return nil
	}
	var mi model.MaintenanceInformation
	if freq != "" {
		code, err := codeOf[model.MaintenanceFrequencyCode](st, model.MaintenanceInformation{}, "Frequency", freq)
		if err != nil {
			return err
		}
		mi.Frequency = code
	}
	if hasNote {
		mi.Notes = []string{note}
	}
	st.Doc.SetMetadataMaintenance(mi)
	return nil
}
