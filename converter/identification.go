package converter

import (
	"context"
	"errors"
	"strings"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/extent"
	"github.com/auscope/iso19115/keyword"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

// relationTypes maps DataCite relation types to association types. Anything
// not listed is a cross reference.
var relationTypes = map[string]model.AssociationTypeCode{
	"IsNewVersionOf":    model.AssociationRevisionOf,
	"Obsoletes":         model.AssociationRevisionOf,
	"IsOriginalFormOf":  model.AssociationRevisionOf,
	"PreviousVersionOf": model.AssociationRevisionOf,
	"IsObsoletedBy":     model.AssociationRevisionOf,
	"IsVersionOf":       model.AssociationRevisionOf,
	"Continues":         model.AssociationSeries,
	"IsContinuedBy":     model.AssociationSeries,
	"HasPart":           model.AssociationIsComposedOf,
	"Requires":          model.AssociationDependency,
}

// AssociationType returns the association type for a relation type.
func AssociationType(relation string) model.AssociationTypeCode {
	if t, ok := relationTypes[strings.TrimSpace(relation)]; ok {
		return t
	}
	return model.AssociationCrossReference
}

func identificationStage(ctx context.Context, st *State) error {
	if st.Doc.IdentificationCount() > 0 {
		return nil
	}
	at := iso.Root().Field("identificationInfo").Index(0)
	rec := st.Record

	cit, err := citation(ctx, st, at.Field("citation"))
	if err != nil {
		return err
	}
	ident := model.DataIdentification{
		Citation:                cit,
		Abstract:                plainText(rec.StringOr("notes", "")),
		ResourceConstraints:     []model.LegalConstraints{},
		SupplementalInformation: rec.StringOr("supplementation_information", ""),
	}
	if credit, ok := rec.NonEmpty("credit"); ok {
		ident.Credits = []string{credit}
	}
	if purpose, ok := rec.NonEmpty("purpose"); ok {
		ident.Purpose = purpose
	}

	topic := rec.StringOr("topic_category", st.Settings.TopicCategory)
	if topic != "" {
		tc, err := codeOf[model.TopicCategoryCode](st, model.DataIdentification{}, "TopicCategories", topic)
		if err != nil {
			return err
		}
		ident.TopicCategories = []model.TopicCategoryCode{tc}
	}
	if state, ok := rec.NonEmpty("state"); ok {
		status := model.ProgressOnGoing
		if state == "active" {
			status = model.ProgressCompleted
		}
		pc, err := codeOf[model.ProgressCode](st, model.DataIdentification{}, "Status", string(status))
		if err != nil {
			return err
		}
		ident.Status = []model.ProgressCode{pc}
	}
	if img, ok := rec.NonEmpty("image_url"); ok {
		ident.GraphicOverviews = []model.BrowseGraphic{model.Image(img)}
	}

	ident.DescriptiveKeywords = keywords(st, at.Field("descriptiveKeywords"))

	if lc, ok, err := license(st); err != nil {
		return err
	} else if ok {
		ident.ResourceConstraints = append(ident.ResourceConstraints, lc)
	}

	ext, issues := extent.Build(extent.Input{
		Locality:  rec.StringOr("locality", ""),
		Kind:      extent.Kind(rec.StringOr("location_choice", "")),
		Geometry:  rawOrNil(rec, "location_data"),
		EPSG:      rec.StringOr("epsg_code", ""),
		Elevation: rec.StringOr("elevation", ""),
		Start:     rec.StringOr("start_date", ""),
		End:       rec.StringOr("end_date", ""),
	}, extent.At(at.Field("extent").Index(0)))
	for _, is := range issues {
		is.Message = ""
		st.Report(is)
	}
	ident.Extents = []model.Extent{ext}

	assoc, err := associatedResources(st, at.Field("associatedResource"))
	if err != nil {
		return err
	}
	ident.AssociatedResources = assoc

	st.Doc.AddIdentificationInfo(ident)
	return nil
}

func rawOrNil(rec source.Record, key string) any {
	v, _ := rec.Raw(key)
	return v
}

// citation builds the resource citation. A DOI is preferred over the record
// id, and the DOI publication date over the deposit and creation dates.
func citation(ctx context.Context, st *State, at iso.PathRef) (model.Citation, error) {
	rec := st.Record
	c := model.Citation{Title: rec.StringOr("title", "")}

	if doi, ok := rec.NonEmpty("doi"); ok {
		href := doiURL(st.Settings.DOIResolver, doi)
		c.Identifiers = []model.Identifier{{Code: model.Anchor(doi, href), CodeSpace: "doi"}}
		c.OnlineResources = append(c.OnlineResources, model.Link(href))
	} else if id, ok := rec.NonEmpty("id"); ok {
		c.Identifiers = []model.Identifier{recordIdentifier(id)}
	}

	for _, key := range []string{"doi_date_published", "deposit_date"} {
		if d, ok := recordDate(ctx, st, rec, key, at.Field("date").Index(0)); ok {
			c.Dates = []model.Date{{Date: d, DateType: model.DatePublication}}
			break
		}
	}
	if len(c.Dates) == 0 {
		// An invalid metadata_created is reported by the dates stage.
		if d, raw, err := decodeRecordDate(ctx, rec, "metadata_created"); err == nil && raw != "" {
			c.Dates = []model.Date{{Date: d, DateType: model.DatePublication}}
		}
	}

	parties, err := authors(st, at.Field("citedResponsibleParty"))
	if err != nil {
		return model.Citation{}, err
	}
	c.CitedResponsibleParties = parties

	if name := rec.StringOr("publisher", st.Settings.PublisherName); name != "" {
		c.CitedResponsibleParties = append(c.CitedResponsibleParties,
			model.NewResponsibility(model.RolePublisher, &model.Organisation{Name: name}))
	}
	if org, ok := rec.Sub("organization"); ok {
		if title := org.StringOr("title", org.StringOr("name", "")); title != "" {
			c.CitedResponsibleParties = append(c.CitedResponsibleParties,
				model.NewResponsibility(model.RoleCustodian, &model.Organisation{Name: title}))
		}
	}
	funders, ok := rec.Strings("funder")
	if !ok {
		if f, isStr := rec.NonEmpty("funder"); isStr {
			funders = []string{f}
		}
	}
	for _, f := range funders {
		if f = strings.TrimSpace(f); f != "" {
			c.CitedResponsibleParties = append(c.CitedResponsibleParties,
				model.NewResponsibility(model.RoleFunder, &model.Organisation{Name: f}))
		}
	}
	return c, nil
}

func doiURL(resolver, doi string) string {
	if strings.HasPrefix(doi, "http://") || strings.HasPrefix(doi, "https://") {
		return doi
	}
	if resolver == "" {
		resolver = "https://doi.org/"
	}
	return strings.TrimRight(resolver, "/") + "/" + strings.TrimPrefix(doi, "doi:")
}

// authors reads the literal-encoded author list. The first author gets the
// author role, the rest coAuthor. An affiliated author is nested in the
// affiliation organisation.
func authors(st *State, at iso.PathRef) ([]model.Responsibility, error) {
	rec := st.Record
	if !rec.Has("author") {
		return nil, nil
	}
	entries, ok := rec.Records("author")
	if !ok {
		// A plain name is a single author.
		if name, isStr := rec.NonEmpty("author"); isStr && !strings.HasPrefix(name, "[") {
			return []model.Responsibility{model.NewResponsibility(model.RoleAuthor,
				&model.Individual{Name: name, ContactInfo: emailInfo(rec.StringOr("author_email", ""))})}, nil
		}
		st.Report(at.Issue(iso.CodeMalformedLiteral, "", "field", "author"))
		return nil, nil
	}
	var out []model.Responsibility
	for i, a := range entries {
		name, ok := a.NonEmpty("author_name")
		if !ok {
			st.Report(at.Index(i).Issue(iso.CodeInvalidType, "", "reason", "author without name"))
			continue
		}
		role := string(model.RoleCoAuthor)
		if len(out) == 0 {
			role = string(model.RoleAuthor)
		}
		rc, err := codeOf[model.RoleCode](st, model.Responsibility{}, "Role", role)
		if err != nil {
			return nil, err
		}
		ind := &model.Individual{Name: name, ContactInfo: emailInfo(a.StringOr("author_email", ""))}
		if id, ok := a.NonEmpty("author_identifier"); ok {
			ind.PartyIdentifiers = []model.Identifier{partyIdentifier(id, a.StringOr("author_identifier_type", ""))}
		}
		var party model.Party = ind
		if aff, ok := a.NonEmpty("author_affiliation"); ok {
			org := &model.Organisation{Name: aff, Individuals: []*model.Individual{ind}}
			if id, ok := a.NonEmpty("author_affiliation_identifier"); ok {
				org.PartyIdentifiers = []model.Identifier{partyIdentifier(id, a.StringOr("author_affiliation_identifier_type", ""))}
			}
			party = org
		}
		out = append(out, model.NewResponsibility(rc, party))
	}
	return out, nil
}

func emailInfo(email string) []model.Contact {
	if email == "" {
		return nil
	}
	return []model.Contact{model.EmailContact(email)}
}

// partyIdentifier anchors URL identifiers (ORCID, ROR) on themselves.
func partyIdentifier(id, codeSpace string) model.Identifier {
	if strings.HasPrefix(id, "http://") || strings.HasPrefix(id, "https://") {
		return model.Identifier{Code: model.Anchor(id, id), CodeSpace: codeSpace}
	}
	return model.ID(id, codeSpace)
}

// keywords collects tag keywords, the fixed keyword and one aligned
// collection per configured thesaurus. Collections that cannot be aligned
// are reported and left out.
func keywords(st *State, at iso.PathRef) []model.Keywords {
	rec := st.Record
	var out []model.Keywords
	if tags, ok := rec.List("tags"); ok {
		out = append(out, keyword.Tags(tags)...)
	} else if rec.Has("tags") {
		st.Report(at.Issue(iso.CodeMalformedLiteral, "", "field", "tags"))
	}
	if st.Settings.FixedKeyword != "" {
		out = append(out, keyword.Fixed(st.Settings.FixedKeyword))
	}
	for _, id := range st.Settings.Thesauri {
		th, ok := st.Thesauri.Get(id)
		if !ok {
			continue
		}
		labels, hasLabels := rec.Raw(th.LabelsKey)
		codes, hasCodes := rec.Raw(th.CodesKey)
		if !hasLabels && !hasCodes {
			continue
		}
		kw, err := th.Align(labels, codes)
		if err != nil {
			code := iso.CodeKeywordMismatch
			if errors.Is(err, keyword.ErrMalformed) {
				code = iso.CodeMalformedLiteral
			}
			is := at.Index(len(out)).Issue(code, "", "thesaurus", th.ID)
			is.Cause = err
			st.Report(is)
			continue
		}
		out = append(out, *kw)
	}
	return out
}

// license returns the licence constraint when license_id is present.
func license(st *State) (model.LegalConstraints, bool, error) {
	rec := st.Record
	id, ok := rec.NonEmpty("license_id")
	if !ok {
		return model.LegalConstraints{}, false, nil
	}
	ref := model.Citation{
		Title:       rec.StringOr("license_title", id),
		Identifiers: []model.Identifier{model.ID(id, "")},
	}
	if u, ok := rec.NonEmpty("license_url"); ok {
		ref.OnlineResources = []model.OnlineResource{model.Link(u)}
	}
	use, err := codeOf[model.RestrictionCode](st, model.LegalConstraints{}, "UseConstraints", string(model.RestrictionLicence))
	if err != nil {
		return model.LegalConstraints{}, false, err
	}
	return model.LegalConstraints{
		References:       []model.Citation{ref},
		UseConstraints:   []model.RestrictionCode{use},
		OtherConstraints: []string{ref.Title},
	}, true, nil
}

// associatedResources maps related_resource entries through the relation
// type table.
func associatedResources(st *State, at iso.PathRef) ([]model.AssociatedResource, error) {
	rec := st.Record
	if !rec.Has("related_resource") {
		return nil, nil
	}
	entries, ok := rec.Records("related_resource")
	if !ok {
		st.Report(at.Issue(iso.CodeMalformedLiteral, "", "field", "related_resource"))
		return nil, nil
	}
	var out []model.AssociatedResource
	for i, e := range entries {
		link := e.StringOr("related_resource_url", e.StringOr("url", ""))
		title := e.StringOr("related_resource_title", e.StringOr("title", link))
		if title == "" {
			st.Report(at.Index(i).Issue(iso.CodeInvalidType, "", "reason", "related resource without title or url"))
			continue
		}
		typ, err := codeOf[model.AssociationTypeCode](st, model.AssociatedResource{}, "AssociationType",
			string(AssociationType(e.StringOr("relation_type", ""))))
		if err != nil {
			return nil, err
		}
		name := &model.Citation{Title: title}
		if link != "" {
			name.OnlineResources = []model.OnlineResource{model.Link(link)}
			name.Identifiers = []model.Identifier{partyIdentifier(link, "")}
		}
		out = append(out, model.AssociatedResource{Name: name, AssociationType: typ})
	}
	return out, nil
}
