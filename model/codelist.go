package model

import (
	"sort"

	iso "github.com/auscope/iso19115"
)

// Codelist is a value drawn from a named, closed vocabulary.
type Codelist interface {
	// CodeList returns the qualified codelist name, e.g. cit:CI_RoleCode.
	CodeList() string
	// Value returns the literal.
	Value() string
	// Valid reports whether the literal is a member of the codelist.
	Valid() bool
}

// CodelistSpec describes one codelist of the model for registries.
type CodelistSpec struct {
	QName   string
	Members []string
	// Make constructs a validated value of the codelist's Go type.
	Make func(literal string) (Codelist, error)
}

type codeSet struct {
	qname   string
	members []string
	index   map[string]struct{}
}

func newCodeSet(qname string, members ...string) *codeSet {
	s := &codeSet{qname: qname, members: members, index: make(map[string]struct{}, len(members))}
	for _, m := range members {
		s.index[m] = struct{}{}
	}
	return s
}

func (s *codeSet) has(v string) bool {
	_, ok := s.index[v]
	return ok
}

func (s *codeSet) invalid(v string) error {
	return &iso.InvalidCodeValue{CodeList: s.qname, Value: v, Allowed: append([]string(nil), s.members...)}
}

func parseCode[T ~string](s *codeSet, v string) (T, error) {
	if !s.has(v) {
		return "", s.invalid(v)
	}
	return T(v), nil
}

func specOf[T interface {
	~string
	Codelist
}](s *codeSet) CodelistSpec {
	return CodelistSpec{
		QName:   s.qname,
		Members: append([]string(nil), s.members...),
		Make: func(literal string) (Codelist, error) {
			v, err := parseCode[T](s, literal)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// Codelists returns the specs of every codelist in the model, sorted by
// qualified name.
func Codelists() []CodelistSpec {
	out := []CodelistSpec{
		specOf[RoleCode](roleCodes),
		specOf[DateTypeCode](dateTypeCodes),
		specOf[KeywordTypeCode](keywordTypeCodes),
		specOf[ScopeCode](scopeCodes),
		specOf[AssociationTypeCode](associationTypeCodes),
		specOf[RestrictionCode](restrictionCodes),
		specOf[ReferenceSystemTypeCode](referenceSystemTypeCodes),
		specOf[OnLineFunctionCode](onLineFunctionCodes),
		specOf[MaintenanceFrequencyCode](maintenanceFrequencyCodes),
		specOf[TelephoneTypeCode](telephoneTypeCodes),
		specOf[TopicCategoryCode](topicCategoryCodes),
		specOf[ProgressCode](progressCodes),
		specOf[CharacterSetCode](characterSetCodes),
		specOf[TopologyLevelCode](topologyLevelCodes),
		specOf[GeometricObjectTypeCode](geometricObjectTypeCodes),
		{
			QName: QNameLanguageCode,
			Make: func(literal string) (Codelist, error) {
				v, err := ParseLanguageCode(literal)
				if err != nil {
					return nil, err
				}
				return v, nil
			},
		},
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QName < out[j].QName })
	return out
}
