package iso19115_test

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iso "github.com/auscope/iso19115"
)

func TestIssues_ErrorSummarizesFirstThree(t *testing.T) {
	iss := iso.Issues{
		{Path: "/a", Code: iso.CodeInvalidDate},
		{Path: "/b", Code: iso.CodeKeywordMismatch},
		{Path: "/c", Code: iso.CodeInvalidGeometry},
		{Path: "/d", Code: iso.CodeDefaulted},
	}
	assert.Equal(t, "invalid_date at /a; keyword_mismatch at /b; invalid_geometry at /c; ... (total 4)", iss.Error())
	assert.True(t, iss.Has(iso.CodeDefaulted))
	assert.False(t, iss.Has(iso.CodeRequired))
	assert.Equal(t, []string{"invalid_date", "keyword_mismatch", "invalid_geometry", "defaulted"}, iss.Codes())
}

func TestAsIssues_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", iso.Issues{{Path: "/", Code: iso.CodeRequired}})
	iss, ok := iso.AsIssues(err)
	require.True(t, ok)
	require.Len(t, iss, 1)

	_, ok = iso.AsIssues(nil)
	assert.False(t, ok)
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want iso.ErrorClass
	}{
		{"invalid code", &iso.InvalidCodeValue{CodeList: "cit:CI_RoleCode", Value: "boss"}, iso.ClassFatal},
		{"resolver", &iso.ResolverError{QName: "xyz:Foo", Err: iso.ErrUnknownNamespace}, iso.ClassFatal},
		{"construction", &iso.ConstructionError{Missing: iso.Issues{{Path: "/metadataScope", Code: iso.CodeRequired}}}, iso.ClassConstruction},
		{"serialize", &iso.StageError{Stage: iso.StageSerialize, Err: errors.New("boom")}, iso.ClassCollaborator},
		{"construct stage", &iso.StageError{Stage: iso.StageConstruct, Err: &iso.ConstructionError{}}, iso.ClassConstruction},
		{"soft", iso.Issues{{Code: iso.CodeInvalidDate}}, iso.ClassSoft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, iso.Classify(tc.err))
		})
	}
	assert.True(t, iso.IsFatal(fmt.Errorf("stage dates: %w", &iso.InvalidCodeValue{})))
	assert.False(t, iso.IsFatal(nil))
}

func TestResolverError_Unwrap(t *testing.T) {
	err := &iso.ResolverError{QName: "cit:CI_Nope", Err: iso.ErrUnknownType}
	assert.ErrorIs(t, err, iso.ErrUnknownType)
	assert.Contains(t, err.Error(), "cit:CI_Nope")
}

func TestPathRef(t *testing.T) {
	p := iso.Root().Field("identificationInfo").Index(0).Field("citation/title")
	assert.Equal(t, "/identificationInfo/0/citation~1title", p.Pointer())
	assert.Equal(t, "/", iso.Root().Pointer())
	assert.Equal(t, "/a/b", iso.At("/a/b").Pointer())
	assert.Equal(t, p.Pointer(), iso.At(p.Pointer()).Pointer())
	assert.Equal(t, "/a~01", iso.At("/a~01").Pointer())
	assert.Equal(t, "/x/y~1z", iso.At("/x").Field("y/z").Pointer())

	base := iso.Root().Field("contact")
	first, second := base.Index(0), base.Index(1)
	assert.Equal(t, "/contact/0", first.Pointer())
	assert.Equal(t, "/contact/1", second.Pointer())

	it := p.Issue(iso.CodeRequired, "missing", "min", 1)
	assert.Equal(t, iso.CodeRequired, it.Code)
	assert.Equal(t, 1, it.Params["min"])
}

func TestCollector_ForwardsToSink(t *testing.T) {
	var seen []string
	c := iso.NewCollector(func(it iso.Issue) { seen = append(seen, it.Code) })
	c.Add(iso.Issue{Code: iso.CodeInvalidDate}, iso.Issue{Code: iso.CodeFolded})
	assert.Equal(t, []string{iso.CodeInvalidDate, iso.CodeFolded}, seen)
	assert.Len(t, c.Issues(), 2)
	assert.Nil(t, iso.NewCollector(nil).Issues())
}

func TestStructTags(t *testing.T) {
	type sample struct {
		Role  string `json:"role" iso:"codelist=cit:CI_RoleCode"`
		Title string `json:"title,omitempty" iso:"name=cit:title"`
		Plain string
		Empty string `iso:"codelist="`
	}
	rt := reflect.TypeOf(sample{})
	field := func(name string) reflect.StructField {
		sf, ok := rt.FieldByName(name)
		require.True(t, ok)
		return sf
	}

	q, ok := iso.CodelistOf(field("Role"))
	assert.True(t, ok)
	assert.Equal(t, "cit:CI_RoleCode", q)
	_, ok = iso.CodelistOf(field("Plain"))
	assert.False(t, ok)
	_, ok = iso.CodelistOf(field("Empty"))
	assert.False(t, ok)

	assert.Equal(t, "role", iso.ElementName(field("Role")))
	assert.Equal(t, "cit:title", iso.ElementName(field("Title")))
	assert.Equal(t, "Plain", iso.ElementName(field("Plain")))
}
