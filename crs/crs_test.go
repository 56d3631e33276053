package crs_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wroge/wgs84"

	"github.com/auscope/iso19115/crs"
	"github.com/auscope/iso19115/model"
)

func TestLookup_Geographic_IsIdentity(t *testing.T) {
	for _, code := range []int{4326, 4283, 7844} {
		tr, err := crs.Lookup(code)
		require.NoError(t, err)
		lon, lat, err := tr.ToWGS84(143.81, -36.63)
		require.NoError(t, err)
		assert.Equal(t, 143.81, lon)
		assert.Equal(t, -36.63, lat)
		assert.Equal(t, crs.Geographic, tr.Describe().Kind)
	}
}

func TestLookup_Unsupported(t *testing.T) {
	for _, code := range []int{0, 1234, 32661, 28347, 7860, 4978} {
		_, err := crs.Lookup(code)
		assert.True(t, errors.Is(err, crs.ErrUnsupportedCRS), "code %d", code)
	}
}

func TestGeographic_OutOfRange(t *testing.T) {
	tr, err := crs.Lookup(4326)
	require.NoError(t, err)
	_, _, err = tr.ToWGS84(500000, 5800000)
	assert.ErrorIs(t, err, crs.ErrOutOfRange)
}

func TestWebMercator(t *testing.T) {
	tr, err := crs.Lookup(3857)
	require.NoError(t, err)
	lon, lat, err := tr.ToWGS84(10018754.171394622, 0)
	require.NoError(t, err)
	assert.InDelta(t, 90, lon, 1e-9)
	assert.InDelta(t, 0, lat, 1e-9)

	x, y, err := tr.FromWGS84(144.9631, -37.8136)
	require.NoError(t, err)
	lon, lat, err = tr.ToWGS84(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 144.9631, lon, 1e-8)
	assert.InDelta(t, -37.8136, lat, 1e-8)

	_, _, err = tr.FromWGS84(0, 86)
	assert.ErrorIs(t, err, crs.ErrOutOfRange)
}

func TestMGA_KnownPoint(t *testing.T) {
	// Melbourne CBD in GDA94 / MGA zone 55.
	tr, err := crs.Lookup(28355)
	require.NoError(t, err)
	assert.Equal(t, "GDA94 / MGA zone 55", tr.Describe().Name)

	x, y, err := tr.FromWGS84(144.9631, -37.8136)
	require.NoError(t, err)
	assert.InDelta(t, 320704.45, x, 1)
	assert.InDelta(t, 5812911.70, y, 1)

	// The inverse series is good to a few metres away from the central
	// meridian.
	lon, lat, err := tr.ToWGS84(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 144.9631, lon, 1e-4)
	assert.InDelta(t, -37.8136, lat, 1e-4)
}

func TestUTM_CentralMeridian(t *testing.T) {
	tr, err := crs.Lookup(32755)
	require.NoError(t, err)
	lon, lat, err := tr.ToWGS84(500000, 10000000)
	require.NoError(t, err)
	assert.InDelta(t, 147, lon, 1e-9)
	assert.InDelta(t, 0, lat, 1e-9)

	north, err := crs.Lookup(32633)
	require.NoError(t, err)
	x, y, err := north.FromWGS84(15, 52)
	require.NoError(t, err)
	assert.InDelta(t, 500000, x, 1e-6)
	lon, lat, err = north.ToWGS84(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 15, lon, 1e-7)
	assert.InDelta(t, 52, lat, 1e-7)
}

func TestMGA2020_Zones(t *testing.T) {
	tr, err := crs.Lookup(7850)
	require.NoError(t, err)
	assert.Equal(t, "GDA2020 / MGA zone 50", tr.Describe().Name)
	x, y, err := tr.FromWGS84(115.86, -31.95)
	require.NoError(t, err)
	lon, lat, err := tr.ToWGS84(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 115.86, lon, 1e-4)
	assert.InDelta(t, -31.95, lat, 1e-4)
}

func TestAlbers(t *testing.T) {
	for _, code := range []int{3577, 9473} {
		tr, err := crs.Lookup(code)
		require.NoError(t, err)

		// Canberra.
		x, y, err := tr.FromWGS84(149.13, -35.28)
		require.NoError(t, err)
		assert.InDelta(t, 1550570.62, x, 1)
		assert.InDelta(t, -3957368.59, y, 1)

		lon, lat, err := tr.ToWGS84(x, y)
		require.NoError(t, err)
		assert.InDelta(t, 149.13, lon, 1e-7)
		assert.InDelta(t, -35.28, lat, 1e-7)

		x, _, err = tr.FromWGS84(132, -25)
		require.NoError(t, err)
		assert.InDelta(t, 0, x, 1e-6)
	}
}

func TestReferenceSystemType(t *testing.T) {
	assert.Equal(t, model.RSTypeGeodeticGeographic2D, crs.ReferenceSystemType(crs.Geographic))
	assert.Equal(t, model.RSTypeProjected, crs.ReferenceSystemType(crs.Projected))
}

func TestMGA_MatchesUTMSouth(t *testing.T) {
	// GRS80 and WGS84 differ by a fraction of a millimetre, so MGA zone 55
	// and WGS 84 / UTM zone 55S agree.
	mga, err := crs.Lookup(28355)
	require.NoError(t, err)
	utm := wgs84.From(wgs84.EPSG().Code(32755))

	for _, p := range [][2]float64{{320704.45, 5812911.70}, {693000, 6090000}, {500000, 5000000}} {
		lon, lat, err := mga.ToWGS84(p[0], p[1])
		require.NoError(t, err)
		wantLon, wantLat, _ := utm(p[0], p[1], 0)
		assert.InDelta(t, wantLon, lon, 1e-6)
		assert.InDelta(t, wantLat, lat, 1e-6)
	}
}

func TestLookup_LibraryCodes(t *testing.T) {
	// Codes the EPSG repository ships with, beyond the Australian additions.
	for code, kind := range map[int]crs.Kind{4258: crs.Geographic, 27700: crs.Projected, 25832: crs.Projected} {
		tr, err := crs.Lookup(code)
		require.NoError(t, err, "code %d", code)
		assert.Equal(t, kind, tr.Describe().Kind)
	}
	tr, err := crs.Lookup(25832)
	require.NoError(t, err)
	assert.Equal(t, "ETRS89 / UTM zone 32N", tr.Describe().Name)
}

func TestCodes(t *testing.T) {
	codes := crs.Codes()
	assert.True(t, sort.IntsAreSorted(codes))
	for _, c := range []int{4326, 4283, 7844, 3857, 3577, 9473, 28348, 28358, 7846, 7859, 32601, 32760} {
		assert.Contains(t, codes, c)
	}
	assert.NotContains(t, codes, 4978)
}
