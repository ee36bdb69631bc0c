package tle

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	issName  = "ISS (ZARYA)"
	issLine1 = "1 25544U 98067A   24001.50000000  .00016717  00000-0  10270-3 0  9993"
	issLine2 = "2 25544  51.6416 247.4627 0006703 130.5360 325.0288 15.72125391423756"
)

func TestParseLines_ISS(t *testing.T) {
	t.Parallel()

	rec, err := ParseLines(issName, issLine1, issLine2)
	require.NoError(t, err)

	assert.Equal(t, 25544, rec.CatalogNumber)
	assert.Equal(t, "ISS (ZARYA)", rec.Name)
	assert.Equal(t, "98067A", rec.IntlDesignator)
	assert.InDelta(t, 51.6416, rec.Inclination/Deg2Rad, 0.001)
	assert.InDelta(t, 0.0006703, rec.Eccentricity, 1e-7)
	assert.InDelta(t, 15.72125391, rec.MeanMotionRevPerDay(), 1e-4)
	assert.Equal(t, 42375, rec.RevNumber)
}

func TestParseLines_Epoch(t *testing.T) {
	t.Parallel()

	rec, err := ParseLines("ISS", issLine1, issLine2)
	require.NoError(t, err)

	assert.Equal(t, 2024, rec.EpochYear)
	assert.InDelta(t, 1.5, rec.EpochDay, 1e-3)

	// 2024-01-01 12:00 UTC is JD 2460311.0.
	assert.InDelta(t, 2460311.0, rec.EpochJD, 1e-6)
}

func TestParseLines_Bstar(t *testing.T) {
	t.Parallel()

	rec, err := ParseLines("ISS", issLine1, issLine2)
	require.NoError(t, err)

	// 10270-3 means 0.10270e-3.
	assert.InDelta(t, 0.10270e-3, rec.Bstar, 1e-8)
}

func TestParseLines_YearPivot(t *testing.T) {
	t.Parallel()

	line1 := "1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753"
	line2 := "2 00005  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667"

	rec, err := ParseLines("VANGUARD 1", line1, line2)
	require.NoError(t, err)
	assert.Equal(t, 2000, rec.EpochYear)

	old1 := "1 00005U 58002B   58179.78495062  .00000023  00000-0  28098-4 0  4758"
	rec, err = ParseLines("VANGUARD 1", old1, line2)
	require.NoError(t, err)
	assert.Equal(t, 1958, rec.EpochYear)
}

func TestParseExponential(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want float64
	}{
		{" 00000-0", 0},
		{" 28098-4", 0.28098e-4},
		{"-11606-4", -0.11606e-4},
		{" 10270-3", 0.10270e-3},
		{" 12345+1", 0.12345e1},
	}
	for _, tc := range cases {
		got, err := parseExponential(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.InDelta(t, tc.want, got, 1e-12, "input %q", tc.in)
	}
}

func TestParse_Stream(t *testing.T) {
	t.Parallel()

	text := issName + "\n" + issLine1 + "\n" + issLine2 + "\n" +
		"GARBAGE LINE THAT IS NOT AN ELEMENT\n" +
		"VANGUARD 1\n" +
		"1 00005U 58002B   00179.78495062  .00000023  00000-0  28098-4 0  4753\n" +
		"2 00005  34.2682 348.7242 1859667 331.7664  19.3264 10.82419157413667\n"

	records, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 25544, records[0].CatalogNumber)
	assert.Equal(t, 5, records[1].CatalogNumber)
}

func TestParse_TruncatedStream(t *testing.T) {
	t.Parallel()

	text := issName + "\n" + issLine1 + "\n"
	records, err := Parse(strings.NewReader(text))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_NoNameLine(t *testing.T) {
	t.Parallel()

	records, err := Parse(strings.NewReader(issLine1 + "\n" + issLine2 + "\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 25544, records[0].CatalogNumber)
	assert.Empty(t, records[0].Name)
}

func TestMerge_LaterEpochWins(t *testing.T) {
	t.Parallel()

	older := TLE{CatalogNumber: 25544, Name: "OLD", EpochJD: 2460000.0}
	newer := TLE{CatalogNumber: 25544, Name: "NEW", EpochJD: 2460311.0}
	other := TLE{CatalogNumber: 5, Name: "VANGUARD", EpochJD: 2451725.0}

	merged := Merge([]TLE{older, other}, []TLE{newer})
	require.Len(t, merged, 2)
	assert.Equal(t, "VANGUARD", merged[0].Name)
	assert.Equal(t, "NEW", merged[1].Name)

	// The older update must not displace the newer record.
	merged = Merge([]TLE{newer}, []TLE{older})
	require.Len(t, merged, 1)
	assert.Equal(t, "NEW", merged[0].Name)
}

func TestWrite_RoundTrip(t *testing.T) {
	t.Parallel()

	orig, err := ParseLines(issName, issLine1, issLine2)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, []TLE{orig}))

	records, err := Parse(&buf)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, orig.CatalogNumber, got.CatalogNumber)
	assert.Equal(t, orig.Name, got.Name)
	assert.InDelta(t, orig.Inclination, got.Inclination, 1e-6)
	assert.InDelta(t, orig.RAAN, got.RAAN, 1e-6)
	assert.InDelta(t, orig.Eccentricity, got.Eccentricity, 1e-7)
	assert.InDelta(t, orig.ArgPerigee, got.ArgPerigee, 1e-6)
	assert.InDelta(t, orig.MeanAnomaly, got.MeanAnomaly, 1e-6)
	assert.InDelta(t, orig.MeanMotion, got.MeanMotion, 1e-9)
	assert.InDelta(t, orig.Bstar, got.Bstar, 1e-9)
	assert.InDelta(t, orig.EpochJD, got.EpochJD, 1e-6)
}
