package debris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/tle"
)

func leoRecord(name, designator string, bstar float64) tle.TLE {
	return tle.TLE{
		CatalogNumber:  40000,
		Name:           name,
		IntlDesignator: designator,
		MeanMotion:     15.0 * tle.TwoPi / tle.MinPerDay,
		Bstar:          bstar,
	}
}

func TestIsDebris_Heuristics(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  tle.TLE
		want bool
	}{
		{"name keyword DEB", leoRecord("COSMOS 2251 DEB", "93036A", 0), true},
		{"name keyword rocket body", leoRecord("SL-16 R/B", "92093B", 0), true},
		{"fragment keyword", leoRecord("FENGYUN 1C FRAGMENT", "99025A", 0), true},
		{"high drag term", leoRecord("UNREMARKABLE", "98067A", 0.02), true},
		{"late piece letter", leoRecord("PAYLOAD", "98067  H", 0), true},
		{"active satellite", leoRecord("ISS (ZARYA)", "98067A", 0.0001), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, IsDebris(tc.rec))
		})
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypeRocketBody, Classify(leoRecord("SL-16 R/B", "", 0)))
	assert.Equal(t, TypeFragmentation, Classify(leoRecord("FY-1C FRAG", "", 0)))
	assert.Equal(t, TypeUnknown, Classify(leoRecord("MYSAT", "", 0)))

	// DEB near a known breakup parent classifies as fragmentation.
	rec := leoRecord("COSMOS 2251 DEB", "", 0)
	rec.CatalogNumber = 25000
	assert.Equal(t, TypeFragmentation, Classify(rec))

	// DEB far from every known parent is shed payload debris.
	far := leoRecord("COSMOS 2251 DEB", "", 0)
	far.CatalogNumber = 99000
	assert.Equal(t, TypePayloadDebris, Classify(far))

	// Released mission hardware keywords.
	assert.Equal(t, TypeMissionDebris, Classify(leoRecord("SL-8 COOLANT", "", 0)))
	assert.Equal(t, TypeMissionDebris, Classify(leoRecord("NAK DROPLET", "", 0)))
	assert.Equal(t, TypeMissionDebris, Classify(leoRecord("PROP TANK", "", 0)))
}

func TestEstimateSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SizeLarge, EstimateSize(leoRecord("SL-16 R/B", "", 0)))
	assert.Equal(t, SizeMedium, EstimateSize(leoRecord("SOME DEB", "", 0.006)))
	assert.Equal(t, SizeLarge, EstimateSize(leoRecord("BIG SAT", "", 0.0001)))

	// Low + draggy = small.
	low := leoRecord("LOW DEB", "", 0.002)
	low.MeanMotion = 16.3 * tle.TwoPi / tle.MinPerDay
	assert.Equal(t, SizeSmall, EstimateSize(low))
}

func TestEstimateRCS_RocketBodyLarger(t *testing.T) {
	t.Parallel()

	rb := EstimateRCS(leoRecord("SL-16 R/B", "", 0))
	deb := EstimateRCS(leoRecord("SOME DEB", "", 0.006))
	assert.Greater(t, rb, deb)
}

func TestBuildModel_FiltersDebris(t *testing.T) {
	t.Parallel()

	records := []tle.TLE{
		leoRecord("ISS (ZARYA)", "98067A", 0.0001),
		leoRecord("COSMOS 2251 DEB", "93036C", 0),
		leoRecord("SL-16 R/B", "92093B", 0),
	}
	m := BuildModel(records)

	require.Len(t, m.Objects, 2)
	assert.Equal(t, 1, m.Objects[0].StoreIndex)
	assert.Equal(t, 2, m.Objects[1].StoreIndex)
}

func TestIdentifyFields_GroupsByDesignatorPrefix(t *testing.T) {
	t.Parallel()

	var records []tle.TLE
	// Four fragments of one launch, two of another.
	for i := 0; i < 4; i++ {
		rec := leoRecord("BREAKUP DEB", "93036C", 0)
		rec.CatalogNumber = 50000 + i
		records = append(records, rec)
	}
	for i := 0; i < 2; i++ {
		rec := leoRecord("OTHER DEB", "99025A", 0)
		rec.CatalogNumber = 60000 + i
		records = append(records, rec)
	}

	m := BuildModel(records)
	require.Len(t, m.Objects, 6)

	positions := [][3]float64{
		{7000, 0, 0}, {7010, 0, 0}, {7000, 10, 0}, {7000, 0, 10},
		{8000, 0, 0}, {8010, 0, 0},
	}
	m.IdentifyFields(func(i int) (float64, float64, float64) {
		return positions[i][0], positions[i][1], positions[i][2]
	})

	// Only the four-piece group forms a field.
	require.Len(t, m.Fields, 1)
	f := m.Fields[0]
	assert.Equal(t, 4, f.TotalFragments)
	assert.Contains(t, f.EventName, "93036")
	assert.Greater(t, f.SpreadRadiusKm, 0.0)
	assert.Less(t, f.SpreadRadiusKm, 20.0)
}

// riskModel builds a debris model of n DEB fragments with sequential
// catalog numbers and the given positions served through the accessor.
func riskModel(n int) (*Model, [][3]float64) {
	var records []tle.TLE
	for i := 0; i < n; i++ {
		rec := leoRecord("BREAKUP DEB", "93036C", 0)
		rec.CatalogNumber = 50000 + i
		records = append(records, rec)
	}
	return BuildModel(records), make([][3]float64, n)
}

func positionAccessor(positions [][3]float64) func(int) (float64, float64, float64) {
	return func(i int) (float64, float64, float64) {
		return positions[i][0], positions[i][1], positions[i][2]
	}
}

func TestAssessRisk_Thresholds(t *testing.T) {
	t.Parallel()

	sat := [3]float64{7000, 0, 0}

	t.Run("critical inside 1 km", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(1)
		pos[0] = [3]float64{7000.5, 0, 0}
		a := m.AssessRisk(1, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskCritical, a.Overall)
		require.Len(t, a.Closest, 1)
		assert.InDelta(t, 0.5, a.Closest[0].DistanceKm, 1e-9)
	})

	t.Run("high inside 10 km", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(1)
		pos[0] = [3]float64{7005, 0, 0}
		a := m.AssessRisk(1, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskHigh, a.Overall)
	})

	t.Run("medium when crowded", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(12)
		for i := range pos {
			pos[i] = [3]float64{7050, float64(i), 0}
		}
		a := m.AssessRisk(1, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskMedium, a.Overall)
		assert.Equal(t, 12, a.NearbyCount)
		// The closest list is capped at ten, nearest first.
		require.Len(t, a.Closest, 10)
		assert.LessOrEqual(t, a.Closest[0].DistanceKm, a.Closest[9].DistanceKm)
	})

	t.Run("low with sparse neighbors", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(2)
		pos[0] = [3]float64{7050, 0, 0}
		pos[1] = [3]float64{7060, 0, 0}
		a := m.AssessRisk(1, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskLow, a.Overall)
		assert.Equal(t, 2, a.NearbyCount)
	})

	t.Run("negligible when empty", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(1)
		pos[0] = [3]float64{8000, 0, 0}
		a := m.AssessRisk(1, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskNegligible, a.Overall)
		assert.Zero(t, a.NearbyCount)
	})

	t.Run("unset positions skipped", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(1) // position stays at the zero origin
		a := m.AssessRisk(1, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskNegligible, a.Overall)
	})

	t.Run("assessed satellite excluded from its own neighborhood", func(t *testing.T) {
		t.Parallel()
		m, pos := riskModel(1)
		pos[0] = sat
		a := m.AssessRisk(50000, sat, 400, positionAccessor(pos))
		assert.Equal(t, RiskNegligible, a.Overall)
	})
}

func TestAssessRisk_FluxFromShell(t *testing.T) {
	t.Parallel()

	// leoRecord at 15 rev/day sits near 574 km altitude, so the matching
	// shell carries flux while an empty shell does not.
	m, pos := riskModel(5)
	for i := range pos {
		pos[i] = [3]float64{8000, 0, 0}
	}
	alt := m.Objects[0].AltitudeKm

	a := m.AssessRisk(1, [3]float64{7000, 0, 0}, alt, positionAccessor(pos))
	assert.Greater(t, a.EstimatedFlux, 0.0)

	empty := m.AssessRisk(1, [3]float64{7000, 0, 0}, 1900, positionAccessor(pos))
	assert.Zero(t, empty.EstimatedFlux)
}

func TestShellDensities(t *testing.T) {
	t.Parallel()

	m, _ := riskModel(4)
	shells := m.ShellDensities(50.0)
	require.NotEmpty(t, shells)

	total := 0
	var withFlux int
	for _, shell := range shells {
		assert.Equal(t, shell.MinAltitudeKm+50.0, shell.MaxAltitudeKm)
		total += shell.Count
		if shell.Count > 0 {
			assert.Greater(t, shell.SpatialDensity, 0.0)
			assert.Greater(t, shell.Flux, 0.0)
			withFlux++
		}
	}
	// All four fragments share one orbit, hence one shell.
	assert.Equal(t, 4, total)
	assert.Equal(t, 1, withFlux)
}
