package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/config"
	"github.com/orbitops-data/orbitops/internal/orbit"
	"github.com/orbitops-data/orbitops/internal/timeutil"
	"github.com/orbitops-data/orbitops/internal/tle"
)

func spreadRecords(n int) []tle.TLE {
	records := make([]tle.TLE, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, tle.TLE{
			CatalogNumber: 10000 + i,
			Name:          fmt.Sprintf("SPREAD-%d", i),
			Inclination:   51.6 * tle.Deg2Rad,
			RAAN:          float64(i) * 7.2 * tle.Deg2Rad,
			Eccentricity:  0.001,
			MeanAnomaly:   float64(i) * 7.2 * tle.Deg2Rad,
			MeanMotion:    15.5 * tle.TwoPi / tle.MinPerDay,
			EpochJD:       2460311.0,
		})
	}
	return records
}

func testEngine(t *testing.T, records []tle.TLE, cfg *config.Config) *Engine {
	t.Helper()
	clock := timeutil.NewMockClock(time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC))
	eng, err := New(records, cfg, clock)
	require.NoError(t, err)
	return eng
}

func TestEngine_ScreenAndRefine(t *testing.T) {
	t.Parallel()

	threshold := 100.0
	samples := 500
	cfg := &config.Config{ThresholdKm: &threshold, SampleCount: &samples}

	eng := testEngine(t, spreadRecords(50), cfg)
	eng.Recorder().Start()

	results := eng.ScreenAndRefine(0)
	require.NotEmpty(t, results)

	for _, res := range results {
		assert.Less(t, res.ID1, res.ID2)
		assert.Less(t, res.MissDistanceKm, threshold)
		assert.GreaterOrEqual(t, res.Probability, 0.0)
		assert.LessOrEqual(t, res.Probability, 1.0)
		assert.Equal(t, samples, res.Samples)
	}

	// Results are retained for the report surface and history recorded.
	assert.Len(t, eng.LatestResults(), len(results))
	rng := eng.Recorder().Range()
	assert.Equal(t, 1, rng.SnapshotCount)
	assert.Equal(t, len(results), rng.EventCount)
}

func TestEngine_ScreenSortsByDistance(t *testing.T) {
	t.Parallel()

	threshold := 500.0
	eng := testEngine(t, spreadRecords(40), &config.Config{ThresholdKm: &threshold})

	pairs, batch := eng.Screen(0)
	assert.Empty(t, batch.Failed)
	for i := 1; i < len(pairs); i++ {
		assert.LessOrEqual(t, pairs[i-1].DistanceKm, pairs[i].DistanceKm)
	}
}

func TestEngine_UpdateElementsMerges(t *testing.T) {
	t.Parallel()

	eng := testEngine(t, spreadRecords(5), nil)
	require.Equal(t, 5, eng.Len())

	// A newer record for an existing object plus one new object.
	updated := spreadRecords(1)[0]
	updated.EpochJD = 2460400.0
	updated.Name = "SPREAD-0 REFRESHED"
	newcomer := spreadRecords(6)[5]

	n, err := eng.UpdateElements([]tle.TLE{updated, newcomer})
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	elements := eng.Elements()
	assert.Equal(t, "SPREAD-0 REFRESHED", elements[0].Name)
}

func TestEngine_OrbitPathAndState(t *testing.T) {
	t.Parallel()

	eng := testEngine(t, spreadRecords(3), nil)
	eng.Propagate(0)

	path, err := eng.OrbitPath(10001, 16)
	require.NoError(t, err)
	assert.Len(t, path, 16)

	pos, vel, err := eng.StateOf(10001)
	require.NoError(t, err)
	assert.Greater(t, pos.Norm(), 6378.0)
	assert.Greater(t, vel.Norm(), 7.0)

	_, err = eng.OrbitPath(99999, 16)
	require.Error(t, err)
}

func TestEngine_PlanAvoidance(t *testing.T) {
	t.Parallel()

	safe := 100.0
	eng := testEngine(t, spreadRecords(50), &config.Config{SafeDistanceKm: &safe})
	eng.Propagate(0)

	// The spread constellation has one pair inside 100 km at t=0; use the
	// screener to find it and plan against it.
	threshold := 100.0
	eng.Config().ThresholdKm = &threshold
	pairs, _ := eng.Screen(0)
	require.NotEmpty(t, pairs)

	res, err := eng.PlanAvoidance(pairs[0].ID1, pairs[0].ID2, 15.0)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Greater(t, res.TotalDeltaVKmS, 0.0)

	_, err = eng.PlanAvoidance(1, 2, 15.0)
	require.Error(t, err)
}

func TestEngine_SimulateManeuver(t *testing.T) {
	t.Parallel()

	eng := testEngine(t, spreadRecords(2), nil)
	eng.Propagate(0)

	path, err := eng.SimulateManeuver(10000, orbit.Vec3{Y: 0.001}, 0, 30, 5)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	// The burn offset grows over the window.
	base, err2 := eng.SimulateManeuver(10000, orbit.Vec3{}, 0, 30, 5)
	require.NoError(t, err2)
	require.Len(t, base, len(path))

	first := path[0].Position.Sub(base[0].Position).Norm()
	last := path[len(path)-1].Position.Sub(base[len(base)-1].Position).Norm()
	assert.InDelta(t, 0.0, first, 1e-9)
	assert.Greater(t, last, first)
}

func TestEngine_DebrisFields(t *testing.T) {
	t.Parallel()

	records := spreadRecords(3)
	for i := range records {
		records[i].Name = fmt.Sprintf("BREAKUP DEB %d", i)
		records[i].IntlDesignator = "93036C"
	}

	eng := testEngine(t, records, nil)
	eng.Propagate(0)

	require.Len(t, eng.DebrisObjects(), 3)
	fields := eng.DebrisFields()
	require.Len(t, fields, 1)
	assert.Equal(t, 3, fields[0].TotalFragments)
}

func TestEngine_AssessDebrisRisk(t *testing.T) {
	t.Parallel()

	records := spreadRecords(3)
	// Record 0 stays an active satellite; the rest become debris.
	for i := 1; i < len(records); i++ {
		records[i].Name = fmt.Sprintf("BREAKUP DEB %d", i)
		records[i].IntlDesignator = "93036C"
	}

	eng := testEngine(t, records, nil)
	eng.Propagate(0)

	a, err := eng.AssessDebrisRisk(10000)
	require.NoError(t, err)
	assert.Equal(t, 10000, a.CatalogNumber)
	assert.Contains(t, []string{"critical", "high", "medium", "low", "negligible"}, string(a.Overall))
	assert.Len(t, a.Closest, a.NearbyCount)

	_, err = eng.AssessDebrisRisk(424242)
	require.Error(t, err)
}
