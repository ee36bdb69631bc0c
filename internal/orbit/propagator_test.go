package orbit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/tle"
)

// vanguardElements is the classic catalog-5 validation object (TEME
// reference state published for its epoch).
func vanguardElements() tle.TLE {
	return tle.TLE{
		CatalogNumber: 5,
		Name:          "VANGUARD 1",
		Inclination:   34.2682 * tle.Deg2Rad,
		RAAN:          348.7242 * tle.Deg2Rad,
		Eccentricity:  0.1859667,
		ArgPerigee:    331.7664 * tle.Deg2Rad,
		MeanAnomaly:   19.3264 * tle.Deg2Rad,
		MeanMotion:    10.82419157 * tle.TwoPi / tle.MinPerDay,
	}
}

func circularLEO(nRevDay float64) tle.TLE {
	return tle.TLE{
		CatalogNumber: 99999,
		Name:          "TEST LEO",
		Inclination:   51.6 * tle.Deg2Rad,
		Eccentricity:  0.0001,
		MeanMotion:    nRevDay * tle.TwoPi / tle.MinPerDay,
	}
}

func mustSystem(t *testing.T, records ...tle.TLE) *System {
	t.Helper()
	sys, err := NewSystem(records)
	require.NoError(t, err)
	return sys
}

func TestPropagate_VanguardReference(t *testing.T) {
	t.Parallel()

	sys := mustSystem(t, vanguardElements())
	res := sys.PropagateAll(0)
	require.Empty(t, res.Failed)
	require.Equal(t, 1, res.Propagated)

	// Published TEME state at epoch. The mean-element model carries only
	// secular J2, so the tolerance is loose compared to full SGP4.
	ref := Vec3{7022.46529266, -1400.08296755, 0.03995155}
	refVel := Vec3{1.893841015, 6.405893759, 4.534807250}

	posErr := sys.Position(0).Sub(ref).Norm()
	velErr := sys.Velocity(0).Sub(refVel).Norm()

	assert.Less(t, posErr, 100.0, "position error %f km", posErr)
	assert.Less(t, velErr, 1.0, "velocity error %f km/s", velErr)
}

func TestPropagate_CircularClosure(t *testing.T) {
	t.Parallel()

	sys := mustSystem(t, circularLEO(15.0))
	res := sys.PropagateAll(0)
	require.Empty(t, res.Failed)
	start := sys.Position(0)

	// One orbital period later the position should close to within the
	// secular-J2 drift allowance.
	period := 1440.0 / 15.0
	sys.PropagateAll(period)
	end := sys.Position(0)

	assert.Less(t, end.Sub(start).Norm(), 500.0)
}

func TestPropagate_LEOAltitudeAndSpeed(t *testing.T) {
	t.Parallel()

	sys := mustSystem(t, circularLEO(15.5))
	sys.PropagateAll(0)

	altitude := sys.Position(0).Norm() - RE
	speed := sys.Velocity(0).Norm()

	assert.Greater(t, altitude, 350.0)
	assert.Less(t, altitude, 450.0)
	assert.Greater(t, speed, 7.0)
	assert.Less(t, speed, 8.0)
}

func TestPropagate_Deterministic(t *testing.T) {
	t.Parallel()

	records := []tle.TLE{vanguardElements(), circularLEO(15.0), circularLEO(14.2)}

	sysA := mustSystem(t, records...)
	sysB := mustSystem(t, records...)
	sysA.PropagateAll(123.456)
	sysB.PropagateAll(123.456)

	for i := 0; i < sysA.Len(); i++ {
		assert.Equal(t, sysA.X[i], sysB.X[i])
		assert.Equal(t, sysA.Y[i], sysB.Y[i])
		assert.Equal(t, sysA.Z[i], sysB.Z[i])
		assert.Equal(t, sysA.VX[i], sysB.VX[i])
		assert.Equal(t, sysA.VY[i], sysB.VY[i])
		assert.Equal(t, sysA.VZ[i], sysB.VZ[i])
	}

	// Repeated calls at the same offset are bit-identical too.
	sysA.PropagateAll(123.456)
	for i := 0; i < sysA.Len(); i++ {
		assert.Equal(t, sysB.X[i], sysA.X[i])
	}
}

func TestPropagate_FiniteAcrossTimes(t *testing.T) {
	t.Parallel()

	highEcc := vanguardElements()
	highEcc.Eccentricity = 0.7 // Molniya-like

	sys := mustSystem(t, vanguardElements(), circularLEO(15.0), highEcc)

	for _, tMin := range []float64{0, 1, 45, 90, 720, 1440, 10080, -30} {
		res := sys.PropagateAll(tMin)
		require.Empty(t, res.Failed, "t=%f", tMin)
		for i := 0; i < sys.Len(); i++ {
			for _, v := range []float64{sys.X[i], sys.Y[i], sys.Z[i], sys.VX[i], sys.VY[i], sys.VZ[i]} {
				assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "non-finite state at t=%f", tMin)
			}
		}
	}
}

func TestPropagate_NearParabolicFailsObjectOnly(t *testing.T) {
	t.Parallel()

	bad := vanguardElements()
	bad.CatalogNumber = 7
	good := circularLEO(15.0)

	sys := mustSystem(t, good, bad)
	// Force the stored eccentricity past the parabolic guard; the loader
	// clamp normally prevents this.
	sys.Ecc[1] = 1.0

	res := sys.PropagateAll(10)
	assert.Equal(t, 1, res.Propagated)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 1, res.Failed[0].Index)
	assert.Equal(t, 7, res.Failed[0].Catalog)
	assert.Equal(t, KindInvalidInput, res.Failed[0].Kind)

	// Failed object is zeroed, not NaN; the good object propagated.
	assert.Zero(t, sys.X[1])
	assert.Zero(t, sys.VZ[1])
	assert.NotZero(t, sys.Position(0).Norm())
}

func TestNewSystem_DerivesSemiMajorAxis(t *testing.T) {
	t.Parallel()

	rec := circularLEO(15.0)
	sys := mustSystem(t, rec)

	// a = (mu*3600/n^2)^(1/3) with n in rad/min.
	n := rec.MeanMotion
	want := math.Cbrt(MU * 3600.0 / (n * n))
	assert.InDelta(t, want, sys.A0[0], 1e-9)

	// Kepler's third law back-check: n = sqrt(mu/a^3) in rad/s.
	nRadS := math.Sqrt(MU / (want * want * want))
	assert.InDelta(t, n/60.0, nRadS, 1e-12)
}

func TestNewSystem_RejectsNonPositiveMeanMotion(t *testing.T) {
	t.Parallel()

	rec := circularLEO(15.0)
	rec.MeanMotion = 0
	_, err := NewSystem([]tle.TLE{rec})
	require.Error(t, err)
}

func TestNewSystem_ClampsEccentricity(t *testing.T) {
	t.Parallel()

	rec := circularLEO(15.0)
	rec.Eccentricity = 0.9999
	sys := mustSystem(t, rec)
	assert.Equal(t, MaxEccentricity, sys.Ecc[0])
}

func TestNewView_PanicsOnMismatchedLengths(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		NewView(make([]float64, 3), make([]float64, 2), make([]float64, 3),
			make([]float64, 3), make([]float64, 3), make([]float64, 3),
			make([]int, 3), make([]string, 3))
	})
}

func TestStateAt_MatchesBatch(t *testing.T) {
	t.Parallel()

	sys := mustSystem(t, vanguardElements(), circularLEO(15.0))
	sys.PropagateAll(42.0)

	pos, vel, err := sys.StateAt(1, 42.0)
	require.NoError(t, err)
	assert.Equal(t, sys.Position(1), pos)
	assert.Equal(t, sys.Velocity(1), vel)

	_, _, err = sys.StateAt(99, 0)
	require.Error(t, err)
}

func TestOrbitPath_ClosesOverOnePeriod(t *testing.T) {
	t.Parallel()

	sys := mustSystem(t, circularLEO(15.0))
	path, err := sys.OrbitPath(0, 64)
	require.NoError(t, err)
	require.Len(t, path, 64)

	// First and last samples are one period apart.
	assert.Less(t, path[len(path)-1].Sub(path[0]).Norm(), 500.0)
}

func TestSolveKepler_HighEccentricity(t *testing.T) {
	t.Parallel()

	for _, e := range []float64{0, 0.1, 0.5, 0.9, 0.99} {
		for m := 0.0; m < 2*math.Pi; m += math.Pi / 7 {
			E := solveKepler(m, e)
			residual := E - e*math.Sin(E) - m
			assert.False(t, math.IsNaN(E))
			assert.Less(t, math.Abs(residual), 1e-6, "e=%f m=%f", e, m)
		}
	}
}
