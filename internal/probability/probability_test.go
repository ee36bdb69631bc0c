package probability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

func TestCalculate_SmallSeparationSanity(t *testing.T) {
	t.Parallel()

	// Two objects 100 m apart with wide covariances and a 10 m hard-body
	// radius: the hit probability must be well under 1%.
	calc := NewCalculator(42)
	calc.SetSampleCount(10000)
	calc.SetCollisionRadius(0.01)

	cov := Covariance{SigmaX: 0.1, SigmaY: 0.5, SigmaZ: 0.3}
	pos1 := orbit.Vec3{X: 7000, Y: 0, Z: 0}
	pos2 := orbit.Vec3{X: 7000.1, Y: 0, Z: 0}
	vel1 := orbit.Vec3{X: 0, Y: 7.5, Z: 0}
	vel2 := orbit.Vec3{X: 0, Y: -7.5, Z: 0}

	res := calc.Calculate(pos1, vel1, cov, pos2, vel2, cov, 1, 2, "A", "B", 0)

	assert.Less(t, res.Probability, 0.01)
	assert.InDelta(t, 0.1, res.MissDistanceKm, 1e-9)
	assert.InDelta(t, 15.0, res.RelativeSpeedKmS, 1e-9)
	assert.Equal(t, 10000, res.Samples)
	assert.Equal(t, res.Hits, int(res.Probability*10000+0.5))

	assert.Greater(t, res.MeanMissKm, 0.0)
	assert.GreaterOrEqual(t, res.MaxMissKm, res.MeanMissKm)
	assert.LessOrEqual(t, res.MinMissKm, res.MeanMissKm)
	assert.Greater(t, res.StdDevMissKm, 0.0)
}

func TestCalculate_Deterministic(t *testing.T) {
	t.Parallel()

	cov := Covariance{SigmaX: 0.1, SigmaY: 0.5, SigmaZ: 0.3}
	pos1 := orbit.Vec3{X: 7000}
	pos2 := orbit.Vec3{X: 7000.05}

	calc := NewCalculator(42)
	a := calc.Calculate(pos1, orbit.Vec3{}, cov, pos2, orbit.Vec3{}, cov, 1, 2, "", "", 0)
	b := calc.Calculate(pos1, orbit.Vec3{}, cov, pos2, orbit.Vec3{}, cov, 1, 2, "", "", 0)

	assert.Equal(t, a.Probability, b.Probability)
	assert.Equal(t, a.MinMissKm, b.MinMissKm)
	assert.Equal(t, a.MeanMissKm, b.MeanMissKm)
	assert.Equal(t, a.MaxMissKm, b.MaxMissKm)

	other := NewCalculator(7)
	c := other.Calculate(pos1, orbit.Vec3{}, cov, pos2, orbit.Vec3{}, cov, 1, 2, "", "", 0)
	assert.NotEqual(t, a.MeanMissKm, c.MeanMissKm)
}

func TestCalculate_MonotoneInCollisionRadius(t *testing.T) {
	t.Parallel()

	cov := Covariance{SigmaX: 0.1, SigmaY: 0.1, SigmaZ: 0.1}
	pos1 := orbit.Vec3{X: 7000}
	pos2 := orbit.Vec3{X: 7000.05}

	prev := -1.0
	for _, radius := range []float64{0.005, 0.02, 0.05, 0.1, 0.3} {
		calc := NewCalculator(42)
		calc.SetSampleCount(4000)
		calc.SetCollisionRadius(radius)
		res := calc.Calculate(pos1, orbit.Vec3{}, cov, pos2, orbit.Vec3{}, cov, 1, 2, "", "", 0)

		assert.GreaterOrEqual(t, res.Probability, prev, "radius %f", radius)
		prev = res.Probability
	}
	assert.Greater(t, prev, 0.5, "a 300 m radius should catch most 50 m misses")
}

func TestFoster_FallsWithDistance(t *testing.T) {
	t.Parallel()

	cov := Covariance{SigmaX: 0.05, SigmaY: 0.5, SigmaZ: 0.1}
	near := Foster(orbit.Vec3{X: 7000}, orbit.Vec3{X: 7000.01}, cov, cov, 0.01)
	far := Foster(orbit.Vec3{X: 7000}, orbit.Vec3{X: 7001}, cov, cov, 0.01)

	assert.Greater(t, near, 0.0)
	assert.Greater(t, near, far)
}

func TestChan_Bounds(t *testing.T) {
	t.Parallel()

	// Contact case: closed-form disc mass.
	contact := Chan(0, 0.1, 0.01)
	assert.InDelta(t, 0.004987, contact, 1e-4)

	// General case stays in [0, 1] and decays with separation.
	near := Chan(0.05, 0.1, 0.01)
	far := Chan(1.0, 0.1, 0.01)
	assert.GreaterOrEqual(t, near, 0.0)
	assert.LessOrEqual(t, near, 1.0)
	assert.Greater(t, near, far)

	// Huge radius saturates at 1.
	assert.Equal(t, 1.0, Chan(0.01, 0.1, 10.0))
}

func TestEstimateCovariance_GrowthAndCaps(t *testing.T) {
	t.Parallel()

	fresh := EstimateCovariance(0, false)
	require.Equal(t, Covariance{SigmaX: 0.05, SigmaY: 0.5, SigmaZ: 0.1}, fresh)

	day := EstimateCovariance(24, false)
	assert.Greater(t, day.SigmaY, fresh.SigmaY)

	week := EstimateCovariance(168, false)
	assert.Greater(t, week.SigmaY, day.SigmaY)

	// Quadratic growth beyond a week, but capped per component.
	ancient := EstimateCovariance(24*365, false)
	assert.LessOrEqual(t, ancient.SigmaX, 0.05*50.0)
	assert.LessOrEqual(t, ancient.SigmaY, 0.5*100.0)
	assert.LessOrEqual(t, ancient.SigmaZ, 0.1*50.0)

	// Debris carries 3x base uncertainty.
	deb := EstimateCovariance(0, true)
	assert.InDelta(t, 3.0*fresh.SigmaX, deb.SigmaX, 1e-12)
	assert.InDelta(t, 3.0*fresh.SigmaY, deb.SigmaY, 1e-12)
}

func TestEstimateCovariance_MonotoneAcrossRegimes(t *testing.T) {
	t.Parallel()

	prev := 0.0
	for _, hours := range []float64{0, 6, 24, 48, 168, 400} {
		cov := EstimateCovariance(hours, false)
		assert.GreaterOrEqual(t, cov.SigmaY, prev, "hours=%f", hours)
		prev = cov.SigmaY
	}
}
