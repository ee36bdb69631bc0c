package maneuver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

// leoState is a circular equatorial LEO state at ~400 km altitude.
func leoState() (orbit.Vec3, orbit.Vec3) {
	r := 6778.0
	v := math.Sqrt(orbit.MU / r)
	return orbit.Vec3{X: r}, orbit.Vec3{Y: v}
}

func TestPlanAvoidance_AlreadySafe(t *testing.T) {
	t.Parallel()

	opt := NewOptimizer()
	opt.SetSafeDistance(1.0)

	pos, vel := leoState()
	threatPos := orbit.Vec3{X: pos.X + 5.0}

	res := opt.PlanAvoidance(pos, vel, threatPos, vel, 10.0, 5.0)
	require.True(t, res.Success)
	assert.Zero(t, res.TotalDeltaVKmS)
	assert.Equal(t, orbit.Vec3{}, res.DeltaV)
	assert.Empty(t, res.Alternatives)
	assert.Equal(t, 5.0, res.NewMissKm)
}

func TestPlanAvoidance_MinimumCandidateWins(t *testing.T) {
	t.Parallel()

	opt := NewOptimizer()
	opt.SetSafeDistance(1.0)

	pos, vel := leoState()
	threatPos := orbit.Vec3{X: pos.X + 0.1}

	const tau = 10.0 // minutes
	res := opt.PlanAvoidance(pos, vel, threatPos, vel, tau, 0.0)
	require.True(t, res.Success)
	require.Len(t, res.Alternatives, 2)

	// Candidate magnitudes for deltaR = 1 km over tau seconds.
	dt := tau * 60.0
	n := MeanMotion(SemiMajorAxis(pos, vel))
	want := []float64{n / (3.0 * dt), 1.0 / (2.0 * dt), 1.0 / dt}

	minWant := want[0]
	for _, w := range want {
		if w < minWant {
			minWant = w
		}
	}
	assert.InDelta(t, minWant, res.TotalDeltaVKmS, 1e-12)

	// Alternatives carry the larger candidates in magnitude order.
	assert.Less(t, res.TotalDeltaVKmS, res.Alternatives[0].DeltaV.Norm())
	assert.Less(t, res.Alternatives[0].DeltaV.Norm(), res.Alternatives[1].DeltaV.Norm())
}

func TestPlanAvoidance_DegenerateStatePicksInTrack(t *testing.T) {
	t.Parallel()

	opt := NewOptimizer()
	opt.SetSafeDistance(1.0)

	// A zero protected state has no finite mean motion, so the radial
	// response is dropped and the in-track burn is the smallest finite
	// candidate: deltaR / (2 tau) = 1/(2*600).
	res := opt.PlanAvoidance(orbit.Vec3{}, orbit.Vec3{}, orbit.Vec3{X: 1}, orbit.Vec3{}, 10.0, 0.0)
	require.True(t, res.Success)

	assert.InDelta(t, 1.0/1200.0, res.TotalDeltaVKmS, 1e-12)
	assert.InDelta(t, 8.33e-4, res.TotalDeltaVKmS, 1e-5)
	assert.NotZero(t, res.DeltaV.Y, "burn must be in-track")
	assert.Zero(t, res.DeltaV.X)
	assert.Zero(t, res.DeltaV.Z)
	require.Len(t, res.Alternatives, 1)
	assert.NotZero(t, res.Alternatives[0].DeltaV.Z)
}

func TestPlanAvoidance_InsufficientFuel(t *testing.T) {
	t.Parallel()

	opt := NewOptimizer()
	opt.SetSafeDistance(500.0)
	opt.SetSpacecraft(SpacecraftParams{DryMassKg: 1000, IspS: 300, FuelMassKg: 1e-9})

	pos, vel := leoState()
	res := opt.PlanAvoidance(pos, vel, orbit.Vec3{X: pos.X + 0.1}, vel, 0.01, 0.0)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "fuel")
}

func TestFuelRequired_Tsiolkovsky(t *testing.T) {
	t.Parallel()

	p := SpacecraftParams{DryMassKg: 1000, IspS: 300, FuelMassKg: 50}

	// 0.1 km/s with Isp 300 s: m = 1000 * (1 - exp(-100/2941.995)).
	want := 1000.0 * (1.0 - math.Exp(-100.0/(300.0*9.80665)))
	assert.InDelta(t, want, p.FuelRequired(0.1), 1e-9)

	assert.True(t, p.CanExecute(0.001))
	assert.False(t, p.CanExecute(1.0))
}

func TestRICBasis_Orthonormal(t *testing.T) {
	t.Parallel()

	pos, vel := leoState()
	b := NewRICBasis(pos, vel)

	assert.InDelta(t, 1.0, b.R.Norm(), 1e-12)
	assert.InDelta(t, 1.0, b.I.Norm(), 1e-12)
	assert.InDelta(t, 1.0, b.C.Norm(), 1e-12)
	assert.InDelta(t, 0.0, b.R.Dot(b.I), 1e-12)
	assert.InDelta(t, 0.0, b.R.Dot(b.C), 1e-12)
	assert.InDelta(t, 0.0, b.I.Dot(b.C), 1e-12)

	// Round trip through the basis.
	v := orbit.Vec3{X: 1.5, Y: -2.0, Z: 0.25}
	back := b.FromRIC(b.ToRIC(v))
	assert.InDelta(t, v.X, back.X, 1e-12)
	assert.InDelta(t, v.Y, back.Y, 1e-12)
	assert.InDelta(t, v.Z, back.Z, 1e-12)
}

func TestPredictRelativePosition_CrossTrackOscillates(t *testing.T) {
	t.Parallel()

	pos, vel := leoState()
	n := MeanMotion(SemiMajorAxis(pos, vel))

	initial := RICState{Velocity: orbit.Vec3{Z: 0.001}}

	// A cross-track impulse produces z = (vz0/n) sin(nt): zero at half
	// period multiples, extremal at quarter period.
	period := 2.0 * math.Pi / n
	quarter := PredictRelativePosition(initial, n, period/4.0)
	half := PredictRelativePosition(initial, n, period/2.0)

	assert.InDelta(t, 0.001/n, quarter.Z, 1e-9)
	assert.InDelta(t, 0.0, half.Z, 1e-9)
}

func TestHohmannTransfer_LEOToGEO(t *testing.T) {
	t.Parallel()

	spacecraft := SpacecraftParams{DryMassKg: 1000, IspS: 300, FuelMassKg: 1e9}
	res := HohmannTransfer(6678.0, 42164.0, spacecraft)

	require.True(t, res.Success)
	// The canonical LEO->GEO transfer costs about 3.9 km/s.
	assert.InDelta(t, 3.9, res.TotalDeltaVKmS, 0.1)
	require.Len(t, res.Alternatives, 2)

	// Transfer time is half the transfer period, a bit over five hours.
	assert.InDelta(t, 316.0, res.BurnTimeMinutes, 10.0)
}

func TestHohmannTransfer_LoweringOrbit(t *testing.T) {
	t.Parallel()

	spacecraft := SpacecraftParams{DryMassKg: 1000, IspS: 300, FuelMassKg: 1e9}
	up := HohmannTransfer(6678.0, 7078.0, spacecraft)
	down := HohmannTransfer(7078.0, 6678.0, spacecraft)

	require.True(t, up.Success)
	require.True(t, down.Success)
	assert.InDelta(t, up.TotalDeltaVKmS, down.TotalDeltaVKmS, 1e-9)
}

func TestPlaneChange(t *testing.T) {
	t.Parallel()

	spacecraft := SpacecraftParams{DryMassKg: 1000, IspS: 300, FuelMassKg: 1e9}

	// dv = 2 v sin(di/2); 60 degrees at speed v costs exactly v.
	res := PlaneChange(7.7, math.Pi/3.0, spacecraft)
	require.True(t, res.Success)
	assert.InDelta(t, 7.7, res.TotalDeltaVKmS, 1e-9)

	small := PlaneChange(7.7, 0.01, spacecraft)
	assert.InDelta(t, 7.7*0.01, small.TotalDeltaVKmS, 1e-4)
}

func TestPhasing(t *testing.T) {
	t.Parallel()

	spacecraft := SpacecraftParams{DryMassKg: 1000, IspS: 300, FuelMassKg: 1e9}
	res := Phasing(400.0, 0.1, spacecraft)

	require.True(t, res.Success)
	assert.Greater(t, res.TotalDeltaVKmS, 0.0)
	assert.Less(t, res.TotalDeltaVKmS, 1.0)
	assert.Greater(t, res.BurnTimeMinutes, 0.0)
}
