// Package maneuver plans minimum-impulse collision-avoidance burns and
// related transfer utilities in the orbit-local RIC frame.
package maneuver

import (
	"fmt"
	"math"
	"sort"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

// g0 is standard gravity in m/s^2, used by the Tsiolkovsky fuel estimate.
const g0 = 9.80665

// earthRadiusKm is the mean radius used for altitude-based phasing.
const earthRadiusKm = 6371.0

// SpacecraftParams configures the fuel-feasibility model.
type SpacecraftParams struct {
	DryMassKg  float64
	IspS       float64
	MaxThrustN float64
	FuelMassKg float64
}

// DefaultSpacecraft is a small-bus default used when nothing is configured.
var DefaultSpacecraft = SpacecraftParams{
	DryMassKg:  1000.0,
	IspS:       300.0,
	MaxThrustN: 100.0,
	FuelMassKg: 50.0,
}

// FuelRequired returns the propellant mass in kg for a burn of the given
// magnitude (km/s) via the Tsiolkovsky equation.
func (p SpacecraftParams) FuelRequired(deltaVKmS float64) float64 {
	deltaVms := deltaVKmS * 1000.0
	massRatio := math.Exp(deltaVms / (p.IspS * g0))
	return p.DryMassKg * (1.0 - 1.0/massRatio)
}

// CanExecute reports whether the burn fits the available fuel.
func (p SpacecraftParams) CanExecute(deltaVKmS float64) bool {
	return p.FuelRequired(deltaVKmS) <= p.FuelMassKg
}

// Alternative is a non-primary candidate burn.
type Alternative struct {
	DeltaV          orbit.Vec3
	BurnTimeMinutes float64
	NewMissKm       float64
	FuelCostKg      float64
	Description     string
}

// Result is the outcome of a maneuver calculation. DeltaV components are
// expressed in the protected object's RIC basis (radial, in-track,
// cross-track).
type Result struct {
	Success bool
	Message string

	DeltaV          orbit.Vec3
	BurnTimeMinutes float64
	TotalDeltaVKmS  float64

	NewMissKm  float64
	FuelCostKg float64

	Alternatives []Alternative
}

// Optimizer plans avoidance burns. It is stateless across calls; spacecraft
// parameters and the safe miss distance are configured through setters.
type Optimizer struct {
	spacecraft   SpacecraftParams
	safeDistance float64
}

// NewOptimizer creates an Optimizer with default spacecraft parameters and
// a 1 km safe distance.
func NewOptimizer() *Optimizer {
	return &Optimizer{
		spacecraft:   DefaultSpacecraft,
		safeDistance: 1.0,
	}
}

// SetSpacecraft replaces the spacecraft parameters.
func (o *Optimizer) SetSpacecraft(p SpacecraftParams) { o.spacecraft = p }

// Spacecraft returns the configured spacecraft parameters.
func (o *Optimizer) Spacecraft() SpacecraftParams { return o.spacecraft }

// SetSafeDistance sets the required post-maneuver miss distance in km.
func (o *Optimizer) SetSafeDistance(km float64) { o.safeDistance = km }

// SafeDistance returns the configured safe miss distance in km.
func (o *Optimizer) SafeDistance() float64 { return o.safeDistance }

// OrbitalPeriod returns the period in seconds of an orbit with the given
// semi-major axis in km.
func OrbitalPeriod(semiMajorAxisKm float64) float64 {
	return 2.0 * math.Pi * math.Sqrt(semiMajorAxisKm*semiMajorAxisKm*semiMajorAxisKm/orbit.MU)
}

// SemiMajorAxis derives a from the vis-viva energy of a state.
func SemiMajorAxis(pos, vel orbit.Vec3) float64 {
	r := pos.Norm()
	v := vel.Norm()
	energy := v*v/2.0 - orbit.MU/r
	return -orbit.MU / (2.0 * energy)
}

// MeanMotion returns sqrt(mu/a^3) in rad/s.
func MeanMotion(semiMajorAxisKm float64) float64 {
	return math.Sqrt(orbit.MU / (semiMajorAxisKm * semiMajorAxisKm * semiMajorAxisKm))
}

// RICBasis holds the orbit-local unit vectors of a state: radial, in-track,
// cross-track.
type RICBasis struct {
	R, I, C orbit.Vec3
}

// NewRICBasis constructs the RIC basis from a position/velocity pair:
// R along position, C along the angular momentum, I completing the
// right-handed triad.
func NewRICBasis(pos, vel orbit.Vec3) RICBasis {
	r := pos.Scale(1.0 / pos.Norm())
	h := pos.Cross(vel)
	c := h.Scale(1.0 / h.Norm())
	i := c.Cross(r)
	return RICBasis{R: r, I: i, C: c}
}

// ToRIC expresses an inertial vector in the basis.
func (b RICBasis) ToRIC(v orbit.Vec3) orbit.Vec3 {
	return orbit.Vec3{X: v.Dot(b.R), Y: v.Dot(b.I), Z: v.Dot(b.C)}
}

// FromRIC maps a RIC vector back to the inertial frame.
func (b RICBasis) FromRIC(v orbit.Vec3) orbit.Vec3 {
	return orbit.Vec3{
		X: v.X*b.R.X + v.Y*b.I.X + v.Z*b.C.X,
		Y: v.X*b.R.Y + v.Y*b.I.Y + v.Z*b.C.Y,
		Z: v.X*b.R.Z + v.Y*b.I.Z + v.Z*b.C.Z,
	}
}

// RICState is a relative position/velocity pair expressed in a RIC basis.
type RICState struct {
	Position orbit.Vec3
	Velocity orbit.Vec3
}

// RelativeRIC expresses the threat's state relative to the protected object
// in the protected object's RIC basis.
func RelativeRIC(satPos, satVel, threatPos, threatVel orbit.Vec3) RICState {
	b := NewRICBasis(satPos, satVel)
	return RICState{
		Position: b.ToRIC(threatPos.Sub(satPos)),
		Velocity: b.ToRIC(threatVel.Sub(satVel)),
	}
}

// PredictRelativePosition advances a RIC relative state by dt seconds using
// the Clohessy-Wiltshire linearization about a circular reference orbit
// with mean motion n (rad/s).
func PredictRelativePosition(initial RICState, n, dtSeconds float64) orbit.Vec3 {
	c := math.Cos(n * dtSeconds)
	s := math.Sin(n * dtSeconds)
	t := dtSeconds

	x0, y0, z0 := initial.Position.X, initial.Position.Y, initial.Position.Z
	vx0, vy0, vz0 := initial.Velocity.X, initial.Velocity.Y, initial.Velocity.Z

	return orbit.Vec3{
		X: (4.0-3.0*c)*x0 + (s/n)*vx0 + (2.0/n)*(1.0-c)*vy0,
		Y: 6.0*(s-n*t)*x0 + y0 - (2.0/n)*(1.0-c)*vx0 + (4.0*s/n-3.0*t)*vy0,
		Z: z0*c + (vz0/n)*s,
	}
}

type candidate struct {
	dv        orbit.Vec3
	magnitude float64
	desc      string
}

// PlanAvoidance proposes the smallest impulsive burn that raises the miss
// distance to the configured safe distance at the time-to-closest-approach.
// The three candidate directions use linearized Clohessy-Wiltshire
// responses; the radial response scales with the protected object's mean
// motion, so a degenerate state (no finite mean motion) drops that
// candidate rather than poisoning the result.
func (o *Optimizer) PlanAvoidance(
	satPos, satVel, threatPos, threatVel orbit.Vec3,
	timeToTCAMinutes, currentMissKm float64,
) Result {
	var result Result

	dtSeconds := timeToTCAMinutes * 60.0

	requiredSeparation := o.safeDistance - currentMissKm
	if requiredSeparation <= 0 {
		result.Success = true
		result.Message = "current miss distance already safe"
		result.NewMissKm = currentMissKm
		return result
	}
	if dtSeconds <= 0 {
		result.Message = "time to closest approach already passed"
		return result
	}

	a := SemiMajorAxis(satPos, satVel)
	n := MeanMotion(a)

	dvRadial := requiredSeparation * n / (3.0 * dtSeconds)
	dvInTrack := requiredSeparation / (2.0 * dtSeconds)
	dvCrossTrack := requiredSeparation / dtSeconds

	all := []candidate{
		{orbit.Vec3{X: dvRadial}, math.Abs(dvRadial), "radial burn"},
		{orbit.Vec3{Y: dvInTrack}, math.Abs(dvInTrack), "in-track burn"},
		{orbit.Vec3{Z: dvCrossTrack}, math.Abs(dvCrossTrack), "cross-track burn"},
	}
	options := all[:0]
	for _, c := range all {
		if !math.IsNaN(c.magnitude) && !math.IsInf(c.magnitude, 0) {
			options = append(options, c)
		}
	}
	if len(options) == 0 {
		result.Message = "no finite candidate burn for the given state"
		return result
	}

	sort.Slice(options, func(i, j int) bool { return options[i].magnitude < options[j].magnitude })

	primary := -1
	for i, c := range options {
		if o.spacecraft.CanExecute(c.magnitude) {
			primary = i
			break
		}
	}
	if primary < 0 {
		result.Message = "insufficient fuel for any candidate burn"
		return result
	}

	chosen := options[primary]
	result.Success = true
	result.Message = fmt.Sprintf("%s - minimum delta-v solution", chosen.desc)
	result.DeltaV = chosen.dv
	result.TotalDeltaVKmS = chosen.magnitude
	result.BurnTimeMinutes = 0 // immediate
	result.NewMissKm = o.safeDistance
	result.FuelCostKg = o.spacecraft.FuelRequired(chosen.magnitude)

	for i, c := range options {
		if i == primary {
			continue
		}
		result.Alternatives = append(result.Alternatives, Alternative{
			DeltaV:      c.dv,
			NewMissKm:   o.safeDistance,
			FuelCostKg:  o.spacecraft.FuelRequired(c.magnitude),
			Description: c.desc,
		})
	}

	return result
}
