package maneuver

import (
	"math"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

// HohmannTransfer computes the two-impulse transfer between circular orbits
// of radius r1 and r2 km. The burn-time offset of the result is half the
// transfer period, when the arrival burn fires.
func HohmannTransfer(r1Km, r2Km float64, spacecraft SpacecraftParams) Result {
	var result Result

	aTransfer := (r1Km + r2Km) / 2.0

	v1Circular := math.Sqrt(orbit.MU / r1Km)
	v2Circular := math.Sqrt(orbit.MU / r2Km)

	vTransferPerigee := math.Sqrt(2.0 * orbit.MU * (1.0/r1Km - 1.0/(2.0*aTransfer)))
	vTransferApogee := math.Sqrt(2.0 * orbit.MU * (1.0/r2Km - 1.0/(2.0*aTransfer)))

	var dv1, dv2 float64
	if r2Km > r1Km {
		// Raising orbit.
		dv1 = vTransferPerigee - v1Circular
		dv2 = v2Circular - vTransferApogee
	} else {
		// Lowering orbit.
		dv1 = v1Circular - vTransferPerigee
		dv2 = vTransferApogee - v2Circular
	}

	result.DeltaV = orbit.Vec3{Y: dv1} // departure burn along velocity
	result.TotalDeltaVKmS = math.Abs(dv1) + math.Abs(dv2)
	result.BurnTimeMinutes = OrbitalPeriod(aTransfer) / 2.0 / 60.0
	result.FuelCostKg = spacecraft.FuelRequired(result.TotalDeltaVKmS)

	if spacecraft.CanExecute(result.TotalDeltaVKmS) {
		result.Success = true
		result.Message = "Hohmann transfer feasible"
	} else {
		result.Message = "insufficient fuel for Hohmann transfer"
	}

	result.Alternatives = []Alternative{
		{
			DeltaV:      orbit.Vec3{Y: dv1},
			FuelCostKg:  spacecraft.FuelRequired(math.Abs(dv1)),
			Description: "first burn (departure)",
		},
		{
			DeltaV:          orbit.Vec3{Y: dv2},
			BurnTimeMinutes: result.BurnTimeMinutes,
			FuelCostKg:      spacecraft.FuelRequired(math.Abs(dv2)),
			Description:     "second burn (arrival)",
		},
	}

	return result
}

// PlaneChange computes the single-impulse inclination change at the given
// speed: |dv| = 2 v sin(di/2), burned at a node crossing.
func PlaneChange(velocityKmS, inclinationChangeRad float64, spacecraft SpacecraftParams) Result {
	var result Result

	dv := 2.0 * velocityKmS * math.Sin(inclinationChangeRad/2.0)

	result.DeltaV = orbit.Vec3{Z: dv}
	result.TotalDeltaVKmS = math.Abs(dv)
	result.BurnTimeMinutes = 0 // at node crossing
	result.FuelCostKg = spacecraft.FuelRequired(result.TotalDeltaVKmS)

	if spacecraft.CanExecute(result.TotalDeltaVKmS) {
		result.Success = true
		result.Message = "plane change feasible"
	} else {
		result.Message = "insufficient fuel for plane change"
	}

	return result
}

// Phasing computes the two-impulse phasing maneuver that shifts the
// along-track position by the given angle over one phasing orbit at the
// current altitude.
func Phasing(currentAltitudeKm, phaseAngleRad float64, spacecraft SpacecraftParams) Result {
	var result Result

	r := earthRadiusKm + currentAltitudeKm
	period := OrbitalPeriod(r)

	targetPeriod := period * (1.0 - phaseAngleRad/(2.0*math.Pi))
	aPhase := math.Cbrt(targetPeriod / (2.0 * math.Pi) * (targetPeriod / (2.0 * math.Pi)) * orbit.MU)

	vCircular := math.Sqrt(orbit.MU / r)
	vPhase := math.Sqrt(2.0 * orbit.MU * (1.0/r - 1.0/(2.0*aPhase)))

	dv := 2.0 * math.Abs(vPhase-vCircular) // enter and exit burns

	result.DeltaV = orbit.Vec3{Y: dv / 2.0}
	result.TotalDeltaVKmS = dv
	result.BurnTimeMinutes = targetPeriod / 60.0
	result.FuelCostKg = spacecraft.FuelRequired(dv)

	if spacecraft.CanExecute(dv) {
		result.Success = true
		result.Message = "phasing maneuver feasible"
	} else {
		result.Message = "insufficient fuel for phasing"
	}

	return result
}
