package probability

import "math"

// Base 1-sigma uncertainties in km for a well-tracked object, one per
// Cartesian axis (x, y, z) of the position they perturb. Debris carries 3x.
var baseCovariance = Covariance{SigmaX: 0.05, SigmaY: 0.5, SigmaZ: 0.1}

// EstimateCovariance maps element age to a plausible diagonal covariance.
// Growth is piecewise: linear inside a day, shallower linear inside a week,
// then quadratic with per-component caps reflecting drag uncertainty.
func EstimateCovariance(hoursSinceEpoch float64, isDebris bool) Covariance {
	cov := baseCovariance
	if isDebris {
		cov.SigmaX *= 3.0
		cov.SigmaY *= 3.0
		cov.SigmaZ *= 3.0
	}
	if hoursSinceEpoch < 0 {
		hoursSinceEpoch = 0
	}

	switch {
	case hoursSinceEpoch <= 24.0:
		scale := 1.0 + 0.05*hoursSinceEpoch
		cov.SigmaX *= scale
		cov.SigmaY *= scale
		cov.SigmaZ *= scale
	case hoursSinceEpoch <= 168.0:
		days := hoursSinceEpoch / 24.0
		scale := 1.5 + 0.5*days
		cov.SigmaX *= scale
		cov.SigmaY *= scale
		cov.SigmaZ *= scale
	default:
		days := hoursSinceEpoch / 24.0
		scale := 3.0 + 0.2*days*days/7.0
		cov.SigmaX *= math.Min(scale, 50.0)
		cov.SigmaY *= math.Min(scale, 100.0)
		cov.SigmaZ *= math.Min(scale, 50.0)
	}

	return cov
}
