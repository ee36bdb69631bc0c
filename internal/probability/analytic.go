package probability

import (
	"math"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

// Foster estimates Pc with a 3D Gaussian approximation: the six per-axis
// variances are combined root-sum-square over axes (divided by sqrt(3)) into
// a single spherical sigma.
func Foster(pos1, pos2 orbit.Vec3, cov1, cov2 Covariance, collisionRadiusKm float64) float64 {
	r := pos1.Sub(pos2).Norm()

	sigma := math.Sqrt(
		cov1.SigmaX*cov1.SigmaX+cov2.SigmaX*cov2.SigmaX+
			cov1.SigmaY*cov1.SigmaY+cov2.SigmaY*cov2.SigmaY+
			cov1.SigmaZ*cov1.SigmaZ+cov2.SigmaZ*cov2.SigmaZ) / math.Sqrt(3.0)

	crossSection := math.Pi * collisionRadiusKm * collisionRadiusKm
	normalization := 2.0 * math.Pi * sigma * sigma
	exponent := -(r * r) / (2.0 * sigma * sigma)

	return (crossSection / normalization) * math.Exp(exponent)
}

// Chan estimates Pc on the 2D encounter plane. This is an analytic
// approximation to the published Chan expansion, not the full series; it is
// kept for parity with the Monte-Carlo path at operational thresholds.
func Chan(missDistanceKm, sigmaTotalKm, collisionRadiusKm float64) float64 {
	if missDistanceKm < 1e-10 {
		// Nominal contact: probability mass of the hard-body disc.
		return 1.0 - math.Exp(-collisionRadiusKm*collisionRadiusKm/(2.0*sigmaTotalKm*sigmaTotalKm))
	}

	u := missDistanceKm / sigmaTotalKm
	v := collisionRadiusKm / sigmaTotalKm

	pc := v * v * math.Exp(-u*u/2.0)
	return math.Min(1.0, math.Max(0.0, pc))
}
