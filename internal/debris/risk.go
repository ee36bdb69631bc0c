package debris

import (
	"math"
	"sort"
)

// Risk ranks the debris environment around a satellite.
type Risk string

const (
	RiskCritical   Risk = "critical"   // debris inside 1 km
	RiskHigh       Risk = "high"       // debris inside 10 km
	RiskMedium     Risk = "medium"     // crowded shell, > 10 objects nearby
	RiskLow        Risk = "low"        // some debris within the search radius
	RiskNegligible Risk = "negligible" // nothing nearby
)

// nearbyRadiusKm bounds the neighborhood considered by AssessRisk.
const nearbyRadiusKm = 100.0

// maxClosestTracked caps the per-assessment list of nearest debris.
const maxClosestTracked = 10

// ShellDensity describes the debris population of one altitude shell.
type ShellDensity struct {
	MinAltitudeKm  float64
	MaxAltitudeKm  float64
	Count          int
	SpatialDensity float64 // objects per km^3
	Flux           float64 // objects crossing per m^2 per year
}

// ShellDensities bins the debris population into LEO altitude shells of the
// given thickness (200-2000 km) and estimates spatial density and flux.
// Flux uses the rough F = n * v_avg estimate with v_avg = 7.5 km/s.
func (m *Model) ShellDensities(thicknessKm float64) []ShellDensity {
	if thicknessKm <= 0 {
		thicknessKm = 50.0
	}

	var shells []ShellDensity
	for alt := 200.0; alt < 2000.0; alt += thicknessKm {
		shell := ShellDensity{
			MinAltitudeKm: alt,
			MaxAltitudeKm: alt + thicknessKm,
		}
		for _, obj := range m.Objects {
			if obj.AltitudeKm >= shell.MinAltitudeKm && obj.AltitudeKm < shell.MaxAltitudeKm {
				shell.Count++
			}
		}

		rInner := 6371.0 + shell.MinAltitudeKm
		rOuter := 6371.0 + shell.MaxAltitudeKm
		volume := (4.0 / 3.0) * math.Pi * (rOuter*rOuter*rOuter - rInner*rInner*rInner)

		shell.SpatialDensity = float64(shell.Count) / volume
		shell.Flux = shell.SpatialDensity * 7.5 * 1e-6 * 3.15e7

		shells = append(shells, shell)
	}
	return shells
}

// DebrisDistance pairs a debris catalog number with its separation from the
// assessed satellite.
type DebrisDistance struct {
	CatalogNumber int
	DistanceKm    float64
}

// RiskAssessment summarises the debris threat to one satellite.
type RiskAssessment struct {
	CatalogNumber int
	NearbyCount   int
	Closest       []DebrisDistance // nearest first, at most ten
	EstimatedFlux float64          // objects per m^2 per year at this altitude
	Overall       Risk
}

// AssessRisk rates the debris environment around a satellite from the
// count and proximity of debris within 100 km plus the flux of its
// altitude shell. The position accessor maps store indices to current
// Cartesian positions; debris without a propagated position is skipped.
func (m *Model) AssessRisk(catalogNumber int, satPos [3]float64, altitudeKm float64, position func(storeIndex int) (x, y, z float64)) RiskAssessment {
	assessment := RiskAssessment{CatalogNumber: catalogNumber}

	var distances []DebrisDistance
	for _, obj := range m.Objects {
		if obj.CatalogNumber == catalogNumber {
			continue
		}
		x, y, z := position(obj.StoreIndex)
		if math.Sqrt(x*x+y*y+z*z) < 0.1 {
			continue // position not set
		}

		dx, dy, dz := x-satPos[0], y-satPos[1], z-satPos[2]
		dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
		if dist < nearbyRadiusKm {
			assessment.NearbyCount++
			distances = append(distances, DebrisDistance{CatalogNumber: obj.CatalogNumber, DistanceKm: dist})
		}
	}

	sort.Slice(distances, func(i, j int) bool { return distances[i].DistanceKm < distances[j].DistanceKm })
	if len(distances) > maxClosestTracked {
		distances = distances[:maxClosestTracked]
	}
	assessment.Closest = distances

	for _, shell := range m.ShellDensities(50.0) {
		if altitudeKm >= shell.MinAltitudeKm && altitudeKm < shell.MaxAltitudeKm {
			assessment.EstimatedFlux = shell.Flux
			break
		}
	}

	switch {
	case len(distances) > 0 && distances[0].DistanceKm < 1.0:
		assessment.Overall = RiskCritical
	case len(distances) > 0 && distances[0].DistanceKm < 10.0:
		assessment.Overall = RiskHigh
	case assessment.NearbyCount > 10:
		assessment.Overall = RiskMedium
	case assessment.NearbyCount > 0:
		assessment.Overall = RiskLow
	default:
		assessment.Overall = RiskNegligible
	}

	return assessment
}
