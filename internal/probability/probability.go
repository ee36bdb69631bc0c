// Package probability refines screened conjunctions with Monte-Carlo and
// analytic collision-probability estimates.
package probability

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/orbitops-data/orbitops/internal/conjunction"
	"github.com/orbitops-data/orbitops/internal/orbit"
)

// Defaults for the Monte-Carlo estimator.
const (
	DefaultSampleCount     = 10000
	DefaultCollisionRadius = 0.01 // 10 m combined hard-body radius, km
	DefaultSeed            = 42
)

// Covariance is a diagonal position covariance expressed as 1-sigma
// standard deviations in km, one per Cartesian axis (x, y, z) of the
// position it perturbs.
type Covariance struct {
	SigmaX float64
	SigmaY float64
	SigmaZ float64
}

// Result extends a conjunction with its probabilistic refinement.
type Result struct {
	ID1, ID2     int
	Name1, Name2 string

	MissDistanceKm   float64 // nominal
	RelativeSpeedKmS float64 // nominal
	TCAMinutes       float64
	CombinedRadiusKm float64
	Probability      float64 // Pc in [0,1]

	// Monte Carlo sampling summary.
	Samples      int
	Hits         int
	MinMissKm    float64
	MaxMissKm    float64
	MeanMissKm   float64
	StdDevMissKm float64
}

// Calculator runs Monte-Carlo probability estimates. Each Calculate call
// draws from a source freshly seeded with the configured seed, so results
// are reproducible and monotone in the collision radius.
type Calculator struct {
	sampleCount     int
	collisionRadius float64
	seed            uint64
}

// NewCalculator creates a Calculator with the given RNG seed.
func NewCalculator(seed uint64) *Calculator {
	return &Calculator{
		sampleCount:     DefaultSampleCount,
		collisionRadius: DefaultCollisionRadius,
		seed:            seed,
	}
}

// SetSampleCount sets the number of Monte Carlo samples per conjunction.
func (c *Calculator) SetSampleCount(n int) {
	if n > 0 {
		c.sampleCount = n
	}
}

// SetCollisionRadius sets the combined hard-body radius in km.
func (c *Calculator) SetCollisionRadius(radiusKm float64) {
	if radiusKm > 0 {
		c.collisionRadius = radiusKm
	}
}

// RelativeSpeed returns |v1 - v2| in km/s.
func RelativeSpeed(v1, v2 orbit.Vec3) float64 {
	return v1.Sub(v2).Norm()
}

// Calculate estimates the collision probability for one conjunction by
// Monte Carlo: both positions are perturbed per-axis with independent
// zero-mean Gaussians and a hit is counted when the sampled separation
// falls inside the combined hard-body radius.
func (c *Calculator) Calculate(
	pos1, vel1 orbit.Vec3, cov1 Covariance,
	pos2, vel2 orbit.Vec3, cov2 Covariance,
	id1, id2 int, name1, name2 string, tMinutes float64,
) Result {
	res := Result{
		ID1: id1, ID2: id2,
		Name1: name1, Name2: name2,
		TCAMinutes:       tMinutes,
		CombinedRadiusKm: c.collisionRadius,
		Samples:          c.sampleCount,
		MissDistanceKm:   pos1.Sub(pos2).Norm(),
		RelativeSpeedKmS: RelativeSpeed(vel1, vel2),
	}

	normal := newUnitNormal(c.seed)

	hits := 0
	minDist := math.MaxFloat64
	maxDist := 0.0
	dists := make([]float64, c.sampleCount)

	for k := 0; k < c.sampleCount; k++ {
		p1 := samplePosition(pos1, cov1, normal)
		p2 := samplePosition(pos2, cov2, normal)

		dist := p1.Sub(p2).Norm()
		if dist < c.collisionRadius {
			hits++
		}
		if dist < minDist {
			minDist = dist
		}
		if dist > maxDist {
			maxDist = dist
		}
		dists[k] = dist
	}

	res.Hits = hits
	res.Probability = float64(hits) / float64(c.sampleCount)
	res.MinMissKm = minDist
	res.MaxMissKm = maxDist
	res.MeanMissKm = stat.Mean(dists, nil)
	res.StdDevMissKm = stat.StdDev(dists, nil)
	return res
}

// CalculateQuick runs Calculate with covariances estimated from element age.
func (c *Calculator) CalculateQuick(
	pos1, vel1, pos2, vel2 orbit.Vec3,
	id1, id2 int,
	hoursSinceEpoch1, hoursSinceEpoch2 float64,
) Result {
	cov1 := EstimateCovariance(hoursSinceEpoch1, false)
	cov2 := EstimateCovariance(hoursSinceEpoch2, false)
	return c.Calculate(pos1, vel1, cov1, pos2, vel2, cov2, id1, id2, "", "", 0)
}

// CalculateAll refines every screened conjunction against the store's
// current state. ageHours maps store index to element age; nil means fresh.
func (c *Calculator) CalculateAll(sys *orbit.System, conjs []conjunction.Conjunction, ageHours func(i int) float64, isDebris func(i int) bool) []Result {
	results := make([]Result, 0, len(conjs))
	for _, cj := range conjs {
		if cj.I < 0 || cj.J >= sys.Len() {
			continue
		}

		age := func(i int) float64 {
			if ageHours == nil {
				return 0
			}
			return ageHours(i)
		}
		debris := func(i int) bool { return isDebris != nil && isDebris(i) }

		res := c.Calculate(
			sys.Position(cj.I), sys.Velocity(cj.I), EstimateCovariance(age(cj.I), debris(cj.I)),
			sys.Position(cj.J), sys.Velocity(cj.J), EstimateCovariance(age(cj.J), debris(cj.J)),
			cj.ID1, cj.ID2, sys.Names[cj.I], sys.Names[cj.J], cj.TimeMinutes,
		)
		results = append(results, res)
	}
	return results
}

// unitNormal draws standard normal variates from a deterministic PCG stream.
type unitNormal struct {
	dist distuv.Normal
}

func newUnitNormal(seed uint64) *unitNormal {
	return &unitNormal{dist: distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewPCG(seed, seed)}}
}

func (u *unitNormal) draw() float64 { return u.dist.Rand() }

func samplePosition(nominal orbit.Vec3, cov Covariance, normal *unitNormal) orbit.Vec3 {
	return orbit.Vec3{
		X: nominal.X + normal.draw()*cov.SigmaX,
		Y: nominal.Y + normal.draw()*cov.SigmaY,
		Z: nominal.Z + normal.draw()*cov.SigmaZ,
	}
}
