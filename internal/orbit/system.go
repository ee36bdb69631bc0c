// Package orbit holds the satellite state store and the mean-element
// propagator that advances it.
package orbit

import (
	"fmt"
	"math"

	"github.com/orbitops-data/orbitops/internal/tle"
)

// Physical constants (WGS84 / EGM96).
const (
	MU = 398600.4418   // km^3/s^2, Earth gravitational parameter
	RE = 6378.137      // km, Earth equatorial radius
	J2 = 1.08262668e-3 // dominant zonal harmonic
)

// MaxEccentricity is the upper bound accepted at load; larger eccentricities
// are clamped to it.
const MaxEccentricity = 0.999

// columnPad rounds column capacity up to a multiple of 8 float64 (64 bytes)
// so a vectorized tail loop never touches a partial word.
const columnPad = 8

// System is the structure-of-arrays state store: 14 float64 columns plus
// side-car identity arrays, all exactly N long. It is exclusively owned;
// build a new one to change the population.
type System struct {
	count int

	// Hot data, written every propagation pass.
	X, Y, Z    []float64 // km, ECI
	VX, VY, VZ []float64 // km/s, ECI

	// Propagation elements, fixed at load.
	Incl  []float64 // radians
	RAAN0 []float64 // radians
	Ecc   []float64
	ArgP0 []float64 // radians
	M0    []float64 // radians
	N0    []float64 // rad/min
	A0    []float64 // km, derived from N0
	Bstar []float64

	// Cold identity data.
	CatalogNumbers []int
	Names          []string
}

func newColumn(n int) []float64 {
	padded := (n + columnPad - 1) / columnPad * columnPad
	col := make([]float64, padded)
	return col[:n:padded]
}

// NewSystem builds the state store from parsed element records. Semi-major
// axis is derived from mean motion via Kepler's third law with mean motion
// in rad/min; it is never taken from the input. Position and velocity
// columns are meaningless until the first PropagateAll call.
func NewSystem(records []tle.TLE) (*System, error) {
	n := len(records)
	sys := &System{
		count:          n,
		X:              newColumn(n),
		Y:              newColumn(n),
		Z:              newColumn(n),
		VX:             newColumn(n),
		VY:             newColumn(n),
		VZ:             newColumn(n),
		Incl:           newColumn(n),
		RAAN0:          newColumn(n),
		Ecc:            newColumn(n),
		ArgP0:          newColumn(n),
		M0:             newColumn(n),
		N0:             newColumn(n),
		A0:             newColumn(n),
		Bstar:          newColumn(n),
		CatalogNumbers: make([]int, n),
		Names:          make([]string, n),
	}

	for i, rec := range records {
		if rec.MeanMotion <= 0 {
			return nil, fmt.Errorf("element %d (catalog %d): mean motion must be positive, got %g",
				i, rec.CatalogNumber, rec.MeanMotion)
		}
		ecc := rec.Eccentricity
		if ecc < 0 {
			return nil, fmt.Errorf("element %d (catalog %d): negative eccentricity %g",
				i, rec.CatalogNumber, ecc)
		}
		if ecc > MaxEccentricity {
			ecc = MaxEccentricity
		}

		sys.Incl[i] = rec.Inclination
		sys.RAAN0[i] = rec.RAAN
		sys.Ecc[i] = ecc
		sys.ArgP0[i] = rec.ArgPerigee
		sys.M0[i] = rec.MeanAnomaly
		sys.N0[i] = rec.MeanMotion
		sys.Bstar[i] = rec.Bstar

		// a = (mu * 3600 / n^2)^(1/3), n in rad/min.
		sys.A0[i] = math.Cbrt(MU * 3600.0 / (rec.MeanMotion * rec.MeanMotion))

		sys.CatalogNumbers[i] = rec.CatalogNumber
		sys.Names[i] = rec.Name
	}

	return sys, nil
}

// Len returns the fixed population size N.
func (s *System) Len() int { return s.count }

// View returns a read-only bundle of the position columns and identity
// side-cars for consumers that must not mutate the store.
func (s *System) View() View {
	return NewView(s.X, s.Y, s.Z, s.VX, s.VY, s.VZ, s.CatalogNumbers, s.Names)
}

// View bundles the Cartesian state columns with the common length. All
// columns are checked equal-length at construction; consumers index freely
// within [0, N).
type View struct {
	N          int
	X, Y, Z    []float64
	VX, VY, VZ []float64
	Catalog    []int
	Names      []string
}

// NewView validates column lengths and bundles them. Inconsistent lengths
// are a structural failure and panic.
func NewView(x, y, z, vx, vy, vz []float64, catalog []int, names []string) View {
	n := len(x)
	if len(y) != n || len(z) != n || len(vx) != n || len(vy) != n || len(vz) != n ||
		len(catalog) != n || len(names) != n {
		panic(fmt.Sprintf("orbit: inconsistent column lengths (x=%d y=%d z=%d vx=%d vy=%d vz=%d catalog=%d names=%d)",
			len(x), len(y), len(z), len(vx), len(vy), len(vz), len(catalog), len(names)))
	}
	return View{N: n, X: x, Y: y, Z: z, VX: vx, VY: vy, VZ: vz, Catalog: catalog, Names: names}
}

// Vec3 is a Cartesian triple in km or km/s.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// Norm returns |v|.
func (v Vec3) Norm() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Position returns the current position of object i.
func (s *System) Position(i int) Vec3 { return Vec3{s.X[i], s.Y[i], s.Z[i]} }

// Velocity returns the current velocity of object i.
func (s *System) Velocity(i int) Vec3 { return Vec3{s.VX[i], s.VY[i], s.VZ[i]} }
