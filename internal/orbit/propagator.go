package orbit

import (
	"fmt"
	"math"
	"runtime"
	"sync"
)

// hyperbolicEps bounds the accepted eccentricity; beyond 1-hyperbolicEps the
// orbit is effectively parabolic and the object is failed out of the batch.
const hyperbolicEps = 1e-12

// ErrorKind classifies a per-object propagation failure.
type ErrorKind string

const (
	// KindInvalidInput marks out-of-range element input.
	KindInvalidInput ErrorKind = "invalid-input"
	// KindNumerical marks a numerical failure such as a non-finite state.
	KindNumerical ErrorKind = "numerical"
)

// ObjectError is one recoverable per-object failure inside a batch call.
type ObjectError struct {
	Index   int
	Catalog int
	Kind    ErrorKind
	Msg     string
}

func (e ObjectError) Error() string {
	return fmt.Sprintf("object %d (catalog %d): %s: %s", e.Index, e.Catalog, e.Kind, e.Msg)
}

// BatchResult reports per-batch success counts and the per-object failure
// list. Batch calls are never all-or-nothing.
type BatchResult struct {
	Propagated int
	Failed     []ObjectError
}

// elements is the per-object input to the kernel, read from the store columns.
type elements struct {
	incl, raan0, ecc, argp0, m0, n0, a0 float64
}

// stateOut is the kernel output.
type stateOut struct {
	px, py, pz, vx, vy, vz float64
}

// solveKepler solves E - e·sinE = M by Newton iteration from E0 = M.
// At most ten iterations; terminates early below 1e-12 residual. Stable for
// the eccentricity range accepted at load (e <= 0.999).
func solveKepler(m, e float64) float64 {
	E := m
	for i := 0; i < 10; i++ {
		delta := E - e*math.Sin(E) - m
		if math.Abs(delta) < 1e-12 {
			break
		}
		E -= delta / (1.0 - e*math.Cos(E))
	}
	return E
}

// propagateElements advances one object by t minutes from its epoch using
// the mean-element model with secular J2 corrections, producing ECI
// (TEME-like) position in km and velocity in km/s.
func propagateElements(el elements, tMinutes float64) stateOut {
	p := el.a0 * (1.0 - el.ecc*el.ecc)
	cosi := math.Cos(el.incl)
	sini := math.Sin(el.incl)

	// Secular rates due to J2. Mean motion itself carries no correction in
	// the simplified model.
	f := 1.5 * J2 * (RE / p) * (RE / p)
	raanDot := -f * el.n0 * cosi
	argpDot := f * el.n0 * (2.0 - 2.5*sini*sini)

	raan := el.raan0 + raanDot*tMinutes
	argp := el.argp0 + argpDot*tMinutes
	m := math.Mod(el.m0+el.n0*tMinutes, 2.0*math.Pi)
	if m < 0 {
		m += 2.0 * math.Pi
	}

	E := solveKepler(m, el.ecc)

	sinE, cosE := math.Sincos(E)
	oneMinusEcosE := 1.0 - el.ecc*cosE
	sinNu := math.Sqrt(1.0-el.ecc*el.ecc) * sinE / oneMinusEcosE
	cosNu := (cosE - el.ecc) / oneMinusEcosE
	nu := math.Atan2(sinNu, cosNu)

	u := argp + nu
	r := el.a0 * oneMinusEcosE

	sinU, cosU := math.Sincos(u)
	xp := r * cosU
	yp := r * sinU

	sinRAAN, cosRAAN := math.Sincos(raan)

	var out stateOut
	out.px = xp*cosRAAN - yp*cosi*sinRAAN
	out.py = xp*sinRAAN + yp*cosi*cosRAAN
	out.pz = yp * sini

	// Velocity from the radial and transverse rates, rotated the same way.
	h := math.Sqrt(MU * p)
	rDot := math.Sqrt(MU/p) * el.ecc * sinNu
	rfDot := h / r

	vxp := rDot*cosU - rfDot*sinU
	vyp := rDot*sinU + rfDot*cosU

	out.vx = vxp*cosRAAN - vyp*cosi*sinRAAN
	out.vy = vxp*sinRAAN + vyp*cosi*cosRAAN
	out.vz = vyp * sini
	return out
}

func finiteState(s stateOut) bool {
	for _, v := range [6]float64{s.px, s.py, s.pz, s.vx, s.vy, s.vz} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// propagateRange advances objects [lo, hi) and appends failures to errs.
func (s *System) propagateRange(lo, hi int, tMinutes float64, errs *[]ObjectError) int {
	ok := 0
	for i := lo; i < hi; i++ {
		if s.Ecc[i] > 1.0-hyperbolicEps {
			s.zeroState(i)
			*errs = append(*errs, ObjectError{
				Index:   i,
				Catalog: s.CatalogNumbers[i],
				Kind:    KindInvalidInput,
				Msg:     fmt.Sprintf("eccentricity %g is not elliptical", s.Ecc[i]),
			})
			continue
		}

		out := propagateElements(elements{
			incl: s.Incl[i], raan0: s.RAAN0[i], ecc: s.Ecc[i],
			argp0: s.ArgP0[i], m0: s.M0[i], n0: s.N0[i], a0: s.A0[i],
		}, tMinutes)

		if !finiteState(out) {
			s.zeroState(i)
			*errs = append(*errs, ObjectError{
				Index:   i,
				Catalog: s.CatalogNumbers[i],
				Kind:    KindNumerical,
				Msg:     "non-finite propagated state",
			})
			continue
		}

		s.X[i], s.Y[i], s.Z[i] = out.px, out.py, out.pz
		s.VX[i], s.VY[i], s.VZ[i] = out.vx, out.vy, out.vz
		ok++
	}
	return ok
}

func (s *System) zeroState(i int) {
	s.X[i], s.Y[i], s.Z[i] = 0, 0, 0
	s.VX[i], s.VY[i], s.VZ[i] = 0, 0, 0
}

// PropagateAll advances every object to the same offset t in minutes from
// its per-object epoch. Objects are independent; work is statically
// partitioned across workers and results do not depend on worker count.
// Per-object failures zero that object's state and are reported in the
// result; the batch always continues.
func (s *System) PropagateAll(tMinutes float64) BatchResult {
	n := s.count
	if n == 0 {
		return BatchResult{}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	type partial struct {
		ok   int
		errs []ObjectError
	}
	parts := make([]partial, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			parts[w].ok = s.propagateRange(lo, hi, tMinutes, &parts[w].errs)
		}(w, lo, hi)
	}
	wg.Wait()

	var res BatchResult
	for _, p := range parts {
		res.Propagated += p.ok
		res.Failed = append(res.Failed, p.errs...)
	}
	return res
}

// StateAt computes object i's state at offset t without touching the store
// columns. Used for orbit-path sampling and maneuver previews.
func (s *System) StateAt(i int, tMinutes float64) (Vec3, Vec3, error) {
	if i < 0 || i >= s.count {
		return Vec3{}, Vec3{}, fmt.Errorf("index %d out of range [0,%d)", i, s.count)
	}
	if s.Ecc[i] > 1.0-hyperbolicEps {
		return Vec3{}, Vec3{}, ObjectError{
			Index: i, Catalog: s.CatalogNumbers[i], Kind: KindInvalidInput,
			Msg: fmt.Sprintf("eccentricity %g is not elliptical", s.Ecc[i]),
		}
	}
	out := propagateElements(elements{
		incl: s.Incl[i], raan0: s.RAAN0[i], ecc: s.Ecc[i],
		argp0: s.ArgP0[i], m0: s.M0[i], n0: s.N0[i], a0: s.A0[i],
	}, tMinutes)
	if !finiteState(out) {
		return Vec3{}, Vec3{}, ObjectError{
			Index: i, Catalog: s.CatalogNumbers[i], Kind: KindNumerical,
			Msg: "non-finite propagated state",
		}
	}
	return Vec3{out.px, out.py, out.pz}, Vec3{out.vx, out.vy, out.vz}, nil
}

// PeriodMinutes returns object i's orbital period 2π/n in minutes.
func (s *System) PeriodMinutes(i int) float64 {
	return 2.0 * math.Pi / s.N0[i]
}

// OrbitPath samples one full orbit of object i at the given resolution,
// returning positions from the object's epoch.
func (s *System) OrbitPath(i, points int) ([]Vec3, error) {
	if points < 2 {
		points = 2
	}
	if i < 0 || i >= s.count {
		return nil, fmt.Errorf("index %d out of range [0,%d)", i, s.count)
	}
	period := s.PeriodMinutes(i)
	step := period / float64(points-1)

	path := make([]Vec3, 0, points)
	for k := 0; k < points; k++ {
		pos, _, err := s.StateAt(i, float64(k)*step)
		if err != nil {
			return nil, err
		}
		path = append(path, pos)
	}
	return path, nil
}
