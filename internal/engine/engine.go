// Package engine owns the satellite state store and coordinates the
// propagate / screen / refine pipeline for the service surfaces.
package engine

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/orbitops-data/orbitops/internal/config"
	"github.com/orbitops-data/orbitops/internal/conjunction"
	"github.com/orbitops-data/orbitops/internal/debris"
	"github.com/orbitops-data/orbitops/internal/history"
	"github.com/orbitops-data/orbitops/internal/maneuver"
	"github.com/orbitops-data/orbitops/internal/monitoring"
	"github.com/orbitops-data/orbitops/internal/orbit"
	"github.com/orbitops-data/orbitops/internal/probability"
	"github.com/orbitops-data/orbitops/internal/timeutil"
	"github.com/orbitops-data/orbitops/internal/tle"
)

// Engine binds the state store to the screening pipeline. One mutex
// serializes every call that touches the store, so request handlers can be
// multiplexed onto it freely; the propagator and screener never run
// concurrently on the same store.
type Engine struct {
	mu sync.Mutex

	cfg   *config.Config
	clock timeutil.Clock

	elements []tle.TLE
	sys      *orbit.System
	loadedAt time.Time

	calc      *probability.Calculator
	optimizer *maneuver.Optimizer
	recorder  *history.Recorder
	debris    *debris.Model

	latest []probability.Result
}

// New builds an Engine over the parsed element set.
func New(records []tle.TLE, cfg *config.Config, clock timeutil.Clock) (*Engine, error) {
	if cfg == nil {
		cfg = config.Empty()
	}
	if clock == nil {
		clock = timeutil.RealClock{}
	}

	sys, err := orbit.NewSystem(records)
	if err != nil {
		return nil, fmt.Errorf("building state store: %w", err)
	}

	calc := probability.NewCalculator(cfg.GetSeed())
	calc.SetSampleCount(cfg.GetSampleCount())
	calc.SetCollisionRadius(cfg.GetCollisionRadiusKm())

	opt := maneuver.NewOptimizer()
	opt.SetSafeDistance(cfg.GetSafeDistanceKm())
	opt.SetSpacecraft(maneuver.SpacecraftParams{
		DryMassKg:  cfg.GetDryMassKg(),
		IspS:       cfg.GetIspS(),
		MaxThrustN: cfg.GetMaxThrustN(),
		FuelMassKg: cfg.GetFuelMassKg(),
	})

	rec := history.NewRecorder(history.Config{
		SnapshotInterval:   time.Duration(cfg.GetSnapshotSeconds() * float64(time.Second)),
		MaxSnapshots:       cfg.GetMaxSnapshots(),
		MaxEvents:          cfg.GetMaxEvents(),
		RecordConjunctions: true,
		EventThresholdKm:   cfg.GetThresholdKm(),
	}, clock)

	return &Engine{
		cfg:       cfg,
		clock:     clock,
		elements:  append([]tle.TLE(nil), records...),
		sys:       sys,
		loadedAt:  clock.Now(),
		calc:      calc,
		optimizer: opt,
		recorder:  rec,
		debris:    debris.BuildModel(records),
	}, nil
}

// Len returns the population size.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sys.Len()
}

// Elements returns a copy of the loaded element set.
func (e *Engine) Elements() []tle.TLE {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]tle.TLE(nil), e.elements...)
}

// Recorder exposes the history recorder.
func (e *Engine) Recorder() *history.Recorder { return e.recorder }

// Optimizer exposes the maneuver optimizer.
func (e *Engine) Optimizer() *maneuver.Optimizer { return e.optimizer }

// Config exposes the runtime configuration.
func (e *Engine) Config() *config.Config { return e.cfg }

// Propagate advances the whole population to offset t in minutes.
func (e *Engine) Propagate(tMinutes float64) orbit.BatchResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sys.PropagateAll(tMinutes)
}

// Positions copies the current Cartesian positions after the last
// propagation pass. Order matches the element set.
func (e *Engine) Positions() ([]orbit.Vec3, []int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]orbit.Vec3, e.sys.Len())
	ids := make([]int, e.sys.Len())
	for i := 0; i < e.sys.Len(); i++ {
		out[i] = e.sys.Position(i)
		ids[i] = e.sys.CatalogNumbers[i]
	}
	return out, ids
}

// Screen propagates to t and runs one screening pass, returning raw
// conjunction pairs sorted by distance.
func (e *Engine) Screen(tMinutes float64) ([]conjunction.Conjunction, orbit.BatchResult) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.screenLocked(tMinutes)
}

func (e *Engine) screenLocked(tMinutes float64) ([]conjunction.Conjunction, orbit.BatchResult) {
	batch := e.sys.PropagateAll(tMinutes)
	if len(batch.Failed) > 0 {
		monitoring.Logf("engine: %d/%d objects failed propagation at t=%.2f",
			len(batch.Failed), e.sys.Len(), tMinutes)
	}

	grid := conjunction.NewGrid(conjunction.CellSizeFor(e.cfg.GetThresholdKm()))
	view := e.sys.View()
	grid.Build(view)
	pairs := grid.FindConjunctions(view, e.cfg.GetThresholdKm(), tMinutes)

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].DistanceKm < pairs[j].DistanceKm })
	return pairs, batch
}

// ScreenAndRefine runs a full pass: propagate, screen, refine each pair
// with the Monte-Carlo estimator, and record history. Results are retained
// as the engine's latest, sorted by collision probability.
func (e *Engine) ScreenAndRefine(tMinutes float64) []probability.Result {
	e.mu.Lock()
	defer e.mu.Unlock()

	pairs, _ := e.screenLocked(tMinutes)

	ageHours := func(i int) float64 {
		return tle.HoursSinceEpoch(e.elements[i], e.clock.Now())
	}
	isDebris := func(i int) bool {
		return debris.IsDebris(e.elements[i])
	}
	results := e.calc.CalculateAll(e.sys, pairs, ageHours, isDebris)
	sort.Slice(results, func(i, j int) bool { return results[i].Probability > results[j].Probability })

	e.recorder.RecordSnapshot(e.sys.View(), tMinutes)
	for _, res := range results {
		e.recorder.RecordEvent(history.Event{
			TimeMinutes:      res.TCAMinutes,
			ID1:              res.ID1,
			ID2:              res.ID2,
			Name1:            res.Name1,
			Name2:            res.Name2,
			MissDistanceKm:   res.MissDistanceKm,
			RelativeSpeedKmS: res.RelativeSpeedKmS,
			Probability:      res.Probability,
		})
	}

	e.latest = results
	return results
}

// LatestResults returns the most recent refined screening results.
func (e *Engine) LatestResults() []probability.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]probability.Result(nil), e.latest...)
}

// UpdateElements merges new element records into the population (later
// epoch wins per catalog number) and rebuilds the store. Returns the new
// population size.
func (e *Engine) UpdateElements(records []tle.TLE) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	merged := tle.Merge(e.elements, records)
	sys, err := orbit.NewSystem(merged)
	if err != nil {
		return 0, fmt.Errorf("rebuilding state store: %w", err)
	}

	e.elements = merged
	e.sys = sys
	e.loadedAt = e.clock.Now()
	e.debris = debris.BuildModel(merged)
	e.latest = nil
	return sys.Len(), nil
}

// indexOfCatalog returns the store index for a catalog id.
func (e *Engine) indexOfCatalog(id int) (int, bool) {
	for i, c := range e.sys.CatalogNumbers {
		if c == id {
			return i, true
		}
	}
	return 0, false
}

// OrbitPath samples one orbit of the object with the given catalog id.
func (e *Engine) OrbitPath(catalogID, points int) ([]orbit.Vec3, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx, ok := e.indexOfCatalog(catalogID)
	if !ok {
		return nil, fmt.Errorf("catalog %d not in population", catalogID)
	}
	return e.sys.OrbitPath(idx, points)
}

// StateOf returns the current state of the object with the given catalog id.
func (e *Engine) StateOf(catalogID int) (orbit.Vec3, orbit.Vec3, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx, ok := e.indexOfCatalog(catalogID)
	if !ok {
		return orbit.Vec3{}, orbit.Vec3{}, fmt.Errorf("catalog %d not in population", catalogID)
	}
	return e.sys.Position(idx), e.sys.Velocity(idx), nil
}

// PlanAvoidance plans the minimum-impulse avoidance burn for the protected
// object against the threat object at the given time to closest approach.
func (e *Engine) PlanAvoidance(protectedID, threatID int, timeToTCAMinutes float64) (maneuver.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pi, ok := e.indexOfCatalog(protectedID)
	if !ok {
		return maneuver.Result{}, fmt.Errorf("catalog %d not in population", protectedID)
	}
	ti, ok := e.indexOfCatalog(threatID)
	if !ok {
		return maneuver.Result{}, fmt.Errorf("catalog %d not in population", threatID)
	}

	satPos, satVel := e.sys.Position(pi), e.sys.Velocity(pi)
	threatPos, threatVel := e.sys.Position(ti), e.sys.Velocity(ti)
	currentMiss := satPos.Sub(threatPos).Norm()

	return e.optimizer.PlanAvoidance(satPos, satVel, threatPos, threatVel, timeToTCAMinutes, currentMiss), nil
}

// DebrisFields recomputes debris field groupings from current positions.
func (e *Engine) DebrisFields() []debris.Field {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.debris.IdentifyFields(func(i int) (float64, float64, float64) {
		return e.sys.X[i], e.sys.Y[i], e.sys.Z[i]
	})
	return append([]debris.Field(nil), e.debris.Fields...)
}

// AssessDebrisRisk rates the debris environment around the object with the
// given catalog id using current propagated positions.
func (e *Engine) AssessDebrisRisk(catalogID int) (debris.RiskAssessment, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.indexOfCatalog(catalogID)
	if !ok {
		return debris.RiskAssessment{}, fmt.Errorf("catalog %d not in population", catalogID)
	}

	pos := e.sys.Position(idx)
	altitudeKm := pos.Norm() - 6371.0

	return e.debris.AssessRisk(catalogID, [3]float64{pos.X, pos.Y, pos.Z}, altitudeKm,
		func(i int) (float64, float64, float64) {
			return e.sys.X[i], e.sys.Y[i], e.sys.Z[i]
		}), nil
}

// DebrisObjects returns the classified debris population.
func (e *Engine) DebrisObjects() []debris.Object {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]debris.Object(nil), e.debris.Objects...)
}

// PathPoint is one sample of a simulated post-burn trajectory.
type PathPoint struct {
	TimeMinutes float64
	Position    orbit.Vec3
	Velocity    orbit.Vec3
}

// SimulateManeuver applies an impulsive burn (RIC components, km/s) to the
// object at the burn time and samples the predicted trajectory over the
// given duration. The burn's effect is modeled with the linearized
// Clohessy-Wiltshire response about the unburned orbit, which is accurate
// for the small impulses avoidance planning produces.
func (e *Engine) SimulateManeuver(catalogID int, deltaVRIC orbit.Vec3, burnTimeMinutes, durationMinutes, stepMinutes float64) ([]PathPoint, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	idx, ok := e.indexOfCatalog(catalogID)
	if !ok {
		return nil, fmt.Errorf("catalog %d not in population", catalogID)
	}
	if stepMinutes <= 0 {
		stepMinutes = 1.0
	}
	if durationMinutes <= 0 {
		durationMinutes = e.sys.PeriodMinutes(idx)
	}

	burnPos, burnVel, err := e.sys.StateAt(idx, burnTimeMinutes)
	if err != nil {
		return nil, err
	}
	basis := maneuver.NewRICBasis(burnPos, burnVel)
	n := maneuver.MeanMotion(maneuver.SemiMajorAxis(burnPos, burnVel))

	var path []PathPoint
	for t := burnTimeMinutes; t <= burnTimeMinutes+durationMinutes; t += stepMinutes {
		basePos, baseVel, err := e.sys.StateAt(idx, t)
		if err != nil {
			return nil, err
		}

		offset := maneuver.PredictRelativePosition(maneuver.RICState{
			Velocity: deltaVRIC,
		}, n, (t-burnTimeMinutes)*60.0)

		path = append(path, PathPoint{
			TimeMinutes: t,
			Position:    basePos.Add(basis.FromRIC(offset)),
			Velocity:    baseVel,
		})
	}
	return path, nil
}
