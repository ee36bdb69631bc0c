// Package history records position snapshots and conjunction events into
// bounded in-memory buffers with scrubbable playback and binary export.
package history

import (
	"math"
	"time"

	"sync"

	"github.com/orbitops-data/orbitops/internal/orbit"
	"github.com/orbitops-data/orbitops/internal/timeutil"
)

// snapshotTimeTolerance is the exact-match window for SnapshotAt, minutes.
const snapshotTimeTolerance = 1e-3

// Snapshot is one recorded frame of satellite positions. Positions are
// downcast to float32 for storage.
type Snapshot struct {
	TimeMinutes float64
	WallTime    time.Time
	X, Y, Z     []float32
	IDs         []int32
}

// Count returns the number of satellites in the snapshot.
func (s *Snapshot) Count() int { return len(s.IDs) }

// Event is one recorded conjunction.
type Event struct {
	TimeMinutes      float64
	WallTime         time.Time
	ID1, ID2         int
	Name1, Name2     string
	MissDistanceKm   float64
	RelativeSpeedKmS float64
	Probability      float64
}

// Config bounds the recorder's buffers.
type Config struct {
	SnapshotInterval   time.Duration
	MaxSnapshots       int
	MaxEvents          int
	RecordConjunctions bool
	EventThresholdKm   float64
}

// DefaultConfig keeps a day of one-second snapshots.
func DefaultConfig() Config {
	return Config{
		SnapshotInterval:   time.Second,
		MaxSnapshots:       86400,
		MaxEvents:          10000,
		RecordConjunctions: true,
		EventThresholdKm:   10.0,
	}
}

// Recorder owns two bounded FIFO deques - snapshots and conjunction events -
// behind one mutex. Start and Stop gate writes; reads are always allowed.
type Recorder struct {
	mu        sync.Mutex
	config    Config
	clock     timeutil.Clock
	recording bool
	startedAt time.Time

	snapshots []*Snapshot
	events    []Event
}

// NewRecorder creates a Recorder with the given bounds. A nil-value clock
// defaults to the real clock.
func NewRecorder(config Config, clock timeutil.Clock) *Recorder {
	if clock == nil {
		clock = timeutil.RealClock{}
	}
	if config.MaxSnapshots <= 0 {
		config.MaxSnapshots = DefaultConfig().MaxSnapshots
	}
	if config.MaxEvents <= 0 {
		config.MaxEvents = DefaultConfig().MaxEvents
	}
	return &Recorder{config: config, clock: clock}
}

// Start enables recording.
func (r *Recorder) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = true
	r.startedAt = r.clock.Now()
}

// Stop disables recording; buffers are retained for playback.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recording = false
}

// Clear discards all recorded data.
func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = nil
	r.events = nil
}

// IsRecording reports whether writes are currently accepted.
func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.recording
}

// Config returns the recorder's bounds.
func (r *Recorder) Config() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.config
}

// SetConfig replaces the bounds and trims buffers to the new caps.
func (r *Recorder) SetConfig(c Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config = c
	r.trimLocked()
}

// RecordSnapshot copies the view's positions into a new snapshot. The
// oldest snapshot is evicted when the cap is exceeded; eviction is strict
// FIFO. No-op unless recording.
func (r *Recorder) RecordSnapshot(v orbit.View, timeMinutes float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording {
		return
	}

	snap := &Snapshot{
		TimeMinutes: timeMinutes,
		WallTime:    r.clock.Now(),
		X:           make([]float32, v.N),
		Y:           make([]float32, v.N),
		Z:           make([]float32, v.N),
		IDs:         make([]int32, v.N),
	}
	for i := 0; i < v.N; i++ {
		snap.X[i] = float32(v.X[i])
		snap.Y[i] = float32(v.Y[i])
		snap.Z[i] = float32(v.Z[i])
		snap.IDs[i] = int32(v.Catalog[i])
	}

	r.snapshots = append(r.snapshots, snap)
	r.trimLocked()
}

// RecordEvent appends a conjunction event, stamping its wall time. No-op
// unless recording or when event recording is disabled.
func (r *Recorder) RecordEvent(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.recording || !r.config.RecordConjunctions {
		return
	}
	if e.WallTime.IsZero() {
		e.WallTime = r.clock.Now()
	}
	r.events = append(r.events, e)
	r.trimLocked()
}

func (r *Recorder) trimLocked() {
	if over := len(r.snapshots) - r.config.MaxSnapshots; over > 0 {
		r.snapshots = append([]*Snapshot(nil), r.snapshots[over:]...)
	}
	if over := len(r.events) - r.config.MaxEvents; over > 0 {
		r.events = append([]Event(nil), r.events[over:]...)
	}
}

// SnapshotAt returns the snapshot whose time matches within 1e-3 minutes.
func (r *Recorder) SnapshotAt(timeMinutes float64) (*Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, s := range r.snapshots {
		if math.Abs(s.TimeMinutes-timeMinutes) < snapshotTimeTolerance {
			return s, true
		}
	}
	return nil, false
}

// SnapshotNearest returns the closer of the two snapshots bracketing the
// given time, or the nearest edge outside the recorded range.
func (r *Recorder) SnapshotNearest(timeMinutes float64) (*Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return nil, false
	}

	best := r.snapshots[0]
	bestDist := math.Abs(best.TimeMinutes - timeMinutes)
	for _, s := range r.snapshots[1:] {
		if d := math.Abs(s.TimeMinutes - timeMinutes); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, true
}

// SnapshotsRange returns snapshots with start <= t <= end, oldest first.
func (r *Recorder) SnapshotsRange(startMinutes, endMinutes float64) []*Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Snapshot
	for _, s := range r.snapshots {
		if s.TimeMinutes >= startMinutes && s.TimeMinutes <= endMinutes {
			out = append(out, s)
		}
	}
	return out
}

// EventsRange returns conjunction events with start <= t <= end.
func (r *Recorder) EventsRange(startMinutes, endMinutes float64) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.TimeMinutes >= startMinutes && e.TimeMinutes <= endMinutes {
			out = append(out, e)
		}
	}
	return out
}

// EventsForSatellite returns all events involving the given catalog id.
func (r *Recorder) EventsForSatellite(id int) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.ID1 == id || e.ID2 == id {
			out = append(out, e)
		}
	}
	return out
}

// TimeRange summarises the recorded span.
type TimeRange struct {
	StartMinutes  float64
	EndMinutes    float64
	WallStart     time.Time
	WallEnd       time.Time
	SnapshotCount int
	EventCount    int
}

// Range returns the recorded time span.
func (r *Recorder) Range() TimeRange {
	r.mu.Lock()
	defer r.mu.Unlock()

	tr := TimeRange{
		SnapshotCount: len(r.snapshots),
		EventCount:    len(r.events),
	}
	if len(r.snapshots) > 0 {
		first, last := r.snapshots[0], r.snapshots[len(r.snapshots)-1]
		tr.StartMinutes = first.TimeMinutes
		tr.EndMinutes = last.TimeMinutes
		tr.WallStart = first.WallTime
		tr.WallEnd = last.WallTime
	}
	return tr
}

// Stats summarises recorder resource usage.
type Stats struct {
	Snapshots        int
	Events           int
	MemoryBytes      int
	RecordedDuration time.Duration
}

// Stats returns buffer counts and an estimate of memory held.
func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := Stats{Snapshots: len(r.snapshots), Events: len(r.events)}
	for _, s := range r.snapshots {
		st.MemoryBytes += 3*4*len(s.X) + 4*len(s.IDs) + 16
	}
	st.MemoryBytes += len(r.events) * 96
	if len(r.snapshots) > 1 {
		st.RecordedDuration = r.snapshots[len(r.snapshots)-1].WallTime.Sub(r.snapshots[0].WallTime)
	}
	return st
}

// snapshotData returns a copy of the snapshot slice for export.
func (r *Recorder) snapshotData() ([]*Snapshot, []Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*Snapshot(nil), r.snapshots...), append([]Event(nil), r.events...)
}

// replaceData swaps in imported buffers, trimming to the configured caps.
func (r *Recorder) replaceData(snaps []*Snapshot, events []Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = snaps
	r.events = events
	r.trimLocked()
}
