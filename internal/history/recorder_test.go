package history

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/orbit"
	"github.com/orbitops-data/orbitops/internal/timeutil"
)

func testView(n int, offset float64) orbit.View {
	x := make([]float64, n)
	y := make([]float64, n)
	z := make([]float64, n)
	catalog := make([]int, n)
	names := make([]string, n)
	for i := 0; i < n; i++ {
		x[i] = 7000.0 + float64(i) + offset
		y[i] = float64(i) * 10.0
		z[i] = -float64(i)
		catalog[i] = 100 + i
		names[i] = "OBJ"
	}
	return orbit.NewView(x, y, z,
		make([]float64, n), make([]float64, n), make([]float64, n),
		catalog, names)
}

func newTestRecorder(cfg Config) (*Recorder, *timeutil.MockClock) {
	clock := timeutil.NewMockClock(time.Date(2026, 8, 5, 12, 0, 0, 0, time.UTC))
	return NewRecorder(cfg, clock), clock
}

func TestRecorder_GatesOnStartStop(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())

	rec.RecordSnapshot(testView(3, 0), 0)
	assert.Equal(t, 0, rec.Range().SnapshotCount, "writes before Start must be dropped")

	rec.Start()
	rec.RecordSnapshot(testView(3, 0), 0)
	assert.Equal(t, 1, rec.Range().SnapshotCount)

	rec.Stop()
	rec.RecordSnapshot(testView(3, 0), 1)
	assert.Equal(t, 1, rec.Range().SnapshotCount)
}

func TestRecorder_FIFOEviction(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxSnapshots = 5
	rec, _ := newTestRecorder(cfg)
	rec.Start()

	for k := 0; k < 12; k++ {
		rec.RecordSnapshot(testView(2, float64(k)), float64(k))
	}

	rng := rec.Range()
	assert.Equal(t, 5, rng.SnapshotCount)
	// The most recent five, in chronological order.
	assert.Equal(t, 7.0, rng.StartMinutes)
	assert.Equal(t, 11.0, rng.EndMinutes)

	snaps := rec.SnapshotsRange(0, 100)
	require.Len(t, snaps, 5)
	for i := 1; i < len(snaps); i++ {
		assert.Greater(t, snaps[i].TimeMinutes, snaps[i-1].TimeMinutes)
	}
}

func TestRecorder_SnapshotAtTolerance(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(2, 0), 10.0)

	_, ok := rec.SnapshotAt(10.0005)
	assert.True(t, ok, "inside the 1e-3 minute window")

	_, ok = rec.SnapshotAt(10.01)
	assert.False(t, ok, "outside the window")
}

func TestRecorder_SnapshotNearest(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(2, 0), 0.0)
	rec.RecordSnapshot(testView(2, 1), 10.0)
	rec.RecordSnapshot(testView(2, 2), 20.0)

	snap, ok := rec.SnapshotNearest(12.0)
	require.True(t, ok)
	assert.Equal(t, 10.0, snap.TimeMinutes)

	snap, ok = rec.SnapshotNearest(16.0)
	require.True(t, ok)
	assert.Equal(t, 20.0, snap.TimeMinutes)

	// Outside the range clamps to the nearest edge.
	snap, _ = rec.SnapshotNearest(-5.0)
	assert.Equal(t, 0.0, snap.TimeMinutes)
	snap, _ = rec.SnapshotNearest(100.0)
	assert.Equal(t, 20.0, snap.TimeMinutes)
}

func TestRecorder_EventQueries(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxEvents = 3
	rec, _ := newTestRecorder(cfg)
	rec.Start()

	for k := 0; k < 5; k++ {
		rec.RecordEvent(Event{
			TimeMinutes:    float64(k),
			ID1:            100,
			ID2:            200 + k,
			MissDistanceKm: float64(k) + 0.5,
		})
	}

	// FIFO cap keeps the most recent three.
	events := rec.EventsRange(0, 100)
	require.Len(t, events, 3)
	assert.Equal(t, 2.0, events[0].TimeMinutes)

	forSat := rec.EventsForSatellite(204)
	require.Len(t, forSat, 1)
	assert.Equal(t, 4.0, forSat[0].TimeMinutes)

	assert.Empty(t, rec.EventsForSatellite(999))
}

func TestRecorder_ExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(4, 0), 0.0)
	rec.RecordSnapshot(testView(4, 1), 1.0)
	rec.RecordEvent(Event{
		TimeMinutes:      0.5,
		ID1:              100,
		ID2:              101,
		MissDistanceKm:   3.25,
		RelativeSpeedKmS: 11.5,
		Probability:      0.0125,
	})

	var buf bytes.Buffer
	require.NoError(t, rec.WriteTo(&buf))

	restored, _ := newTestRecorder(DefaultConfig())
	require.NoError(t, restored.ReadFrom(bytes.NewReader(buf.Bytes())))

	origSnaps, origEvents := rec.snapshotData()
	gotSnaps, gotEvents := restored.snapshotData()

	// Wall-clock timestamps are not persisted; everything else must match
	// exactly. Names are not part of the snapshot format.
	ignoreWall := cmpopts.IgnoreFields(Snapshot{}, "WallTime")
	if diff := cmp.Diff(origSnaps, gotSnaps, ignoreWall); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}

	ignoreEventWall := cmpopts.IgnoreFields(Event{}, "WallTime", "Name1", "Name2")
	if diff := cmp.Diff(origEvents, gotEvents, ignoreEventWall); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestOrbiFile_RejectsBadHeader(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())

	err := rec.ReadFrom(bytes.NewReader([]byte{0xDE, 0xAD, 0xBE, 0xEF, 1, 0, 0, 0}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ORBI")
}

func TestOrbiFile_FileRoundTrip(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(3, 0), 5.0)

	path := t.TempDir() + "/history.orbi"
	require.NoError(t, rec.ExportToFile(path))

	restored, _ := newTestRecorder(DefaultConfig())
	require.NoError(t, restored.ImportFromFile(path))
	assert.Equal(t, 1, restored.Range().SnapshotCount)

	snap, ok := restored.SnapshotAt(5.0)
	require.True(t, ok)
	assert.Equal(t, 3, snap.Count())
	assert.Equal(t, int32(100), snap.IDs[0])
}

func TestScrubber_TickAdvancesAndAutoPauses(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(2, 0), 0.0)
	rec.RecordSnapshot(testView(2, 1), 2.0)

	s := NewScrubber(rec)

	var lastTime float64
	var lastSnap *Snapshot
	s.OnTimeUpdate(func(t float64, snap *Snapshot) {
		lastTime = t
		lastSnap = snap
	})

	// Paused scrubber does not move.
	s.Tick(60)
	assert.Zero(t, s.CurrentTime())

	s.Play()
	s.Tick(60) // one minute of wall time at 1x
	assert.InDelta(t, 1.0, s.CurrentTime(), 1e-9)
	assert.InDelta(t, 1.0, lastTime, 1e-9)
	require.NotNil(t, lastSnap)

	// Advancing past the end clamps and auto-pauses.
	s.Tick(600)
	assert.Equal(t, 2.0, s.CurrentTime())
	assert.False(t, s.IsPlaying())
	assert.Equal(t, 2.0, lastSnap.TimeMinutes)
}

func TestScrubber_SpeedClamp(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	s := NewScrubber(rec)

	s.SetSpeed(100)
	assert.Equal(t, 10.0, s.Speed())
	s.SetSpeed(0.001)
	assert.Equal(t, 0.1, s.Speed())
	s.SetSpeed(2.5)
	assert.Equal(t, 2.5, s.Speed())
}

func TestScrubber_SpeedScalesTick(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(1, 0), 0.0)
	rec.RecordSnapshot(testView(1, 1), 100.0)

	s := NewScrubber(rec)
	s.Play()
	s.SetSpeed(4.0)
	s.Tick(30) // 0.5 min of wall time at 4x = 2 minutes
	assert.InDelta(t, 2.0, s.CurrentTime(), 1e-9)
}

func TestScrubber_StopRewinds(t *testing.T) {
	t.Parallel()

	rec, _ := newTestRecorder(DefaultConfig())
	rec.Start()
	rec.RecordSnapshot(testView(1, 0), 5.0)
	rec.RecordSnapshot(testView(1, 1), 9.0)

	s := NewScrubber(rec)
	s.Seek(8.0)
	assert.Equal(t, 8.0, s.CurrentTime())

	s.Stop()
	assert.False(t, s.IsPlaying())
	assert.Equal(t, 5.0, s.CurrentTime())
}
