package history

import "sync"

// Playback speed bounds for the scrubber.
const (
	minPlaybackSpeed = 0.1
	maxPlaybackSpeed = 10.0
)

// TimeUpdateFunc receives the cursor time and the nearest snapshot (nil
// when nothing is recorded) on every seek and tick.
type TimeUpdateFunc func(timeMinutes float64, snapshot *Snapshot)

// Scrubber drives playback over a Recorder's snapshots with a movable time
// cursor and speed multiplier.
type Scrubber struct {
	mu       sync.Mutex
	recorder *Recorder
	current  float64
	speed    float64
	playing  bool
	callback TimeUpdateFunc
}

// NewScrubber creates a Scrubber over the given recorder at 1x speed.
func NewScrubber(recorder *Recorder) *Scrubber {
	return &Scrubber{recorder: recorder, speed: 1.0}
}

// Play resumes playback.
func (s *Scrubber) Play() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = true
}

// Pause suspends playback without moving the cursor.
func (s *Scrubber) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
}

// Stop suspends playback and rewinds the cursor to the recorded start.
func (s *Scrubber) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.current = s.recorder.Range().StartMinutes
}

// Seek moves the cursor and notifies the callback.
func (s *Scrubber) Seek(timeMinutes float64) {
	s.mu.Lock()
	s.current = timeMinutes
	cb := s.callback
	t := s.current
	s.mu.Unlock()

	if cb != nil {
		snap, _ := s.recorder.SnapshotNearest(t)
		cb(t, snap)
	}
}

// SetSpeed sets the playback multiplier, clamped to [0.1, 10].
func (s *Scrubber) SetSpeed(speed float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if speed < minPlaybackSpeed {
		speed = minPlaybackSpeed
	}
	if speed > maxPlaybackSpeed {
		speed = maxPlaybackSpeed
	}
	s.speed = speed
}

// Speed returns the playback multiplier.
func (s *Scrubber) Speed() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speed
}

// CurrentTime returns the cursor in minutes.
func (s *Scrubber) CurrentTime() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// IsPlaying reports whether the scrubber is advancing.
func (s *Scrubber) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// OnTimeUpdate registers the playback callback.
func (s *Scrubber) OnTimeUpdate(f TimeUpdateFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callback = f
}

// CurrentSnapshot returns the snapshot nearest the cursor.
func (s *Scrubber) CurrentSnapshot() (*Snapshot, bool) {
	return s.recorder.SnapshotNearest(s.CurrentTime())
}

// Tick advances playback by deltaSeconds of wall time scaled by the speed
// multiplier, clamping to the recorded range and auto-pausing at the end.
// The callback fires with the nearest snapshot.
func (s *Scrubber) Tick(deltaSeconds float64) {
	s.mu.Lock()
	if !s.playing {
		s.mu.Unlock()
		return
	}

	s.current += deltaSeconds / 60.0 * s.speed

	rng := s.recorder.Range()
	if s.current > rng.EndMinutes {
		s.current = rng.EndMinutes
		s.playing = false // auto-pause at the end
	}
	if s.current < rng.StartMinutes {
		s.current = rng.StartMinutes
	}

	cb := s.callback
	t := s.current
	s.mu.Unlock()

	if cb != nil {
		snap, _ := s.recorder.SnapshotNearest(t)
		cb(t, snap)
	}
}
