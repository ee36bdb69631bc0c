package history

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

// The ORBI history file format, version 1. All integers and floats are
// little-endian regardless of host byte order:
//
//	u32 magic "ORBI" (0x4F524249), u32 version
//	u64 snapshot count, then per snapshot:
//	  f64 time_minutes, u32 satellite count,
//	  count * f32 x, count * f32 y, count * f32 z, count * i32 id
//	u64 event count, then per event six f64 fields:
//	  time_minutes, id1, id2, miss_km, relative_speed_km_s, probability
//
// Wall-clock timestamps are not persisted; import stamps the load time.
const (
	orbiMagic   = 0x4F524249
	orbiVersion = 1
)

// maxImportCount guards against corrupt headers allocating unbounded
// buffers on import.
const maxImportCount = 1 << 28

// WriteTo serialises the recorder's buffers in ORBI format.
func (r *Recorder) WriteTo(w io.Writer) error {
	snaps, events := r.snapshotData()

	bw := bufio.NewWriter(w)
	le := binary.LittleEndian

	writeU32 := func(v uint32) error { return binary.Write(bw, le, v) }
	writeU64 := func(v uint64) error { return binary.Write(bw, le, v) }
	writeF64 := func(v float64) error { return binary.Write(bw, le, v) }

	if err := writeU32(orbiMagic); err != nil {
		return err
	}
	if err := writeU32(orbiVersion); err != nil {
		return err
	}

	if err := writeU64(uint64(len(snaps))); err != nil {
		return err
	}
	for _, s := range snaps {
		if err := writeF64(s.TimeMinutes); err != nil {
			return err
		}
		if err := writeU32(uint32(s.Count())); err != nil {
			return err
		}
		for _, col := range [][]float32{s.X, s.Y, s.Z} {
			if err := binary.Write(bw, le, col); err != nil {
				return err
			}
		}
		if err := binary.Write(bw, le, s.IDs); err != nil {
			return err
		}
	}

	if err := writeU64(uint64(len(events))); err != nil {
		return err
	}
	for _, e := range events {
		fields := [6]float64{
			e.TimeMinutes,
			float64(e.ID1),
			float64(e.ID2),
			e.MissDistanceKm,
			e.RelativeSpeedKmS,
			e.Probability,
		}
		if err := binary.Write(bw, le, fields[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// ReadFrom replaces the recorder's buffers with the contents of an ORBI
// stream. Imported wall-clock timestamps are the load time.
func (r *Recorder) ReadFrom(rd io.Reader) error {
	br := bufio.NewReader(rd)
	le := binary.LittleEndian

	var magic, version uint32
	if err := binary.Read(br, le, &magic); err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if err := binary.Read(br, le, &version); err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if magic != orbiMagic {
		return fmt.Errorf("not an ORBI file (magic 0x%08X)", magic)
	}
	if version != orbiVersion {
		return fmt.Errorf("unsupported ORBI version %d", version)
	}

	now := r.clock.Now()

	var snapCount uint64
	if err := binary.Read(br, le, &snapCount); err != nil {
		return fmt.Errorf("reading snapshot count: %w", err)
	}
	if snapCount > maxImportCount {
		return fmt.Errorf("implausible snapshot count %d", snapCount)
	}

	snaps := make([]*Snapshot, 0, snapCount)
	for i := uint64(0); i < snapCount; i++ {
		s := &Snapshot{WallTime: now}
		if err := binary.Read(br, le, &s.TimeMinutes); err != nil {
			return fmt.Errorf("snapshot %d: %w", i, err)
		}
		var count uint32
		if err := binary.Read(br, le, &count); err != nil {
			return fmt.Errorf("snapshot %d: %w", i, err)
		}
		if uint64(count) > maxImportCount {
			return fmt.Errorf("snapshot %d: implausible satellite count %d", i, count)
		}
		s.X = make([]float32, count)
		s.Y = make([]float32, count)
		s.Z = make([]float32, count)
		s.IDs = make([]int32, count)
		for _, col := range [][]float32{s.X, s.Y, s.Z} {
			if err := binary.Read(br, le, col); err != nil {
				return fmt.Errorf("snapshot %d positions: %w", i, err)
			}
		}
		if err := binary.Read(br, le, s.IDs); err != nil {
			return fmt.Errorf("snapshot %d ids: %w", i, err)
		}
		snaps = append(snaps, s)
	}

	var eventCount uint64
	if err := binary.Read(br, le, &eventCount); err != nil {
		return fmt.Errorf("reading event count: %w", err)
	}
	if eventCount > maxImportCount {
		return fmt.Errorf("implausible event count %d", eventCount)
	}

	events := make([]Event, 0, eventCount)
	for i := uint64(0); i < eventCount; i++ {
		var fields [6]float64
		if err := binary.Read(br, le, fields[:]); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
		events = append(events, Event{
			TimeMinutes:      fields[0],
			WallTime:         now,
			ID1:              int(math.Round(fields[1])),
			ID2:              int(math.Round(fields[2])),
			MissDistanceKm:   fields[3],
			RelativeSpeedKmS: fields[4],
			Probability:      fields[5],
		})
	}

	r.replaceData(snaps, events)
	return nil
}

// ExportToFile writes the recorder's buffers to path in ORBI format.
func (r *Recorder) ExportToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating history file: %w", err)
	}
	defer f.Close()

	if err := r.WriteTo(f); err != nil {
		return fmt.Errorf("writing history file: %w", err)
	}
	return f.Sync()
}

// ImportFromFile loads an ORBI history file, replacing current buffers.
func (r *Recorder) ImportFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening history file: %w", err)
	}
	defer f.Close()
	return r.ReadFrom(f)
}
