package conjunction

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

// Conjunction is one close-approach pair from a screening pass. I and J are
// store indices with I < J; ID1 and ID2 are the catalog numbers ordered
// ID1 < ID2. Records are ephemeral: produced per pass, never mutated.
type Conjunction struct {
	I, J        int
	ID1, ID2    int
	DistanceKm  float64
	TimeMinutes float64
}

// screenChunk is the number of cells claimed per worker grab. Cell
// populations are uneven, so screening uses dynamic chunks rather than the
// static split the propagator gets away with.
const screenChunk = 16

// The 13 canonical neighbor offsets. Together with same-cell enumeration
// they visit each unordered pair of adjacent cells exactly once.
var neighborOffsets = [13][3]int64{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{1, 1, 0}, {1, -1, 0}, {1, 0, 1}, {1, 0, -1},
	{0, 1, 1}, {0, 1, -1},
	{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, -1},
}

func makeConjunction(v orbit.View, i, j int, distKm, tMinutes float64) Conjunction {
	if i > j {
		i, j = j, i
	}
	id1, id2 := v.Catalog[i], v.Catalog[j]
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return Conjunction{I: i, J: j, ID1: id1, ID2: id2, DistanceKm: distKm, TimeMinutes: tMinutes}
}

// FindConjunctions enumerates all pairs closer than thresholdKm at the
// current positions, screening cells in parallel. The output order is not
// deterministic across runs; the pair set is. Callers needing a canonical
// order sort externally.
func (g *Grid) FindConjunctions(v orbit.View, thresholdKm, tMinutes float64) []Conjunction {
	if len(g.buckets) == 0 || thresholdKm <= 0 {
		return nil
	}
	thresholdSq := thresholdKm * thresholdKm

	keys := make([]uint64, 0, len(g.buckets))
	for key := range g.buckets {
		keys = append(keys, key)
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(keys) {
		workers = len(keys)
	}
	if workers < 1 {
		workers = 1
	}

	locals := make([][]Conjunction, workers)
	var cursor atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			var buf []Conjunction
			for {
				lo := int(cursor.Add(screenChunk)) - screenChunk
				if lo >= len(keys) {
					break
				}
				hi := lo + screenChunk
				if hi > len(keys) {
					hi = len(keys)
				}
				for _, key := range keys[lo:hi] {
					buf = g.screenCell(v, key, thresholdSq, tMinutes, buf)
				}
			}
			locals[w] = buf
		}(w)
	}
	wg.Wait()

	var total int
	for _, l := range locals {
		total += len(l)
	}
	out := make([]Conjunction, 0, total)
	for _, l := range locals {
		out = append(out, l...)
	}
	return out
}

// screenCell emits pairs within one cell and against its 13 canonical
// neighbors, appending survivors of the squared-distance filter to buf.
func (g *Grid) screenCell(v orbit.View, key uint64, thresholdSq, tMinutes float64, buf []Conjunction) []Conjunction {
	indices := g.buckets[key]
	cx, cy, cz := unpackCell(key)

	for a := 0; a < len(indices); a++ {
		i := indices[a]
		xi, yi, zi := v.X[i], v.Y[i], v.Z[i]
		for b := a + 1; b < len(indices); b++ {
			j := indices[b]
			dx := xi - v.X[j]
			dy := yi - v.Y[j]
			dz := zi - v.Z[j]
			if distSq := dx*dx + dy*dy + dz*dz; distSq < thresholdSq {
				buf = append(buf, makeConjunction(v, i, j, math.Sqrt(distSq), tMinutes))
			}
		}
	}

	for _, off := range neighborOffsets {
		neighbor, ok := g.buckets[packCell(cx+off[0], cy+off[1], cz+off[2])]
		if !ok {
			continue
		}
		for _, i := range indices {
			xi, yi, zi := v.X[i], v.Y[i], v.Z[i]
			for _, j := range neighbor {
				dx := xi - v.X[j]
				dy := yi - v.Y[j]
				dz := zi - v.Z[j]
				if distSq := dx*dx + dy*dy + dz*dz; distSq < thresholdSq {
					buf = append(buf, makeConjunction(v, i, j, math.Sqrt(distSq), tMinutes))
				}
			}
		}
	}
	return buf
}

// Screen builds a fresh grid sized for the threshold and runs one full
// screening pass over the view.
func Screen(v orbit.View, thresholdKm, tMinutes float64) []Conjunction {
	g := NewGrid(CellSizeFor(thresholdKm))
	g.Build(v)
	return g.FindConjunctions(v, thresholdKm, tMinutes)
}

// FindConjunctionsNaive is the O(N²) reference screener. Tests hold the
// grid screener to the same pair set; small populations may also prefer it.
func FindConjunctionsNaive(v orbit.View, thresholdKm, tMinutes float64) []Conjunction {
	thresholdSq := thresholdKm * thresholdKm
	var out []Conjunction
	for i := 0; i < v.N; i++ {
		xi, yi, zi := v.X[i], v.Y[i], v.Z[i]
		for j := i + 1; j < v.N; j++ {
			dx := xi - v.X[j]
			dy := yi - v.Y[j]
			dz := zi - v.Z[j]
			if distSq := dx*dx + dy*dy + dz*dz; distSq < thresholdSq {
				out = append(out, makeConjunction(v, i, j, math.Sqrt(distSq), tMinutes))
			}
		}
	}
	return out
}
