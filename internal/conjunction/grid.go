// Package conjunction implements the broad-phase spatial hash and the
// close-approach screener that consumes it.
package conjunction

import (
	"fmt"
	"math"

	"github.com/orbitops-data/orbitops/internal/orbit"
)

// DefaultCellSize is the floor on grid cell edge length in km.
const DefaultCellSize = 50.0

// Cell coordinates are packed 21 bits per axis with a centering bias so
// signed indices in [-2^20, 2^20) fit unsigned.
const (
	cellBits = 21
	cellBias = 1 << 20
	cellMask = (1 << cellBits) - 1
)

// Grid is a 3D cell map over current ECI positions. It is built per query,
// owned by the query, and never shared between screenings.
type Grid struct {
	cellSize    float64
	invCellSize float64
	buckets     map[uint64][]int
}

// NewGrid creates a grid with the given cell edge length in km. The edge
// must be at least the screening threshold for the 13-offset traversal to
// be complete; CellSizeFor applies the standard floor.
func NewGrid(cellSizeKm float64) *Grid {
	if cellSizeKm <= 0 {
		cellSizeKm = DefaultCellSize
	}
	return &Grid{
		cellSize:    cellSizeKm,
		invCellSize: 1.0 / cellSizeKm,
		buckets:     make(map[uint64][]int),
	}
}

// CellSizeFor returns the cell edge used for a screening threshold:
// max(threshold, 50 km).
func CellSizeFor(thresholdKm float64) float64 {
	return math.Max(thresholdKm, DefaultCellSize)
}

// CellSize returns the grid's cell edge length in km.
func (g *Grid) CellSize() float64 { return g.cellSize }

func (g *Grid) cellCoord(pos float64) int64 {
	return int64(math.Floor(pos * g.invCellSize))
}

// packCell packs cell coordinates into a 64-bit key. Coordinates outside
// the representable range are a programmer error (the caller chose a cell
// size far too small for the populated volume) and panic.
func packCell(cx, cy, cz int64) uint64 {
	if cx < -cellBias || cx >= cellBias || cy < -cellBias || cy >= cellBias || cz < -cellBias || cz >= cellBias {
		panic(fmt.Sprintf("conjunction: cell coordinate (%d,%d,%d) overflows 21-bit packing", cx, cy, cz))
	}
	ux := uint64(cx+cellBias) & cellMask
	uy := uint64(cy+cellBias) & cellMask
	uz := uint64(cz+cellBias) & cellMask
	return ux<<(2*cellBits) | uy<<cellBits | uz
}

// unpackCell reverses packCell.
func unpackCell(key uint64) (cx, cy, cz int64) {
	cx = int64((key>>(2*cellBits))&cellMask) - cellBias
	cy = int64((key>>cellBits)&cellMask) - cellBias
	cz = int64(key&cellMask) - cellBias
	return
}

// Build clears the grid and indexes every object's current position.
// Bucket lists keep insertion order, so same-cell pair enumeration yields
// ascending store indices.
func (g *Grid) Build(v orbit.View) {
	g.buckets = make(map[uint64][]int, v.N/8+1)
	for i := 0; i < v.N; i++ {
		key := packCell(g.cellCoord(v.X[i]), g.cellCoord(v.Y[i]), g.cellCoord(v.Z[i]))
		g.buckets[key] = append(g.buckets[key], i)
	}
}

// Cells returns the number of populated cells.
func (g *Grid) Cells() int { return len(g.buckets) }
