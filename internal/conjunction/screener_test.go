package conjunction

import (
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitops-data/orbitops/internal/orbit"
	"github.com/orbitops-data/orbitops/internal/tle"
)

// spreadConstellation builds N objects on a shared circular LEO shell with
// RAAN and mean anomaly stepped per index, propagated to t.
func spreadConstellation(t *testing.T, n int, tMinutes float64) *orbit.System {
	t.Helper()

	records := make([]tle.TLE, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, tle.TLE{
			CatalogNumber: 10000 + i,
			Name:          fmt.Sprintf("SPREAD-%d", i),
			Inclination:   51.6 * tle.Deg2Rad,
			RAAN:          float64(i) * 7.2 * tle.Deg2Rad,
			Eccentricity:  0.001,
			MeanAnomaly:   float64(i) * 7.2 * tle.Deg2Rad,
			MeanMotion:    15.5 * tle.TwoPi / tle.MinPerDay,
		})
	}

	sys, err := orbit.NewSystem(records)
	require.NoError(t, err)
	res := sys.PropagateAll(tMinutes)
	require.Empty(t, res.Failed)
	return sys
}

func pairKey(c Conjunction) [2]int { return [2]int{c.I, c.J} }

func sortedPairs(conjs []Conjunction) [][2]int {
	keys := make([][2]int, 0, len(conjs))
	for _, c := range conjs {
		keys = append(keys, pairKey(c))
	}
	sort.Slice(keys, func(a, b int) bool {
		if keys[a][0] != keys[b][0] {
			return keys[a][0] < keys[b][0]
		}
		return keys[a][1] < keys[b][1]
	})
	return keys
}

func TestScreen_MatchesNaive(t *testing.T) {
	t.Parallel()

	sys := spreadConstellation(t, 50, 0)
	view := sys.View()
	const threshold = 100.0

	grid := NewGrid(CellSizeFor(threshold))
	grid.Build(view)
	fast := grid.FindConjunctions(view, threshold, 0)
	naive := FindConjunctionsNaive(view, threshold, 0)

	require.NotEmpty(t, naive, "constellation should produce close pairs")
	assert.Equal(t, sortedPairs(naive), sortedPairs(fast))
}

func TestScreen_MatchesNaiveAcrossTimesAndThresholds(t *testing.T) {
	t.Parallel()

	for _, tMin := range []float64{0, 30, 77.5} {
		for _, threshold := range []float64{25, 50, 100, 400} {
			sys := spreadConstellation(t, 40, tMin)
			view := sys.View()

			grid := NewGrid(CellSizeFor(threshold))
			grid.Build(view)
			fast := grid.FindConjunctions(view, threshold, tMin)
			naive := FindConjunctionsNaive(view, threshold, tMin)

			assert.Equal(t, sortedPairs(naive), sortedPairs(fast),
				"t=%f threshold=%f", tMin, threshold)
		}
	}
}

func TestScreen_PairInvariants(t *testing.T) {
	t.Parallel()

	sys := spreadConstellation(t, 50, 0)
	view := sys.View()

	pairs := Screen(view, 200.0, 0)
	seen := make(map[[2]int]bool)
	for _, c := range pairs {
		assert.Less(t, c.I, c.J, "store indices must be ordered")
		assert.Less(t, c.ID1, c.ID2, "catalog ids must be ordered")
		assert.Greater(t, c.DistanceKm, 0.0)
		assert.Less(t, c.DistanceKm, 200.0)

		key := pairKey(c)
		assert.False(t, seen[key], "pair %v emitted twice", key)
		seen[key] = true
	}
}

func TestGrid_KeyPackingRoundTrip(t *testing.T) {
	t.Parallel()

	cases := [][3]int64{
		{0, 0, 0},
		{1, -1, 1},
		{140, -140, 7},
		{-524288, 524287, 0},
	}
	for _, c := range cases {
		key := packCell(c[0], c[1], c[2])
		cx, cy, cz := unpackCell(key)
		assert.Equal(t, c[0], cx)
		assert.Equal(t, c[1], cy)
		assert.Equal(t, c[2], cz)
	}
}

func TestGrid_KeyPackingOverflowPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { packCell(1<<20, 0, 0) })
	assert.Panics(t, func() { packCell(0, -(1<<20)-1, 0) })
}

func TestGrid_BucketOrderIsInsertionOrder(t *testing.T) {
	t.Parallel()

	// Three co-located objects must enumerate as (0,1), (0,2), (1,2).
	x := []float64{7000, 7000.1, 7000.2}
	y := []float64{0, 0.1, 0.2}
	z := []float64{0, 0, 0}
	v := orbit.NewView(x, y, z,
		make([]float64, 3), make([]float64, 3), make([]float64, 3),
		[]int{11, 22, 33}, []string{"a", "b", "c"})

	pairs := Screen(v, 10.0, 0)
	require.Len(t, pairs, 3)
	assert.Equal(t, [][2]int{{0, 1}, {0, 2}, {1, 2}},
		[][2]int{pairKey(pairs[0]), pairKey(pairs[1]), pairKey(pairs[2])})
}

func TestCellSizeFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 50.0, CellSizeFor(10))
	assert.Equal(t, 50.0, CellSizeFor(50))
	assert.Equal(t, 120.0, CellSizeFor(120))
}
