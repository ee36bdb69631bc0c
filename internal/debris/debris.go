// Package debris classifies catalog objects as debris and groups fragments
// into fields. The heuristics are noisy by nature and sit outside the
// numerical core; their main consumers are the covariance model's debris
// flag and the debris-field query surface.
package debris

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/orbitops-data/orbitops/internal/tle"
)

// Type is a coarse debris classification.
type Type string

const (
	TypeRocketBody    Type = "rocket-body"
	TypeFragmentation Type = "fragmentation"
	TypePayloadDebris Type = "payload-debris"
	TypeMissionDebris Type = "mission-debris"
	TypeUnknown       Type = "unknown"
)

// Size buckets debris by trackability.
type Size string

const (
	SizeLarge  Size = "large"  // > 10 cm, trackable by ground radar
	SizeMedium Size = "medium" // 1-10 cm
	SizeSmall  Size = "small"  // < 1 cm, modeled statistically
)

// nameKeywords are debris markers seen in catalog names.
var nameKeywords = []string{
	"DEB", "DEBRIS", "R/B", "ROCKET", "FRAG", "FRAGMENT",
	"COOLANT", "NAK", "TANK", "PLATFORM", "OBJECT",
}

// knownFragmentationParents are catalog numbers of major breakup events.
var knownFragmentationParents = []int{
	13552, // Cosmos 954
	25730, // Fengyun-1C ASAT test
	24946, // Cosmos 2251 / Iridium collision
	25544, // ISS-related releases
	36499, // Briz-M breakup
	40258, // Cosmos 1408 ASAT test
}

// IsDebris applies the name-keyword, designator-piece, and drag-term
// heuristics. False negatives are expected; this is a coarse filter.
func IsDebris(rec tle.TLE) bool {
	upper := strings.ToUpper(rec.Name)
	for _, kw := range nameKeywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}

	// Launch designators assign piece letters sequentially; a launch with
	// many pieces is usually shedding debris.
	if len(rec.IntlDesignator) >= 7 && !strings.Contains(rec.IntlDesignator, "DEB") {
		piece := rec.IntlDesignator[len(rec.IntlDesignator)-1]
		if piece >= 'B' && int(piece-'A') > 5 {
			return true
		}
	}

	// A large drag term means a small, high-drag object.
	if math.Abs(rec.Bstar) > 0.01 {
		return true
	}

	return false
}

// Classify assigns a debris type from the catalog name and known breakup
// parents.
func Classify(rec tle.TLE) Type {
	upper := strings.ToUpper(rec.Name)

	if strings.Contains(upper, "R/B") || strings.Contains(upper, "ROCKET") {
		return TypeRocketBody
	}
	if strings.Contains(upper, "FRAG") {
		return TypeFragmentation
	}
	if strings.Contains(upper, "DEB") {
		// DEB pieces near a known breakup parent are fragmentation;
		// otherwise they are shed payload debris.
		for _, parent := range knownFragmentationParents {
			if abs(rec.CatalogNumber-parent) < 5000 {
				return TypeFragmentation
			}
		}
		return TypePayloadDebris
	}
	if strings.Contains(upper, "COOLANT") || strings.Contains(upper, "NAK") ||
		strings.Contains(upper, "TANK") {
		return TypeMissionDebris
	}
	return TypeUnknown
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// EstimateSize buckets debris size from orbit altitude and drag.
func EstimateSize(rec tle.TLE) Size {
	altitude := altitudeKm(rec)

	if altitude < 300 && math.Abs(rec.Bstar) > 0.001 {
		return SizeSmall
	}
	if strings.Contains(strings.ToUpper(rec.Name), "R/B") {
		return SizeLarge
	}
	if math.Abs(rec.Bstar) > 0.005 {
		return SizeMedium
	}
	return SizeLarge
}

// EstimateRCS gives a rough radar cross-section in m² by size and type.
func EstimateRCS(rec tle.TLE) float64 {
	var base float64
	switch EstimateSize(rec) {
	case SizeLarge:
		base = 1.0
	case SizeMedium:
		base = 0.1
	default:
		base = 0.01
	}
	if Classify(rec) == TypeRocketBody {
		base *= 5.0
	}
	return base
}

// EstimateDecayDays guesses days until reentry; -1 means essentially
// permanent.
func EstimateDecayDays(rec tle.TLE) int {
	altitude := altitudeKm(rec)
	if altitude > 800 {
		return -1
	}
	if altitude < 200 {
		return 1
	}
	bstar := math.Abs(rec.Bstar) + 1e-10
	decayYears := math.Pow(altitude/100.0, 2.5) / (bstar * 1e6)
	return int(decayYears * 365)
}

func altitudeKm(rec tle.TLE) float64 {
	a := 42241.122 / math.Pow(rec.MeanMotionRevPerDay(), 2.0/3.0)
	return a - 6371.0
}

// Object is one classified debris record with its current state.
type Object struct {
	CatalogNumber int
	Name          string
	Origin        string // international designator
	Type          Type
	Size          Size
	RCS           float64
	AltitudeKm    float64
	DecayDays     int
	StoreIndex    int
}

// Field groups fragments sharing a launch designator prefix.
type Field struct {
	EventID        int
	EventName      string
	Members        []int // indices into the model's object list
	TotalFragments int
	CenterKm       [3]float64
	SpreadRadiusKm float64
}

// minFieldSize is the fragment count below which a designator group is not
// considered a field.
const minFieldSize = 3

// Model holds the classified debris population and its fields.
type Model struct {
	Objects []Object
	Fields  []Field
}

// BuildModel classifies the element set, keyed back to store indices.
func BuildModel(records []tle.TLE) *Model {
	m := &Model{}
	for i, rec := range records {
		if !IsDebris(rec) {
			continue
		}
		m.Objects = append(m.Objects, Object{
			CatalogNumber: rec.CatalogNumber,
			Name:          rec.Name,
			Origin:        rec.IntlDesignator,
			Type:          Classify(rec),
			Size:          EstimateSize(rec),
			RCS:           EstimateRCS(rec),
			AltitudeKm:    altitudeKm(rec),
			DecayDays:     EstimateDecayDays(rec),
			StoreIndex:    i,
		})
	}
	return m
}

// IdentifyFields groups debris by launch designator prefix using current
// positions from the position accessor.
func (m *Model) IdentifyFields(position func(storeIndex int) (x, y, z float64)) {
	m.Fields = nil

	groups := make(map[string][]int)
	for i, obj := range m.Objects {
		if len(obj.Origin) >= 5 {
			prefix := obj.Origin[:5]
			groups[prefix] = append(groups[prefix], i)
		}
	}

	prefixes := make([]string, 0, len(groups))
	for p := range groups {
		prefixes = append(prefixes, p)
	}
	sort.Strings(prefixes)

	fieldID := 0
	for _, prefix := range prefixes {
		members := groups[prefix]
		if len(members) < minFieldSize {
			continue
		}

		var cx, cy, cz float64
		for _, idx := range members {
			x, y, z := position(m.Objects[idx].StoreIndex)
			cx += x
			cy += y
			cz += z
		}
		n := float64(len(members))
		cx /= n
		cy /= n
		cz /= n

		var maxDist float64
		for _, idx := range members {
			x, y, z := position(m.Objects[idx].StoreIndex)
			dx, dy, dz := x-cx, y-cy, z-cz
			if d := math.Sqrt(dx*dx + dy*dy + dz*dz); d > maxDist {
				maxDist = d
			}
		}

		m.Fields = append(m.Fields, Field{
			EventID:        fieldID,
			EventName:      fmt.Sprintf("Debris from %s", prefix),
			Members:        members,
			TotalFragments: len(members),
			CenterKm:       [3]float64{cx, cy, cz},
			SpreadRadiusKm: maxDist,
		})
		fieldID++
	}
}

// InShell returns debris objects with altitude inside [minAlt, maxAlt] km.
func (m *Model) InShell(minAltKm, maxAltKm float64) []Object {
	var out []Object
	for _, obj := range m.Objects {
		if obj.AltitudeKm >= minAltKm && obj.AltitudeKm <= maxAltKm {
			out = append(out, obj)
		}
	}
	return out
}
