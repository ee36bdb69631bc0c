package tle

import "sort"

// Merge combines two element sets keyed by catalog number. Where both sets
// carry the same object, the record with the later epoch wins. The result is
// ordered by catalog number.
func Merge(existing, updates []TLE) []TLE {
	merged := make(map[int]TLE, len(existing)+len(updates))
	for _, rec := range existing {
		merged[rec.CatalogNumber] = rec
	}
	for _, rec := range updates {
		cur, ok := merged[rec.CatalogNumber]
		if !ok || cur.EpochJD < rec.EpochJD {
			merged[rec.CatalogNumber] = rec
		}
	}

	out := make([]TLE, 0, len(merged))
	for _, rec := range merged {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CatalogNumber < out[j].CatalogNumber })
	return out
}
