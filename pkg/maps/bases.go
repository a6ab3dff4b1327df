package maps

import (
	"cmp"
	"slices"
	"strings"
)

// ExtractBases lists every base placement regardless of owner, sorted by
// (q, r). Bases sharing a coordinate are all kept.
func ExtractBases(bases []RawBase) []BaseRecord {
	records := make([]BaseRecord, 0, len(bases))
	for _, b := range bases {
		records = append(records, BaseRecord{
			Q:        b.X,
			R:        b.Y,
			BaseType: strings.ToLower(b.BaseType),
		})
	}

	slices.SortStableFunc(records, func(a, b BaseRecord) int {
		return compareQR(a.Q, a.R, b.Q, b.R)
	})
	return records
}

// compareQR orders coordinates by q, then r.
func compareQR(aq, ar, bq, br int) int {
	return cmp.Or(cmp.Compare(aq, bq), cmp.Compare(ar, br))
}
