package demographics

import (
	"fmt"
	"sort"
)

// SortByPIDDesc reorders each group's records by descending numeric
// patient-ID suffix, in place. Group order is unchanged. The sort is stable,
// so records with equal IDs keep their relative input order. The first
// unparseable ID aborts the whole sort.
func SortByPIDDesc(t *Table) error {
	for _, key := range t.keys {
		recs := t.groups[key]

		// Extract all suffixes up front so a malformed ID cannot leave the
		// group half-sorted.
		nums := make([]uint64, len(recs))
		for i, rec := range recs {
			n, err := PIDNumber(rec.PatientID)
			if err != nil {
				return fmt.Errorf("group %q, record %s: %w", key, rec.PatientID, err)
			}
			nums[i] = n
		}

		order := make([]int, len(recs))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return nums[order[a]] > nums[order[b]]
		})

		sorted := make([]Record, len(recs))
		for i, from := range order {
			sorted[i] = recs[from]
		}
		t.groups[key] = sorted
	}

	return nil
}
