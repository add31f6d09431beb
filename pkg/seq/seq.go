// Package seq provides small read-only predicates over integer sequences.
package seq

// IsSorted reports whether values is in non-decreasing order (duplicates
// allowed). It scans left to right and stops at the first inversion. Empty
// and single-element sequences are vacuously sorted. The input is never
// mutated.
func IsSorted(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}
	return true
}
