// SPDX-License-Identifier: MIT
// Package: beading/widthset
//
// widthset.go - centered insertion/removal over an ordered width sequence.
//
// Contract:
//   • Inputs are never mutated; every call returns a fresh slice.
//   • Outer entries are preserved; growth and shrinkage happen around index n/2.
//   • Negative bead counts are clamped to 0 (empty result).

package widthset

// Adjust stretches or shrinks widths to exactly beadCount entries.
//
// Let n = len(widths) and diff = beadCount - n:
//   - diff > 0  - insert diff copies of widths[n/2] at index n/2.
//   - diff < 0  - remove the centered block RemovalBounds(n, -diff).
//   - diff == 0 - return a copy of widths.
//
// An empty widths sequence can only produce an empty result.
//
// Complexity: O(max(n, beadCount)) time and space.
func Adjust(widths []int64, beadCount int) []int64 {
	n := len(widths)
	if beadCount < 0 {
		beadCount = 0
	}
	if n == 0 {
		return []int64{}
	}

	diff := beadCount - n
	switch {
	case diff > 0:
		at := InsertionIndex(n)
		out := make([]int64, 0, beadCount)
		out = append(out, widths[:at]...)
		for i := 0; i < diff; i++ {
			out = append(out, widths[at])
		}
		out = append(out, widths[at:]...)

		return out

	case diff < 0:
		lo, hi := RemovalBounds(n, -diff)
		out := make([]int64, 0, n-(hi-lo))
		out = append(out, widths[:lo]...)
		out = append(out, widths[hi:]...)

		return out

	default:
		out := make([]int64, n)
		copy(out, widths)

		return out
	}
}

// InsertionIndex returns the index at which extra middle entries are inserted
// into a sequence of length n.
func InsertionIndex(n int) int {
	return n / 2
}

// RemovalBounds returns the half-open range [lo, hi) that removes d entries
// centered on index n/2 of a sequence of length n. When d is odd the extra
// entry comes from the inner (right) side of the center.
//
// The range is clamped to [0, n]; for 0 ≤ d ≤ n it is always exact.
func RemovalBounds(n, d int) (lo, hi int) {
	if d <= 0 {
		mid := n / 2
		return mid, mid
	}
	mid := n / 2
	lo = mid - d/2
	hi = mid + d/2 + d%2
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}

	return lo, hi
}

// Sum returns the total of widths.
func Sum(widths []int64) int64 {
	var total int64
	for _, w := range widths {
		total += w
	}

	return total
}
