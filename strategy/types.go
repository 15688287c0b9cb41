// SPDX-License-Identifier: MIT
// Package: beading/strategy
//
// types.go - the Beading result value.

package strategy

// Beading is the result of one Compute call. It is created fresh per call and
// owned by the caller.
//
// Fields:
//   - TotalThickness    - the input thickness, echoed back.
//   - BeadWidths        - width of every bead, outer → inner.
//   - ToolpathLocations - centerline offset of every bead from one face;
//     same order and length as BeadWidths, non-decreasing.
//   - LeftOver          - thickness not assigned to any bead; zero whenever
//     at least one bead exists.
type Beading struct {
	TotalThickness    int64
	BeadWidths        []int64
	ToolpathLocations []int64
	LeftOver          int64
}

// Len returns the number of beads.
func (b Beading) Len() int {
	return len(b.BeadWidths)
}

// Sum returns the total width covered by beads. Due to per-bead truncation it
// may differ slightly from TotalThickness.
func (b Beading) Sum() int64 {
	var total int64
	for _, w := range b.BeadWidths {
		total += w
	}

	return total
}
