// SPDX-License-Identifier: MIT
// Package: beading/distribute
//
// distribute.go - parabolic slack weights, width derivation and cumulative
// toolpath offsets.

package distribute

// Falloff returns the weight falloff constant k for a distribution radius.
// Radii below 2 collapse to k = 1.
func Falloff(radius int) float64 {
	if radius < 2 {
		return 1
	}
	d := float64(radius - 1)

	return 1 / (d * d)
}

// Weight returns the unnormalized slack weight of bead idx among count beads.
// It peaks at 1 on the middle index and is clamped at 0 beyond the radius.
func Weight(idx, count int, k float64) float64 {
	middle := float64(count-1) / 2
	dev := float64(idx) - middle
	w := 1 - k*dev*dev
	if w < 0 {
		return 0
	}

	return w
}

// Weights returns Weight(i, count, k) for every bead index.
func Weights(count int, k float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	ws := make([]float64, count)
	for i := range ws {
		ws[i] = Weight(i, count, k)
	}

	return ws
}

// Shares returns each bead's fraction of the total weight. For k ≤ 1 the
// central bead(s) weigh at least 0.75; a zero total yields zero shares.
func Shares(count int, k float64) []float64 {
	if count <= 0 {
		return []float64{}
	}
	ws := Weights(count, k)
	var total float64
	for _, w := range ws {
		total += w
	}
	if total == 0 {
		return make([]float64, count)
	}
	for i := range ws {
		ws[i] /= total
	}

	return ws
}

// Distribute spreads thickness - Σbase over len(base) beads and returns the
// resulting bead widths and toolpath locations (outer → inner).
//
// base is not modified. An empty base yields two empty slices.
//
// Complexity: O(len(base)) time and space.
func Distribute(thickness int64, base []int64, k float64) (widths, locations []int64) {
	count := len(base)
	if count == 0 {
		return []int64{}, []int64{}
	}

	var optimal int64
	for _, w := range base {
		optimal += w
	}
	slack := float64(thickness - optimal)

	widths = make([]int64, count)
	for i, share := range Shares(count, k) {
		// int64 conversion truncates toward zero.
		widths[i] = base[i] + int64(slack*share)
	}

	return widths, Locations(widths)
}

// Locations derives cumulative centerline offsets for already-known widths.
func Locations(widths []int64) []int64 {
	locs := make([]int64, len(widths))
	for i, w := range widths {
		if i == 0 {
			locs[i] = w / 2
			continue
		}
		locs[i] = locs[i-1] + (widths[i-1]+w)/2
	}

	return locs
}
