// Package distribute apportions slack wall thickness across beads with a
// parabolic weight centered on the middle bead.
//
// Given base widths w[0..n) and a thickness T, the slack S = T - Σw is split
// as
//
//	weight(i) = max(0, 1 - k·(i - (n-1)/2)²)
//	width(i)  = w[i] + trunc(S · weight(i) / Σweight)
//
// where k = 1/(r-1)² for a distribution radius r ≥ 2 and k = 1 otherwise.
// Each bead's share is truncated independently, so Σwidth can fall short of T
// by at most n-1 units; the shortfall is left alone.
//
// Toolpath locations are the centerlines of contiguous width bands measured
// from one face of the region:
//
//	loc(0) = width(0)/2
//	loc(i) = loc(i-1) + (width(i-1) + width(i))/2
//
// Everything here is pure and allocation-bounded (O(n) per call).
package distribute
