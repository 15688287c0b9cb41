// Package widthset reshapes a configured sequence of per-bead optimal widths
// to a requested bead count.
//
// The configured sequence is ordered outer → inner and has a "natural" length
// N. Asking for more beads inserts copies of the middle width at index N/2;
// asking for fewer removes a centered block. The outermost widths therefore
// stay untouched for as long as possible, which keeps the visible wall stable
// while the inner walls absorb the change.
//
// Example:
//
//	widths := []int64{400, 500, 400}
//	widthset.Adjust(widths, 5) // [400 500 500 500 400]
//	widthset.Adjust(widths, 2) // [400 400]
//	widthset.Adjust(widths, 1) // [400]
//
// All functions are pure and safe for concurrent use.
package widthset
