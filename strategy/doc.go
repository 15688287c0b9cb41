// Package strategy defines the beading contract shared by every wall
// distribution strategy, the Beading result value, and the small amount of
// state common to all strategies (Base).
//
// 🚀 What is a beading?
//
//	A wall region of thickness T is filled with n concentric lines
//	("beads"). A Beading records the width of every bead (outer → inner),
//	the centerline offset of every bead measured from one face of the
//	region, and any thickness that no bead covers.
//
//	  face                                         middle
//	  |<- w0 ->|<--- w1 --->|<---- w2 ---->| ...
//	      ^          ^              ^
//	     loc0       loc1           loc2
//
// ✨ The contract:
//
//   - Compute(T, n, dist)      - the beading for exactly n beads.
//   - OptimalThickness(n)      - thickness for which n beads need no slack.
//   - TransitionThickness(n)   - thickness above which n+1 beads are preferred.
//   - OptimalBeadCount(T)      - naive inverse of OptimalThickness.
//
// Concrete strategies (see package ratio) are immutable after construction
// and safe for concurrent use. The package logger is silent until SetLogger
// is called.
package strategy
