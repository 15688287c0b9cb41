// Package ratio implements the ratio-distributed beading strategy: a
// strategy.Strategy that keeps the outer wall at a constant width and lets the
// inner walls absorb every change in thickness.
//
// 🚀 How it works
//
//	The strategy is configured with one optimal width per bead, outer → inner,
//	e.g. [400 500 400] µm for an outer, an inner and another outer wall.
//
//	  1. The widths are reshaped to the requested bead count by inserting or
//	     removing entries around the middle (package widthset).
//	  2. The difference between the thickness and the reshaped total is the
//	     slack. It is spread with a parabolic weight that peaks on the middle
//	     bead and fades to zero DistributionRadius-1 beads away from it
//	     (package distribute).
//	  3. One or two beads are always split symmetrically, regardless of the
//	     configured widths.
//
// ✨ Transitions
//
//	TransitionThickness(n) tells the wall-count decision process where to
//	switch from n to n+1 beads. Odd counts split their middle bead
//	(WithSplitMiddleThreshold), even counts insert a new one between the two
//	innermost beads (WithAddMiddleThreshold).
//
// ⚙️ Usage:
//
//	s, err := ratio.New([]int64{400, 500, 400},
//	  ratio.WithDistributionRadius(3),
//	  ratio.WithSplitMiddleThreshold(0.5),
//	  ratio.WithAddMiddleThreshold(0.5),
//	)
//	if err != nil {
//	  // errors.Is(err, ratio.ErrEmptyWidths), ...
//	}
//	n := s.OptimalBeadCount(1600)
//	b := s.Compute(1600, n, 0)
//
// Performance: every operation is O(bead count) time and space.
package ratio
