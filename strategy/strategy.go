// SPDX-License-Identifier: MIT
// Package: beading/strategy
//
// strategy.go - the four-operation contract and the shared Base.

package strategy

// Strategy is the capability every beading strategy provides to the wall-count
// decision process. Implementations must be safe for concurrent use.
type Strategy interface {
	// Compute returns the beading of thickness into exactly beadCount beads.
	// distanceToSource is accepted for strategies that vary with it; it may
	// be ignored.
	Compute(thickness int64, beadCount int, distanceToSource int64) Beading

	// OptimalThickness returns the thickness for which beadCount beads need
	// no slack distribution.
	OptimalThickness(beadCount int) int64

	// TransitionThickness returns the thickness above which lowerBeadCount+1
	// beads should be preferred over lowerBeadCount.
	TransitionThickness(lowerBeadCount int) int64

	// OptimalBeadCount returns the bead count that best fits thickness.
	OptimalBeadCount(thickness int64) int
}

// Transitioner exposes the transition parameters carried by Base.
type Transitioner interface {
	Name() string
	OptimalWidth() int64
	TransitioningLength(lowerBeadCount int) int64
	TransitioningAngle() float64
}

// Base holds the values common to all strategies. It is meant to be embedded
// by value in a concrete strategy.
type Base struct {
	name                    string
	optimalWidth            int64
	defaultTransitionLength int64
	transitioningAngle      float64
}

// NewBase returns a Base with the given name and transition parameters.
// optimalWidth is the width of a single unstressed bead (usually the outer one).
func NewBase(name string, optimalWidth, defaultTransitionLength int64, transitioningAngle float64) Base {
	return Base{
		name:                    name,
		optimalWidth:            optimalWidth,
		defaultTransitionLength: defaultTransitionLength,
		transitioningAngle:      transitioningAngle,
	}
}

// Name returns the strategy name.
func (b Base) Name() string { return b.name }

// String implements fmt.Stringer.
func (b Base) String() string { return b.name }

// OptimalWidth returns the width of a single unstressed bead.
func (b Base) OptimalWidth() int64 { return b.optimalWidth }

// TransitioningLength returns the length along the region over which a
// transition from lowerBeadCount to lowerBeadCount+1 beads is spread.
func (b Base) TransitioningLength(lowerBeadCount int) int64 {
	return b.defaultTransitionLength
}

// TransitioningAngle returns the maximum angle (radians) between region
// boundaries at which transitions are still placed.
func (b Base) TransitioningAngle() float64 { return b.transitioningAngle }

// NonlinearThicknesses returns thicknesses between the lower and upper optimum
// at which the beading changes non-linearly. Base strategies have none.
func (b Base) NonlinearThicknesses(lowerBeadCount int) []int64 {
	return nil
}

// TransitionAnchorPos returns where, as a fraction of the transitioning length,
// the transition from lowerBeadCount to lowerBeadCount+1 beads is anchored:
//
//	1 - (transition - lowerOptimum) / (upperOptimum - lowerOptimum)
//
// It returns 0 when both optimal thicknesses coincide.
func TransitionAnchorPos(s Strategy, lowerBeadCount int) float64 {
	lower := s.OptimalThickness(lowerBeadCount)
	transition := s.TransitionThickness(lowerBeadCount)
	upper := s.OptimalThickness(lowerBeadCount + 1)
	if upper == lower {
		return 0
	}

	return 1 - float64(transition-lower)/float64(upper-lower)
}
