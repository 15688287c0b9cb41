// SPDX-License-Identifier: MIT
// Package: beading/ratio
//
// options.go - functional options for New.
//
// Contract:
//   • Options only record values; New validates the resolved config and
//     reports violations as sentinel errors (see errors.go). Values come from
//     slicing settings files, so they are user input, not programmer input.
//   • Later options override earlier ones.

package ratio

// Option customizes a Strategy before construction.
type Option func(*config)

// WithMinimumLineWidth sets the advisory minimum bead width. Callers consult
// it when deciding feasibility; Compute does not enforce it.
func WithMinimumLineWidth(w int64) Option {
	return func(c *config) {
		c.minimumLineWidth = w
		c.hasMinimumLineWidth = true
	}
}

// WithMaximumLineWidth sets the advisory maximum bead width.
func WithMaximumLineWidth(w int64) Option {
	return func(c *config) {
		c.maximumLineWidth = w
		c.hasMaximumLineWidth = true
	}
}

// WithDefaultTransitionLength sets the length over which a bead-count
// transition is spread.
func WithDefaultTransitionLength(l int64) Option {
	return func(c *config) {
		c.transitionLength = l
		c.hasTransitionLength = true
	}
}

// WithTransitioningAngle sets the transitioning angle in radians.
func WithTransitioningAngle(rad float64) Option {
	return func(c *config) {
		c.transitioningAngle = rad
	}
}

// WithSplitMiddleThreshold sets the ratio of the middle width above which an
// odd bead count splits its middle bead in two.
func WithSplitMiddleThreshold(r float64) Option {
	return func(c *config) {
		c.splitMiddleThreshold = r
	}
}

// WithAddMiddleThreshold sets the ratio of the middle width above which an
// even bead count gains a new middle bead.
func WithAddMiddleThreshold(r float64) Option {
	return func(c *config) {
		c.addMiddleThreshold = r
	}
}

// WithDistributionRadius sets how many beads around the middle share the
// slack. Radii below 2 feed the middle bead(s) only.
func WithDistributionRadius(r int) Option {
	return func(c *config) {
		c.distributionRadius = r
	}
}
