// SPDX-License-Identifier: MIT
// Package: beading/ratio
//
// config.go - resolved configuration and deterministic defaults.
//
// Defaults:
//   • split / add middle thresholds = 0.5
//   • distribution radius           = 2
//   • transitioning angle           = 10°
//   • transition length             = first (outer) width
//   • minimum line width            = 85% of the smallest width
//   • maximum line width            = 2× the largest width

package ratio

import (
	"math"

	"github.com/katalvlaran/beading/distribute"
)

const (
	// DefaultSplitMiddleThreshold is the default odd-count transition ratio.
	DefaultSplitMiddleThreshold = 0.5
	// DefaultAddMiddleThreshold is the default even-count transition ratio.
	DefaultAddMiddleThreshold = 0.5
	// DefaultDistributionRadius is the default slack distribution radius.
	DefaultDistributionRadius = 2
	// DefaultTransitioningAngle is 10 degrees, in radians.
	DefaultTransitioningAngle = 10 * math.Pi / 180

	// minimumLineWidthRatio scales the smallest width into the default
	// minimum line width.
	minimumLineWidthRatio = 0.85
	// maximumLineWidthFactor scales the largest width into the default
	// maximum line width.
	maximumLineWidthFactor = 2
)

// config aggregates every knob of a Strategy. Length-valued fields carry a
// has* flag because their defaults derive from the widths.
type config struct {
	widths []int64

	minimumLineWidth    int64
	hasMinimumLineWidth bool
	maximumLineWidth    int64
	hasMaximumLineWidth bool
	transitionLength    int64
	hasTransitionLength bool

	transitioningAngle   float64
	splitMiddleThreshold float64
	addMiddleThreshold   float64
	distributionRadius   int
}

// newConfig copies widths, applies opts in order and resolves derived
// defaults. It does not validate.
func newConfig(widths []int64, opts ...Option) config {
	cfg := config{
		widths:               append([]int64(nil), widths...),
		transitioningAngle:   DefaultTransitioningAngle,
		splitMiddleThreshold: DefaultSplitMiddleThreshold,
		addMiddleThreshold:   DefaultAddMiddleThreshold,
		distributionRadius:   DefaultDistributionRadius,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.widths) == 0 {
		return cfg
	}

	smallest, largest := cfg.widths[0], cfg.widths[0]
	for _, w := range cfg.widths[1:] {
		smallest = min(smallest, w)
		largest = max(largest, w)
	}
	if !cfg.hasMinimumLineWidth {
		cfg.minimumLineWidth = int64(float64(smallest) * minimumLineWidthRatio)
	}
	if !cfg.hasMaximumLineWidth {
		cfg.maximumLineWidth = largest * maximumLineWidthFactor
	}
	if !cfg.hasTransitionLength {
		cfg.transitionLength = cfg.widths[0]
	}

	return cfg
}

// validate reports the first violated constraint.
func (c config) validate() error {
	if len(c.widths) == 0 {
		return ratioErrorf(opNew, ErrEmptyWidths, "got 0 widths")
	}
	for i, w := range c.widths {
		if w <= 0 {
			return ratioErrorf(opNew, ErrNonPositiveWidth, "width[%d] = %d", i, w)
		}
	}
	if !validRatio(c.splitMiddleThreshold) {
		return ratioErrorf(opNew, ErrThresholdRange, "split middle threshold = %v", c.splitMiddleThreshold)
	}
	if !validRatio(c.addMiddleThreshold) {
		return ratioErrorf(opNew, ErrThresholdRange, "add middle threshold = %v", c.addMiddleThreshold)
	}
	if c.minimumLineWidth <= 0 {
		return ratioErrorf(opNew, ErrLineWidth, "minimum line width = %d", c.minimumLineWidth)
	}
	if c.maximumLineWidth < c.minimumLineWidth {
		return ratioErrorf(opNew, ErrLineWidth, "maximum line width %d < minimum %d", c.maximumLineWidth, c.minimumLineWidth)
	}
	if c.transitionLength < 0 {
		return ratioErrorf(opNew, ErrTransitionLength, "transition length = %d", c.transitionLength)
	}
	if math.IsNaN(c.transitioningAngle) || c.transitioningAngle < 0 || c.transitioningAngle >= math.Pi {
		return ratioErrorf(opNew, ErrTransitionAngle, "angle = %v", c.transitioningAngle)
	}

	return nil
}

// falloff returns the parabola constant for the configured radius.
func (c config) falloff() float64 {
	return distribute.Falloff(c.distributionRadius)
}

// validRatio reports whether r lies in (0,1].
func validRatio(r float64) bool {
	return r > 0 && r <= 1
}
