// SPDX-License-Identifier: MIT
// Package: beading/ratio
//
// ratio.go - the ratio-distributed beading strategy.

package ratio

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/beading/distribute"
	"github.com/katalvlaran/beading/strategy"
	"github.com/katalvlaran/beading/widthset"
)

// Name identifies this strategy in settings files and logs.
const Name = "RatioDistributedBeadingStrategy"

// Strategy keeps the outer walls at their configured widths and pushes slack
// thickness into the inner walls with a parabolic falloff around the middle
// bead. Bead counts of one and two are always split symmetrically.
//
// A Strategy is immutable after New and safe for concurrent use.
type Strategy struct {
	strategy.Base

	widths        []int64
	fullThickness int64 // Σwidths

	minimumLineWidth     int64
	maximumLineWidth     int64
	splitMiddleThreshold float64
	addMiddleThreshold   float64
	distributionRadius   int
	falloff              float64
}

var (
	_ strategy.Strategy     = (*Strategy)(nil)
	_ strategy.Transitioner = (*Strategy)(nil)
)

// New builds a Strategy from per-bead optimal widths (outer → inner) and
// options. widths is copied.
//
// Errors: ErrEmptyWidths, ErrNonPositiveWidth, ErrThresholdRange,
// ErrLineWidth, ErrTransitionLength, ErrTransitionAngle (all wrapped).
func New(widths []int64, opts ...Option) (*Strategy, error) {
	cfg := newConfig(widths, opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Strategy{
		Base:                 strategy.NewBase(Name, cfg.widths[0], cfg.transitionLength, cfg.transitioningAngle),
		widths:               cfg.widths,
		fullThickness:        widthset.Sum(cfg.widths),
		minimumLineWidth:     cfg.minimumLineWidth,
		maximumLineWidth:     cfg.maximumLineWidth,
		splitMiddleThreshold: cfg.splitMiddleThreshold,
		addMiddleThreshold:   cfg.addMiddleThreshold,
		distributionRadius:   cfg.distributionRadius,
		falloff:              cfg.falloff(),
	}

	strategy.Logger().Debug("ratio: strategy configured",
		slog.Any("widths", s.widths),
		slog.Int64("min_line_width", s.minimumLineWidth),
		slog.Int64("max_line_width", s.maximumLineWidth),
		slog.Float64("split_threshold", s.splitMiddleThreshold),
		slog.Float64("add_threshold", s.addMiddleThreshold),
		slog.Int("distribution_radius", s.distributionRadius),
		slog.Float64("falloff", s.falloff),
	)

	return s, nil
}

// Compute returns the beading of thickness into beadCount beads.
//
//   - beadCount > 2  - configured widths adjusted to beadCount, slack spread
//     by the parabolic falloff.
//   - beadCount == 2 - two beads of thickness/2, configured widths ignored.
//   - beadCount == 1 - one bead spanning thickness.
//   - beadCount ≤ 0  - no beads; all thickness is left over.
//
// distanceToSource does not influence this strategy.
func (s *Strategy) Compute(thickness int64, beadCount int, distanceToSource int64) strategy.Beading {
	ret := strategy.Beading{TotalThickness: thickness}

	switch {
	case beadCount > 2:
		ret.BeadWidths, ret.ToolpathLocations = distribute.Distribute(
			thickness, widthset.Adjust(s.widths, beadCount), s.falloff)

	case beadCount == 2:
		outer := thickness / 2
		ret.BeadWidths = []int64{outer, outer}
		ret.ToolpathLocations = []int64{outer / 2, thickness - outer/2}

	case beadCount == 1:
		ret.BeadWidths = []int64{thickness}
		ret.ToolpathLocations = []int64{thickness / 2}

	default:
		ret.BeadWidths = []int64{}
		ret.ToolpathLocations = []int64{}
		ret.LeftOver = thickness
	}

	if l := strategy.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("ratio: computed beading",
			slog.Int64("thickness", thickness),
			slog.Int("bead_count", beadCount),
			slog.Any("widths", ret.BeadWidths),
			slog.Any("locations", ret.ToolpathLocations),
			slog.Int64("left_over", ret.LeftOver),
		)
	}

	return ret
}

// OptimalThickness returns the sum of the configured widths adjusted to
// beadCount.
func (s *Strategy) OptimalThickness(beadCount int) int64 {
	return widthset.Sum(widthset.Adjust(s.widths, beadCount))
}

// TransitionThickness returns OptimalThickness(lower) plus the middle width of
// the lower+1 configuration scaled by the split threshold (odd lower) or the
// add threshold (even lower). Negative counts are treated as 0.
func (s *Strategy) TransitionThickness(lowerBeadCount int) int64 {
	if lowerBeadCount < 0 {
		lowerBeadCount = 0
	}
	upper := widthset.Adjust(s.widths, lowerBeadCount+1)
	threshold := s.addMiddleThreshold
	if lowerBeadCount%2 == 1 {
		threshold = s.splitMiddleThreshold
	}

	return s.OptimalThickness(lowerBeadCount) + int64(float64(upper[lowerBeadCount/2])*threshold)
}

// OptimalBeadCount returns the bead count that best fits thickness.
//
// At or above Σwidths, extra beads of the middle width are added with
// half-width rounding. Below it, outer pairs are accumulated inward and the
// first even count whose pairs cover thickness is returned; if none does, the
// configured count is returned.
func (s *Strategy) OptimalBeadCount(thickness int64) int {
	n := len(s.widths)
	if thickness >= s.fullThickness {
		mid := s.widths[n/2]
		return n + int((thickness-s.fullThickness+mid/2)/mid)
	}

	var covered int64
	for i := 0; i < n/2; i++ {
		covered += 2 * s.widths[i]
		if covered >= thickness {
			return (i + 1) * 2
		}
	}

	return n
}

// OptimalWidthValues returns a copy of the configured widths.
func (s *Strategy) OptimalWidthValues() []int64 {
	return append([]int64(nil), s.widths...)
}

// MinimumLineWidth returns the advisory minimum bead width.
func (s *Strategy) MinimumLineWidth() int64 { return s.minimumLineWidth }

// MaximumLineWidth returns the advisory maximum bead width.
func (s *Strategy) MaximumLineWidth() int64 { return s.maximumLineWidth }

// SplitMiddleThreshold returns the odd-count transition ratio.
func (s *Strategy) SplitMiddleThreshold() float64 { return s.splitMiddleThreshold }

// AddMiddleThreshold returns the even-count transition ratio.
func (s *Strategy) AddMiddleThreshold() float64 { return s.addMiddleThreshold }

// DistributionRadius returns the configured radius, as given.
func (s *Strategy) DistributionRadius() int { return s.distributionRadius }
