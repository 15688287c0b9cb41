// SPDX-License-Identifier: MIT
// Package: beading/settings
//
// settings.go - YAML slicing settings → strategy construction.

package settings

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/beading/ratio"
	"github.com/katalvlaran/beading/strategy"
)

// StrategyRatioDistributed selects ratio.Strategy.
const StrategyRatioDistributed = "ratio_distributed"

// Settings holds the beading section of a slicing profile. Lengths are in
// micrometres, the transition angle in degrees.
type Settings struct {
	Strategy string `yaml:"strategy"`

	// Either an explicit outer → inner list...
	OptimalWidths []int64 `yaml:"optimal_widths"`
	// ...or a symmetric wall stack derived from these three.
	OuterWallWidth int64 `yaml:"outer_wall_width"`
	InnerWallWidth int64 `yaml:"inner_wall_width"`
	WallCount      int   `yaml:"wall_count"`

	MinimumLineWidth   *int64   `yaml:"minimum_line_width"`
	MaximumLineWidth   *int64   `yaml:"maximum_line_width"`
	TransitionLength   *int64   `yaml:"transition_length"`
	TransitionAngleDeg *float64 `yaml:"transition_angle_deg"`

	WallSplitMiddleThreshold float64 `yaml:"wall_split_middle_threshold"`
	WallAddMiddleThreshold   float64 `yaml:"wall_add_middle_threshold"`
	DistributionRadius       int     `yaml:"distribution_radius"`
}

// Load reads settings from a YAML file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	return Parse(data)
}

// Parse decodes settings from YAML and fills defaults for omitted keys.
func Parse(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	// Set defaults if not provided
	if s.Strategy == "" {
		s.Strategy = StrategyRatioDistributed
	}
	if s.WallSplitMiddleThreshold == 0 {
		s.WallSplitMiddleThreshold = ratio.DefaultSplitMiddleThreshold
	}
	if s.WallAddMiddleThreshold == 0 {
		s.WallAddMiddleThreshold = ratio.DefaultAddMiddleThreshold
	}
	if s.DistributionRadius == 0 {
		s.DistributionRadius = ratio.DefaultDistributionRadius
	}

	return &s, nil
}

// Widths returns the outer → inner optimal widths. An explicit optimal_widths
// list wins; otherwise the stack is [outer, inner × (wall_count-2), outer],
// with a single outer wall for wall_count 1.
func (s *Settings) Widths() ([]int64, error) {
	if len(s.OptimalWidths) > 0 {
		return append([]int64(nil), s.OptimalWidths...), nil
	}

	switch {
	case s.WallCount < 0:
		return nil, fmt.Errorf("wall_count = %d: %w", s.WallCount, ErrWallCount)
	case s.WallCount == 0:
		return nil, ErrNoWidths
	case s.OuterWallWidth == 0:
		return nil, fmt.Errorf("wall_count = %d without outer_wall_width: %w", s.WallCount, ErrWallCount)
	case s.WallCount == 1:
		return []int64{s.OuterWallWidth}, nil
	case s.WallCount > 2 && s.InnerWallWidth == 0:
		return nil, fmt.Errorf("wall_count = %d without inner_wall_width: %w", s.WallCount, ErrWallCount)
	}

	widths := make([]int64, s.WallCount)
	widths[0], widths[s.WallCount-1] = s.OuterWallWidth, s.OuterWallWidth
	for i := 1; i < s.WallCount-1; i++ {
		widths[i] = s.InnerWallWidth
	}

	return widths, nil
}

// Options translates the settings into ratio options. Omitted optional keys
// leave the strategy's derived defaults in place.
func (s *Settings) Options() []ratio.Option {
	opts := []ratio.Option{
		ratio.WithSplitMiddleThreshold(s.WallSplitMiddleThreshold),
		ratio.WithAddMiddleThreshold(s.WallAddMiddleThreshold),
		ratio.WithDistributionRadius(s.DistributionRadius),
	}
	if s.MinimumLineWidth != nil {
		opts = append(opts, ratio.WithMinimumLineWidth(*s.MinimumLineWidth))
	}
	if s.MaximumLineWidth != nil {
		opts = append(opts, ratio.WithMaximumLineWidth(*s.MaximumLineWidth))
	}
	if s.TransitionLength != nil {
		opts = append(opts, ratio.WithDefaultTransitionLength(*s.TransitionLength))
	}
	if s.TransitionAngleDeg != nil {
		opts = append(opts, ratio.WithTransitioningAngle(*s.TransitionAngleDeg*math.Pi/180))
	}

	return opts
}

// Build constructs the configured strategy.
func (s *Settings) Build() (strategy.Strategy, error) {
	if s.Strategy != StrategyRatioDistributed {
		return nil, fmt.Errorf("%q: %w", s.Strategy, ErrUnknownStrategy)
	}
	widths, err := s.Widths()
	if err != nil {
		return nil, err
	}
	rs, err := ratio.New(widths, s.Options()...)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", s.Strategy, err)
	}
	strategy.Logger().Debug("settings: strategy built", "strategy", rs.Name(), "widths", widths)

	return rs, nil
}
