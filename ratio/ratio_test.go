package ratio_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/beading/ratio"
	"github.com/katalvlaran/beading/strategy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newThreeWall returns the [400 500 400] strategy used throughout the tests:
// radius 3, both thresholds 0.5.
func newThreeWall(t testing.TB) *ratio.Strategy {
	t.Helper()
	s, err := ratio.New([]int64{400, 500, 400},
		ratio.WithMinimumLineWidth(300),
		ratio.WithDefaultTransitionLength(400),
		ratio.WithSplitMiddleThreshold(0.5),
		ratio.WithAddMiddleThreshold(0.5),
		ratio.WithDistributionRadius(3),
	)
	require.NoError(t, err)

	return s
}

// TestCompute_Table pins full Beading values, including the degenerate counts.
func TestCompute_Table(t *testing.T) {
	s := newThreeWall(t)
	tests := []struct {
		name      string
		thickness int64
		beadCount int
		want      strategy.Beading
	}{
		{
			name: "zero beads, zero thickness", thickness: 0, beadCount: 0,
			want: strategy.Beading{BeadWidths: []int64{}, ToolpathLocations: []int64{}},
		},
		{
			name: "zero beads keep everything as leftover", thickness: 750, beadCount: 0,
			want: strategy.Beading{TotalThickness: 750, BeadWidths: []int64{}, ToolpathLocations: []int64{}, LeftOver: 750},
		},
		{
			name: "negative bead count behaves like zero", thickness: 750, beadCount: -2,
			want: strategy.Beading{TotalThickness: 750, BeadWidths: []int64{}, ToolpathLocations: []int64{}, LeftOver: 750},
		},
		{
			name: "single bead spans the region", thickness: 7, beadCount: 1,
			want: strategy.Beading{TotalThickness: 7, BeadWidths: []int64{7}, ToolpathLocations: []int64{3}},
		},
		{
			name: "two beads split evenly", thickness: 1000, beadCount: 2,
			want: strategy.Beading{TotalThickness: 1000, BeadWidths: []int64{500, 500}, ToolpathLocations: []int64{250, 750}},
		},
		{
			name: "two beads with odd thickness", thickness: 5, beadCount: 2,
			want: strategy.Beading{TotalThickness: 5, BeadWidths: []int64{2, 2}, ToolpathLocations: []int64{1, 4}},
		},
		{
			name: "optimal thickness needs no slack", thickness: 1300, beadCount: 3,
			want: strategy.Beading{TotalThickness: 1300, BeadWidths: []int64{400, 500, 400}, ToolpathLocations: []int64{200, 650, 1100}},
		},
		{
			name: "positive slack", thickness: 1900, beadCount: 3,
			want: strategy.Beading{TotalThickness: 1900, BeadWidths: []int64{580, 740, 580}, ToolpathLocations: []int64{290, 950, 1610}},
		},
		{
			name: "negative slack", thickness: 1200, beadCount: 3,
			want: strategy.Beading{TotalThickness: 1200, BeadWidths: []int64{370, 460, 370}, ToolpathLocations: []int64{185, 600, 1015}},
		},
		{
			name: "inserted middle bead", thickness: 2050, beadCount: 4,
			want: strategy.Beading{TotalThickness: 2050, BeadWidths: []int64{439, 585, 585, 439}, ToolpathLocations: []int64{219, 731, 1316, 1828}},
		},
		{
			name: "outer walls outside the radius stay fixed", thickness: 3000, beadCount: 5,
			want: strategy.Beading{TotalThickness: 3000, BeadWidths: []int64{400, 710, 780, 710, 400}, ToolpathLocations: []int64{200, 755, 1500, 2245, 2800}},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got := s.Compute(tc.thickness, tc.beadCount, 0)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Compute(%d, %d) mismatch (-want +got):\n%s", tc.thickness, tc.beadCount, diff)
			}
		})
	}
}

// TestCompute_TwoBeadsIgnoreConfiguredWidths checks the 50/50 split for any
// thickness, independent of the configured outer width.
func TestCompute_TwoBeadsIgnoreConfiguredWidths(t *testing.T) {
	s := newThreeWall(t)
	for _, thickness := range []int64{1, 2, 99, 400, 801, 1234} {
		b := s.Compute(thickness, 2, 0)
		half := thickness / 2
		assert.Equal(t, []int64{half, half}, b.BeadWidths)
		assert.Equal(t, []int64{thickness / 4, thickness - thickness/4}, b.ToolpathLocations)
		assert.Zero(t, b.LeftOver)
	}
}

// TestCompute_DistanceToSourceIgnored verifies the extra argument has no effect.
func TestCompute_DistanceToSourceIgnored(t *testing.T) {
	s := newThreeWall(t)
	ref := s.Compute(2222, 4, 0)
	for _, d := range []int64{-10, 1, 5000} {
		assert.Equal(t, ref, s.Compute(2222, 4, d))
	}
}

// TestCompute_Invariants sweeps thickness and bead count and checks ordering,
// bounds, lengths and the truncation bound.
func TestCompute_Invariants(t *testing.T) {
	s := newThreeWall(t)
	for beadCount := 3; beadCount <= 9; beadCount++ {
		optimal := s.OptimalThickness(beadCount)
		for thickness := optimal; thickness <= optimal+1500; thickness += 53 {
			b := s.Compute(thickness, beadCount, 0)
			require.Len(t, b.BeadWidths, beadCount)
			require.Len(t, b.ToolpathLocations, beadCount)
			assert.Zero(t, b.LeftOver)
			assert.Equal(t, thickness, b.TotalThickness)

			for i, loc := range b.ToolpathLocations {
				assert.GreaterOrEqual(t, loc, int64(0))
				assert.LessOrEqual(t, loc, thickness)
				if i > 0 {
					assert.GreaterOrEqual(t, loc, b.ToolpathLocations[i-1])
				}
			}

			shortfall := thickness - b.Sum()
			assert.GreaterOrEqual(t, shortfall, int64(0), "n=%d T=%d", beadCount, thickness)
			assert.LessOrEqual(t, shortfall, int64(beadCount-1), "n=%d T=%d", beadCount, thickness)
		}
	}
}

// TestCompute_OuterWallStable checks that with radius 3 the outer walls of a
// five-bead beading keep their configured width whatever the slack.
func TestCompute_OuterWallStable(t *testing.T) {
	s := newThreeWall(t)
	for thickness := int64(2300); thickness <= 3300; thickness += 100 {
		b := s.Compute(thickness, 5, 0)
		assert.Equal(t, int64(400), b.BeadWidths[0], "T=%d", thickness)
		assert.Equal(t, int64(400), b.BeadWidths[4], "T=%d", thickness)
	}
}

// TestOptimalThickness pins the sum of adjusted widths.
func TestOptimalThickness(t *testing.T) {
	s := newThreeWall(t)
	want := []int64{0, 400, 800, 1300, 1800, 2300, 2800}
	for n, w := range want {
		assert.Equal(t, w, s.OptimalThickness(n), "n=%d", n)
	}
	assert.Equal(t, int64(0), s.OptimalThickness(-1))
}

// TestOptimalThickness_Monotonic checks non-decreasing growth.
func TestOptimalThickness_Monotonic(t *testing.T) {
	s, err := ratio.New([]int64{380, 420, 450, 420, 390})
	require.NoError(t, err)
	prev := s.OptimalThickness(0)
	for n := 1; n <= 20; n++ {
		cur := s.OptimalThickness(n)
		assert.GreaterOrEqual(t, cur, prev, "n=%d", n)
		prev = cur
	}
}

// TestTransitionThickness pins the vector-based formula: the middle width is
// taken from the lower+1 configuration, the threshold alternates by parity.
func TestTransitionThickness(t *testing.T) {
	s := newThreeWall(t)
	assert.Equal(t, []int64{200, 600, 1050, 1550, 2050, 2550}, transitions(s, 6))

	asym, err := ratio.New([]int64{400, 500, 400},
		ratio.WithSplitMiddleThreshold(0.3),
		ratio.WithAddMiddleThreshold(0.7),
	)
	require.NoError(t, err)
	assert.Equal(t, []int64{280, 520, 1150, 1450, 2150, 2450}, transitions(asym, 6))

	even, err := ratio.New([]int64{300, 450, 460, 310})
	require.NoError(t, err)
	assert.Equal(t, []int64{150, 450, 835, 1285, 1750, 2210}, transitions(even, 6))

	assert.Equal(t, s.TransitionThickness(0), s.TransitionThickness(-3), "negative counts clamp to 0")
}

// TestTransitionThickness_BetweenOptima checks lower optimum ≤ transition ≤
// upper optimum for every count.
func TestTransitionThickness_BetweenOptima(t *testing.T) {
	s := newThreeWall(t)
	for n := 0; n < 12; n++ {
		tr := s.TransitionThickness(n)
		assert.GreaterOrEqual(t, tr, s.OptimalThickness(n), "n=%d", n)
		assert.LessOrEqual(t, tr, s.OptimalThickness(n+1), "n=%d", n)
	}
}

// TestOptimalBeadCount pins both branches, including the (i+1)*2 pairing.
func TestOptimalBeadCount(t *testing.T) {
	s := newThreeWall(t)
	tests := []struct {
		thickness int64
		want      int
	}{
		{0, 2},
		{500, 2},
		{800, 2},
		{801, 3},
		{1299, 3},
		{1300, 3},
		{1549, 3},
		{1550, 4},
		{2049, 4},
		{2050, 5},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, s.OptimalBeadCount(tc.thickness), "thickness=%d", tc.thickness)
	}

	even, err := ratio.New([]int64{300, 450, 460, 310})
	require.NoError(t, err)
	assert.Equal(t, 2, even.OptimalBeadCount(600))
	assert.Equal(t, 4, even.OptimalBeadCount(601))
	assert.Equal(t, 4, even.OptimalBeadCount(1519))
	assert.Equal(t, 4, even.OptimalBeadCount(1520))
	assert.Equal(t, 5, even.OptimalBeadCount(1750))

	single, err := ratio.New([]int64{420})
	require.NoError(t, err)
	assert.Equal(t, 1, single.OptimalBeadCount(0))
	assert.Equal(t, 1, single.OptimalBeadCount(420))
	assert.Equal(t, 2, single.OptimalBeadCount(630))
}

// TestOptimalBeadCount_InvertsOptimalThickness checks the forward/inverse
// round trip at and above the configured count.
func TestOptimalBeadCount_InvertsOptimalThickness(t *testing.T) {
	s := newThreeWall(t)
	for n := 3; n <= 15; n++ {
		assert.Equal(t, n, s.OptimalBeadCount(s.OptimalThickness(n)), "n=%d", n)
	}
}

// TestOptimalBeadCount_AgreesWithTransitions checks that above the full
// configured thickness the inverse switches exactly at TransitionThickness.
func TestOptimalBeadCount_AgreesWithTransitions(t *testing.T) {
	s := newThreeWall(t)
	for n := 3; n <= 10; n++ {
		tr := s.TransitionThickness(n)
		assert.Equal(t, n, s.OptimalBeadCount(tr-1), "just below transition %d", n)
		assert.Equal(t, n+1, s.OptimalBeadCount(tr), "at transition %d", n)
	}
}

// TestTransitionAnchorPos checks the base helper against this strategy.
func TestTransitionAnchorPos(t *testing.T) {
	s := newThreeWall(t)
	assert.InDelta(t, 0.5, strategy.TransitionAnchorPos(s, 2), 1e-12)
	assert.InDelta(t, 0.5, strategy.TransitionAnchorPos(s, 3), 1e-12)

	asym, err := ratio.New([]int64{400, 500, 400}, ratio.WithSplitMiddleThreshold(0.3))
	require.NoError(t, err)
	assert.InDelta(t, 0.7, strategy.TransitionAnchorPos(asym, 3), 1e-12)
}

// TestAccessors verifies configuration is reported back and never aliased.
func TestAccessors(t *testing.T) {
	widths := []int64{400, 500, 400}
	s, err := ratio.New(widths,
		ratio.WithMinimumLineWidth(300),
		ratio.WithMaximumLineWidth(900),
		ratio.WithDefaultTransitionLength(250),
		ratio.WithTransitioningAngle(0.5),
		ratio.WithSplitMiddleThreshold(0.4),
		ratio.WithAddMiddleThreshold(0.6),
		ratio.WithDistributionRadius(1),
	)
	require.NoError(t, err)

	widths[1] = 1
	got := s.OptimalWidthValues()
	assert.Equal(t, []int64{400, 500, 400}, got, "New copies its input")
	got[0] = 2
	assert.Equal(t, []int64{400, 500, 400}, s.OptimalWidthValues(), "accessor returns a copy")

	assert.Equal(t, ratio.Name, s.Name())
	assert.Equal(t, ratio.Name, s.String())
	assert.Equal(t, int64(400), s.OptimalWidth())
	assert.Equal(t, int64(300), s.MinimumLineWidth())
	assert.Equal(t, int64(900), s.MaximumLineWidth())
	assert.Equal(t, int64(250), s.TransitioningLength(3))
	assert.Equal(t, 0.5, s.TransitioningAngle())
	assert.Equal(t, 0.4, s.SplitMiddleThreshold())
	assert.Equal(t, 0.6, s.AddMiddleThreshold())
	assert.Equal(t, 1, s.DistributionRadius())
	assert.Nil(t, s.NonlinearThicknesses(2))
}

// TestRadiusBelowTwo checks that radius 0 and 1 both feed only the middle.
func TestRadiusBelowTwo(t *testing.T) {
	for _, r := range []int{-1, 0, 1} {
		s, err := ratio.New([]int64{400, 400, 400}, ratio.WithDistributionRadius(r))
		require.NoError(t, err)
		assert.Equal(t, []int64{400, 401, 400}, s.Compute(1201, 3, 0).BeadWidths, "radius=%d", r)
	}
}

// transitions collects TransitionThickness(0..n-1).
func transitions(s strategy.Strategy, n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = s.TransitionThickness(i)
	}

	return out
}
