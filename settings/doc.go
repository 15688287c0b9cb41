// Package settings loads the beading section of a slicing profile from YAML
// and builds the configured strategy.
//
//	strategy: ratio_distributed
//	optimal_widths: [400, 500, 400]
//	minimum_line_width: 340
//	transition_angle_deg: 10
//	wall_split_middle_threshold: 0.5
//	wall_add_middle_threshold: 0.5
//	distribution_radius: 3
//
// Instead of optimal_widths a profile may describe a symmetric stack with
// outer_wall_width, inner_wall_width and wall_count. Omitted thresholds and
// radius fall back to the ratio package defaults; omitted line widths,
// transition length and angle are derived by ratio.New.
package settings
