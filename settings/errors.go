// SPDX-License-Identifier: MIT
// Package: beading/settings
//
// errors.go - sentinel errors for settings resolution. File and YAML errors
// are wrapped with %w and keep their original type.

package settings

import "errors"

var (
	// ErrUnknownStrategy indicates a strategy name with no registered builder.
	ErrUnknownStrategy = errors.New("settings: unknown strategy")

	// ErrNoWidths indicates that neither optimal_widths nor the wall_* keys
	// describe any bead.
	ErrNoWidths = errors.New("settings: no optimal widths configured")

	// ErrWallCount indicates a negative wall_count, or a wall_count above one
	// without an inner or outer wall width.
	ErrWallCount = errors.New("settings: invalid wall count")
)
