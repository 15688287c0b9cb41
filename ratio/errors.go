// SPDX-License-Identifier: MIT
// Package: beading/ratio
//
// errors.go - sentinel errors for strategy construction.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • New attaches context ("New: width[2] = -5: ...") with %w wrapping.
//   • Compute and the thickness/bead-count functions never fail and never
//     panic; degenerate inputs are handled by dedicated branches.
//
// Priority when several checks fail: widths → thresholds → line widths →
// transition length → transition angle. Only the first failure is reported.

package ratio

import (
	"errors"
	"fmt"
)

// ErrEmptyWidths indicates that no optimal widths were configured. Every
// computation indexes the middle width, so construction fails fast.
var ErrEmptyWidths = errors.New("ratio: optimal widths must be non-empty")

// ErrNonPositiveWidth indicates an optimal width ≤ 0.
var ErrNonPositiveWidth = errors.New("ratio: optimal widths must be positive")

// ErrThresholdRange indicates a split/add middle threshold outside (0,1].
var ErrThresholdRange = errors.New("ratio: threshold out of range (0,1]")

// ErrLineWidth indicates a non-positive minimum line width, or a maximum
// line width below the minimum.
var ErrLineWidth = errors.New("ratio: invalid line width bounds")

// ErrTransitionLength indicates a negative default transition length.
var ErrTransitionLength = errors.New("ratio: transition length must be non-negative")

// ErrTransitionAngle indicates a transitioning angle outside [0, π) or NaN.
var ErrTransitionAngle = errors.New("ratio: transitioning angle out of range [0,π)")

// opNew is the method context prefixed to construction errors.
const opNew = "New"

// ratioErrorf wraps sentinel with method context and a formatted detail.
func ratioErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
