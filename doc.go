// Package beading decides how a wall region of a printed layer is filled with
// concentric lines ("beads"): how wide each bead is and where its toolpath
// runs.
//
// 🚀 What is in here?
//
//	A small, dependency-light toolkit consumed by a wall-count decision
//	process (skeleton walking, transition placement) that lives elsewhere:
//		• strategy/   - the Beading value, the Strategy contract, shared Base,
//		                the package logger
//		• ratio/      - the ratio-distributed strategy: stable outer walls,
//		                slack absorbed by inner walls with a parabolic falloff
//		• widthset/   - centered reshaping of per-bead optimal widths
//		• distribute/ - slack weights, bead widths and toolpath offsets
//		• settings/   - YAML profile loading and strategy construction
//
// ✨ Guarantees
//
//   - Pure computations over immutable configuration; share one strategy
//     across any number of goroutines.
//   - No panics on user input; construction errors are sentinels checked
//     with errors.Is.
//   - Silent by default; install a *slog.Logger with strategy.SetLogger.
//
// Quick ASCII example (3 beads, widths 400/500/400µm, T = 1300µm):
//
//	|<-- 400 -->|<---- 500 ---->|<-- 400 -->|
//	      200          650           1100     ← toolpath locations
//
//	go get github.com/katalvlaran/beading
package beading
