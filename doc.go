// Package padchain computes how many button presses it takes to type a door
// code on a numeric keypad that is operated through a chain of robots, each
// steering the next robot's arm from a directional keypad, with a human at
// the far end.
//
// 🚪 What is padchain?
//
//	A small, dependency-light library that brings together:
//		• Keypad geometry: the numeric and directional layouts, gaps included
//		• Route enumeration: every minimal, gap-avoiding finger route
//		• Layered costs: memoized per-layer minimal press counts
//		• Chain scoring: presses × code value, summed over codes
//		• Verification: expand one optimal press sequence and replay it
//
// ✨ Why a layered cost model?
//
//   - Expanding the presses layer by layer grows ~2.5× per robot.
//   - Each layer instead caches "from key X to key Y costs N human presses",
//     so a chain of 25 robots is solved in microseconds.
//
// Under the hood, everything is organized under three subpackages:
//
//	keypad/ — Num and Dir alphabets, Kind layouts, Position/Move, ParseCode
//	paths/  — Enumerate minimal routes on a Kind (DFS with axis pruning)
//	chain/  — Human, Layer, Chain, Solve, Sequence, Replay, ScoreParallel
//
// Quick ASCII example:
//
//	human ─▶ [^ A / < v >] ─▶ [^ A / < v >] ─▶ [7 8 9 / 4 5 6 / 1 2 3 / _ 0 A]
//
// is a chain of depth 2: two directional robots between the human and the
// numeric keypad.
//
//	total, err := chain.Solve(codes, 2)
package padchain
