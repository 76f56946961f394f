// Package dpkit is a small playground for comparing exhaustive search with
// dynamic programming on two classic exercises.
//
// 🚀 What is inside?
//
//	• subsequence/  longest strictly decreasing subsequence:
//	                O(n²) dynamic programme vs power-set enumeration
//	• crossing/     monotone paths across a grid with thickets:
//	                O(R·C) count table vs step-pattern enumeration
//
// ✨ Why dpkit?
//
//   - Every exhaustive solver is a reference for its dynamic programme;
//     tests cross-check them on seeded random inputs.
//   - Pure functions, explicit sentinel errors, no panics, no logging.
//   - Deterministic generators (RandomSequence, RandomGrid) for
//     reproducible experiments.
//
// Quick ASCII example (marsh crossing, "X" = thicket):
//
//	. . X
//	. X .
//	. . .
//
//	has exactly one path: down, down, right, right.
//
// The dpkit command (cmd/dpkit) runs both exercises from the shell:
//
//	go run ./cmd/dpkit lds -n 18 --seed 7
//	go run ./cmd/dpkit crossing -r 6 -k 9 --thicket-percent 25
package dpkit
