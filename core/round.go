// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package core

import "math"

// RoundHalfAwayFromZero rounds to the nearest integer, with ties (.5)
// rounding away from zero. The damage pipeline, the rule-window damage
// mutation helper, and percentage-modifier application all share this
// rounding direction (spec.md §4.5, §4.6, §8.3) — the spec calls out that
// the specific direction matters for cross-implementation reproducibility.
func RoundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(math.Floor(x + 0.5))
	}
	return int(math.Ceil(x - 0.5))
}

// HalveTowardNegativeInfinity integer-halves toward negative infinity,
// used by resistance tiers rather than half-away-from-zero (spec.md §9
// Open Questions notes both roundings are intentional and distinct).
func HalveTowardNegativeInfinity(x int) int {
	return int(math.Floor(float64(x) / 2))
}
