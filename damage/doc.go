// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package damage implements the seven-stage ordered damage pipeline
// (spec.md §4.5): base, additive source bonuses, source percentage
// bonuses, deduplicated target multipliers, target flat reductions,
// floor at zero, and layered absorption (barrier, temp HP, current HP).
//
// Purpose: the modifier engine (package modifier) knows how to apply one
// stack against one target value; this package is the one place that
// knows the *order* those applications happen in for damage specifically,
// and the dedup law the rest of the core depends on (spec.md §8.1 P4):
// multiple resistances of the same damage type never stack.
//
// Scope:
//   - Type: the closed damage-type enum
//   - Context: the pipeline's input (base damage, modifiers, target HP/temp/barrier)
//   - Run: the seven-stage reduction, returning a Result with every
//     intermediate value for breakdown rendering
//
// Non-Goals:
//   - Gathering which modifiers apply (package rules does that before
//     calling Run)
//   - Resistance *level* lookups from boosts (package boost); this
//     package only consumes the already-selected Percentage modifiers on
//     DamageTaken, per spec.md's deduplication algorithm
package damage
