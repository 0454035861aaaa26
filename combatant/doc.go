// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combatant holds the arena-owned data model: Combatant, Status,
// Surface, and ResolutionStackItem (spec.md §3 Data Model).
//
// Purpose: plain data plus the narrow invariant-preserving mutators the
// spec calls out (HP clamping, death-save bounds, life-state monotonicity).
// The Rules Evaluator, Damage Pipeline, and Status Manager are the only
// callers expected to mutate a Combatant in normal operation.
//
// Scope: Combatant plus its resource pools (leveled Counter-style and flat
// Resource-style, mirroring the teacher's mechanics/resources package),
// Status, Surface, and ResolutionStackItem.
//
// Non-Goals: this package does not decide *when* a status expires or a
// surface dissipates (package rulewindow drives that via round/turn
// events) and does not implement the damage math itself (package damage).
package combatant
