// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package snapshot implements the Combat State Machine's save/load half
// (spec.md §4.7 "Snapshot"): a serializable CombatSnapshot, a validator
// that rejects malformed snapshots before anything touches live state, a
// migrator that walks old schema versions forward, a deterministic
// exporter for golden-file testing, and sanitized file I/O.
//
// Purpose: every other package in this module (rng, modifier, combatant,
// rulewindow, combat) owns in-memory state that must round-trip through a
// save/load boundary bit-identically (spec.md §8.1 P1, P2). This package
// is where that boundary lives — it does not own any of that state itself,
// it only knows how to flatten it to JSON and rebuild it.
//
// Scope:
//   - CombatSnapshot and its nested value types
//   - Validator.Validate
//   - Migrator.Migrate
//   - DeterministicExporter.Export
//   - File I/O: Save, Load under a sanitized save directory
//
// Non-Goals:
//   - Owning the live arena/evaluator/bus/stack/machine (callers capture
//     *into* a CombatSnapshot and restore *from* one)
//   - Content descriptors (ability/status/boost definitions); those are
//     session-external per spec.md §9 Design Notes
package snapshot
