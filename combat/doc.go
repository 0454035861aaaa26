// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package combat implements the combat flow state machine (spec.md §4.7,
// §3 "Combat State Machine"): a closed set of states with a fixed
// transition allow-table, a monotonically indexed history log, and an
// orthogonal substate for UI-facing refinement.
//
// Purpose: the teacher repo's rulebooks/dnd5e/combat package is an
// unimplemented placeholder (its RollAttack/RollDamage/RollInitiative are
// all TODO stubs); this package is this module's original contribution,
// built in the teacher's idiom — closed string enums, a Validate-first
// mutator, a history log shaped like the snapshot's own transition
// history — rather than a transplant of any single teacher file.
//
// Scope:
//   - State: the closed enum of flow states
//   - Substate: the closed enum of UI-facing refinements
//   - Machine: TryTransition/ForceTransition/Reset plus history
//
// Non-Goals:
//   - Deciding *when* a transition should happen (the orchestrator calls
//     TryTransition; this package only validates and records)
//   - Turn order computation (initiative is combatant data; package
//     combatant owns it, this package only tracks the current index)
package combat
