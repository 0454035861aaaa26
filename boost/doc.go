// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package boost implements the declarative effect DSL (spec.md §4.3): a
// semicolon-separated string of typed clauses, parsed once per definition
// and then queried repeatedly against a combatant's active boost set.
//
// Purpose: let content (abilities, statuses, items) describe their
// mechanical effects as data — "AC(2);Advantage(AttackRoll)" — without the
// Rules Evaluator needing a Go type per content piece.
//
// Scope: the DSL grammar and parser; the closed set of evaluation entry
// points (has_advantage, get_ac_bonus, get_resistance_level, ...) that scan
// a combatant's parsed boosts.
//
// Non-Goals: this package does not own a combatant's active-boost list
// (see package combatant) or decide how long a boost lasts (durations live
// on the owning Status/effect, not the boost clause itself).
package boost
