// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rules implements the Rules Evaluator (spec.md §4.4): the public
// query surface — attack rolls, saving throws, contested checks, damage,
// healing, AC lookup, hit-chance — that orchestrates the RNG, modifier
// stacks, boost set, and damage pipeline underneath it.
//
// Purpose: this is the component every external collaborator (scenario
// loader, AI scorer, HUD) actually calls; everything in rng, modifier,
// boost, damage, combatant is plumbing this package wires together per
// query. The teacher repo has no single equivalent (its "5e rules" are
// scattered TODO placeholders in rulebooks/dnd5e/combat); this package is
// the module's load-bearing original contribution, built from the
// teacher's constructor-with-config idiom (CoreConfig, PoolConfig) and
// its CombatantProvider/BoostProvider function-type plumbing, grounded on
// how game.Context[T] separates data lookup from behavior.
//
// Scope:
//   - Evaluator: owns the RNG and the modifier stacks (spec.md §3
//     Ownership), reads combatants/boosts through caller-supplied lookups
//   - QueryResult: the uniform result shape every entry point returns
//   - RollAttack, RollSave, Contest, RollDamage, RollHealing,
//     GetArmorClass, CalculateHitChance
//
// Non-Goals:
//   - Owning combatant or boost lifecycle (package combatant, boost)
//   - Deciding *which* rule windows fire around a query (package
//     rulewindow; an embedding orchestrator dispatches those itself,
//     consulting EventContext mutations before or after calling into
//     this package)
package rules
