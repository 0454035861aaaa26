// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package modifier implements the keyed modifier stacks described in
// spec.md §4.2: per-combatant and global stacks of typed, prioritized,
// source-tagged riders on a named target value.
//
// Purpose:
// The teacher repo's events.Modifier is a flat interface (Source, Type,
// Target, Priority, Value) interpreted ad hoc by whoever reads it back off
// an event. This package generalizes that same shape into the closed
// Target/Type enumerations spec.md names, adds condition predicates, and
// owns the Apply/ResolveAdvantage algorithms spec.md §4.2 specifies.
//
// Scope:
//   - Modifier type: Flat, Percentage, Override, Advantage, Disadvantage, Dice
//   - Modifier target: the closed enum in spec.md's Modifier data model
//   - Stack: ordered per-combatant or global collection, sorted by priority
//   - Apply: base value + target + context -> (final value, applied list)
//   - ResolveAdvantage: the 5e any-adv+any-dis=normal policy
//
// Non-Goals:
//   - Declarative boost DSL parsing: see package boost
//   - Damage-specific dedup rules: see package damage
//   - Dice notation beyond "NdM" for Dice-type modifiers: see rng.Roll
package modifier
