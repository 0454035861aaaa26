// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rng provides the deterministic random number source for the
// combat rules core.
//
// Purpose:
// Every other component that needs randomness — modifier dice, boost roll
// bonuses, the rules evaluator's attack/save/damage rolls — draws from one
// Source so that a (seed, sequence of calls) pair reproduces bitwise
// identical output across runs and platforms (spec.md §4.1, §8.1 P1).
//
// Scope:
//   - A seeded xorshift64* generator with fixed constants
//   - d20/dN primitives, advantage/disadvantage two-die draws
//   - Roll-index tracking and restore for snapshot round-trips
//
// Non-Goals:
//   - Dice notation parsing: modifier and boost own "NdM" parsing
//   - Cryptographic randomness: this is a replay engine, not a security primitive
//   - Probability/statistics: rules.CalculateHitChance is a pure function elsewhere
package rng
