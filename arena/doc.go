// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package arena owns one combat instance's live state as a single
// aggregate (spec.md §3 "Ownership: the arena exclusively owns
// combatants, surfaces, and active statuses"). It is the unit package
// snapshot captures and restores: the flow state machine, the resolution
// stack, the RNG, and the combatant/surface/status/concentration/
// cooldown/reaction-prompt/prop collections all live here, keyed the way
// package snapshot's schema expects.
package arena
