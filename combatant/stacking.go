// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

// StackingPolicy governs what happens when a status definition is applied
// to a target that already carries an instance of it, mirroring the
// teacher's mechanics/conditions.StackingPolicy enum.
type StackingPolicy string

const (
	// StackRefresh resets the existing instance's Duration to the
	// incoming one without changing StackCount.
	StackRefresh StackingPolicy = "refresh"
	// StackReplace discards the existing instance entirely and installs
	// the incoming one in its place (fresh SourceID, payload, duration).
	StackReplace StackingPolicy = "replace"
	// StackExtend adds the incoming Duration onto the existing instance's
	// remaining Duration rather than overwriting it.
	StackExtend StackingPolicy = "extend"
	// StackStack increments StackCount and takes the longer of the two
	// durations, for effects whose potency scales with stack count.
	StackStack StackingPolicy = "stack"
	// StackUnique rejects the incoming application outright; the existing
	// instance is left untouched.
	StackUnique StackingPolicy = "unique"
)

// ApplyStacking reconciles an incoming Status against an existing instance
// of the same definition on the same target, per policy. It mutates
// existing in place and reports whether the incoming status was accepted
// (false for StackUnique, which leaves existing untouched).
func ApplyStacking(existing *Status, incoming *Status, policy StackingPolicy) bool {
	switch policy {
	case StackRefresh:
		existing.Duration = incoming.Duration
	case StackReplace:
		*existing = *incoming
	case StackExtend:
		existing.Duration += incoming.Duration
	case StackStack:
		existing.StackCount++
		if incoming.Duration > existing.Duration {
			existing.Duration = incoming.Duration
		}
	case StackUnique:
		return false
	default:
		existing.Duration = incoming.Duration
	}
	return true
}
