// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

// Concentration links a source combatant to the sustained effect they are
// concentrating on, plus every status/surface instance that effect
// spawned (spec.md §4.7 "active concentrations with linked sustained
// effects"; GLOSSARY "Concentration").
type Concentration struct {
	SourceID  string
	EffectRef string
	// LinkedStatusIDs and LinkedSurfaceIDs are InstanceIDs of Status and
	// Surface values this concentration owns. Breaking concentration
	// tears all of them down together.
	LinkedStatusIDs  []string
	LinkedSurfaceIDs []string
}

// LinkStatus records a status instance as owned by this concentration.
func (c *Concentration) LinkStatus(instanceID string) {
	c.LinkedStatusIDs = append(c.LinkedStatusIDs, instanceID)
}

// LinkSurface records a surface instance as owned by this concentration.
func (c *Concentration) LinkSurface(instanceID string) {
	c.LinkedSurfaceIDs = append(c.LinkedSurfaceIDs, instanceID)
}

// BreakConcentration removes every status and surface this concentration
// owns from the given collections and returns the ids that were torn
// down, so the caller can also unregister any rule-window subscriptions
// those instances made (rulewindow.Bus.UnregisterOwner).
func BreakConcentration(c *Concentration, statuses map[string]*Status, surfaces map[string]*Surface) (removedStatuses, removedSurfaces []string) {
	for _, id := range c.LinkedStatusIDs {
		if _, ok := statuses[id]; ok {
			delete(statuses, id)
			removedStatuses = append(removedStatuses, id)
		}
	}
	for _, id := range c.LinkedSurfaceIDs {
		if _, ok := surfaces[id]; ok {
			delete(surfaces, id)
			removedSurfaces = append(removedSurfaces, id)
		}
	}
	c.LinkedStatusIDs = nil
	c.LinkedSurfaceIDs = nil
	return removedStatuses, removedSurfaces
}
