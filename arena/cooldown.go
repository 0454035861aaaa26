// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package arena

import (
	"sort"

	"github.com/duskwright/combatcore/rpgerr"
)

// DecrementPhase is the closed enum of when a cooldown's remaining time
// ticks down (spec.md §4.7 "ability cooldowns: ... decrement phase").
type DecrementPhase string

const (
	DecrementTurnStart DecrementPhase = "turn_start"
	DecrementTurnEnd   DecrementPhase = "turn_end"
	DecrementRoundEnd  DecrementPhase = "round_end"
)

// Cooldown tracks one ability's charge economy for one combatant (spec.md
// §4.7 "per combatant per ability: max charges, current charges,
// remaining cooldown, decrement phase").
type Cooldown struct {
	MaxCharges        int
	CurrentCharges    int
	RemainingCooldown int
	DecrementPhase    DecrementPhase
}

// NewCooldown creates a Cooldown starting at full charges.
func NewCooldown(maxCharges int, phase DecrementPhase) *Cooldown {
	return &Cooldown{MaxCharges: maxCharges, CurrentCharges: maxCharges, DecrementPhase: phase}
}

// Consume spends one charge, failing with CooldownActive (no mutation) if
// none remain.
func (c *Cooldown) Consume() error {
	if c.CurrentCharges <= 0 {
		return rpgerr.CooldownActive("ability", rpgerr.WithMeta("remaining_cooldown", c.RemainingCooldown))
	}
	c.CurrentCharges--
	return nil
}

// Tick advances RemainingCooldown by one step, restoring a charge (capped
// at MaxCharges) once it reaches zero.
func (c *Cooldown) Tick() {
	if c.CurrentCharges >= c.MaxCharges {
		return
	}
	if c.RemainingCooldown > 0 {
		c.RemainingCooldown--
	}
	if c.RemainingCooldown == 0 {
		c.CurrentCharges++
		if c.CurrentCharges > c.MaxCharges {
			c.CurrentCharges = c.MaxCharges
		}
	}
}

// CooldownEntry pairs a tracked Cooldown with the (combatantID, abilityID)
// key it's stored under, for snapshot capture.
type CooldownEntry struct {
	CombatantID string
	AbilityID   string
	Cooldown    *Cooldown
}

// CooldownTracker holds every combatant's ability cooldowns for one
// combat instance.
type CooldownTracker struct {
	byCombatant map[string]map[string]*Cooldown
}

// NewCooldownTracker creates an empty tracker.
func NewCooldownTracker() *CooldownTracker {
	return &CooldownTracker{byCombatant: make(map[string]map[string]*Cooldown)}
}

// Set registers (or replaces) the cooldown tracked for combatantID's
// abilityID.
func (t *CooldownTracker) Set(combatantID, abilityID string, c *Cooldown) {
	if t.byCombatant[combatantID] == nil {
		t.byCombatant[combatantID] = make(map[string]*Cooldown)
	}
	t.byCombatant[combatantID][abilityID] = c
}

// Get resolves the cooldown tracked for combatantID's abilityID.
func (t *CooldownTracker) Get(combatantID, abilityID string) (*Cooldown, bool) {
	byAbility, ok := t.byCombatant[combatantID]
	if !ok {
		return nil, false
	}
	c, ok := byAbility[abilityID]
	return c, ok
}

// Remove deletes the cooldown tracked for combatantID's abilityID.
func (t *CooldownTracker) Remove(combatantID, abilityID string) {
	delete(t.byCombatant[combatantID], abilityID)
}

// Consume spends one charge of combatantID's abilityID, or NotFound if no
// cooldown is tracked for that pair.
func (t *CooldownTracker) Consume(combatantID, abilityID string) error {
	c, ok := t.Get(combatantID, abilityID)
	if !ok {
		return rpgerr.NotFound("cooldown",
			rpgerr.WithMeta("combatant_id", combatantID), rpgerr.WithMeta("ability_id", abilityID))
	}
	return c.Consume()
}

// TickPhase advances every tracked cooldown whose DecrementPhase matches
// phase by one step, across every combatant at once, e.g. called once when
// that phase occurs.
func (t *CooldownTracker) TickPhase(phase DecrementPhase) {
	for _, byAbility := range t.byCombatant {
		for _, c := range byAbility {
			if c.DecrementPhase == phase {
				c.Tick()
			}
		}
	}
}

// Entries returns every tracked cooldown, sorted by (CombatantID,
// AbilityID), for snapshot capture.
func (t *CooldownTracker) Entries() []CooldownEntry {
	var out []CooldownEntry
	for combatantID, byAbility := range t.byCombatant {
		for abilityID, c := range byAbility {
			out = append(out, CooldownEntry{CombatantID: combatantID, AbilityID: abilityID, Cooldown: c})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CombatantID != out[j].CombatantID {
			return out[i].CombatantID < out[j].CombatantID
		}
		return out[i].AbilityID < out[j].AbilityID
	})
	return out
}
