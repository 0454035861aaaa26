// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rulewindow

import (
	"github.com/duskwright/combatcore/core"
	"github.com/duskwright/combatcore/rng"
)

// EventContext is the mutable payload passed to every provider for one
// window dispatch (spec.md §4.6 "Rule Event Context"). Providers read
// source/target/ability/metadata and mutate damage/save bonuses or the
// advantage source lists; the rules evaluator reads those mutations back
// after Dispatch returns.
type EventContext struct {
	Source string
	Target string
	Ability string

	// QueryInput/QueryResult carry whatever the in-flight query looked
	// like when this window fired; providers type-assert as needed. The
	// bus itself never inspects them.
	QueryInput  any
	QueryResult any

	RNG rng.Roller

	// Cancel, once set true by a provider, stops dispatch of further
	// providers for this window (spec.md §4.6 "Iteration stops if the
	// context's cancel flag becomes true").
	Cancel bool

	Melee    bool
	Ranged   bool
	Spell    bool
	Critical bool

	baseDamage       int
	damageBonus      int
	damageMultiplier float64

	saveBonus    int
	maxSaveBonus map[string]int

	advantageSources    []string
	disadvantageSources []string
}

// NewEventContext creates a context ready for dispatch, with the damage
// multiplier defaulted to 1 (a no-op multiply) and baseDamage seeded from
// whatever the in-flight damage roll currently stands at.
func NewEventContext(source, target string, baseDamage int) *EventContext {
	return &EventContext{
		Source:           source,
		Target:           target,
		baseDamage:       baseDamage,
		damageMultiplier: 1,
		maxSaveBonus:     make(map[string]int),
	}
}

// AddDamageBonus adds a flat amount to the in-flight damage total (spec.md
// §4.6 "add_damage_bonus").
func (c *EventContext) AddDamageBonus(amount int) {
	c.damageBonus += amount
}

// MultiplyDamage multiplies the in-flight damage total by factor (spec.md
// §4.6 "multiply_damage").
func (c *EventContext) MultiplyDamage(factor float64) {
	c.damageMultiplier *= factor
}

// GetFinalDamageValue returns (base + bonus) * multiplier, rounded
// half-away-from-zero (spec.md §4.6 "get_final_damage_value which rounds
// half-away-from-zero").
func (c *EventContext) GetFinalDamageValue() int {
	return core.RoundHalfAwayFromZero(float64(c.baseDamage+c.damageBonus) * c.damageMultiplier)
}

// AddSaveBonus adds a plain flat bonus to the in-flight saving throw
// (spec.md §4.6 "add_save_bonus").
func (c *EventContext) AddSaveBonus(n int) {
	c.saveBonus += n
}

// AddMaxSaveBonus retains only the strongest bonus registered per bucket
// (spec.md §4.6 "add_max_save_bonus(bucket, n) which retains only the
// strongest bonus per bucket" — e.g. BG3's Aura of Protection semantics,
// mirrored in package rules' saving-throw bucket handling).
func (c *EventContext) AddMaxSaveBonus(bucket string, n int) {
	if current, ok := c.maxSaveBonus[bucket]; !ok || n > current {
		c.maxSaveBonus[bucket] = n
	}
}

// SaveBonusTotal sums the plain bonus with the strongest-per-bucket
// max bonuses, the total the rules evaluator adds to a saving throw.
func (c *EventContext) SaveBonusTotal() int {
	total := c.saveBonus
	for _, v := range c.maxSaveBonus {
		total += v
	}
	return total
}

// AddAdvantageSource appends an advantage source, deduplicated (spec.md
// §4.6 "append-only de-duplicating lists of advantage/disadvantage
// sources").
func (c *EventContext) AddAdvantageSource(source string) {
	c.advantageSources = appendDeduped(c.advantageSources, source)
}

// AddDisadvantageSource appends a disadvantage source, deduplicated.
func (c *EventContext) AddDisadvantageSource(source string) {
	c.disadvantageSources = appendDeduped(c.disadvantageSources, source)
}

// AdvantageSources returns the deduplicated advantage sources collected
// so far.
func (c *EventContext) AdvantageSources() []string { return c.advantageSources }

// DisadvantageSources returns the deduplicated disadvantage sources
// collected so far.
func (c *EventContext) DisadvantageSources() []string { return c.disadvantageSources }

func appendDeduped(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}
