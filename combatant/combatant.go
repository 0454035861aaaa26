// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import (
	"github.com/duskwright/combatcore/core"
	"github.com/duskwright/combatcore/rpgerr"
)

// Faction is the closed enum of combatant allegiances (spec.md §3 Combatant).
type Faction string

const (
	FactionPlayer  Faction = "player"
	FactionHostile Faction = "hostile"
	FactionNeutral Faction = "neutral"
	FactionAlly    Faction = "ally"
)

// LifeState is the closed enum of a combatant's vitality (spec.md §3 Combatant).
type LifeState string

const (
	LifeAlive       LifeState = "alive"
	LifeDowned      LifeState = "downed"
	LifeUnconscious LifeState = "unconscious"
	LifeDead        LifeState = "dead"
)

// AbilityScores holds the six integer ability scores (spec.md §3 Combatant).
type AbilityScores struct {
	Strength     int
	Dexterity    int
	Constitution int
	Intelligence int
	Wisdom       int
	Charisma     int
}

// Position is a 3D coordinate (spec.md §3 Combatant).
type Position struct {
	X, Y, Z float64
}

// ActionBudget tracks a combatant's per-turn economy (spec.md §3 Combatant).
type ActionBudget struct {
	Action        bool
	BonusAction   bool
	Reaction      bool
	RemainingMove float64
	MaxMovement   float64
}

// DeathSaves tracks death-saving-throw progress, each bounded to [0,3]
// (spec.md §3 Combatant invariants).
type DeathSaves struct {
	Successes int
	Failures  int
}

// Combatant is the arena-owned unit of combat (spec.md §3 Combatant). It is
// plain data; mutation goes through the methods here (which enforce the
// spec's invariants) or through the Rules Evaluator / Damage Pipeline /
// Status Manager.
type Combatant struct {
	ID      string
	Name    string
	Faction Faction
	Team    int
	Position

	Abilities AbilityScores
	BaseAC    int
	CurrentAC int

	Life        LifeState
	CurrentHP   int
	MaxHP       int
	TemporaryHP int

	Initiative int
	Tiebreaker int

	Budget ActionBudget
	Deaths DeathSaves

	KnownActionIDs []string
	Passives       map[string]bool
	Equipment      map[string]string
	Tags           map[string]struct{}

	Resources *ResourcePool

	ConcentratingOn string
}

// NewCombatant constructs a combatant at full health with empty collections
// initialized, ready for callers to populate further.
func NewCombatant(id, name string, faction Faction, maxHP int) *Combatant {
	return &Combatant{
		ID:        id,
		Name:      name,
		Faction:   faction,
		Life:      LifeAlive,
		CurrentHP: maxHP,
		MaxHP:     maxHP,
		Passives:  make(map[string]bool),
		Equipment: make(map[string]string),
		Tags:      make(map[string]struct{}),
		Resources: NewResourcePool(),
	}
}

// GetID implements core.Entity.
func (c *Combatant) GetID() string { return c.ID }

// GetType implements core.Entity.
func (c *Combatant) GetType() core.EntityType { return core.EntityTypeCombatant }

var _ core.Entity = (*Combatant)(nil)

// HasTag reports whether the combatant carries the given tag.
func (c *Combatant) HasTag(tag string) bool {
	_, ok := c.Tags[tag]
	return ok
}

// AddTag adds a tag.
func (c *Combatant) AddTag(tag string) {
	c.Tags[tag] = struct{}{}
}

// RemoveTag removes a tag.
func (c *Combatant) RemoveTag(tag string) {
	delete(c.Tags, tag)
}

// SetHP sets CurrentHP, clamped to [0, MaxHP] (spec.md §3 invariant
// `0 ≤ CurrentHP ≤ MaxHP`), and applies the life-state monotonicity rule:
// healing above 0 may move Downed back to Alive, but nothing here revives
// Dead — that requires an explicit administrative operation.
func (c *Combatant) SetHP(value int) {
	if value < 0 {
		value = 0
	}
	if value > c.MaxHP {
		value = c.MaxHP
	}
	c.CurrentHP = value

	if c.CurrentHP > 0 && c.Life == LifeDowned {
		c.Life = LifeAlive
	}
	if c.CurrentHP == 0 && c.Life == LifeAlive {
		c.Life = LifeDowned
	}
}

// SetTemporaryHP sets TemporaryHP, clamped to ≥0 (spec.md §3 invariant).
func (c *Combatant) SetTemporaryHP(value int) {
	if value < 0 {
		value = 0
	}
	c.TemporaryHP = value
}

// RecordDeathSave increments the given save bucket, clamped to [0,3]
// (spec.md §3 invariant `DeathSaveSuccesses, DeathSaveFailures ∈ [0,3]`).
func (c *Combatant) RecordDeathSave(success bool) {
	if success {
		if c.Deaths.Successes < 3 {
			c.Deaths.Successes++
		}
	} else {
		if c.Deaths.Failures < 3 {
			c.Deaths.Failures++
		}
	}
}

// Kill forces the combatant to Dead regardless of current HP (an explicit
// administrative operation, not a side effect of damage).
func (c *Combatant) Kill() {
	c.Life = LifeDead
}

// Revive forces the combatant to Alive at the given HP, clamped to
// [1, MaxHP] — the one path that moves a combatant out of Dead.
func (c *Combatant) Revive(hp int) error {
	if hp <= 0 {
		return rpgerr.InvalidArgument("revive requires a positive HP amount")
	}
	c.Life = LifeAlive
	c.SetHP(hp)
	return nil
}

// IsAlive reports whether the combatant can still act.
func (c *Combatant) IsAlive() bool {
	return c.Life == LifeAlive
}
