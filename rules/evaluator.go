// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"github.com/duskwright/combatcore/boost"
	"github.com/duskwright/combatcore/combatant"
	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rng"
)

// CombatantProvider resolves a combatant by id. The Rules Evaluator holds
// only read references during a query (spec.md §5 "Shared resource
// policy"); combatants remain arena-owned.
type CombatantProvider func(id string) (*combatant.Combatant, bool)

// BoostProvider resolves a combatant's currently active boost set
// (spec.md §4.3 "a combatant's current boost set").
type BoostProvider func(combatantID string) boost.Set

// Config constructs an Evaluator (spec.md AMBIENT STACK: explicit
// config-struct construction, matching the teacher's CoreConfig /
// PoolConfig idiom rather than a long positional constructor).
type Config struct {
	// RNG is any rng.Roller, not concretely *rng.Source, so tests can
	// substitute *rng.FixedSource for deterministic scenarios (spec.md
	// §8.4 scenarios S1/S4) without a mocking framework.
	RNG        rng.Roller
	Combatants CombatantProvider
	Boosts     BoostProvider
	// Condition resolves a boost clause's opaque IF(...) expression
	// against whatever evaluation context the embedding shell tracks
	// (spec.md §4.3 ConditionFunc). Nil means conditional clauses are
	// always treated as inactive.
	Condition boost.ConditionFunc
}

// Evaluator is the Rules Evaluator (spec.md §4.4, C4): it owns the RNG
// and the per-combatant plus global modifier stacks (spec.md §3
// Ownership), and reads combatants/boosts through the Config's provider
// functions rather than owning them itself.
type Evaluator struct {
	rng        rng.Roller
	global     *modifier.Stack
	stacks     map[string]*modifier.Stack
	combatants CombatantProvider
	boosts     BoostProvider
	condition  boost.ConditionFunc
}

// New constructs an Evaluator from cfg.
func New(cfg Config) *Evaluator {
	return &Evaluator{
		rng:        cfg.RNG,
		global:     modifier.NewStack(),
		stacks:     make(map[string]*modifier.Stack),
		combatants: cfg.Combatants,
		boosts:     cfg.Boosts,
		condition:  cfg.Condition,
	}
}

// GlobalStack returns the evaluator's global modifier stack.
func (e *Evaluator) GlobalStack() *modifier.Stack {
	return e.global
}

// Stack returns the modifier stack for combatantID, creating an empty one
// on first access.
func (e *Evaluator) Stack(combatantID string) *modifier.Stack {
	s, ok := e.stacks[combatantID]
	if !ok {
		s = modifier.NewStack()
		e.stacks[combatantID] = s
	}
	return s
}

// RNG returns the evaluator's RNG source.
func (e *Evaluator) RNG() rng.Roller {
	return e.rng
}

func (e *Evaluator) combatant(id string) (*combatant.Combatant, bool) {
	if e.combatants == nil {
		return nil, false
	}
	return e.combatants(id)
}

func (e *Evaluator) boostSet(id string) boost.Set {
	if e.boosts == nil {
		return nil
	}
	return e.boosts(id)
}

func (e *Evaluator) cond() boost.ConditionFunc {
	return e.condition
}

// RestoreStacks replaces the evaluator's per-combatant and global
// modifier stacks wholesale from a snapshot. The evaluator owns these
// stacks (spec.md §3 Ownership), so restoring combat state restores them
// here rather than in the arena.
func (e *Evaluator) RestoreStacks(global *modifier.Stack, perCombatant map[string]*modifier.Stack) {
	e.global = global
	if perCombatant == nil {
		perCombatant = make(map[string]*modifier.Stack)
	}
	e.stacks = perCombatant
}
