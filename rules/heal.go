// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import "github.com/duskwright/combatcore/modifier"

// HealInput is roll_healing's input (spec.md §4.4.5).
type HealInput struct {
	CombatantID string
	Base        float64
}

// RollHealing implements spec.md §4.4.5: apply HealingReceived modifiers
// to the base heal and floor at 0 (negative modifiers cannot invert to
// damage).
func (e *Evaluator) RollHealing(in HealInput) (*QueryResult, error) {
	ctx := modifier.NewContext()
	ctx.DefenderID = in.CombatantID

	result := &QueryResult{Base: in.Base}
	result.note("base heal: %g", in.Base)

	running, applied, err := e.Stack(in.CombatantID).Apply(in.Base, modifier.TargetHealingReceived, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, applied...)

	running, appliedGlobal, err := e.global.Apply(running, modifier.TargetHealingReceived, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, appliedGlobal...)

	if running < 0 {
		running = 0
		result.note("floored at 0")
	}
	result.Final = running
	result.Success = true

	return result, nil
}
