// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"fmt"

	"github.com/duskwright/combatcore/boost"
	"github.com/duskwright/combatcore/core"
	"github.com/duskwright/combatcore/damage"
	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rpgerr"
)

// DamageInput is roll_damage's input (spec.md §4.4.4).
type DamageInput struct {
	SourceID   string
	TargetID   string
	Base       int
	DamageType damage.Type
}

// RollDamage implements spec.md §4.4.4: gathers DamageDealt/DamageTaken
// modifiers filtered by the damage-type tag, adds source boost
// DamageBonus, delegates the numeric reduction to the Damage Pipeline, and
// then applies the target's boost resistance level on top — kept separate
// from the pipeline's own percentage dedup so the two deduplication
// policies (modifier-based and boost-based) never merge into one bucket.
func (e *Evaluator) RollDamage(in DamageInput) (*QueryResult, error) {
	if _, ok := e.combatant(in.SourceID); !ok {
		return nil, rpgerr.NotFound("source combatant")
	}
	target, ok := e.combatant(in.TargetID)
	if !ok {
		return nil, rpgerr.NotFound("target combatant")
	}

	ctx := modifier.NewContext()
	ctx.AttackerID = in.SourceID
	ctx.DefenderID = in.TargetID
	ctx.WithTag(in.DamageType.Tag())

	sourceMods := e.Stack(in.SourceID).Matching(modifier.TargetDamageDealt, ctx)
	targetMods := e.Stack(in.TargetID).Matching(modifier.TargetDamageTaken, ctx)

	base := in.Base
	if bonus := e.boostSet(in.SourceID).GetDamageBonus(in.DamageType.Kind(), e.cond()); bonus != 0 {
		base += bonus
	}

	var barrier *int
	if target.Resources != nil {
		if r, ok := target.Resources.Flat["barrier"]; ok {
			v := r.Current
			barrier = &v
		}
	}

	pipeline := damage.Run(damage.Context{
		Base:              base,
		DamageType:        in.DamageType,
		SourceModifiers:   sourceMods,
		TargetModifiers:   targetMods,
		TargetCurrentHP:   target.CurrentHP,
		TargetTemporaryHP: target.TemporaryHP,
		TargetBarrier:     barrier,
	})

	result := &QueryResult{
		Base:      float64(in.Base),
		Breakdown: pipeline.Breakdown,
	}

	level := e.boostSet(in.TargetID).GetResistanceLevel(in.DamageType.Kind(), e.cond())
	adjusted := applyBoostResistance(pipeline.FlooredDamage, level)
	if level != boost.Normal {
		result.Breakdown = append(result.Breakdown, fmt.Sprintf("boost resistance (%s): %d -> %d", level, pipeline.FlooredDamage, adjusted))
	}

	final := absorb(adjusted, target.CurrentHP, target.TemporaryHP, barrier)
	result.Final = float64(final.HPApplied)
	result.Success = true
	result.Breakdown = append(result.Breakdown, fmt.Sprintf(
		"final applied: barrier=%d tempHP=%d hp=%d overkill=%d",
		final.BarrierAbsorbed, final.TempHPAbsorbed, final.HPApplied, final.Overkill))

	return result, nil
}

// applyBoostResistance applies the target's boost resistance level on top
// of the pipeline's floored damage (spec.md §4.4.4): Immune zeroes it,
// Resistant integer-halves toward negative infinity, Vulnerable doubles.
func applyBoostResistance(amount int, level boost.ResistanceLevel) int {
	switch level {
	case boost.Immune:
		return 0
	case boost.Resistant:
		return core.HalveTowardNegativeInfinity(amount)
	case boost.Vulnerable:
		return amount * 2
	default:
		return amount
	}
}

type absorption struct {
	BarrierAbsorbed int
	TempHPAbsorbed  int
	HPApplied       int
	Overkill        int
}

// absorb re-runs the pipeline's stage-7 layered absorption (barrier, then
// temp HP, then current HP) against the boost-adjusted amount, since the
// pipeline's own stage 7 ran against the pre-boost-resistance figure.
func absorb(amount, currentHP, tempHP int, barrier *int) absorption {
	remaining := amount
	var out absorption

	b := 0
	if barrier != nil {
		b = *barrier
	}
	if b > 0 && remaining > 0 {
		taken := min(b, remaining)
		out.BarrierAbsorbed = taken
		remaining -= taken
	}

	if tempHP > 0 && remaining > 0 {
		taken := min(tempHP, remaining)
		out.TempHPAbsorbed = taken
		remaining -= taken
	}

	applied := min(remaining, currentHP)
	if applied < 0 {
		applied = 0
	}
	out.HPApplied = applied
	out.Overkill = remaining - applied
	if out.Overkill < 0 {
		out.Overkill = 0
	}
	return out
}
