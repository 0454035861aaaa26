// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"github.com/duskwright/combatcore/combatant"
	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rpgerr"
)

// SaveInput is roll_save's input (spec.md §4.4.2).
type SaveInput struct {
	CombatantID string
	AbilityID   string
	DC          int

	// Lucky re-rolls a natural 1 exactly once, same rule as attack rolls.
	Lucky bool

	ExtraAdvantageSources    []string
	ExtraDisadvantageSources []string

	// ExtraBonus folds in bonuses already resolved by the caller outside
	// the modifier stack, such as an "Aura of Protection"-style
	// max-of-bucket bonus computed via the rule-window EventContext
	// (spec.md §4.4.2, §4.6 add_max_save_bonus) before calling into this
	// package.
	ExtraBonus float64
}

// RollSave implements spec.md §4.4.2.
func (e *Evaluator) RollSave(in SaveInput) (*QueryResult, error) {
	c, ok := e.combatant(in.CombatantID)
	if !ok {
		return nil, rpgerr.NotFound("combatant")
	}

	ctx := modifier.NewContext()
	ctx.DefenderID = in.CombatantID
	ctx.AbilityID = in.AbilityID

	extraAdv := append([]string{}, in.ExtraAdvantageSources...)
	extraDis := append([]string{}, in.ExtraDisadvantageSources...)

	boosts := e.boostSet(in.CombatantID)
	if ok, srcs := boosts.HasAdvantage(string(modifier.TargetSavingThrow), in.AbilityID, e.cond()); ok {
		extraAdv = append(extraAdv, srcs...)
	}
	if ok, srcs := boosts.HasDisadvantage(string(modifier.TargetSavingThrow), in.AbilityID, e.cond()); ok {
		extraDis = append(extraDis, srcs...)
	}

	// Restrained imposes disadvantage on DEX-only saves.
	dexSave := in.AbilityID == "DEX" || in.AbilityID == "Dexterity"
	if dexSave && c.HasTag(combatant.TagRestrained) {
		extraDis = append(extraDis, "restrained")
	}

	// Paralyzed/unconscious auto-fail STR/DEX saves.
	strOrDex := dexSave || in.AbilityID == "STR" || in.AbilityID == "Strength"
	autoFail := strOrDex && (c.HasTag(combatant.TagParalyzed) || c.HasTag(combatant.TagUnconscious))

	result := &QueryResult{}

	resolution := e.resolveAdvantage(in.CombatantID, modifier.TargetSavingThrow, ctx, extraAdv, extraDis)
	result.Advantage = resolution.State

	natural, a, b, err := e.rollD20(resolution.State)
	if err != nil {
		return nil, err
	}
	result.NaturalA, result.NaturalB = a, b

	if in.Lucky && natural == 1 {
		reroll, err := e.rng.RollD20()
		if err != nil {
			return nil, err
		}
		result.note("lucky re-roll of natural 1: %d", reroll)
		natural = reroll
	}
	result.Natural = natural

	running := float64(natural)
	result.note("natural d20: %d", natural)

	for _, formula := range boosts.GetRollBonusDice(string(modifier.TargetSavingThrow), e.cond()) {
		rolled, applied, err := e.rollBonusDice(formula, "save bonus dice")
		if err != nil {
			return nil, err
		}
		running += rolled
		result.Applied = append(result.Applied, applied)
		result.note("roll bonus (%s): %+g", formula, rolled)
	}

	if in.ExtraBonus != 0 {
		running += in.ExtraBonus
		result.note("bucketed aura bonus: %+g", in.ExtraBonus)
	}

	running, applied, err := e.Stack(in.CombatantID).Apply(running, modifier.TargetSavingThrow, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, applied...)

	running, appliedGlobal, err := e.global.Apply(running, modifier.TargetSavingThrow, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, appliedGlobal...)

	result.Final = running

	switch {
	case autoFail:
		result.Success = false
		result.note("auto-fail (paralyzed/unconscious)")
	default:
		result.Success = running >= float64(in.DC)
	}

	return result, nil
}
