// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"fmt"

	"github.com/duskwright/combatcore/combatant"
	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rpgerr"
)

// DefaultCriticalThreshold is the natural d20 value that always crits when
// no query-supplied override is given (spec.md §4.4.1 point 7).
const DefaultCriticalThreshold = 20

// AttackInput is roll_attack's input (spec.md §4.4.1).
type AttackInput struct {
	AttackerID string
	DefenderID string
	AbilityID  string

	// Melee distinguishes the prone/ranged interaction in step 1(iv): a
	// prone defender grants advantage to melee attackers, disadvantage to
	// ranged attackers.
	Melee bool

	// Lucky re-rolls a natural 1 exactly once; the re-roll result is used
	// even if it is also 1 (spec.md §4.4.1 step 3).
	Lucky bool

	// ExtraAdvantageSources and ExtraDisadvantageSources are caller-supplied
	// sources folded into the 5e combination policy (step 1(v)).
	ExtraAdvantageSources    []string
	ExtraDisadvantageSources []string

	// HeightModifier and CoverACBonus are geometry the core does not
	// compute itself; they are emitted as breakdown entries and folded
	// into the roll/target AC respectively (spec.md §4.4.1 step 9).
	HeightModifier int
	CoverACBonus   int

	// CriticalThreshold overrides the default of 20; zero means the
	// default, and values outside [2,20] are silently clamped to the
	// nearer bound.
	CriticalThreshold int

	// AutoCritOnHit promotes a hit to a critical, used by control statuses
	// such as a paralyzed/unconscious target in melee range (spec.md
	// §4.4.1 step 8).
	AutoCritOnHit bool
}

// RollAttack implements spec.md §4.4.1.
func (e *Evaluator) RollAttack(in AttackInput) (*QueryResult, error) {
	attacker, ok := e.combatant(in.AttackerID)
	if !ok {
		return nil, rpgerr.NotFound("attacker combatant")
	}
	defender, ok := e.combatant(in.DefenderID)
	if !ok {
		return nil, rpgerr.NotFound("defender combatant")
	}

	ctx := modifier.NewContext()
	ctx.AttackerID = in.AttackerID
	ctx.DefenderID = in.DefenderID
	ctx.AbilityID = in.AbilityID

	extraAdv := append([]string{}, in.ExtraAdvantageSources...)
	extraDis := append([]string{}, in.ExtraDisadvantageSources...)
	autoCrit := in.AutoCritOnHit

	// Step 1(iii): boost advantage queries against AttackRoll.
	boosts := e.boostSet(in.AttackerID)
	if ok, srcs := boosts.HasAdvantage(string(modifier.TargetAttackRoll), in.AbilityID, e.cond()); ok {
		extraAdv = append(extraAdv, srcs...)
	}
	if ok, srcs := boosts.HasDisadvantage(string(modifier.TargetAttackRoll), in.AbilityID, e.cond()); ok {
		extraDis = append(extraDis, srcs...)
	}

	// Step 1(iv): status-provided context.
	if defender.HasTag(combatant.TagProne) {
		if in.Melee {
			extraAdv = append(extraAdv, "prone target")
		} else {
			extraDis = append(extraDis, "prone target")
		}
	}
	if attacker.HasTag(combatant.TagBlinded) {
		extraDis = append(extraDis, "blinded attacker")
	}
	if in.Melee && (defender.HasTag(combatant.TagParalyzed) || defender.HasTag(combatant.TagUnconscious)) {
		autoCrit = true
	}

	result := &QueryResult{}

	resolution := e.resolveAdvantage(in.AttackerID, modifier.TargetAttackRoll, ctx, extraAdv, extraDis)
	result.Advantage = resolution.State

	// Step 3: roll.
	natural, a, b, err := e.rollD20(resolution.State)
	if err != nil {
		return nil, err
	}
	result.NaturalA, result.NaturalB = a, b

	// Lucky re-roll on a natural 1.
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

	// Step 4: boost roll-bonus dice (e.g. Bless 1d4).
	for _, formula := range boosts.GetRollBonusDice(string(modifier.TargetAttackRoll), e.cond()) {
		rolled, applied, err := e.rollBonusDice(formula, "Bless")
		if err != nil {
			return nil, err
		}
		running += rolled
		result.Applied = append(result.Applied, applied)
		result.note("roll bonus (%s): %+g", formula, rolled)
	}

	if in.HeightModifier != 0 {
		running += float64(in.HeightModifier)
		result.note("height modifier: %+d", in.HeightModifier)
	}

	// Step 5: modifier stack on AttackRoll, attacker then global.
	running, appliedLocal, err := e.Stack(in.AttackerID).Apply(running, modifier.TargetAttackRoll, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, appliedLocal...)

	running, appliedGlobal, err := e.global.Apply(running, modifier.TargetAttackRoll, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, appliedGlobal...)

	result.Final = running

	// Step 6: target AC.
	targetAC, err := e.GetArmorClass(in.DefenderID)
	if err != nil {
		return nil, err
	}
	targetAC += in.CoverACBonus
	result.TargetAC = targetAC
	if in.CoverACBonus != 0 {
		result.note("cover AC bonus: %+d", in.CoverACBonus)
	}

	// Step 7: critical threshold, clamped [2,20].
	threshold := in.CriticalThreshold
	if threshold == 0 {
		threshold = DefaultCriticalThreshold
	}
	if threshold < 2 {
		threshold = 2
	}
	if threshold > 20 {
		threshold = 20
	}

	critPolicy := boosts.GetCriticalHitModifier(e.cond())

	switch {
	case natural == 1:
		result.CriticalFailure = true
		result.Success = false
	case natural >= threshold:
		result.Success = true
		if !critPolicy.NeverCrit {
			result.Critical = true
		}
	default:
		result.Success = running >= float64(targetAC)
	}

	if result.Success && !result.Critical && !result.CriticalFailure {
		if (autoCrit || critPolicy.AutoCrit) && !critPolicy.NeverCrit {
			result.Critical = true
			result.note("auto-crit on hit")
		}
	}

	return result, nil
}

// rollD20 rolls according to the resolved advantage state, returning the
// taken natural plus both individual dice for breakdown purposes.
func (e *Evaluator) rollD20(state modifier.AdvantageState) (taken, a, b int, err error) {
	switch state {
	case modifier.HasAdvantage:
		return e.rng.RollWithAdvantage()
	case modifier.HasDisadvantage:
		return e.rng.RollWithDisadvantage()
	default:
		v, err := e.rng.RollD20()
		if err != nil {
			return 0, 0, 0, err
		}
		return v, v, v, nil
	}
}

// rollBonusDice rolls a boost dice formula (e.g. "1d4" from Bless) and
// packages it as a synthetic AppliedModifier for the breakdown, since it
// did not come from either modifier stack.
func (e *Evaluator) rollBonusDice(formula, label string) (float64, modifier.AppliedModifier, error) {
	parsed, err := modifier.ParseDiceFormula(formula)
	if err != nil {
		return 0, modifier.AppliedModifier{}, err
	}
	result, err := e.rng.Roll(parsed.Count, parsed.Sides, 0)
	if err != nil {
		return 0, modifier.AppliedModifier{}, rpgerr.WrapWithCode(err, rpgerr.CodeInvalidArgument, "rules: rolling boost dice")
	}
	total := float64(result.Total)
	if parsed.Negative {
		total = -total
	}
	m := &modifier.Modifier{
		Name:    fmt.Sprintf("%s (%s)", label, formula),
		Kind:    modifier.Dice,
		Formula: formula,
	}
	return total, modifier.AppliedModifier{Modifier: m, ReportedValue: total}, nil
}
