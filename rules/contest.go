// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import "github.com/duskwright/combatcore/modifier"

// TiePolicy decides the winner of a contested check when both totals are
// equal (spec.md §4.4.3).
type TiePolicy string

const (
	DefenderWins TiePolicy = "defender_wins"
	AttackerWins TiePolicy = "attacker_wins"
	NoWinner     TiePolicy = "no_winner"
)

// ContestInput is one side of a contested check.
type ContestInput struct {
	CombatantID string
	AbilityID   string

	ExtraAdvantageSources    []string
	ExtraDisadvantageSources []string
}

// ContestResult carries both sides' full QueryResults plus the comparison
// (spec.md §4.4.3 "both naturals, both totals, margin, winner, and
// per-side breakdowns").
type ContestResult struct {
	A, B   *QueryResult
	Margin float64
	Winner string // "A", "B", or "none"
}

// Contest implements spec.md §4.4.3: both sides roll d20 + modifier with
// their own advantage/disadvantage resolution under SkillCheck, compared
// per tiePolicy.
func (e *Evaluator) Contest(a, b ContestInput, tiePolicy TiePolicy) (*ContestResult, error) {
	resA, err := e.rollContestSide(a)
	if err != nil {
		return nil, err
	}
	resB, err := e.rollContestSide(b)
	if err != nil {
		return nil, err
	}

	out := &ContestResult{A: resA, B: resB, Margin: resA.Final - resB.Final}

	switch {
	case resA.Final > resB.Final:
		out.Winner = "A"
	case resB.Final > resA.Final:
		out.Winner = "B"
	default:
		switch tiePolicy {
		case AttackerWins:
			out.Winner = "A"
		case NoWinner:
			out.Winner = "none"
		default:
			out.Winner = "B" // DefenderWins
		}
	}

	return out, nil
}

func (e *Evaluator) rollContestSide(in ContestInput) (*QueryResult, error) {
	ctx := modifier.NewContext()
	ctx.AttackerID = in.CombatantID
	ctx.AbilityID = in.AbilityID

	extraAdv := append([]string{}, in.ExtraAdvantageSources...)
	extraDis := append([]string{}, in.ExtraDisadvantageSources...)

	boosts := e.boostSet(in.CombatantID)
	if ok, srcs := boosts.HasAdvantage(string(modifier.TargetSkillCheck), in.AbilityID, e.cond()); ok {
		extraAdv = append(extraAdv, srcs...)
	}
	if ok, srcs := boosts.HasDisadvantage(string(modifier.TargetSkillCheck), in.AbilityID, e.cond()); ok {
		extraDis = append(extraDis, srcs...)
	}

	result := &QueryResult{}

	resolution := e.resolveAdvantage(in.CombatantID, modifier.TargetSkillCheck, ctx, extraAdv, extraDis)
	result.Advantage = resolution.State

	natural, na, nb, err := e.rollD20(resolution.State)
	if err != nil {
		return nil, err
	}
	result.Natural = natural
	result.NaturalA, result.NaturalB = na, nb
	result.note("natural d20: %d", natural)

	running := float64(natural)

	running, applied, err := e.Stack(in.CombatantID).Apply(running, modifier.TargetSkillCheck, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, applied...)

	running, appliedGlobal, err := e.global.Apply(running, modifier.TargetSkillCheck, ctx, e.rng)
	if err != nil {
		return nil, err
	}
	result.Applied = append(result.Applied, appliedGlobal...)

	result.Final = running
	return result, nil
}
