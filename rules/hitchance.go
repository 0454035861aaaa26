// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import "github.com/duskwright/combatcore/modifier"

// HitChanceInput is calculate_hit_chance's input (spec.md §4.4.7).
type HitChanceInput struct {
	AttackBonus int
	TargetAC    int
	Advantage   modifier.AdvantageState
}

// CalculateHitChance is a pure, RNG-free estimate of P(d20+mod >= AC),
// clamped to [5,95] percent (spec.md §4.4.7). It must never advance
// roll_index, so it takes no *rng.Source at all.
func CalculateHitChance(in HitChanceInput) float64 {
	needed := in.TargetAC - in.AttackBonus
	p := baseHitProbability(needed)

	switch in.Advantage {
	case modifier.HasAdvantage:
		p = 1 - (1-p)*(1-p)
	case modifier.HasDisadvantage:
		p = p * p
	}

	pct := p * 100
	if pct < 5 {
		pct = 5
	}
	if pct > 95 {
		pct = 95
	}
	return pct
}

// baseHitProbability returns P(d20 >= needed) for a single unmodified d20,
// natural 1 always missing and natural 20 always hitting.
func baseHitProbability(needed int) float64 {
	switch {
	case needed <= 2:
		return 19.0 / 20.0
	case needed >= 20:
		return 1.0 / 20.0
	default:
		hits := 21 - needed
		return float64(hits) / 20.0
	}
}
