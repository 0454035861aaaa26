// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package damage

import (
	"fmt"
	"sort"

	"github.com/duskwright/combatcore/core"
	"github.com/duskwright/combatcore/modifier"
)

// Context is the Damage Pipeline's input (spec.md §3 Damage Context): a
// base integer amount, the damage type, and the already-filtered modifier
// lists on the source and target sides. "Already filtered" means the
// caller (package rules) has selected exactly the modifiers whose target
// and predicate match this attack — this package only orders and sums
// what it is handed.
type Context struct {
	// Base is the starting integer damage (e.g. rolled weapon/spell dice,
	// already summed by the caller).
	Base int
	// DamageType selects which target resistance/vulnerability tier this
	// damage is subject to.
	DamageType Type

	// SourceModifiers are the attacker's modifiers targeting DamageDealt.
	SourceModifiers []*modifier.Modifier
	// TargetModifiers are the defender's modifiers targeting DamageTaken.
	TargetModifiers []*modifier.Modifier

	// TargetCurrentHP is the defender's HP before this application.
	TargetCurrentHP int
	// TargetTemporaryHP is the defender's temp HP before this application.
	TargetTemporaryHP int
	// TargetBarrier is the defender's barrier pool before this
	// application. Nil means the defender has no barrier layer at all
	// (spec.md §3 Damage Context: "target barrier (optional)").
	TargetBarrier *int
}

// Result carries every intermediate value of the seven stages plus a
// breakdown, so callers (package rules, the exporter) never have to
// re-derive how a final number was reached (spec.md §4.5 "returns a
// DamageResult carrying every intermediate value").
type Result struct {
	Base int

	SourceFlatTotal    int
	AfterSourceFlat    int
	AfterSourcePercent int

	SelectedImmunity       *modifier.Modifier
	SelectedResistance     *modifier.Modifier
	SelectedVulnerability  *modifier.Modifier
	AfterTargetMultipliers int

	TargetFlatTotal int
	AfterTargetFlat int

	FlooredDamage int

	BarrierAbsorbed int
	TempHPAbsorbed  int
	HPApplied       int
	Overkill        int

	FinalBarrier   *int
	FinalTempHP    int
	FinalCurrentHP int

	Breakdown []string
}

// Run executes the seven stages in spec.md §4.5's fixed order, exactly
// once each: base, source flat, source percentage, deduplicated target
// multipliers, target flat, floor at zero, layered absorption.
func Run(ctx Context) *Result {
	r := &Result{Base: ctx.Base}
	r.Breakdown = append(r.Breakdown, fmt.Sprintf("Base: %d", ctx.Base))

	// Stage 2: additive source bonuses (Flat, DamageDealt), priority order.
	running := float64(ctx.Base)
	for _, m := range sortedByPriority(ctx.SourceModifiers) {
		if m.Kind != modifier.Flat {
			continue
		}
		running += m.Value
		r.SourceFlatTotal += int(m.Value)
		r.Breakdown = append(r.Breakdown, fmt.Sprintf("Source flat (%s): %+g", m.Name, m.Value))
	}
	r.AfterSourceFlat = core.RoundHalfAwayFromZero(running)

	// Stage 3: source percentage bonuses, each a multiplier, rounding
	// after every individual application (spec.md §4.5 stage 3).
	running = float64(r.AfterSourceFlat)
	for _, m := range sortedByPriority(ctx.SourceModifiers) {
		if m.Kind != modifier.Percentage {
			continue
		}
		running = float64(core.RoundHalfAwayFromZero(running * (1 + m.Value/100)))
		r.Breakdown = append(r.Breakdown, fmt.Sprintf("Source percentage (%s): %+g%%", m.Name, m.Value))
	}
	r.AfterSourcePercent = core.RoundHalfAwayFromZero(running)

	// Stage 4: deduplicated target multipliers (spec.md §8.1 P4, §8.3
	// "immunity dominates"). Partition target Percentage DamageTaken
	// modifiers into immunity/resistance/vulnerability buckets and keep
	// only the single strongest of each.
	immunity, resistance, vulnerability := strongestByBucket(ctx.TargetModifiers)
	r.SelectedImmunity = immunity
	r.SelectedResistance = resistance
	r.SelectedVulnerability = vulnerability

	running = float64(r.AfterSourcePercent)
	for _, m := range []*modifier.Modifier{immunity, resistance, vulnerability} {
		if m == nil {
			continue
		}
		running = float64(core.RoundHalfAwayFromZero(running * (1 + m.Value/100)))
		r.Breakdown = append(r.Breakdown, fmt.Sprintf("Target multiplier (%s): %+g%%", m.Name, m.Value))
	}
	r.AfterTargetMultipliers = core.RoundHalfAwayFromZero(running)

	// Stage 5: target flat reductions.
	running = float64(r.AfterTargetMultipliers)
	for _, m := range sortedByPriority(ctx.TargetModifiers) {
		if m.Kind != modifier.Flat {
			continue
		}
		running += m.Value
		r.TargetFlatTotal += int(m.Value)
		r.Breakdown = append(r.Breakdown, fmt.Sprintf("Target flat (%s): %+g", m.Name, m.Value))
	}
	r.AfterTargetFlat = core.RoundHalfAwayFromZero(running)

	// Stage 6: floor at zero.
	r.FlooredDamage = r.AfterTargetFlat
	if r.FlooredDamage < 0 {
		r.FlooredDamage = 0
	}

	// Stage 7: layered absorption — barrier, then temp HP, then current HP.
	remaining := r.FlooredDamage

	barrier := 0
	if ctx.TargetBarrier != nil {
		barrier = *ctx.TargetBarrier
	}
	if barrier > 0 && remaining > 0 {
		absorbed := min(barrier, remaining)
		r.BarrierAbsorbed = absorbed
		remaining -= absorbed
		barrier -= absorbed
	}
	if ctx.TargetBarrier != nil {
		finalBarrier := barrier
		r.FinalBarrier = &finalBarrier
	}

	tempHP := ctx.TargetTemporaryHP
	if tempHP > 0 && remaining > 0 {
		absorbed := min(tempHP, remaining)
		r.TempHPAbsorbed = absorbed
		remaining -= absorbed
		tempHP -= absorbed
	}
	r.FinalTempHP = tempHP

	hpApplied := min(remaining, ctx.TargetCurrentHP)
	if hpApplied < 0 {
		hpApplied = 0
	}
	r.HPApplied = hpApplied
	r.Overkill = remaining - hpApplied
	if r.Overkill < 0 {
		r.Overkill = 0
	}
	r.FinalCurrentHP = ctx.TargetCurrentHP - hpApplied

	r.Breakdown = append(r.Breakdown, fmt.Sprintf(
		"Applied: barrier=%d tempHP=%d hp=%d overkill=%d",
		r.BarrierAbsorbed, r.TempHPAbsorbed, r.HPApplied, r.Overkill))

	return r
}

func sortedByPriority(mods []*modifier.Modifier) []*modifier.Modifier {
	out := make([]*modifier.Modifier, len(mods))
	copy(out, mods)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority < out[j].Priority })
	return out
}

// strongestByBucket partitions target Percentage DamageTaken modifiers
// into immunity (≤ -100), resistance (-100 < v < 0), and vulnerability
// (> 0), returning the single strongest (most extreme) of each bucket.
// This is the dedup law spec.md §8.1 P4 and §4.5 stage 4 require:
// multiple resistances/vulnerabilities never stack.
func strongestByBucket(mods []*modifier.Modifier) (immunity, resistance, vulnerability *modifier.Modifier) {
	for _, m := range mods {
		if m.Kind != modifier.Percentage {
			continue
		}
		switch {
		case m.Value <= -100:
			if immunity == nil || m.Value < immunity.Value {
				immunity = m
			}
		case m.Value < 0:
			if resistance == nil || m.Value < resistance.Value {
				resistance = m
			}
		case m.Value > 0:
			if vulnerability == nil || m.Value > vulnerability.Value {
				vulnerability = m
			}
		}
	}
	return immunity, resistance, vulnerability
}
