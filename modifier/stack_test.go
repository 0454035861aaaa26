// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package modifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rng"
)

func TestStack_ApplyFlatThenDiceThenPercentage(t *testing.T) {
	s := modifier.NewStack()
	rage := modifier.NewModifier("rage", modifier.Flat, modifier.TargetDamageDealt, 2, "rage")
	bless := modifier.NewModifier("bless", modifier.Dice, modifier.TargetDamageDealt, 0, "bless")
	bless.Formula = "1d4"
	vuln := modifier.NewModifier("vulnerable", modifier.Percentage, modifier.TargetDamageDealt, 100, "vulnerable")
	s.Add(rage)
	s.Add(bless)
	s.Add(vuln)

	// base 10, +2 flat = 12, +1d4(fixed=3) = 15, *2 (100% bonus) = 30
	total, applied, err := s.Apply(10, modifier.TargetDamageDealt, nil, rng.NewFixedSource(3))
	require.NoError(t, err)
	require.Equal(t, 30.0, total)
	require.Len(t, applied, 3)
}

func TestStack_ApplyOrderIndependentAcrossPriorities(t *testing.T) {
	base := 10.0
	roller := rng.NewFixedSource(4)

	build := func(order []int) *modifier.Stack {
		s := modifier.NewStack()
		defs := []*modifier.Modifier{
			{Name: "a", Kind: modifier.Flat, Target: modifier.TargetDamageDealt, Value: 3, Priority: 10, Source: "a"},
			{Name: "b", Kind: modifier.Percentage, Target: modifier.TargetDamageDealt, Value: 50, Priority: 20, Source: "b"},
			{Name: "c", Kind: modifier.Flat, Target: modifier.TargetDamageDealt, Value: -1, Priority: 5, Source: "c"},
		}
		for _, i := range order {
			s.Add(defs[i])
		}
		return s
	}

	s1 := build([]int{0, 1, 2})
	s2 := build([]int{2, 1, 0})

	total1, _, err := s1.Apply(base, modifier.TargetDamageDealt, nil, roller)
	require.NoError(t, err)
	total2, _, err := s2.Apply(base, modifier.TargetDamageDealt, nil, rng.NewFixedSource(4))
	require.NoError(t, err)

	require.Equal(t, total1, total2)
}

func TestStack_OverrideLastWins(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{Name: "first", Kind: modifier.Override, Target: modifier.TargetArmorClass, Value: 15, Priority: 10})
	s.Add(&modifier.Modifier{Name: "second", Kind: modifier.Override, Target: modifier.TargetArmorClass, Value: 20, Priority: 10})

	total, applied, err := s.Apply(10, modifier.TargetArmorClass, nil, rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Equal(t, 20.0, total)
	require.Len(t, applied, 1)
	require.Equal(t, "second", applied[0].Modifier.Name)
}

func TestStack_ConsumeOnUseSkipsAfterFirstApply(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{
		Name: "lucky-reroll-charge", Kind: modifier.Flat, Target: modifier.TargetAttackRoll,
		Value: 1, ConsumeOnUse: true,
	})

	total1, applied1, err := s.Apply(10, modifier.TargetAttackRoll, nil, rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Equal(t, 11.0, total1)
	require.Len(t, applied1, 1)

	total2, applied2, err := s.Apply(10, modifier.TargetAttackRoll, nil, rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Equal(t, 10.0, total2)
	require.Len(t, applied2, 0)
}

func TestStack_RemoveBySourceThenReAddBehavesFresh(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{Name: "bless", Kind: modifier.Flat, Target: modifier.TargetSavingThrow, Value: 2, Source: "bless", ConsumeOnUse: true})

	_, applied, err := s.Apply(10, modifier.TargetSavingThrow, nil, rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Len(t, applied, 1)

	removed := s.RemoveBySource("bless")
	require.Equal(t, 1, removed)

	s.Add(&modifier.Modifier{Name: "bless", Kind: modifier.Flat, Target: modifier.TargetSavingThrow, Value: 2, Source: "bless", ConsumeOnUse: true})
	total, applied, err := s.Apply(10, modifier.TargetSavingThrow, nil, rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Equal(t, 12.0, total)
	require.Len(t, applied, 1)
}

func TestStack_RemoveByIDUnknownIsNoop(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{Name: "a", Kind: modifier.Flat, Target: modifier.TargetAttackRoll, Value: 1})
	require.NotPanics(t, func() { s.RemoveByID("does-not-exist") })
	require.Len(t, s.All(), 1)
}

func TestStack_ResolveAdvantage_AnyAdvAnyDisIsNormal(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{Kind: modifier.Advantage, Target: modifier.TargetAttackRoll, Source: "reckless"})
	s.Add(&modifier.Modifier{Kind: modifier.Disadvantage, Target: modifier.TargetAttackRoll, Source: "blinded"})

	res := s.ResolveAdvantage(modifier.TargetAttackRoll, nil, nil, nil)
	require.Equal(t, modifier.Normal, res.State)
	require.ElementsMatch(t, []string{"reckless"}, res.AdvantageSources)
	require.ElementsMatch(t, []string{"blinded"}, res.DisadvantageSources)
}

func TestStack_ResolveAdvantage_OnlyAdvantageWins(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{Kind: modifier.Advantage, Target: modifier.TargetAttackRoll, Source: "reckless"})

	res := s.ResolveAdvantage(modifier.TargetAttackRoll, nil, []string{"prone-target"}, nil)
	require.Equal(t, modifier.HasAdvantage, res.State)
	require.ElementsMatch(t, []string{"reckless", "prone-target"}, res.AdvantageSources)
}

func TestStack_ResolveAdvantage_NoSourcesIsNormal(t *testing.T) {
	s := modifier.NewStack()
	res := s.ResolveAdvantage(modifier.TargetAttackRoll, nil, nil, nil)
	require.Equal(t, modifier.Normal, res.State)
}

func TestStack_PredicateFiltersModifiers(t *testing.T) {
	s := modifier.NewStack()
	s.Add(&modifier.Modifier{
		Name: "sneak-attack", Kind: modifier.Flat, Target: modifier.TargetDamageDealt, Value: 7,
		Predicate: func(ctx *modifier.Context) bool { return ctx.HasTag("flanking") },
	})

	without, _, err := s.Apply(10, modifier.TargetDamageDealt, modifier.NewContext(), rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Equal(t, 10.0, without)

	withTag := modifier.NewContext().WithTag("flanking")
	with, _, err := s.Apply(10, modifier.TargetDamageDealt, withTag, rng.NewFixedSource(1))
	require.NoError(t, err)
	require.Equal(t, 17.0, with)
}
