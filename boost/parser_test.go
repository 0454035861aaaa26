// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package boost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/boost"
)

func TestParse_MultiClause(t *testing.T) {
	b, err := boost.Parse(`AC(2);Advantage(AttackRoll);Resistance(Fire,Resistant);IF(HasStatus('RAGING')):DamageBonus(2,Slashing)`, "ability", "rage")
	require.NoError(t, err)
	require.Len(t, b.Clauses, 4)

	require.Equal(t, boost.TypeAC, b.Clauses[0].Type)
	require.Equal(t, []boost.Arg{"2"}, b.Clauses[0].Args)
	require.False(t, b.Clauses[0].Conditional)

	require.Equal(t, boost.TypeAdvantage, b.Clauses[1].Type)
	require.Equal(t, []boost.Arg{"AttackRoll"}, b.Clauses[1].Args)

	require.Equal(t, boost.TypeResistance, b.Clauses[2].Type)
	require.Equal(t, []boost.Arg{"Fire", "Resistant"}, b.Clauses[2].Args)

	last := b.Clauses[3]
	require.Equal(t, boost.TypeDamageBonus, last.Type)
	require.True(t, last.Conditional)
	require.Equal(t, "HasStatus('RAGING')", last.Condition)
	require.Equal(t, []boost.Arg{"2", "Slashing"}, last.Args)
}

func TestParse_UnknownTypeFails(t *testing.T) {
	_, err := boost.Parse("Frobnicate(1)", "", "")
	require.Error(t, err)
}

func TestParse_MissingCloseParenFails(t *testing.T) {
	_, err := boost.Parse("AC(2", "", "")
	require.Error(t, err)
}

func TestParse_MissingColonAfterIfFails(t *testing.T) {
	_, err := boost.Parse("IF(true)AC(2)", "", "")
	require.Error(t, err)
}

func TestParse_EmptySegmentsIgnored(t *testing.T) {
	b, err := boost.Parse("AC(1);;AC(2);", "", "")
	require.NoError(t, err)
	require.Len(t, b.Clauses, 2)
}

func TestParse_NoArgsClause(t *testing.T) {
	b, err := boost.Parse("NeverCrit()", "", "")
	require.NoError(t, err)
	require.Len(t, b.Clauses, 1)
	require.Empty(t, b.Clauses[0].Args)
}

func TestSet_GetACBonus_SumsAcrossBoosts(t *testing.T) {
	shield, _ := boost.Parse("AC(2)", "item", "shield")
	ring, _ := boost.Parse("AC(1)", "item", "ring")
	set := boost.Set{shield, ring}

	require.Equal(t, 3, set.GetACBonus(nil))
}

func TestSet_GetResistanceLevel_StrongestWins(t *testing.T) {
	resist, _ := boost.Parse("Resistance(Fire,Resistant)", "status", "endure")
	immune, _ := boost.Parse("Resistance(Fire,Immune)", "item", "amulet")
	set := boost.Set{resist, immune}

	require.Equal(t, boost.Immune, set.GetResistanceLevel("Fire", nil))
	require.Equal(t, boost.Normal, set.GetResistanceLevel("Cold", nil))
}

func TestSet_ConditionalClauseRequiresResolver(t *testing.T) {
	b, _ := boost.Parse("IF(raging):DamageBonus(2,Slashing)", "ability", "rage")
	set := boost.Set{b}

	require.Equal(t, 0, set.GetDamageBonus("Slashing", nil))

	always := func(string) bool { return true }
	require.Equal(t, 2, set.GetDamageBonus("Slashing", always))

	never := func(string) bool { return false }
	require.Equal(t, 0, set.GetDamageBonus("Slashing", never))
}

func TestSet_HasAdvantage_MatchesRollTypeAndAbility(t *testing.T) {
	b, _ := boost.Parse("Advantage(SavingThrow,Wisdom)", "status", "foresight")
	set := boost.Set{b}

	has, sources := set.HasAdvantage("SavingThrow", "Wisdom", nil)
	require.True(t, has)
	require.Equal(t, []string{"foresight"}, sources)

	has, _ = set.HasAdvantage("SavingThrow", "Strength", nil)
	require.False(t, has)
}

func TestSet_GetCriticalHitModifier_NeverCritIndependentOfAutoCrit(t *testing.T) {
	b, _ := boost.Parse("NeverCrit();AutoCrit()", "status", "petrified")
	set := boost.Set{b}

	policy := set.GetCriticalHitModifier(nil)
	require.True(t, policy.NeverCrit)
	require.True(t, policy.AutoCrit)
}

func TestSet_GetStatusImmunities(t *testing.T) {
	b, _ := boost.Parse("StatusImmunity(Poisoned);StatusImmunity(Charmed)", "trait", "construct")
	set := boost.Set{b}

	immune := set.GetStatusImmunities(nil)
	require.Contains(t, immune, "Poisoned")
	require.Contains(t, immune, "Charmed")
	require.Len(t, immune, 2)
}

func TestArg_Dice(t *testing.T) {
	b, _ := boost.Parse("RollBonus(AttackRoll,1d4)", "status", "bless")
	formula, err := b.Clauses[0].Args[1].Dice()
	require.NoError(t, err)
	require.Equal(t, 1, formula.Count)
	require.Equal(t, 4, formula.Sides)
}
