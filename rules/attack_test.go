// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/boost"
	"github.com/duskwright/combatcore/combatant"
	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rng"
	"github.com/duskwright/combatcore/rules"
)

func newTestEvaluator(t *testing.T, roller rng.Roller, combatants map[string]*combatant.Combatant, boosts map[string]boost.Set) *rules.Evaluator {
	t.Helper()
	return rules.New(rules.Config{
		RNG: roller,
		Combatants: func(id string) (*combatant.Combatant, bool) {
			c, ok := combatants[id]
			return c, ok
		},
		Boosts: func(id string) boost.Set {
			return boosts[id]
		},
	})
}

// TestRollAttack_S1AdvantageDisadvantageCancel is spec.md S1.
func TestRollAttack_S1AdvantageDisadvantageCancel(t *testing.T) {
	attacker := combatant.NewCombatant("attacker", "Attacker", combatant.FactionPlayer, 20)
	defender := combatant.NewCombatant("defender", "Defender", combatant.FactionHostile, 20)
	defender.BaseAC = 15

	e := newTestEvaluator(t, rng.NewFixedSource(12),
		map[string]*combatant.Combatant{"attacker": attacker, "defender": defender},
		nil)

	e.Stack("attacker").Add(&modifier.Modifier{Kind: modifier.Flat, Target: modifier.TargetAttackRoll, Value: 5, Source: "weapon"})
	e.Stack("attacker").Add(&modifier.Modifier{Kind: modifier.Advantage, Target: modifier.TargetAttackRoll, Source: "status:reckless"})
	e.Stack("attacker").Add(&modifier.Modifier{Kind: modifier.Disadvantage, Target: modifier.TargetAttackRoll, Source: "status:prone_self"})

	result, err := e.RollAttack(rules.AttackInput{AttackerID: "attacker", DefenderID: "defender"})
	require.NoError(t, err)

	require.Equal(t, 12, result.Natural)
	require.Equal(t, float64(17), result.Final)
	require.True(t, result.Success)
	require.False(t, result.Critical)
	require.Equal(t, modifier.Normal, result.Advantage)
	require.Equal(t, 15, result.TargetAC)
}

// TestRollAttack_S4BlessBonusDice is spec.md S4.
func TestRollAttack_S4BlessBonusDice(t *testing.T) {
	attacker := combatant.NewCombatant("attacker", "Attacker", combatant.FactionPlayer, 20)
	defender := combatant.NewCombatant("defender", "Defender", combatant.FactionHostile, 20)
	defender.BaseAC = 18

	bless, err := boost.Parse("RollBonus(AttackRoll,1d4)", "item", "bless")
	require.NoError(t, err)

	e := newTestEvaluator(t, rng.NewFixedSource(13, 3),
		map[string]*combatant.Combatant{"attacker": attacker, "defender": defender},
		map[string]boost.Set{"attacker": {bless}})

	e.Stack("attacker").Add(&modifier.Modifier{Kind: modifier.Flat, Target: modifier.TargetAttackRoll, Value: 4, Source: "weapon"})

	result, err := e.RollAttack(rules.AttackInput{AttackerID: "attacker", DefenderID: "defender"})
	require.NoError(t, err)

	require.Equal(t, 13, result.Natural)
	require.Equal(t, float64(20), result.Final)
	require.True(t, result.Success)
	require.False(t, result.Critical)

	var sawBonusDice bool
	for _, app := range result.Applied {
		if app.Modifier.Kind == modifier.Dice && app.Modifier.Formula == "1d4" {
			sawBonusDice = true
			require.Equal(t, float64(3), app.ReportedValue)
		}
	}
	require.True(t, sawBonusDice, "breakdown must list the 1d4 bonus as a distinct entry")
}

func TestRollAttack_NaturalOneAlwaysMisses(t *testing.T) {
	attacker := combatant.NewCombatant("attacker", "Attacker", combatant.FactionPlayer, 20)
	defender := combatant.NewCombatant("defender", "Defender", combatant.FactionHostile, 20)
	defender.BaseAC = 5

	e := newTestEvaluator(t, rng.NewFixedSource(1),
		map[string]*combatant.Combatant{"attacker": attacker, "defender": defender}, nil)
	e.Stack("attacker").Add(&modifier.Modifier{Kind: modifier.Flat, Target: modifier.TargetAttackRoll, Value: 50, Source: "weapon"})

	result, err := e.RollAttack(rules.AttackInput{AttackerID: "attacker", DefenderID: "defender"})
	require.NoError(t, err)
	require.True(t, result.CriticalFailure)
	require.False(t, result.Success)
}

func TestRollAttack_NaturalTwentyAlwaysHits(t *testing.T) {
	attacker := combatant.NewCombatant("attacker", "Attacker", combatant.FactionPlayer, 20)
	defender := combatant.NewCombatant("defender", "Defender", combatant.FactionHostile, 20)
	defender.BaseAC = 100

	e := newTestEvaluator(t, rng.NewFixedSource(20),
		map[string]*combatant.Combatant{"attacker": attacker, "defender": defender}, nil)

	result, err := e.RollAttack(rules.AttackInput{AttackerID: "attacker", DefenderID: "defender"})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.True(t, result.Critical)
}

func TestRollAttack_NeverCritDominatesAutoCrit(t *testing.T) {
	attacker := combatant.NewCombatant("attacker", "Attacker", combatant.FactionPlayer, 20)
	defender := combatant.NewCombatant("defender", "Defender", combatant.FactionHostile, 20)
	defender.BaseAC = 5

	neverCrit, err := boost.Parse("NeverCrit()", "item", "cursed")
	require.NoError(t, err)

	e := newTestEvaluator(t, rng.NewFixedSource(10),
		map[string]*combatant.Combatant{"attacker": attacker, "defender": defender},
		map[string]boost.Set{"attacker": {neverCrit}})

	result, err := e.RollAttack(rules.AttackInput{AttackerID: "attacker", DefenderID: "defender", AutoCritOnHit: true})
	require.NoError(t, err)
	require.True(t, result.Success)
	require.False(t, result.Critical)
}

func TestRollAttack_ProneTargetGrantsMeleeAdvantageRangedDisadvantage(t *testing.T) {
	attacker := combatant.NewCombatant("attacker", "Attacker", combatant.FactionPlayer, 20)
	defender := combatant.NewCombatant("defender", "Defender", combatant.FactionHostile, 20)
	defender.AddTag(combatant.TagProne)

	e := newTestEvaluator(t, rng.NewFixedSource(15, 8),
		map[string]*combatant.Combatant{"attacker": attacker, "defender": defender}, nil)

	result, err := e.RollAttack(rules.AttackInput{AttackerID: "attacker", DefenderID: "defender", Melee: true})
	require.NoError(t, err)
	require.Equal(t, modifier.HasAdvantage, result.Advantage)
}
