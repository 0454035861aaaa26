// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/arena"
	"github.com/duskwright/combatcore/combat"
	"github.com/duskwright/combatcore/combatant"
)

func buildPopulatedArena(t *testing.T) *arena.Arena {
	t.Helper()
	a := arena.New(arena.Config{Seed: 42, ResolutionMaxDepth: 4})

	barb := combatant.NewCombatant("barb1", "Ragnar", combatant.FactionPlayer, 28)
	barb.AddTag(combatant.TagProne)
	barb.Budget = combatant.ActionBudget{Action: true, BonusAction: true, Reaction: true, RemainingMove: 30, MaxMovement: 30}
	barb.Resources.SetLeveled(1, combatant.NewResource(4))
	barb.Resources.SetFlat("rage_uses", combatant.NewResource(3))
	a.AddCombatant(barb)

	goblin := combatant.NewCombatant("gob1", "Sneaky Goblin", combatant.FactionHostile, 12)
	a.AddCombatant(goblin)

	surface := combatant.NewSurface("fire1", "grease-fire", combatant.Position{X: 1, Y: 0, Z: 0}, 10, 3, "barb1")
	surface.AddTag("fire")
	a.AddSurface(surface)

	status := combatant.NewStatus("raging-1", "raging", "barb1", "barb1", 10)
	a.AddStatus(status)

	conc := &combatant.Concentration{SourceID: "barb1", EffectRef: "raging"}
	conc.LinkStatus("raging-1")
	a.SetConcentration(conc)

	item := combatant.NewResolutionStackItem("item1", "attack", "barb1")
	item.TargetID = "gob1"
	item.Payload = "melee swing"
	require.NoError(t, a.Resolution.Push(item))

	a.Cooldowns.Set("barb1", "reckless-attack", arena.NewCooldown(1, arena.DecrementTurnStart))
	a.Reactions.Push(&arena.ReactionPrompt{ID: "r1", CombatantID: "gob1", TriggerWindow: "on_hit", ExpiresAtRound: 5})
	a.AddProp(&arena.Prop{ID: "barrel1", Kind: "barrel", Position: combatant.Position{X: 2, Y: 2, Z: 0}, HP: 10})

	a.Round = 2
	a.TurnIndex = 1
	a.TurnOrder = []string{"barb1", "gob1"}
	a.Machine.TryTransition(combat.CombatStart, "begin")
	a.Machine.TryTransition(combat.TurnStart, "turn 1")

	_, err := a.RNG.RollD20()
	require.NoError(t, err)

	return a
}

func TestCaptureRestore_RoundTrip(t *testing.T) {
	a := buildPopulatedArena(t)

	snap := Capture(a)
	require.Equal(t, CurrentSchemaVersion, snap.SchemaVersion)
	require.Len(t, snap.Combatants, 2)
	require.Len(t, snap.Surfaces, 1)
	require.Len(t, snap.Statuses, 1)
	require.Len(t, snap.ResolutionStack, 1)
	require.Len(t, snap.Cooldowns, 1)
	require.Len(t, snap.Concentrations, 1)
	require.Len(t, snap.ReactionPrompts, 1)
	require.Len(t, snap.Props, 1)

	restored := arena.New(arena.Config{Seed: 0})
	require.NoError(t, Restore(restored, snap))

	barb, ok := restored.Combatant("barb1")
	require.True(t, ok)
	require.True(t, barb.HasTag(combatant.TagProne))
	require.Equal(t, 30.0, barb.Budget.RemainingMove)

	_, ok = barb.Resources.Leveled[1]
	require.True(t, ok)
	require.Equal(t, 4, barb.Resources.Leveled[1].Maximum)
	require.Equal(t, 3, barb.Resources.Flat["rage_uses"].Maximum)

	sf, ok := restored.Surface("fire1")
	require.True(t, ok)
	require.True(t, sf.HasTag("fire"))
	require.Equal(t, 3, sf.Duration)

	st, ok := restored.Status("raging-1")
	require.True(t, ok)
	require.Equal(t, "barb1", st.SourceID)

	conc, ok := restored.Concentration("barb1")
	require.True(t, ok)
	require.Equal(t, []string{"raging-1"}, conc.LinkedStatusIDs)

	require.Equal(t, 1, restored.Resolution.Depth())
	top := restored.Resolution.Peek()
	require.Equal(t, "item1", top.ID)
	require.Equal(t, "melee swing", top.Payload)

	cd, ok := restored.Cooldowns.Get("barb1", "reckless-attack")
	require.True(t, ok)
	require.Equal(t, 1, cd.MaxCharges)

	pending := restored.Reactions.Pending()
	require.Len(t, pending, 1)
	require.Equal(t, "gob1", pending[0].CombatantID)

	prop, ok := restored.Prop("barrel1")
	require.True(t, ok)
	require.Equal(t, 10, prop.HP)

	require.Equal(t, combat.TurnStart, restored.Machine.Current())
	require.Equal(t, 2, restored.Round)
	require.Equal(t, []string{"barb1", "gob1"}, restored.TurnOrder)

	wantSeed, wantRollIndex := a.RNG.State()
	gotSeed, gotRollIndex := restored.RNG.State()
	require.Equal(t, wantSeed, gotSeed)
	require.Equal(t, wantRollIndex, gotRollIndex)
}

func TestCaptureRestore_IsByteStableUnderExport(t *testing.T) {
	a := buildPopulatedArena(t)
	exporter := NewDeterministicExporter()

	snap1 := Capture(a)
	data1, err := exporter.Export(snap1)
	require.NoError(t, err)

	snap2 := Capture(a)
	data2, err := exporter.Export(snap2)
	require.NoError(t, err)

	require.Equal(t, data1, data2, "capturing the same arena state twice must export identically (spec.md P1)")
}

func TestRestore_RejectsInvalidSnapshot(t *testing.T) {
	a := arena.New(arena.Config{Seed: 0})
	bad := &CombatSnapshot{
		SchemaVersion: CurrentSchemaVersion,
		Flow:          CombatFlow{TurnIndex: -1},
		Combatants:    []CombatantSnapshot{},
	}
	err := Restore(a, bad)
	require.Error(t, err)
}
