// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"strconv"
	"strings"

	"github.com/duskwright/combatcore/arena"
	"github.com/duskwright/combatcore/combat"
	"github.com/duskwright/combatcore/combatant"
)

// Restore migrates and validates s, then replaces every subsystem a owns
// with the snapshot's contents (spec.md §4.7 "Capture/restore contract":
// "save.restore(ctx, snapshot)"). Validation runs before a's live state is
// touched at all, so a rejected snapshot never partially applies (spec.md
// §8.1 P2).
func Restore(a *arena.Arena, s *CombatSnapshot) error {
	if err := NewMigrator().Migrate(s); err != nil {
		return err
	}
	if err := NewValidator().ValidateErr(s); err != nil {
		return err
	}

	a.Reset()

	for _, cs := range s.Combatants {
		a.AddCombatant(restoreCombatant(cs))
	}
	for _, ss := range s.Surfaces {
		a.AddSurface(restoreSurface(ss))
	}
	for _, st := range s.Statuses {
		a.AddStatus(restoreStatus(st))
	}

	items := make([]*combatant.ResolutionStackItem, 0, len(s.ResolutionStack))
	for _, ris := range s.ResolutionStack {
		items = append(items, restoreResolutionItem(ris))
	}
	a.Resolution.Restore(items)

	for _, cd := range s.Cooldowns {
		a.Cooldowns.Set(cd.CombatantID, cd.AbilityID, &arena.Cooldown{
			MaxCharges:        cd.MaxCharges,
			CurrentCharges:    cd.CurrentCharges,
			RemainingCooldown: cd.RemainingCooldown,
			DecrementPhase:    arena.DecrementPhase(cd.DecrementPhase),
		})
	}
	for _, cc := range s.Concentrations {
		a.SetConcentration(&combatant.Concentration{
			SourceID:         cc.CombatantID,
			EffectRef:        cc.SourceStatusID,
			LinkedStatusIDs:  append([]string(nil), cc.LinkedStatusIDs...),
			LinkedSurfaceIDs: append([]string(nil), cc.LinkedSurfaceIDs...),
		})
	}
	for _, rp := range s.ReactionPrompts {
		a.Reactions.Push(&arena.ReactionPrompt{
			ID: rp.ID, CombatantID: rp.CombatantID, TriggerWindow: rp.TriggerWindow, ExpiresAtRound: rp.ExpiresAtRound,
		})
	}
	for _, ps := range s.Props {
		a.AddProp(&arena.Prop{
			ID:       ps.ID,
			Kind:     ps.Kind,
			Position: combatant.Position{X: ps.PositionX, Y: ps.PositionY, Z: ps.PositionZ},
			HP:       ps.HP,
		})
	}

	a.Round = s.Flow.Round
	a.TurnIndex = s.Flow.TurnIndex
	a.TurnOrder = append([]string(nil), s.Flow.TurnOrder...)
	a.Machine.RestoreState(
		combat.State(s.Flow.State), combat.Substate(s.Flow.Substate),
		s.Flow.NextTransitionIndex, s.Flow.NextSubstateIndex,
	)

	return a.RNG.SetState(s.RNG.Seed, s.RNG.RollIndex)
}

func restoreCombatant(cs CombatantSnapshot) *combatant.Combatant {
	c := combatant.NewCombatant(cs.ID, cs.Name, combatant.Faction(cs.Faction), cs.MaxHP)
	c.Team = cs.Team
	c.Position = combatant.Position{X: cs.PositionX, Y: cs.PositionY, Z: cs.PositionZ}
	c.Abilities = combatant.AbilityScores{
		Strength:     cs.Abilities.Strength,
		Dexterity:    cs.Abilities.Dexterity,
		Constitution: cs.Abilities.Constitution,
		Intelligence: cs.Abilities.Intelligence,
		Wisdom:       cs.Abilities.Wisdom,
		Charisma:     cs.Abilities.Charisma,
	}
	c.BaseAC = cs.BaseAC
	c.CurrentAC = cs.CurrentAC
	c.Life = combatant.LifeState(cs.Life)
	c.CurrentHP = cs.CurrentHP
	c.TemporaryHP = cs.TemporaryHP
	c.Initiative = cs.Initiative
	c.Tiebreaker = cs.Tiebreaker
	c.Budget = combatant.ActionBudget{
		Action:        cs.Budget.Action,
		BonusAction:   cs.Budget.BonusAction,
		Reaction:      cs.Budget.Reaction,
		RemainingMove: cs.Budget.RemainingMove,
		MaxMovement:   cs.Budget.MaxMovement,
	}
	c.Deaths = combatant.DeathSaves{Successes: cs.Deaths.Successes, Failures: cs.Deaths.Failures}
	c.KnownActionIDs = append([]string(nil), cs.KnownActionIDs...)
	for _, t := range cs.Tags {
		c.AddTag(t)
	}
	for k, v := range cs.Passives {
		c.Passives[k] = v
	}
	for k, v := range cs.Equipment {
		c.Equipment[k] = v
	}
	for _, rs := range cs.Resources {
		if level, ok := parseLeveledKey(rs.Key); ok {
			c.Resources.SetLeveled(level, &combatant.Resource{Current: rs.Current, Maximum: rs.Maximum})
		} else {
			c.Resources.SetFlat(rs.Key, &combatant.Resource{Current: rs.Current, Maximum: rs.Maximum})
		}
	}
	c.ConcentratingOn = cs.ConcentratingOn
	return c
}

func parseLeveledKey(key string) (int, bool) {
	if !strings.HasPrefix(key, "L") {
		return 0, false
	}
	level, err := strconv.Atoi(key[1:])
	if err != nil {
		return 0, false
	}
	return level, true
}

func restoreSurface(ss SurfaceSnapshot) *combatant.Surface {
	s := combatant.NewSurface(ss.ID, ss.Kind, combatant.Position{X: ss.CenterX, Y: ss.CenterY, Z: ss.CenterZ}, ss.Radius, ss.Remaining, ss.OwnerID)
	for _, t := range ss.Tags {
		s.AddTag(t)
	}
	return s
}

func restoreStatus(ss StatusSnapshot) *combatant.Status {
	st := combatant.NewStatus(ss.InstanceID, ss.DefinitionID, ss.TargetID, ss.SourceID, ss.Remaining)
	st.StackCount = ss.StackCount
	st.ConcentrationOwnerID = ss.ConcentrationOwnerID
	return st
}

func restoreResolutionItem(ris ResolutionItemSnapshot) *combatant.ResolutionStackItem {
	return &combatant.ResolutionStackItem{
		ID:         ris.ID,
		ActionType: ris.Kind,
		SourceID:   ris.SourceID,
		TargetID:   ris.TargetID,
		Cancelled:  ris.Cancelled,
		Depth:      ris.Depth,
		Payload:    ris.Payload,
	}
}
