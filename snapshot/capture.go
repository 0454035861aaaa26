// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"fmt"
	"sort"

	"github.com/duskwright/combatcore/arena"
	"github.com/duskwright/combatcore/combatant"
)

// Capture assembles a CombatSnapshot by reading every subsystem an Arena
// owns — combatants, surfaces, statuses, concentrations, cooldowns,
// reaction prompts, props, the flow state machine, the resolution stack,
// and the RNG (spec.md §4.7 "Capture/restore contract": "save.capture(ctx)
// -> snapshot"). Timestamp is left at the zero value; callers that persist
// the snapshot stamp it themselves (spec.md §4.7: "captured only for
// observability").
func Capture(a *arena.Arena) *CombatSnapshot {
	seed, rollIndex := a.RNG.State()

	s := &CombatSnapshot{
		SchemaVersion: CurrentSchemaVersion,
		Flow: CombatFlow{
			State:               string(a.Machine.Current()),
			Substate:            string(a.Machine.CurrentSubstate()),
			Round:               a.Round,
			TurnIndex:           a.TurnIndex,
			TurnOrder:           append([]string(nil), a.TurnOrder...),
			NextTransitionIndex: a.Machine.NextIndex(),
			NextSubstateIndex:   a.Machine.NextSubIndex(),
		},
		RNG: RNGState{Seed: seed, RollIndex: rollIndex},
	}

	for _, c := range a.Combatants() {
		s.Combatants = append(s.Combatants, captureCombatant(c))
	}
	for _, sf := range a.Surfaces() {
		s.Surfaces = append(s.Surfaces, captureSurface(sf))
	}
	for _, st := range a.Statuses() {
		s.Statuses = append(s.Statuses, captureStatus(st))
	}
	for _, item := range a.Resolution.Items() {
		s.ResolutionStack = append(s.ResolutionStack, captureResolutionItem(item))
	}
	for _, entry := range a.Cooldowns.Entries() {
		s.Cooldowns = append(s.Cooldowns, CooldownSnapshot{
			CombatantID:       entry.CombatantID,
			AbilityID:         entry.AbilityID,
			MaxCharges:        entry.Cooldown.MaxCharges,
			CurrentCharges:    entry.Cooldown.CurrentCharges,
			RemainingCooldown: entry.Cooldown.RemainingCooldown,
			DecrementPhase:    string(entry.Cooldown.DecrementPhase),
		})
	}
	for _, conc := range a.Concentrations() {
		s.Concentrations = append(s.Concentrations, ConcentrationSnapshot{
			CombatantID:      conc.SourceID,
			SourceStatusID:   conc.EffectRef,
			LinkedStatusIDs:  append([]string(nil), conc.LinkedStatusIDs...),
			LinkedSurfaceIDs: append([]string(nil), conc.LinkedSurfaceIDs...),
		})
	}
	for _, p := range a.Reactions.Pending() {
		s.ReactionPrompts = append(s.ReactionPrompts, ReactionPromptSnapshot{
			ID:             p.ID,
			CombatantID:    p.CombatantID,
			TriggerWindow:  p.TriggerWindow,
			ExpiresAtRound: p.ExpiresAtRound,
		})
	}
	for _, p := range a.Props() {
		s.Props = append(s.Props, PropSnapshot{
			ID:        p.ID,
			Kind:      p.Kind,
			PositionX: p.Position.X,
			PositionY: p.Position.Y,
			PositionZ: p.Position.Z,
			HP:        p.HP,
		})
	}

	return s
}

func captureCombatant(c *combatant.Combatant) CombatantSnapshot {
	tags := sortedTagKeys(c.Tags)

	var resources []ResourceSnapshot
	for level, r := range c.Resources.Leveled {
		resources = append(resources, ResourceSnapshot{Key: fmt.Sprintf("L%d", level), Current: r.Current, Maximum: r.Maximum})
	}
	for key, r := range c.Resources.Flat {
		resources = append(resources, ResourceSnapshot{Key: key, Current: r.Current, Maximum: r.Maximum})
	}
	sort.Slice(resources, func(i, j int) bool { return resources[i].Key < resources[j].Key })

	return CombatantSnapshot{
		ID:        c.ID,
		Name:      c.Name,
		Faction:   string(c.Faction),
		Team:      c.Team,
		Tags:      tags,
		PositionX: c.Position.X,
		PositionY: c.Position.Y,
		PositionZ: c.Position.Z,
		Abilities: AbilityScoresSnapshot{
			Strength:     c.Abilities.Strength,
			Dexterity:    c.Abilities.Dexterity,
			Constitution: c.Abilities.Constitution,
			Intelligence: c.Abilities.Intelligence,
			Wisdom:       c.Abilities.Wisdom,
			Charisma:     c.Abilities.Charisma,
		},
		BaseAC:      c.BaseAC,
		CurrentAC:   c.CurrentAC,
		Life:        string(c.Life),
		CurrentHP:   c.CurrentHP,
		MaxHP:       c.MaxHP,
		TemporaryHP: c.TemporaryHP,
		Initiative:  c.Initiative,
		Tiebreaker:  c.Tiebreaker,
		Budget: ActionBudgetSnapshot{
			Action:        c.Budget.Action,
			BonusAction:   c.Budget.BonusAction,
			Reaction:      c.Budget.Reaction,
			RemainingMove: c.Budget.RemainingMove,
			MaxMovement:   c.Budget.MaxMovement,
		},
		Deaths:          DeathSavesSnapshot{Successes: c.Deaths.Successes, Failures: c.Deaths.Failures},
		KnownActionIDs:  append([]string(nil), c.KnownActionIDs...),
		Passives:        copyBoolMap(c.Passives),
		Equipment:       copyStringMap(c.Equipment),
		Resources:       resources,
		ConcentratingOn: c.ConcentratingOn,
	}
}

func captureSurface(s *combatant.Surface) SurfaceSnapshot {
	return SurfaceSnapshot{
		ID:        s.InstanceID,
		Kind:      s.DefinitionID,
		CenterX:   s.Center.X,
		CenterY:   s.Center.Y,
		CenterZ:   s.Center.Z,
		Radius:    s.Radius,
		Remaining: s.Duration,
		Permanent: s.IsPermanent(),
		OwnerID:   s.OwnerID,
		Tags:      sortedTagKeys(s.Tags),
	}
}

func captureStatus(st *combatant.Status) StatusSnapshot {
	return StatusSnapshot{
		InstanceID:           st.InstanceID,
		DefinitionID:         st.DefinitionID,
		TargetID:             st.TargetID,
		SourceID:             st.SourceID,
		Remaining:            st.Duration,
		Permanent:            st.IsPermanent(),
		ConcentrationOwnerID: st.ConcentrationOwnerID,
		StackCount:           st.StackCount,
	}
}

func captureResolutionItem(item *combatant.ResolutionStackItem) ResolutionItemSnapshot {
	payload := ""
	if item.Payload != nil {
		payload = fmt.Sprintf("%v", item.Payload)
	}
	return ResolutionItemSnapshot{
		ID:        item.ID,
		SourceID:  item.SourceID,
		TargetID:  item.TargetID,
		Kind:      item.ActionType,
		Cancelled: item.Cancelled,
		Depth:     item.Depth,
		Payload:   payload,
	}
}

func sortedTagKeys(tags map[string]struct{}) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for t := range tags {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func copyBoolMap(m map[string]bool) map[string]bool {
	if m == nil {
		return nil
	}
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
