// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"fmt"

	"github.com/duskwright/combatcore/rpgerr"
)

// Validator rejects malformed snapshots before anything touches live
// state (spec.md §4.7 "Validation").
type Validator struct{}

// NewValidator constructs a Validator. It holds no state; every known
// integrity rule is static.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns every integrity issue found, or nil if s is clean.
// Callers should treat a non-empty return as "do not restore this"
// (spec.md §7 "ValidationError(list)").
func (v *Validator) Validate(s *CombatSnapshot) []string {
	var issues []string

	if s.SchemaVersion <= 0 || s.SchemaVersion > CurrentSchemaVersion {
		issues = append(issues, fmt.Sprintf("bad schema version: %d", s.SchemaVersion))
	}
	if s.RNG.RollIndex < 0 {
		issues = append(issues, "negative RNG roll index")
	}
	if s.Flow.Round < 0 {
		issues = append(issues, "negative round")
	}
	if s.Flow.TurnIndex < 0 {
		issues = append(issues, "negative turn index")
	}
	if s.Combatants == nil {
		issues = append(issues, "null combatant list")
	}

	combatantIDs := make(map[string]struct{}, len(s.Combatants))
	for _, c := range s.Combatants {
		if _, dup := combatantIDs[c.ID]; dup {
			issues = append(issues, fmt.Sprintf("duplicate combatant id: %s", c.ID))
			continue
		}
		combatantIDs[c.ID] = struct{}{}

		if c.CurrentHP < 0 && c.Life != "dead" {
			issues = append(issues, fmt.Sprintf("negative HP on live combatant: %s", c.ID))
		}
		if c.MaxHP <= 0 {
			issues = append(issues, fmt.Sprintf("non-positive MaxHP: %s", c.ID))
		}
	}

	for _, id := range s.Flow.TurnOrder {
		if _, ok := combatantIDs[id]; !ok {
			issues = append(issues, fmt.Sprintf("turn order references unknown combatant: %s", id))
		}
	}
	if len(s.Flow.TurnOrder) > 0 && s.Flow.TurnIndex >= len(s.Flow.TurnOrder) {
		issues = append(issues, "turn index out of range of turn order")
	}

	for _, st := range s.Statuses {
		if _, ok := combatantIDs[st.TargetID]; !ok {
			issues = append(issues, fmt.Sprintf("status targets unknown combatant: %s", st.TargetID))
		}
		if st.Remaining < 0 {
			issues = append(issues, fmt.Sprintf("negative status duration: %s", st.InstanceID))
		}
	}

	if s.Flow.NextTransitionIndex < 0 {
		issues = append(issues, "negative next transition index")
	}
	if s.Flow.NextSubstateIndex < 0 {
		issues = append(issues, "negative next substate index")
	}

	for _, cd := range s.Cooldowns {
		if _, ok := combatantIDs[cd.CombatantID]; !ok {
			issues = append(issues, fmt.Sprintf("cooldown targets unknown combatant: %s", cd.CombatantID))
		}
		if cd.CurrentCharges > cd.MaxCharges {
			issues = append(issues, fmt.Sprintf("cooldown current charges exceed max: %s/%s", cd.CombatantID, cd.AbilityID))
		}
	}

	for _, rp := range s.ReactionPrompts {
		if _, ok := combatantIDs[rp.CombatantID]; !ok {
			issues = append(issues, fmt.Sprintf("reaction prompt targets unknown combatant: %s", rp.CombatantID))
		}
	}

	for _, p := range s.Props {
		if p.HP < 0 {
			issues = append(issues, fmt.Sprintf("negative prop HP: %s", p.ID))
		}
	}

	return issues
}

// ValidateErr wraps Validate's result as an error, or nil if clean
// (spec.md §7 ValidationError(list)).
func (v *Validator) ValidateErr(s *CombatSnapshot) error {
	issues := v.Validate(s)
	if len(issues) == 0 {
		return nil
	}
	return rpgerr.Validation(issues)
}
