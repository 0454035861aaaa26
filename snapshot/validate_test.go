// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/snapshot"
)

func validSnapshot() *snapshot.CombatSnapshot {
	return &snapshot.CombatSnapshot{
		SchemaVersion: snapshot.CurrentSchemaVersion,
		Flow: snapshot.CombatFlow{
			TurnOrder: []string{"a"},
		},
		Combatants: []snapshot.CombatantSnapshot{
			{ID: "a", MaxHP: 10, CurrentHP: 10, Life: "alive"},
		},
	}
}

func TestValidate_AcceptsCleanSnapshot(t *testing.T) {
	v := snapshot.NewValidator()
	require.Empty(t, v.Validate(validSnapshot()))
}

func TestValidate_RejectsBadVersion(t *testing.T) {
	v := snapshot.NewValidator()
	s := validSnapshot()
	s.SchemaVersion = 0
	require.NotEmpty(t, v.Validate(s))
}

func TestValidate_RejectsDuplicateCombatantIDs(t *testing.T) {
	v := snapshot.NewValidator()
	s := validSnapshot()
	s.Combatants = append(s.Combatants, s.Combatants[0])
	issues := v.Validate(s)
	require.NotEmpty(t, issues)
}

func TestValidate_RejectsTurnOrderReferencingUnknownCombatant(t *testing.T) {
	v := snapshot.NewValidator()
	s := validSnapshot()
	s.Flow.TurnOrder = []string{"ghost"}
	require.NotEmpty(t, v.Validate(s))
}

func TestValidate_RejectsNonPositiveMaxHP(t *testing.T) {
	v := snapshot.NewValidator()
	s := validSnapshot()
	s.Combatants[0].MaxHP = 0
	require.NotEmpty(t, v.Validate(s))
}

func TestValidate_RejectsStatusTargetingUnknownCombatant(t *testing.T) {
	v := snapshot.NewValidator()
	s := validSnapshot()
	s.Statuses = []snapshot.StatusSnapshot{{InstanceID: "s1", TargetID: "ghost"}}
	require.NotEmpty(t, v.Validate(s))
}
