// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duskwright/combatcore/combatant"
)

func TestBreakConcentration_RemovesLinkedStatusesAndSurfaces(t *testing.T) {
	c := &combatant.Concentration{SourceID: "cleric1", EffectRef: "spirit-guardians"}
	c.LinkStatus("status-1")
	c.LinkSurface("surface-1")

	statuses := map[string]*combatant.Status{
		"status-1": combatant.NewStatus("status-1", "warded", "barb1", "cleric1", 10),
		"status-2": combatant.NewStatus("status-2", "raging", "barb1", "barb1", 5),
	}
	surfaces := map[string]*combatant.Surface{
		"surface-1": combatant.NewSurface("surface-1", "spirit-guardians", combatant.Position{}, 3, 10, "cleric1"),
	}

	removedStatuses, removedSurfaces := combatant.BreakConcentration(c, statuses, surfaces)

	require.Equal(t, []string{"status-1"}, removedStatuses)
	require.Equal(t, []string{"surface-1"}, removedSurfaces)
	require.NotContains(t, statuses, "status-1")
	require.Contains(t, statuses, "status-2")
	require.Empty(t, surfaces)
	require.Empty(t, c.LinkedStatusIDs)
	require.Empty(t, c.LinkedSurfaceIDs)
}
