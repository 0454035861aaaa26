// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rpgerr"
)

// DefaultBaseAC is used when a combatant's BaseAC is unset (spec.md §4.4.6
// "either stored stat or 10 default").
const DefaultBaseAC = 10

// GetArmorClass implements spec.md §4.4.6: base AC, then the combatant's
// ArmorClass modifier stack, then the boost AC bonus.
func (e *Evaluator) GetArmorClass(combatantID string) (int, error) {
	c, ok := e.combatant(combatantID)
	if !ok {
		return 0, rpgerr.NotFound("combatant")
	}

	base := c.BaseAC
	if base <= 0 {
		base = DefaultBaseAC
	}

	ctx := modifier.NewContext()
	ctx.DefenderID = combatantID

	total, _, err := e.Stack(combatantID).Apply(float64(base), modifier.TargetArmorClass, ctx, e.rng)
	if err != nil {
		return 0, err
	}

	boostBonus := e.boostSet(combatantID).GetACBonus(e.cond())

	return int(total) + boostBonus, nil
}
