// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"github.com/duskwright/combatcore/modifier"
)

// resolveAdvantage combines the per-combatant stack, the global stack, and
// caller-supplied extra sources into one AdvantageResolution (spec.md
// §4.4.1 step 1-2: "gather advantage sources from (i) per-attacker modifier
// resolution, (ii) global modifier resolution, ... (v) caller-supplied
// extra sources", then "combine by the 5e policy"). The per-combatant
// stack's own sources are folded in as extras to the global stack's
// resolution so both contribute to a single final state.
func (e *Evaluator) resolveAdvantage(combatantID string, target modifier.Target, ctx *modifier.Context, extraAdv, extraDis []string) modifier.AdvantageResolution {
	local := e.Stack(combatantID).ResolveAdvantage(target, ctx, nil, nil)

	adv := append(append([]string{}, local.AdvantageSources...), extraAdv...)
	dis := append(append([]string{}, local.DisadvantageSources...), extraDis...)

	return e.global.ResolveAdvantage(target, ctx, adv, dis)
}
