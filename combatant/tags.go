// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

// Well-known tag names the Rules Evaluator checks for melee/ranged
// attack-roll awareness (spec.md §4.4.1 step 1: "a prone target grants
// advantage to melee attackers and disadvantage to ranged attackers; a
// blinded source grants disadvantage; a paralyzed/unconscious target in
// melee range forces auto-crit on hit"). These are plain tags on the
// existing Tags set rather than a new subsystem — package rules reads
// them, package combatant only defines the vocabulary.
const (
	TagProne       = "prone"
	TagBlinded     = "blinded"
	TagParalyzed   = "paralyzed"
	TagUnconscious = "unconscious"
	// TagRestrained marks a combatant whose restrained status imposes
	// disadvantage on its own DEX saving throws (spec.md §4.4.2).
	TagRestrained = "restrained"
)
