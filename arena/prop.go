// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package arena

import "github.com/duskwright/combatcore/combatant"

// Prop is a spawned, non-combatant interactive object (spec.md §4.7
// "spawned props") — a barrel, door, or piece of destructible cover that
// occupies space and can take damage but is never a turn-taking
// Combatant.
type Prop struct {
	ID       string
	Kind     string
	Position combatant.Position
	HP       int
}

// Damage reduces HP, floored at zero.
func (p *Prop) Damage(amount int) {
	if amount <= 0 {
		return
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
}

// Destroyed reports whether the prop has been reduced to 0 HP.
func (p *Prop) Destroyed() bool {
	return p.HP <= 0
}
