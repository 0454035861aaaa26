// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import "github.com/duskwright/combatcore/rpgerr"

// ConsumeMovement spends delta feet of the combatant's remaining movement
// for the turn. It validates before mutating: a delta that would drive
// RemainingMove negative fails with ResourceExhausted and leaves Budget
// untouched (spec.md §3 Recovery: "action budget consumption that would
// go negative fails the consumption attempt without mutation"), mirroring
// Resource.Consume's check-then-decrement shape.
func (c *Combatant) ConsumeMovement(delta float64) error {
	if delta < 0 {
		return rpgerr.InvalidArgument("cannot consume negative movement", rpgerr.WithMeta("delta", delta))
	}
	if delta > c.Budget.RemainingMove {
		return rpgerr.ResourceExhausted("movement",
			rpgerr.WithMeta("have", c.Budget.RemainingMove), rpgerr.WithMeta("need", delta))
	}
	c.Budget.RemainingMove -= delta
	return nil
}

// ConsumeAction spends the turn's action. Already-used fails with
// TimingRestriction and leaves Budget untouched.
func (c *Combatant) ConsumeAction() error {
	if !c.Budget.Action {
		return rpgerr.TimingRestriction("action already used this turn")
	}
	c.Budget.Action = false
	return nil
}

// ConsumeBonusAction spends the turn's bonus action. Already-used fails
// with TimingRestriction and leaves Budget untouched.
func (c *Combatant) ConsumeBonusAction() error {
	if !c.Budget.BonusAction {
		return rpgerr.TimingRestriction("bonus action already used this turn")
	}
	c.Budget.BonusAction = false
	return nil
}

// ConsumeReaction spends the combatant's reaction. Already-used fails
// with TimingRestriction and leaves Budget untouched.
func (c *Combatant) ConsumeReaction() error {
	if !c.Budget.Reaction {
		return rpgerr.TimingRestriction("reaction already used")
	}
	c.Budget.Reaction = false
	return nil
}

// ResetActionEconomy restores a full action, bonus action, reaction, and
// movement allowance, as happens at the start of the combatant's turn.
func (c *Combatant) ResetActionEconomy() {
	c.Budget.Action = true
	c.Budget.BonusAction = true
	c.Budget.Reaction = true
	c.Budget.RemainingMove = c.Budget.MaxMovement
}
