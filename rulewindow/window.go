// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rulewindow

// Window is the closed enumeration of lifecycle points at which providers
// may observe or mutate an in-flight resolution (spec.md §4.6).
type Window string

const (
	BeforeAttackRoll       Window = "before_attack_roll"
	AfterAttackRoll        Window = "after_attack_roll"
	BeforeDamage           Window = "before_damage"
	AfterDamage            Window = "after_damage"
	BeforeSavingThrow      Window = "before_saving_throw"
	AfterSavingThrow       Window = "after_saving_throw"
	OnTurnStart            Window = "on_turn_start"
	OnTurnEnd              Window = "on_turn_end"
	OnMove                 Window = "on_move"
	OnLeaveThreateningArea Window = "on_leave_threatening_area"
	OnEnterSurface         Window = "on_enter_surface"
	OnConcentrationCheck   Window = "on_concentration_check"
	OnConcentrationBroken  Window = "on_concentration_broken"
	OnDeclareAction        Window = "on_declare_action"
	OnActionComplete       Window = "on_action_complete"
)
