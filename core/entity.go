// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package core

// EntityType categorizes an Entity. It is a closed-ish string enum: the
// combat core only ever constructs the values below, but embedding shells
// may tag their own entities (props, triggers) with additional values.
type EntityType string

const (
	// EntityTypeCombatant identifies a combatant owned by the arena.
	EntityTypeCombatant EntityType = "combatant"
	// EntityTypeSurface identifies a positioned area effect.
	EntityTypeSurface EntityType = "surface"
	// EntityTypeStatus identifies an applied status instance.
	EntityTypeStatus EntityType = "status"
)

// Entity represents a fundamental addressable object in the combat core.
// Combatants, surfaces, and status instances all implement this interface
// so that ids can be passed around without a concrete dependency.
type Entity interface {
	// GetID returns the unique identifier for this entity.
	GetID() string

	// GetType returns the category of this entity.
	GetType() EntityType
}