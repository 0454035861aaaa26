// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import "github.com/duskwright/combatcore/core"

// Status is an applied, instanced status effect (spec.md §3 Status
// (applied)) — e.g. "raging-a1b2" tied back to the "raging" definition.
type Status struct {
	InstanceID   string
	DefinitionID string
	TargetID     string
	SourceID     string
	StackCount   int
	Duration     int
	Payload      map[string]any

	// ConcentrationOwnerID, if set, links this status's lifetime to a
	// source combatant's concentration (spec.md supplemented feature:
	// breaking concentration tears down every status it owns).
	ConcentrationOwnerID string
}

// NewStatus constructs a Status instance with an initialized payload map.
func NewStatus(instanceID, definitionID, targetID, sourceID string, duration int) *Status {
	return &Status{
		InstanceID:   instanceID,
		DefinitionID: definitionID,
		TargetID:     targetID,
		SourceID:     sourceID,
		StackCount:   1,
		Duration:     duration,
		Payload:      make(map[string]any),
	}
}

// GetID implements core.Entity.
func (s *Status) GetID() string { return s.InstanceID }

// GetType implements core.Entity.
func (s *Status) GetType() core.EntityType { return core.EntityTypeStatus }

var _ core.Entity = (*Status)(nil)

// IsPermanent reports whether the status has no expiry (spec.md §3 Surface
// mirrors this convention: "0 = permanent").
func (s *Status) IsPermanent() bool {
	return s.Duration == 0
}

// Tick decrements Duration by one round/turn, floored at zero, and reports
// whether the status has now expired.
func (s *Status) Tick() bool {
	if s.IsPermanent() {
		return false
	}
	if s.Duration > 0 {
		s.Duration--
	}
	return s.Duration == 0
}

// Surface is a timed area effect (spec.md §3 Surface).
type Surface struct {
	InstanceID   string
	DefinitionID string
	Center       Position
	Radius       float64
	Duration     int
	OwnerID      string
	Tags         map[string]struct{}
}

// NewSurface constructs a Surface instance with an initialized tag set.
func NewSurface(instanceID, definitionID string, center Position, radius float64, duration int, ownerID string) *Surface {
	return &Surface{
		InstanceID:   instanceID,
		DefinitionID: definitionID,
		Center:       center,
		Radius:       radius,
		Duration:     duration,
		OwnerID:      ownerID,
		Tags:         make(map[string]struct{}),
	}
}

// GetID implements core.Entity.
func (s *Surface) GetID() string { return s.InstanceID }

// GetType implements core.Entity.
func (s *Surface) GetType() core.EntityType { return core.EntityTypeSurface }

var _ core.Entity = (*Surface)(nil)

// HasTag reports whether the surface carries the given tag (e.g. "fire").
func (s *Surface) HasTag(tag string) bool {
	_, ok := s.Tags[tag]
	return ok
}

// AddTag adds a tag to the surface.
func (s *Surface) AddTag(tag string) {
	s.Tags[tag] = struct{}{}
}

// IsPermanent reports whether the surface persists indefinitely.
func (s *Surface) IsPermanent() bool {
	return s.Duration == 0
}

// Tick decrements Duration by one round, floored at zero, and reports
// whether the surface has now expired.
func (s *Surface) Tick() bool {
	if s.IsPermanent() {
		return false
	}
	if s.Duration > 0 {
		s.Duration--
	}
	return s.Duration == 0
}

// Contains reports whether p lies within the surface's radius.
func (s *Surface) Contains(p Position) bool {
	dx := p.X - s.Center.X
	dy := p.Y - s.Center.Y
	dz := p.Z - s.Center.Z
	distSq := dx*dx + dy*dy + dz*dz
	return distSq <= s.Radius*s.Radius
}
