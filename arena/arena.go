// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package arena

import (
	"sort"

	"github.com/duskwright/combatcore/combat"
	"github.com/duskwright/combatcore/combatant"
	"github.com/duskwright/combatcore/rng"
	"github.com/duskwright/combatcore/rpgerr"
	"github.com/duskwright/combatcore/rulewindow"
)

// Config constructs an Arena (spec.md AMBIENT STACK "explicit config
// structs", matching the teacher's CoreConfig/PoolConfig idiom).
type Config struct {
	Seed               uint64
	ResolutionMaxDepth int
}

// Arena is the aggregate that exclusively owns one combat instance's
// combatants, surfaces, and active statuses (spec.md §3 Ownership), plus
// every subsystem that evolves alongside them: the flow state machine,
// the resolution stack, the RNG, ability cooldowns, concentrations,
// pending reaction prompts, and spawned props. Package snapshot's
// Capture/Restore operate on an Arena as the single unit of save/load.
type Arena struct {
	Machine    *combat.Machine
	Resolution *rulewindow.ResolutionStack
	RNG        *rng.Source

	// Round, TurnIndex and TurnOrder are the turn-order half of combat
	// flow state; the state machine itself only tracks State/Substate
	// (spec.md §4.7 "combat flow state").
	Round     int
	TurnIndex int
	TurnOrder []string

	Cooldowns *CooldownTracker
	Reactions *ReactionQueue

	combatants     map[string]*combatant.Combatant
	surfaces       map[string]*combatant.Surface
	statuses       map[string]*combatant.Status
	concentrations map[string]*combatant.Concentration
	props          map[string]*Prop
}

// New constructs an empty Arena ready to receive combatants.
func New(cfg Config) *Arena {
	return &Arena{
		Machine:        combat.NewMachine(),
		Resolution:     rulewindow.NewResolutionStack(cfg.ResolutionMaxDepth),
		RNG:            rng.NewSource(cfg.Seed),
		Cooldowns:      NewCooldownTracker(),
		Reactions:      NewReactionQueue(),
		combatants:     make(map[string]*combatant.Combatant),
		surfaces:       make(map[string]*combatant.Surface),
		statuses:       make(map[string]*combatant.Status),
		concentrations: make(map[string]*combatant.Concentration),
		props:          make(map[string]*Prop),
	}
}

// Reset clears every collection and returns the machine and resolution
// stack to their zero state, as a precondition to a snapshot restore
// (spec.md §4.7: restoration replaces live state wholesale).
func (a *Arena) Reset() {
	a.Machine.Reset()
	a.Resolution.Reset()
	a.Round = 0
	a.TurnIndex = 0
	a.TurnOrder = nil
	a.Cooldowns = NewCooldownTracker()
	a.Reactions = NewReactionQueue()
	a.combatants = make(map[string]*combatant.Combatant)
	a.surfaces = make(map[string]*combatant.Surface)
	a.statuses = make(map[string]*combatant.Status)
	a.concentrations = make(map[string]*combatant.Concentration)
	a.props = make(map[string]*Prop)
}

// AddCombatant registers c with the arena, keyed by its ID.
func (a *Arena) AddCombatant(c *combatant.Combatant) {
	a.combatants[c.ID] = c
}

// RemoveCombatant removes the combatant with the given id.
func (a *Arena) RemoveCombatant(id string) {
	delete(a.combatants, id)
}

// Combatant resolves a combatant by id. Its signature matches
// rules.CombatantProvider so it can be passed directly as rules.Config's
// Combatants field.
func (a *Arena) Combatant(id string) (*combatant.Combatant, bool) {
	c, ok := a.combatants[id]
	return c, ok
}

// Combatants returns every combatant, sorted by ID for deterministic
// iteration (snapshot capture, turn-order computation).
func (a *Arena) Combatants() []*combatant.Combatant {
	out := make([]*combatant.Combatant, 0, len(a.combatants))
	for _, c := range a.combatants {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddSurface registers s with the arena, keyed by its InstanceID.
func (a *Arena) AddSurface(s *combatant.Surface) {
	a.surfaces[s.InstanceID] = s
}

// RemoveSurface removes the surface with the given instance id.
func (a *Arena) RemoveSurface(instanceID string) {
	delete(a.surfaces, instanceID)
}

// Surface resolves a surface by instance id.
func (a *Arena) Surface(instanceID string) (*combatant.Surface, bool) {
	s, ok := a.surfaces[instanceID]
	return s, ok
}

// Surfaces returns every surface, sorted by InstanceID.
func (a *Arena) Surfaces() []*combatant.Surface {
	out := make([]*combatant.Surface, 0, len(a.surfaces))
	for _, s := range a.surfaces {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InstanceID < out[j].InstanceID })
	return out
}

// AddStatus registers st with the arena, keyed by its InstanceID,
// unconditionally — callers that want stacking reconciliation against an
// existing instance of the same definition should use ApplyStatus.
func (a *Arena) AddStatus(st *combatant.Status) {
	a.statuses[st.InstanceID] = st
}

// ApplyStatus reconciles incoming against any existing status instance on
// the same target with the same DefinitionID, per policy
// (combatant.ApplyStacking), adding incoming fresh if no such instance
// exists. It reports whether incoming was accepted.
func (a *Arena) ApplyStatus(incoming *combatant.Status, policy combatant.StackingPolicy) bool {
	for _, existing := range a.statuses {
		if existing.TargetID == incoming.TargetID && existing.DefinitionID == incoming.DefinitionID {
			return combatant.ApplyStacking(existing, incoming, policy)
		}
	}
	a.AddStatus(incoming)
	return true
}

// RemoveStatus removes the status with the given instance id.
func (a *Arena) RemoveStatus(instanceID string) {
	delete(a.statuses, instanceID)
}

// Status resolves a status by instance id.
func (a *Arena) Status(instanceID string) (*combatant.Status, bool) {
	st, ok := a.statuses[instanceID]
	return st, ok
}

// Statuses returns every active status, sorted by (TargetID, InstanceID)
// to match the deterministic exporter's stable key.
func (a *Arena) Statuses() []*combatant.Status {
	out := make([]*combatant.Status, 0, len(a.statuses))
	for _, st := range a.statuses {
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TargetID != out[j].TargetID {
			return out[i].TargetID < out[j].TargetID
		}
		return out[i].InstanceID < out[j].InstanceID
	})
	return out
}

// SetConcentration registers c, keyed by its SourceID, replacing any
// concentration that combatant already held.
func (a *Arena) SetConcentration(c *combatant.Concentration) {
	a.concentrations[c.SourceID] = c
}

// Concentration resolves a combatant's concentration by their id.
func (a *Arena) Concentration(sourceID string) (*combatant.Concentration, bool) {
	c, ok := a.concentrations[sourceID]
	return c, ok
}

// Concentrations returns every active concentration, sorted by SourceID.
func (a *Arena) Concentrations() []*combatant.Concentration {
	out := make([]*combatant.Concentration, 0, len(a.concentrations))
	for _, c := range a.concentrations {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SourceID < out[j].SourceID })
	return out
}

// BreakConcentration tears down every status and surface sourceID's
// concentration owns and removes the concentration itself, or NotFound if
// sourceID holds none.
func (a *Arena) BreakConcentration(sourceID string) (removedStatuses, removedSurfaces []string, err error) {
	c, ok := a.concentrations[sourceID]
	if !ok {
		return nil, nil, rpgerr.NotFound("concentration", rpgerr.WithMeta("source_id", sourceID))
	}
	removedStatuses, removedSurfaces = combatant.BreakConcentration(c, a.statuses, a.surfaces)
	delete(a.concentrations, sourceID)
	return removedStatuses, removedSurfaces, nil
}

// AddProp registers p with the arena, keyed by its ID.
func (a *Arena) AddProp(p *Prop) {
	a.props[p.ID] = p
}

// RemoveProp removes the prop with the given id.
func (a *Arena) RemoveProp(id string) {
	delete(a.props, id)
}

// Prop resolves a prop by id.
func (a *Arena) Prop(id string) (*Prop, bool) {
	p, ok := a.props[id]
	return p, ok
}

// Props returns every spawned prop, sorted by ID.
func (a *Arena) Props() []*Prop {
	out := make([]*Prop, 0, len(a.props))
	for _, p := range a.props {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
