// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"encoding/json"
	"sort"
)

// DeterministicExporter produces a stable-ordered JSON form with the
// timestamp stripped, for golden-file testing; every id is exported as
// captured, none is stripped or rewritten (spec.md
// §4.7 "Determinism export", §8.1 P1/P2). The full CombatSnapshot is not
// itself stably ordered (spec.md §6.3: "stable ordering applies in the
// deterministic export variant but not in the full snapshot"); this type
// is the one place that ordering is imposed.
type DeterministicExporter struct{}

// NewDeterministicExporter constructs a DeterministicExporter.
func NewDeterministicExporter() *DeterministicExporter {
	return &DeterministicExporter{}
}

// exportDoc is the exported shape: same data as CombatSnapshot minus the
// timestamp, with every slice sorted by its stable key (spec.md §4.7
// "entries sorted by stable keys: combatant id; then surface id; then
// (target id, status id)").
type exportDoc struct {
	SchemaVersion int        `json:"schemaVersion"`
	Flow          CombatFlow `json:"flow"`
	RNG           RNGState   `json:"rng"`

	Combatants []CombatantSnapshot `json:"combatants"`
	Surfaces   []SurfaceSnapshot   `json:"surfaces"`
	Statuses   []StatusSnapshot    `json:"statuses"`

	ResolutionStack []ResolutionItemSnapshot `json:"resolutionStack"`
	Cooldowns       []CooldownSnapshot       `json:"cooldowns"`
	Concentrations  []ConcentrationSnapshot  `json:"concentrations"`
	ReactionPrompts []ReactionPromptSnapshot `json:"reactionPrompts"`
	Props           []PropSnapshot           `json:"props"`
}

// Export renders s as a byte-stable JSON document: timestamp stripped,
// every collection except the resolution stack sorted by its stable key
// (the resolution stack keeps its bottom-to-top order), so two snapshots
// that differ only in timestamp or in the insertion order of those sorted
// collections export identically (spec.md
// §8.1 P1: "capture(run(s,Q)) == capture(run(s,Q)) bytewise").
func (e *DeterministicExporter) Export(s *CombatSnapshot) ([]byte, error) {
	doc := exportDoc{
		SchemaVersion:   s.SchemaVersion,
		Flow:            s.Flow,
		RNG:             s.RNG,
		Combatants:      append([]CombatantSnapshot{}, s.Combatants...),
		Surfaces:        append([]SurfaceSnapshot{}, s.Surfaces...),
		Statuses:        append([]StatusSnapshot{}, s.Statuses...),
		ResolutionStack: append([]ResolutionItemSnapshot{}, s.ResolutionStack...),
		Cooldowns:       append([]CooldownSnapshot{}, s.Cooldowns...),
		Concentrations:  append([]ConcentrationSnapshot{}, s.Concentrations...),
		ReactionPrompts: append([]ReactionPromptSnapshot{}, s.ReactionPrompts...),
		Props:           append([]PropSnapshot{}, s.Props...),
	}

	sort.Slice(doc.Combatants, func(i, j int) bool { return doc.Combatants[i].ID < doc.Combatants[j].ID })
	sort.Slice(doc.Surfaces, func(i, j int) bool { return doc.Surfaces[i].ID < doc.Surfaces[j].ID })
	sort.Slice(doc.Statuses, func(i, j int) bool {
		if doc.Statuses[i].TargetID != doc.Statuses[j].TargetID {
			return doc.Statuses[i].TargetID < doc.Statuses[j].TargetID
		}
		return doc.Statuses[i].InstanceID < doc.Statuses[j].InstanceID
	})
	sort.Slice(doc.Cooldowns, func(i, j int) bool {
		if doc.Cooldowns[i].CombatantID != doc.Cooldowns[j].CombatantID {
			return doc.Cooldowns[i].CombatantID < doc.Cooldowns[j].CombatantID
		}
		return doc.Cooldowns[i].AbilityID < doc.Cooldowns[j].AbilityID
	})
	sort.Slice(doc.Concentrations, func(i, j int) bool { return doc.Concentrations[i].CombatantID < doc.Concentrations[j].CombatantID })
	sort.Slice(doc.ReactionPrompts, func(i, j int) bool { return doc.ReactionPrompts[i].ID < doc.ReactionPrompts[j].ID })
	sort.Slice(doc.Props, func(i, j int) bool { return doc.Props[i].ID < doc.Props[j].ID })

	return json.Marshal(doc)
}
