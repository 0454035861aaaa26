// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package modifier

import (
	"sort"

	"github.com/google/uuid"

	"github.com/duskwright/combatcore/rng"
	"github.com/duskwright/combatcore/rpgerr"
)

// Stack is an ordered collection of modifiers, sorted stably by priority
// ascending then insertion order (spec.md §4.2 "Data structure"). One
// Stack exists per combatant plus one global Stack (spec.md §3 Ownership);
// the Rules Evaluator owns both kinds.
type Stack struct {
	modifiers []*Modifier
}

// NewStack creates an empty modifier stack.
func NewStack() *Stack {
	return &Stack{}
}

// Add appends a modifier, assigning a fresh id if the caller left ID empty.
// Priority is taken as given: a zero Priority stays zero. NewModifier is
// the constructor that fills in DefaultPriority.
func (s *Stack) Add(m *Modifier) *Modifier {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	s.modifiers = append(s.modifiers, m)
	return m
}

// NewModifier builds a Modifier with DefaultPriority, for callers who don't
// need to pin an explicit priority.
func NewModifier(name string, kind Type, target Target, value float64, source string) *Modifier {
	return &Modifier{
		Name:     name,
		Kind:     kind,
		Target:   target,
		Value:    value,
		Priority: DefaultPriority,
		Source:   source,
	}
}

// RemoveByID removes a single modifier. Unknown ids are silently ignored
// (spec.md §7 NotFound: "idempotent remove").
func (s *Stack) RemoveByID(id string) {
	out := s.modifiers[:0]
	for _, m := range s.modifiers {
		if m.ID != id {
			out = append(out, m)
		}
	}
	s.modifiers = out
}

// RemoveBySource removes every modifier tagged with source and clears any
// consumed marks they carried (spec.md §4.2 invariant). Returns the count
// removed.
func (s *Stack) RemoveBySource(source string) int {
	out := s.modifiers[:0]
	removed := 0
	for _, m := range s.modifiers {
		if m.Source == source {
			m.consumed = false
			removed++
			continue
		}
		out = append(out, m)
	}
	s.modifiers = out
	return removed
}

// All returns every modifier currently in the stack, sorted by (priority,
// insertion order). The returned slice is owned by the caller.
func (s *Stack) All() []*Modifier {
	sorted := make([]*Modifier, len(s.modifiers))
	copy(sorted, s.modifiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}

// Matching returns every non-consumed modifier attached to target whose
// predicate (if any) accepts ctx, sorted by (priority, insertion order).
// The Damage Pipeline (package damage) consumes this directly rather than
// going through Apply, since its own seven-stage algorithm — not Apply's
// generic Override/Flat/Dice/Percentage order — governs how these
// particular modifiers combine (spec.md §4.5).
func (s *Stack) Matching(target Target, ctx *Context) []*Modifier {
	return s.matching(target, ctx)
}

func (s *Stack) matching(target Target, ctx *Context) []*Modifier {
	var out []*Modifier
	for _, m := range s.All() {
		if m.Target != target {
			continue
		}
		if m.consumed {
			continue
		}
		if m.Predicate != nil && !m.Predicate(ctx) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Apply runs the spec.md §4.2 algorithm: filter by target/predicate/not
// consumed; Override (last wins) short-circuits everything else;
// otherwise Flat sum, then Dice (rolled via roller), then Percentage
// multipliers in turn. ConsumeOnUse modifiers that fired are marked
// consumed so later Apply calls skip them.
func (s *Stack) Apply(base float64, target Target, ctx *Context, roller rng.Roller) (float64, []AppliedModifier, error) {
	matches := s.matching(target, ctx)

	var overrides []*Modifier
	for _, m := range matches {
		if m.Kind == Override {
			overrides = append(overrides, m)
		}
	}
	if len(overrides) > 0 {
		winner := overrides[len(overrides)-1]
		winner.consumed = winner.consumed || winner.ConsumeOnUse
		return winner.Value, []AppliedModifier{{Modifier: winner, ReportedValue: winner.Value}}, nil
	}

	total := base
	var applied []AppliedModifier

	for _, m := range matches {
		if m.Kind != Flat {
			continue
		}
		total += m.Value
		applied = append(applied, AppliedModifier{Modifier: m, ReportedValue: m.Value})
		markConsumed(m)
	}

	for _, m := range matches {
		if m.Kind != Dice {
			continue
		}
		rolled, err := rollDiceModifier(m, roller)
		if err != nil {
			return 0, nil, err
		}
		total += rolled
		applied = append(applied, AppliedModifier{Modifier: m, ReportedValue: rolled})
		markConsumed(m)
	}

	for _, m := range matches {
		if m.Kind != Percentage {
			continue
		}
		total *= 1 + m.Value/100
		applied = append(applied, AppliedModifier{Modifier: m, ReportedValue: m.Value})
		markConsumed(m)
	}

	return total, applied, nil
}

func markConsumed(m *Modifier) {
	if m.ConsumeOnUse {
		m.consumed = true
	}
}

func rollDiceModifier(m *Modifier, roller rng.Roller) (float64, error) {
	parsed, err := ParseDiceFormula(m.Formula)
	if err != nil {
		return 0, err
	}
	result, err := roller.Roll(parsed.Count, parsed.Sides, 0)
	if err != nil {
		return 0, rpgerr.WrapWithCode(err, rpgerr.CodeInvalidArgument, "modifier: rolling dice formula")
	}
	total := float64(result.Total)
	if parsed.Negative {
		total = -total
	}
	return total, nil
}
