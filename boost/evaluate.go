// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package boost

// Set is a combatant's currently active boosts — the collection the
// evaluation entry points scan (spec.md §4.3 "a combatant's current boost
// set"). Callers assemble Set from whatever statuses/items/abilities
// currently apply; this package does not own that lifecycle.
type Set []*Boost

// clauses iterates every active clause of every boost of the given type.
func (s Set) clauses(t Type, cond ConditionFunc) []clauseWithSource {
	var out []clauseWithSource
	for _, b := range s {
		for _, c := range b.Clauses {
			if c.Type != t {
				continue
			}
			if !active(c, cond) {
				continue
			}
			out = append(out, clauseWithSource{Clause: c, Boost: b})
		}
	}
	return out
}

type clauseWithSource struct {
	Clause
	Boost *Boost
}

// HasAdvantage scans Advantage(RollType[,Ability]) clauses, returning true
// and the matching boosts' origins if rollType (and, when given, ability)
// match.
func (s Set) HasAdvantage(rollType string, ability string, cond ConditionFunc) (bool, []string) {
	return s.hasAdvOrDis(TypeAdvantage, rollType, ability, cond)
}

// HasDisadvantage is symmetric with HasAdvantage (spec.md §4.3).
func (s Set) HasDisadvantage(rollType string, ability string, cond ConditionFunc) (bool, []string) {
	return s.hasAdvOrDis(TypeDisadvantage, rollType, ability, cond)
}

func (s Set) hasAdvOrDis(t Type, rollType, ability string, cond ConditionFunc) (bool, []string) {
	var sources []string
	for _, c := range s.clauses(t, cond) {
		if len(c.Args) == 0 || c.Args[0].String() != rollType {
			continue
		}
		if len(c.Args) >= 2 && ability != "" && c.Args[1].String() != ability {
			continue
		}
		sources = append(sources, originLabel(c.Boost))
	}
	return len(sources) > 0, sources
}

// GetACBonus sums active AC(n) clauses.
func (s Set) GetACBonus(cond ConditionFunc) int {
	total := 0
	for _, c := range s.clauses(TypeAC, cond) {
		if len(c.Args) == 0 {
			continue
		}
		if v, err := c.Args[0].Int(); err == nil {
			total += v
		}
	}
	return total
}

// GetResistanceLevel picks the strongest conditional match per damage type
// among active Resistance(Type,Level) clauses (spec.md §4.3).
func (s Set) GetResistanceLevel(damageType string, cond ConditionFunc) ResistanceLevel {
	best := Normal
	for _, c := range s.clauses(TypeResistance, cond) {
		if len(c.Args) < 2 {
			continue
		}
		if c.Args[0].String() != damageType {
			continue
		}
		level := ResistanceLevel(c.Args[1].String())
		if resistanceRank[level] > resistanceRank[best] {
			best = level
		}
	}
	return best
}

// GetDamageBonus sums matching DamageBonus(n,Type) clauses for damageType.
// An empty damageType argument on the clause means "all damage types".
func (s Set) GetDamageBonus(damageType string, cond ConditionFunc) int {
	total := 0
	for _, c := range s.clauses(TypeDamageBonus, cond) {
		if len(c.Args) < 1 {
			continue
		}
		if len(c.Args) >= 2 && c.Args[1].String() != "" && c.Args[1].String() != damageType {
			continue
		}
		if v, err := c.Args[0].Int(); err == nil {
			total += v
		}
	}
	return total
}

// GetRollBonusDice returns every active RollBonus(rollType,formula) clause's
// dice formula matching rollType.
func (s Set) GetRollBonusDice(rollType string, cond ConditionFunc) []string {
	var out []string
	for _, c := range s.clauses(TypeRollBonus, cond) {
		if len(c.Args) < 2 || c.Args[0].String() != rollType {
			continue
		}
		out = append(out, c.Args[1].String())
	}
	return out
}

// CriticalPolicy is the resolved outcome of get_critical_hit_modifier:
// NeverCrit vetoes AutoCrit (spec.md §4.4.1 point 8: "NeverCrit wins").
type CriticalPolicy struct {
	AutoCrit  bool
	NeverCrit bool
}

// GetCriticalHitModifier reports whether any active NeverCrit/AutoCrit
// clause applies.
func (s Set) GetCriticalHitModifier(cond ConditionFunc) CriticalPolicy {
	var policy CriticalPolicy
	if len(s.clauses(TypeNeverCrit, cond)) > 0 {
		policy.NeverCrit = true
	}
	if len(s.clauses(TypeAutoCrit, cond)) > 0 {
		policy.AutoCrit = true
	}
	return policy
}

// GetStatusImmunities collects the set of status names the combatant is
// immune to via active StatusImmunity(name) clauses.
func (s Set) GetStatusImmunities(cond ConditionFunc) map[string]struct{} {
	out := make(map[string]struct{})
	for _, c := range s.clauses(TypeStatusImmunity, cond) {
		if len(c.Args) == 0 {
			continue
		}
		out[c.Args[0].String()] = struct{}{}
	}
	return out
}

func originLabel(b *Boost) string {
	if b.OriginID != "" {
		return b.OriginID
	}
	return b.OriginKind
}
