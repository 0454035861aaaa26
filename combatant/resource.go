// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

import "github.com/duskwright/combatcore/rpgerr"

// Resource is a single consumable current/maximum pair, grounded on the
// teacher's mechanics/resources.SimpleResource but trimmed to the fields
// the spec's resource pool actually needs (spec.md §3 Combatant: "resource
// pool ... leveled ... flat").
type Resource struct {
	Current int
	Maximum int
}

// NewResource creates a Resource starting at full.
func NewResource(maximum int) *Resource {
	return &Resource{Current: maximum, Maximum: maximum}
}

// Consume attempts to spend amount, failing with ResourceExhausted if
// insufficient is available.
func (r *Resource) Consume(amount int) error {
	if amount < 0 {
		return rpgerr.InvalidArgument("cannot consume a negative amount", rpgerr.WithMeta("amount", amount))
	}
	if amount > r.Current {
		return rpgerr.ResourceExhausted("resource", rpgerr.WithMeta("have", r.Current), rpgerr.WithMeta("need", amount))
	}
	r.Current -= amount
	return nil
}

// Restore adds amount, clamped to Maximum.
func (r *Resource) Restore(amount int) {
	if amount < 0 {
		return
	}
	r.Current += amount
	if r.Current > r.Maximum {
		r.Current = r.Maximum
	}
}

// RestoreToFull sets Current to Maximum.
func (r *Resource) RestoreToFull() {
	r.Current = r.Maximum
}

// SetMaximum changes Maximum, clamping Current down if it now exceeds it.
func (r *Resource) SetMaximum(value int) {
	if value < 0 {
		value = 0
	}
	r.Maximum = value
	if r.Current > r.Maximum {
		r.Current = r.Maximum
	}
}

// IsAvailable reports whether any of the resource remains.
func (r *Resource) IsAvailable() bool {
	return r.Current > 0
}

// ResourcePool holds a combatant's two resource flavors (spec.md §3):
// Leveled keys by an integer level (spell slots), Flat keys by a name
// (e.g. "rage_uses", "ki_points").
type ResourcePool struct {
	Leveled map[int]*Resource
	Flat    map[string]*Resource
}

// NewResourcePool creates an empty pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		Leveled: make(map[int]*Resource),
		Flat:    make(map[string]*Resource),
	}
}

// SetLeveled registers (or replaces) the resource tracked at level.
func (p *ResourcePool) SetLeveled(level int, r *Resource) {
	p.Leveled[level] = r
}

// SetFlat registers (or replaces) the resource tracked under key.
func (p *ResourcePool) SetFlat(key string, r *Resource) {
	p.Flat[key] = r
}

// ConsumeLeveled spends amount from the level's resource, or NotFound if
// no resource is tracked at that level.
func (p *ResourcePool) ConsumeLeveled(level, amount int) error {
	r, ok := p.Leveled[level]
	if !ok {
		return rpgerr.NotFound("resource", rpgerr.WithMeta("level", level))
	}
	return r.Consume(amount)
}

// ConsumeFlat spends amount from the named resource, or NotFound if no
// resource is tracked under that key.
func (p *ResourcePool) ConsumeFlat(key string, amount int) error {
	r, ok := p.Flat[key]
	if !ok {
		return rpgerr.NotFound("resource", rpgerr.WithMeta("key", key))
	}
	return r.Consume(amount)
}

// RestoreAll restores every tracked resource to full, e.g. on a long rest.
func (p *ResourcePool) RestoreAll() {
	for _, r := range p.Leveled {
		r.RestoreToFull()
	}
	for _, r := range p.Flat {
		r.RestoreToFull()
	}
}
