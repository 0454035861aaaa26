// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rulewindow

import (
	"github.com/duskwright/combatcore/combatant"
	"github.com/duskwright/combatcore/rpgerr"
)

// DefaultMaxDepth is the resolution stack's default bound (spec.md §4.6
// "max depth configurable, default 10"), mirroring the teacher events
// bus's DefaultMaxDepth for cascade protection.
const DefaultMaxDepth = 10

// ResolutionStack is a bounded LIFO of in-flight actions/reactions/effects
// (spec.md §4.6, §3 Resolution Stack Item). Nested reactions push above
// their parent; a typical sequence is push(attack) -> push(reaction) ->
// pop(reaction) -> pop(attack). One stack exists per combat instance.
type ResolutionStack struct {
	items    []*combatant.ResolutionStackItem
	maxDepth int
}

// NewResolutionStack creates a stack bounded at maxDepth; maxDepth <= 0
// falls back to DefaultMaxDepth.
func NewResolutionStack(maxDepth int) *ResolutionStack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &ResolutionStack{maxDepth: maxDepth}
}

// Push adds item to the top of the stack, setting its Depth to the
// stack's size before the push (0 for the first, top-level item). Fails
// with StackOverflow once the stack is at maxDepth (spec.md §4.6 "Failure
// semantics").
func (s *ResolutionStack) Push(item *combatant.ResolutionStackItem) error {
	if len(s.items) >= s.maxDepth {
		return rpgerr.StackOverflow(s.maxDepth, rpgerr.WithMeta("item_id", item.ID))
	}
	item.Depth = len(s.items)
	s.items = append(s.items, item)
	return nil
}

// Pop removes and returns the top item. ok is false if the stack was
// empty; a cancelled item still pops normally (spec.md: "cancelled items
// still pop but have no effect" — "no effect" is the caller's
// responsibility, this method just returns the item either way).
func (s *ResolutionStack) Pop() (item *combatant.ResolutionStackItem, ok bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	top := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return top, true
}

// Peek returns the top item without removing it, or nil if empty.
func (s *ResolutionStack) Peek() *combatant.ResolutionStackItem {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// CancelCurrent marks the top item cancelled, returning false if the
// stack is empty.
func (s *ResolutionStack) CancelCurrent() bool {
	top := s.Peek()
	if top == nil {
		return false
	}
	top.Cancel()
	return true
}

// ModifyCurrent applies fn to the top item, returning false if the stack
// is empty — the hook a reaction (e.g. "+N AC from Shield") uses to
// modify whatever the top-level resolution will consult (spec.md §4.6).
func (s *ResolutionStack) ModifyCurrent(fn func(*combatant.ResolutionStackItem)) bool {
	top := s.Peek()
	if top == nil {
		return false
	}
	fn(top)
	return true
}

// Depth returns the current stack size.
func (s *ResolutionStack) Depth() int {
	return len(s.items)
}

// MaxDepth returns the configured bound.
func (s *ResolutionStack) MaxDepth() int {
	return s.maxDepth
}

// Items returns a copy of the current stack, bottom to top, for snapshot
// capture.
func (s *ResolutionStack) Items() []*combatant.ResolutionStackItem {
	out := make([]*combatant.ResolutionStackItem, len(s.items))
	copy(out, s.items)
	return out
}

// Reset clears the stack with no effects fired — "resettable (all pops,
// no effects) for save/load restoration" (spec.md §4.6).
func (s *ResolutionStack) Reset() {
	s.items = nil
}

// Restore replaces the stack's contents wholesale from a snapshot, trusting
// the caller (package snapshot) to have already validated depth/ids.
func (s *ResolutionStack) Restore(items []*combatant.ResolutionStackItem) {
	s.items = append([]*combatant.ResolutionStackItem(nil), items...)
}
