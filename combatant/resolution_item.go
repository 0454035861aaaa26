// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package combatant

// ResolutionStackItem is one entry of the nested action/reaction resolution
// stack (spec.md §3 Resolution Stack Item). Package rulewindow owns the
// stack discipline (push/pop/max-depth); this type is the plain payload it
// stacks.
type ResolutionStackItem struct {
	ID         string
	ActionType string
	SourceID   string
	TargetID   string
	Cancelled  bool
	Depth      int
	Payload    any
}

// NewResolutionStackItem constructs a top-level (depth 0) stack item.
func NewResolutionStackItem(id, actionType, sourceID string) *ResolutionStackItem {
	return &ResolutionStackItem{
		ID:         id,
		ActionType: actionType,
		SourceID:   sourceID,
	}
}

// Cancel marks the item cancelled; a cancelled item's effects are not
// carried out by whichever component ultimately resolves the stack.
func (r *ResolutionStackItem) Cancel() {
	r.Cancelled = true
}
