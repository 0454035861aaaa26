// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package arena

import "sort"

// ReactionPrompt is one pending reaction awaiting a decision (spec.md
// §4.7 "pending reaction prompts"), e.g. "Goblin's attack triggered your
// Shield reaction — cast it?" surfaced during the combat::ReactionPrompt
// state.
type ReactionPrompt struct {
	ID             string
	CombatantID    string
	TriggerWindow  string
	ExpiresAtRound int
}

// ReactionQueue holds every pending reaction prompt for one combat
// instance.
type ReactionQueue struct {
	byID map[string]*ReactionPrompt
}

// NewReactionQueue creates an empty queue.
func NewReactionQueue() *ReactionQueue {
	return &ReactionQueue{byID: make(map[string]*ReactionPrompt)}
}

// Push adds a pending prompt, keyed by its ID.
func (q *ReactionQueue) Push(p *ReactionPrompt) {
	q.byID[p.ID] = p
}

// Resolve removes and returns the prompt with the given id, reporting
// whether it was found (e.g. the combatant answered, or it was already
// expired).
func (q *ReactionQueue) Resolve(id string) (*ReactionPrompt, bool) {
	p, ok := q.byID[id]
	if ok {
		delete(q.byID, id)
	}
	return p, ok
}

// ExpireBefore removes every prompt whose ExpiresAtRound is before round
// and returns their ids, sorted, so the caller can notify whoever was
// waiting on them.
func (q *ReactionQueue) ExpireBefore(round int) []string {
	var expired []string
	for id, p := range q.byID {
		if p.ExpiresAtRound < round {
			expired = append(expired, id)
			delete(q.byID, id)
		}
	}
	sort.Strings(expired)
	return expired
}

// Pending returns every outstanding prompt, sorted by ID, for snapshot
// capture.
func (q *ReactionQueue) Pending() []*ReactionPrompt {
	out := make([]*ReactionPrompt, 0, len(q.byID))
	for _, p := range q.byID {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
