// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rulewindow

import (
	"fmt"
	"sort"
)

// Provider is the capability set a rule-window registration wraps (spec.md
// §4.6 "A provider exposes is_enabled(ctx) -> bool and on_window(ctx)").
// This is the one genuinely open/polymorphic type in the core (spec.md §9
// Design Notes: "polymorphism only for providers, which are genuinely
// open") — everything else is a closed enum.
type Provider interface {
	IsEnabled(ctx *EventContext) bool
	OnWindow(ctx *EventContext)
}

// Registration is how a Provider subscribes to the bus (spec.md §4.6
// "Providers register with"): a unique id, an owner id for bulk
// unregister, an ascending priority, and the set of windows it cares
// about.
type Registration struct {
	ID       string
	OwnerID  string
	Priority int
	Windows  []Window
	Provider Provider
}

type registrationEntry struct {
	Registration
	order int
}

// ProviderError is one provider's panic or error, trapped so it cannot
// abort the dispatch batch (spec.md §4.6 "A thrown error from on_window is
// logged and does not abort the batch"; this module has no logging
// library — see DESIGN.md — so the diagnostic is returned to the caller
// instead of written to a global logger).
type ProviderError struct {
	ProviderID string
	Window     Window
	Err        error
}

// DispatchResult is Dispatch's return value: nothing from a normal
// dispatch (mutations live on the EventContext the caller passed in) plus
// any trapped provider failures.
type DispatchResult struct {
	ProviderErrors []ProviderError
}

// Bus dispatches rule windows to priority-sorted providers (spec.md §4.6).
// One Bus exists per combat instance (spec.md §5).
type Bus struct {
	byID  map[string]*registrationEntry
	order int
}

// NewBus creates an empty rule-window bus.
func NewBus() *Bus {
	return &Bus{byID: make(map[string]*registrationEntry)}
}

// Register adds or replaces a provider registration. Re-registering with
// the same id replaces the prior registration in place but does not reset
// its position in registration order for *other* providers (spec.md §4.6
// "re-registering with the same id replaces").
func (b *Bus) Register(reg Registration) {
	existing, ok := b.byID[reg.ID]
	order := b.order
	if ok {
		order = existing.order
	} else {
		b.order++
	}
	b.byID[reg.ID] = &registrationEntry{Registration: reg, order: order}
}

// Unregister removes a single provider by id. Unknown ids are a silent
// no-op (spec.md §7 NotFound: "idempotent remove").
func (b *Bus) Unregister(id string) {
	delete(b.byID, id)
}

// UnregisterOwner removes every registration owned by ownerID in one call
// — bulk cleanup when a combatant is removed from the arena, grounded on
// the teacher's effects.SubscriptionTracker.UnsubscribeAll. Returns the
// count removed.
func (b *Bus) UnregisterOwner(ownerID string) int {
	removed := 0
	for id, entry := range b.byID {
		if entry.OwnerID == ownerID {
			delete(b.byID, id)
			removed++
		}
	}
	return removed
}

// Dispatch selects providers subscribed to window, sorts them ascending
// by (priority, registration order), and invokes each in turn (spec.md
// §4.6 "Dispatch order"). A provider whose IsEnabled returns false is
// skipped silently. Iteration stops once ctx.Cancel becomes true. A
// panicking provider is recovered and recorded in the result rather than
// aborting the batch.
func (b *Bus) Dispatch(window Window, ctx *EventContext) DispatchResult {
	var matches []*registrationEntry
	for _, entry := range b.byID {
		for _, w := range entry.Windows {
			if w == window {
				matches = append(matches, entry)
				break
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Priority != matches[j].Priority {
			return matches[i].Priority < matches[j].Priority
		}
		return matches[i].order < matches[j].order
	})

	var result DispatchResult
	for _, entry := range matches {
		if ctx.Cancel {
			break
		}
		if !entry.Provider.IsEnabled(ctx) {
			continue
		}
		invokeProvider(entry.Registration, window, ctx, &result)
	}
	return result
}

// invokeProvider calls OnWindow with panic recovery, matching spec.md's
// "a thrown error ... does not abort the batch" for implementations where
// a provider's on_window genuinely panics rather than returning an error
// (Provider.OnWindow has no error return, mirroring spec.md's signature).
func invokeProvider(reg Registration, window Window, ctx *EventContext, result *DispatchResult) {
	defer func() {
		if r := recover(); r != nil {
			result.ProviderErrors = append(result.ProviderErrors, ProviderError{
				ProviderID: reg.ID,
				Window:     window,
				Err:        fmt.Errorf("rulewindow: provider %s panicked: %v", reg.ID, r),
			})
		}
	}()
	reg.Provider.OnWindow(ctx)
}
