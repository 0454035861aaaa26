// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package rulewindow implements the rule-window event bus and the nested
// resolution stack (spec.md §4.6): the dispatch mechanism by which
// statuses, boosts, and reactions hook into the lifecycle of an attack,
// save, or turn, and the bounded LIFO that lets a reaction interrupt an
// in-flight action before it resolves.
//
// Purpose: the teacher's events.Bus is a general reflect-based pub/sub
// keyed by *core.Ref with a cascade-depth guard on Publish. This package
// keeps that shape — priority-ordered registrations, an owner id for bulk
// cleanup (mirroring effects.SubscriptionTracker), a bounded recursion
// guard — but narrows it to the fixed, closed Window enum spec.md names
// and the richer mutable EventContext the rules evaluator and damage
// pipeline need (advantage source lists, damage/save mutation helpers),
// rather than reflection over arbitrary handler signatures.
//
// Scope:
//   - Window: the fixed enumeration of lifecycle points
//   - Provider: the {IsEnabled, OnWindow} capability a registration wraps
//   - Bus: register/unregister/dispatch, (priority, registration order) sort
//   - EventContext: the mutable payload providers read and mutate
//   - ResolutionStack: bounded LIFO of in-flight actions/reactions
//
// Non-Goals:
//   - Deciding *what* a provider does on a window (that's the status,
//     boost, or ability definition the embedding shell interprets)
//   - Owning combatant/status/surface lifecycle (package combatant)
package rulewindow
