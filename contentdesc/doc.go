// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package contentdesc loads boost and status definitions from YAML content
// descriptors, mirroring the teacher's skill.Registry LoadFromYAML/
// LoadFromFile pattern (spec.md §1: "Specific content... is data; the core
// must execute any conforming data without special-casing entries").
//
// Purpose: turn a YAML document authored outside this module into parsed
// boost.Boost values and status-definition records the Rules Evaluator and
// combatant package can consume directly.
//
// Scope: YAML decoding, one boost.Parse call per listed clause string, and
// the StatusDefinition records that carry a combatant.StackingPolicy.
//
// Non-Goals: this package does not author content (spec.md §1 Non-goals:
// "content authoring tools" are out of scope) and does not validate game
// balance; it only turns text into the typed values other packages expect.
package contentdesc
