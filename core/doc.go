// Package core provides the identity primitives shared by every layer of
// the combat rules core: a minimal entity contract, a namespaced reference
// type for content ids, and a source tag used for provenance and bulk
// removal.
//
// Purpose:
// Nothing here knows about dice, modifiers, or damage. This package exists
// so that modifier, boost, combatant, and snapshot can all refer to "the
// thing that granted this" (a Source) and "the kind of content this is"
// (a Ref) without importing each other.
//
// Scope:
//   - Entity: the GetID/GetType contract every addressable object satisfies
//   - Ref: a module:type:value namespaced identifier for content descriptors
//   - Source: provenance tag (category + name) used by bulk-remove-by-source
//
// Non-Goals:
//   - Game rules: combat math lives in rules, damage, modifier, boost
//   - Persistence: snapshot owns serialization
//   - Content authoring: ability/status/boost definitions are external data
package core
