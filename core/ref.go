// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const (
	separatorChar = ":"
	expectedParts = 3
)

// SourceCategory categorizes where a modifier, boost, or status came from.
// This is the closed enum the modifier engine's bulk-remove-by-source and
// the exporter's breakdown labels key off of.
type SourceCategory string

const (
	// SourceAbility marks a source granted by an ability/spell use.
	SourceAbility SourceCategory = "ability"
	// SourceStatus marks a source granted by an applied status.
	SourceStatus SourceCategory = "status"
	// SourceItem marks a source granted by equipment.
	SourceItem SourceCategory = "item"
	// SourceSurface marks a source granted by standing in a surface.
	SourceSurface SourceCategory = "surface"
	// SourceEnvironment marks a source granted by the encounter itself (cover, height).
	SourceEnvironment SourceCategory = "environment"
	// SourceManual marks a source applied by explicit administrative call.
	SourceManual SourceCategory = "manual"
)

// Source identifies the provenance of a modifier, boost, or status: what
// granted it, used for bulk removal (spec.md §4.2, "removal-by-source").
type Source struct {
	Category SourceCategory
	Name     string
}

// String returns "category:name", also the bulk-removal key.
func (s *Source) String() string {
	if s == nil {
		return ""
	}
	return fmt.Sprintf("%s:%s", s.Category, s.Name)
}

// Ref is a namespaced identifier for external content: ability ids, status
// definition ids, boost-origin ids, damage types that need a stable key
// beyond their closed enum. It never carries game logic, only identity.
type Ref struct {
	// Value is the unique identifier within the module namespace.
	Value string `json:"value"`
	// Module identifies which content module defined this Ref.
	Module string `json:"module"`
	// Type categorizes the identifier ("status", "ability", "boost-origin").
	Type string `json:"type"`
}

// String returns the full identifier as module:type:value.
func (r *Ref) String() string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%s:%s:%s", r.Module, r.Type, r.Value)
}

// Equals reports whether two refs name the same content, nil-safe.
func (r *Ref) Equals(other *Ref) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Module == other.Module && r.Type == other.Type && r.Value == other.Value
}

// ParseString parses the "module:type:value" format with detailed errors.
func ParseString(s string) (*Ref, error) {
	if s == "" {
		return nil, fmt.Errorf("core: parse ref: %w", ErrEmptyString)
	}

	segments := strings.Split(s, separatorChar)
	if len(segments) < expectedParts {
		return nil, fmt.Errorf("core: parse ref %q: %w: expected %d segments, got %d",
			s, ErrTooFewSegments, expectedParts, len(segments))
	}
	if len(segments) > expectedParts {
		return nil, fmt.Errorf("core: parse ref %q: %w: expected %d segments, got %d",
			s, ErrTooManySegments, expectedParts, len(segments))
	}

	ref := &Ref{Module: segments[0], Type: segments[1], Value: segments[2]}
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	return ref, nil
}

// Validate checks that every component is present and well-formed.
func (r *Ref) Validate() error {
	for name, v := range map[string]string{"module": r.Module, "type": r.Type, "value": r.Value} {
		if v == "" {
			return fmt.Errorf("core: ref component %s: %w", name, ErrEmptyComponent)
		}
		if !isValidIdentifierPart(v) {
			return fmt.Errorf("core: ref component %s=%q: %w", name, v, ErrInvalidCharacters)
		}
	}
	return nil
}

func isValidIdentifierPart(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler, encoding the ref as its string form.
func (r *Ref) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Ref) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseString(str)
	if err != nil {
		return fmt.Errorf("core: unmarshal ref: %w", err)
	}
	*r = *parsed
	return nil
}

// RefInput provides named fields for constructing a Ref.
type RefInput struct {
	Module string
	Type   string
	Value  string
}

// NewRef validates and constructs a Ref from RefInput.
func NewRef(input RefInput) (*Ref, error) {
	ref := &Ref{Module: input.Module, Type: input.Type, Value: input.Value}
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	return ref, nil
}

// MustNewRef constructs a Ref, panicking on validation error. Intended for
// compile-time constants where the inputs are known-valid literals.
func MustNewRef(input RefInput) *Ref {
	ref, err := NewRef(input)
	if err != nil {
		panic(fmt.Sprintf("core: invalid ref: %v", err))
	}
	return ref
}
