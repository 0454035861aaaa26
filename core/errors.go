// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package core

import "errors"

// Common errors shared by downstream packages. Packages with a richer
// taxonomy (modifier, boost, snapshot) build on rpgerr instead; these
// exist for the handful of call sites that only need a sentinel.
var (
	// ErrEntityNotFound is returned when an entity id does not resolve.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrEmptyID is returned when an empty id is supplied where one is required.
	ErrEmptyID = errors.New("empty id")

	// ErrEmptyString is returned when Ref parsing is given an empty string.
	ErrEmptyString = errors.New("ref string is empty")

	// ErrTooFewSegments is returned when a ref string has fewer than 3 segments.
	ErrTooFewSegments = errors.New("ref string has too few segments")

	// ErrTooManySegments is returned when a ref string has more than 3 segments.
	ErrTooManySegments = errors.New("ref string has too many segments")

	// ErrEmptyComponent is returned when a ref component is empty.
	ErrEmptyComponent = errors.New("ref component is empty")

	// ErrInvalidCharacters is returned when a ref component has disallowed characters.
	ErrInvalidCharacters = errors.New("ref component has invalid characters")
)
