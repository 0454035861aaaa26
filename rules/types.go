// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package rules

import (
	"fmt"

	"github.com/duskwright/combatcore/modifier"
)

// QueryResult is the uniform result shape every query entry point returns
// (spec.md §4.4 "All return a QueryResult").
type QueryResult struct {
	Base    float64
	Natural int
	// NaturalA and NaturalB are populated when the roll was made with
	// advantage or disadvantage, recording both dice (spec.md §4.4
	// "both die values if adv/disadv was rolled").
	NaturalA, NaturalB int
	Final              float64

	Applied []modifier.AppliedModifier

	Success bool

	Critical        bool
	CriticalFailure bool

	Advantage modifier.AdvantageState

	TargetAC int

	Breakdown []string
}

func (q *QueryResult) note(format string, args ...any) {
	q.Breakdown = append(q.Breakdown, fmt.Sprintf(format, args...))
}
