// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package modifier

import (
	"strconv"
	"strings"

	"github.com/duskwright/combatcore/rpgerr"
)

// ParsedFormula is a parsed "NdM" dice notation, with an optional leading
// sign (spec.md §3 Modifier.dice_formula, §4.3 boost RollBonus arguments).
type ParsedFormula struct {
	Count    int
	Sides    int
	Negative bool
}

// ParseDiceFormula parses "NdM" or "-NdM" notation. It is shared by the
// modifier engine's Dice-type modifiers and the boost DSL's RollBonus
// clauses so both honor the same notation.
func ParseDiceFormula(formula string) (ParsedFormula, error) {
	f := strings.TrimSpace(formula)
	negative := false
	if strings.HasPrefix(f, "-") {
		negative = true
		f = f[1:]
	}

	parts := strings.SplitN(f, "d", 2)
	if len(parts) != 2 {
		return ParsedFormula{}, rpgerr.ParseError(formula, rpgerr.WithMeta("reason", "missing 'd' separator"))
	}

	count, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ParsedFormula{}, rpgerr.ParseError(formula, rpgerr.WithMeta("reason", "invalid die count"))
	}
	sides, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ParsedFormula{}, rpgerr.ParseError(formula, rpgerr.WithMeta("reason", "invalid die size"))
	}
	if count <= 0 || sides <= 0 {
		return ParsedFormula{}, rpgerr.ParseError(formula, rpgerr.WithMeta("reason", "count and sides must be positive"))
	}

	return ParsedFormula{Count: count, Sides: sides, Negative: negative}, nil
}
