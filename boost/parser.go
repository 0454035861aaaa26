// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package boost

import (
	"strconv"
	"strings"

	"github.com/duskwright/combatcore/modifier"
	"github.com/duskwright/combatcore/rpgerr"
)

// Parse parses a boost string into a Boost (spec.md §4.3 DSL grammar). A
// boost string is a ';'-separated list of clauses; each clause is
// optionally prefixed "IF(<condition>):" and otherwise takes the form
// "TypeName(arg[,arg...])". Parser failures return a rpgerr ParseError
// naming the offending substring — the parser never silently drops a
// clause (spec.md §4.3 "Error semantics").
func Parse(raw string, originKind, originID string) (*Boost, error) {
	b := &Boost{Raw: raw, OriginKind: originKind, OriginID: originID}

	for _, segment := range splitTopLevel(raw, ';') {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		clause, err := parseClause(segment)
		if err != nil {
			return nil, err
		}
		b.Clauses = append(b.Clauses, clause)
	}

	return b, nil
}

func parseClause(segment string) (Clause, error) {
	condition := ""
	conditional := false
	body := segment

	if strings.HasPrefix(segment, "IF(") {
		close := matchParen(segment, 2)
		if close < 0 {
			return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "unmatched '(' in IF(...)"))
		}
		condition = segment[3:close]
		rest := segment[close+1:]
		if !strings.HasPrefix(rest, ":") {
			return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "missing ':' after IF(...)"))
		}
		conditional = true
		body = strings.TrimSpace(rest[1:])
	}

	open := strings.IndexByte(body, '(')
	if open < 0 {
		return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "missing '(' in clause"))
	}
	typeName := strings.TrimSpace(body[:open])
	if typeName == "" {
		return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "empty clause type"))
	}

	close := matchParen(body, open)
	if close < 0 {
		return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "unmatched '(' in clause"))
	}
	if close != len(body)-1 {
		return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "trailing characters after clause"))
	}

	t := Type(typeName)
	if _, ok := knownTypes[t]; !ok {
		return Clause{}, rpgerr.ParseError(segment, rpgerr.WithMeta("reason", "unknown boost type: "+typeName))
	}

	argBody := body[open+1 : close]
	var args []Arg
	if strings.TrimSpace(argBody) != "" {
		for _, a := range splitTopLevel(argBody, ',') {
			args = append(args, Arg(strings.TrimSpace(a)))
		}
	}

	return Clause{
		Type:        t,
		Args:        args,
		Condition:   condition,
		Conditional: conditional,
	}, nil
}

// matchParen returns the index of the ')' matching the '(' at openIdx,
// accounting for nested parens, or -1 if unmatched.
func matchParen(s string, openIdx int) int {
	depth := 0
	for i := openIdx; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitTopLevel splits s on sep, ignoring occurrences of sep nested inside
// parentheses, so "IF(Has(A,B)):X(1,2)" splits on the outer ';' and outer
// ',' correctly.
func splitTopLevel(s string, sep byte) []string {
	var out []string
	depth := 0
	last := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				out = append(out, s[last:i])
				last = i + 1
			}
		}
	}
	out = append(out, s[last:])
	return out
}

// Int parses the argument as a signed integer.
func (a Arg) Int() (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(string(a)))
	if err != nil {
		return 0, rpgerr.ParseError(string(a), rpgerr.WithMeta("reason", "expected integer argument"))
	}
	return v, nil
}

// String returns the argument as-is.
func (a Arg) String() string {
	return string(a)
}

// Dice parses the argument as a dice formula ("NdM", "-NdM"), sharing the
// modifier engine's formula grammar (spec.md §4.3 "dice formulas").
func (a Arg) Dice() (modifier.ParsedFormula, error) {
	return modifier.ParseDiceFormula(string(a))
}
