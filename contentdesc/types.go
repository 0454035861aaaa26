// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package contentdesc

import "github.com/duskwright/combatcore/combatant"

// Document is the top-level shape of a content descriptor YAML file.
type Document struct {
	Version  string             `yaml:"version"`
	Boosts   []BoostEntry       `yaml:"boosts"`
	Statuses []StatusDefinition `yaml:"statuses"`
}

// BoostEntry is one boost definition as authored in content: an id, the
// raw DSL clause string boost.Parse consumes, and the origin tag attached
// to the parsed boost.Boost.
type BoostEntry struct {
	ID         string `yaml:"id"`
	Clauses    string `yaml:"clauses"`
	OriginKind string `yaml:"origin_kind"`
}

// StatusDefinition is one status definition as authored in content: its id,
// default duration, and the stacking policy applied when it is reapplied
// to a target that already carries an instance of it.
type StatusDefinition struct {
	ID              string                   `yaml:"id"`
	DefaultDuration int                      `yaml:"default_duration"`
	Stacking        combatant.StackingPolicy `yaml:"stacking"`
	BoostIDs        []string                 `yaml:"boost_ids"`
	Payload         map[string]any           `yaml:"payload"`
}
