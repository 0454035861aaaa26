// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package contentdesc

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/duskwright/combatcore/boost"
	"github.com/duskwright/combatcore/rpgerr"
)

// Loader decodes content descriptor YAML into parsed boosts and status
// definitions.
type Loader struct{}

// NewLoader constructs a Loader. It holds no state; every method is a pure
// function of its input.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadBoosts decodes data as a Document and parses every BoostEntry's
// Clauses string via boost.Parse, tagging each with the entry's id as the
// origin id. A malformed clause string fails the whole load — content is
// expected to be validated before it ships, not repaired at load time.
func (l *Loader) LoadBoosts(data []byte) (map[string]*boost.Boost, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	out := make(map[string]*boost.Boost, len(doc.Boosts))
	for _, entry := range doc.Boosts {
		originKind := entry.OriginKind
		if originKind == "" {
			originKind = "content"
		}
		parsed, err := boost.Parse(entry.Clauses, originKind, entry.ID)
		if err != nil {
			return nil, rpgerr.Wrapf(err, "boost %q", entry.ID)
		}
		out[entry.ID] = parsed
	}
	return out, nil
}

// LoadStatusDefinitions decodes data as a Document and returns its
// StatusDefinition entries keyed by id.
func (l *Loader) LoadStatusDefinitions(data []byte) (map[string]StatusDefinition, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	out := make(map[string]StatusDefinition, len(doc.Statuses))
	for _, def := range doc.Statuses {
		out[def.ID] = def
	}
	return out, nil
}

// LoadFromFile reads path and decodes it as a Document, wrapping any
// filesystem failure in rpgerr.IO.
func (l *Loader) LoadFromFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rpgerr.IO("reading content descriptor "+path, err)
	}
	return decode(data)
}

func decode(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, rpgerr.ParseErrorf("decoding content descriptor: %v", err)
	}
	return &doc, nil
}
