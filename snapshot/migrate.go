// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import "github.com/duskwright/combatcore/rpgerr"

// migrationStep is a pure function that upgrades a snapshot by exactly one
// schema version (spec.md §4.7 "Each step is a pure function applied in
// sequence").
type migrationStep func(*CombatSnapshot)

// steps is indexed by the version being migrated *from*: steps[0] takes a
// v0 snapshot to v1, and so on. The spec's Open Question about two
// divergent CombatantSnapshot shapes (one carrying DefinitionId, Tags,
// KnownActions, PassiveToggleStates, EquipmentSlots; one without) is
// resolved here: the smaller shape is treated as v0, and up-converting to
// v1 defaults the missing fields to their zero values, which this
// implementation's struct tags already do on JSON decode — so the v0->v1
// step only needs to normalize the version number itself.
var steps = []migrationStep{
	func(s *CombatSnapshot) { s.SchemaVersion = 1 },
}

// Migrator walks a snapshot forward to CurrentSchemaVersion.
type Migrator struct{}

// NewMigrator constructs a Migrator.
func NewMigrator() *Migrator {
	return &Migrator{}
}

// Migrate upgrades s in place. version == 0 is normalized to 1 (spec.md
// §4.7 "version == 0 is normalized to 1"); version > CurrentSchemaVersion
// fails with MigrationError (spec.md §7).
func (m *Migrator) Migrate(s *CombatSnapshot) error {
	if s.SchemaVersion > CurrentSchemaVersion {
		return rpgerr.Migration("snapshot schema version is newer than this build supports",
			rpgerr.WithMeta("snapshot_version", s.SchemaVersion),
			rpgerr.WithMeta("current_version", CurrentSchemaVersion))
	}

	from := s.SchemaVersion
	for v := from; v < CurrentSchemaVersion; v++ {
		if v >= len(steps) {
			return rpgerr.Migration("no migration path to current schema version",
				rpgerr.WithMeta("from_version", v))
		}
		steps[v](s)
	}
	if s.SchemaVersion < CurrentSchemaVersion {
		s.SchemaVersion = CurrentSchemaVersion
	}
	return nil
}
