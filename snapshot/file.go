// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/duskwright/combatcore/rpgerr"
)

// Store is the external collaborator that persists snapshots as
// human-readable JSON under a save directory (spec.md §4.7 "File I/O").
type Store struct {
	baseDir string
}

// NewStore constructs a Store rooted at baseDir. baseDir is resolved to
// an absolute path once, up front, so later sanitization checks compare
// against a fixed root.
func NewStore(baseDir string) (*Store, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, rpgerr.IO("snapshot: resolving save directory", err)
	}
	return &Store{baseDir: abs}, nil
}

// resolve sanitizes name: rejects "..", path separators, and any resolved
// path escaping the base directory (spec.md §4.7 "File names are
// sanitized").
func (s *Store) resolve(name string) (string, error) {
	if name == "" {
		return "", rpgerr.InvalidArgument("snapshot: empty file name")
	}
	if strings.Contains(name, "..") {
		return "", rpgerr.InvalidArgument("snapshot: file name must not contain '..'", rpgerr.WithMeta("name", name))
	}
	if strings.ContainsAny(name, "/\\") {
		return "", rpgerr.InvalidArgument("snapshot: file name must not contain path separators", rpgerr.WithMeta("name", name))
	}

	full := filepath.Join(s.baseDir, name)
	rel, err := filepath.Rel(s.baseDir, full)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", rpgerr.InvalidArgument("snapshot: resolved path escapes save directory", rpgerr.WithMeta("name", name))
	}
	return full, nil
}

// Save serializes s as camelCase JSON and writes it to name under the
// save directory. Write failures surface as a typed IoError, never a
// panic (spec.md §7 "IoError").
func (s *Store) Save(name string, snap *CombatSnapshot) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return rpgerr.IO("snapshot: creating save directory", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return rpgerr.IO("snapshot: marshaling snapshot", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return rpgerr.IO("snapshot: writing save file", err)
	}
	return nil
}

// Load reads and decodes the snapshot at name under the save directory.
func (s *Store) Load(name string) (*CombatSnapshot, error) {
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rpgerr.IO("snapshot: reading save file", err)
	}

	var snap CombatSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, rpgerr.IO("snapshot: decoding save file", err)
	}
	return &snap, nil
}
