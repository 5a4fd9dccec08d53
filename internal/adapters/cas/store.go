// Package cas persists symbol tables as fingerprinted snapshot files.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SnapshotStore = (*Store)(nil)

// Store implements ports.SnapshotStore using flat JSON files.
type Store struct {
	digester ports.Digester
}

// NewStore creates a new snapshot store that verifies files with digester.
func NewStore(digester ports.Digester) *Store {
	return &Store{digester: digester}
}

// Load restores the table saved at path. A missing or empty file yields an empty table.
func (s *Store) Load(path string) (*domain.Table, error) {
	path = filepath.Clean(path)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewTable(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSnapshotReadFailed.Error()), "path", path)
	}

	if len(data) == 0 {
		return domain.NewTable(), nil
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSnapshotCorrupt, err.Error()), "path", path)
	}

	if snap.Version != domain.SnapshotVersion {
		err := zerr.Wrap(domain.ErrSnapshotCorrupt, "unsupported snapshot version")
		return nil, zerr.With(zerr.With(err, "path", path), "version", snap.Version)
	}

	table := snap.Restore()
	if table.Len() != len(snap.Entries) {
		err := zerr.Wrap(domain.ErrSnapshotCorrupt, "snapshot holds duplicate entries")
		return nil, zerr.With(err, "path", path)
	}

	if got := s.digester.Fingerprint(table.All()); got != snap.Fingerprint {
		err := zerr.With(zerr.Wrap(domain.ErrSnapshotCorrupt, "cannot restore table"), "path", path)
		err = zerr.With(err, "want", snap.Fingerprint)
		return nil, zerr.With(err, "got", got)
	}

	return table, nil
}

// Save writes every entry of table to path, creating parent directories as needed.
func (s *Store) Save(path string, table *domain.Table) error {
	path = filepath.Clean(path)
	snap := domain.NewSnapshot(table, "")
	// Fingerprint the captured entries, not the live table, which may have grown since.
	snap.Fingerprint = s.digester.Fingerprint(slices.Values(snap.Entries))

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}

	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory for snapshot"), "path", path)
	}

	if err := os.WriteFile(path, data, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSnapshotWriteFailed.Error()), "path", path)
	}

	return nil
}
