package ports

import "go.trai.ch/symtab/internal/core/domain"

// SnapshotStore persists tables between runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type SnapshotStore interface {
	// Load restores the table saved at path.
	// Returns an empty table if nothing was saved there yet.
	Load(path string) (*domain.Table, error)

	// Save writes every entry of table to path.
	Save(path string, table *domain.Table) error
}
