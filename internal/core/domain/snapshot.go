package domain

// SnapshotVersion is the current version of the snapshot format.
const SnapshotVersion = 1

// Snapshot is the persisted form of a Table.
type Snapshot struct {
	Version     int      `json:"version" yaml:"version"`
	Entries     []string `json:"entries" yaml:"entries"`
	Fingerprint string   `json:"fingerprint" yaml:"fingerprint"`
}

// NewSnapshot captures the current entries of t.
func NewSnapshot(t *Table, fingerprint string) Snapshot {
	return Snapshot{
		Version:     SnapshotVersion,
		Entries:     t.Strings(),
		Fingerprint: fingerprint,
	}
}

// Restore interns the snapshot entries, in order, into a new Table.
// Entry indices are preserved as long as the snapshot holds no duplicates.
func (s Snapshot) Restore() *Table {
	t := NewTable()
	for _, e := range s.Entries {
		t.Intern(e)
	}
	return t
}
