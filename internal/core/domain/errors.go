package domain

import "go.trai.ch/zerr"

var (
	// ErrCorruptSymbol signals a symbol whose range cannot be cut from its entry.
	// It is raised as a panic; no symbol obtained through Table or Symbol methods can trigger it.
	ErrCorruptSymbol = zerr.New("symbol range does not fit its entry")

	// ErrTableFull is raised when a table would exceed the number of addressable entries.
	ErrTableFull = zerr.New("symbol table is full")

	// ErrSliceOutOfRange is returned when a requested slice does not fit the symbol it is taken from.
	ErrSliceOutOfRange = zerr.New("slice out of range")

	// ErrInvalidRange is returned when a range argument cannot be parsed.
	ErrInvalidRange = zerr.New("invalid range, expected start:end")

	// ErrSymbolNotFound is returned when a string has not been interned.
	ErrSymbolNotFound = zerr.New("symbol not found")

	// ErrNoSources is returned when an ingest is started without any source.
	ErrNoSources = zerr.New("no sources specified")

	// ErrSourceNotFound is returned when a source argument matches nothing.
	ErrSourceNotFound = zerr.New("source not found")

	// ErrSourceReadFailed is returned when a source cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the config file holds an unsupported value.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrSnapshotReadFailed is returned when a snapshot file cannot be read.
	ErrSnapshotReadFailed = zerr.New("failed to read snapshot")

	// ErrSnapshotWriteFailed is returned when a snapshot file cannot be written.
	ErrSnapshotWriteFailed = zerr.New("failed to write snapshot")

	// ErrSnapshotCorrupt is returned when a snapshot does not match its recorded fingerprint.
	ErrSnapshotCorrupt = zerr.New("snapshot fingerprint mismatch")

	// ErrUnsupportedFormat is returned when an unknown output format is requested.
	ErrUnsupportedFormat = zerr.New("unsupported output format, expected 'text', 'yaml' or 'json'")
)
