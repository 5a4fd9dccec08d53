package ports

import "io"

// SourceReader finds and opens the text sources to ingest.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceReader interface {
	// Resolve expands source arguments into concrete source names.
	// Glob patterns are matched, directories are walked, and domain.StdinSource is kept as is.
	// No arguments resolve to standard input alone.
	Resolve(args []string) ([]string, error)

	// Open returns a reader for the named source. domain.StdinSource names standard input.
	Open(name string) (io.ReadCloser, error)
}
