package fs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceReader = (*SourceReader)(nil)

// SourceReader implements ports.SourceReader on the local file system.
type SourceReader struct {
	walker *Walker
	// Ignores lists base name patterns skipped while walking directories.
	Ignores []string
	// Stdin is read for domain.StdinSource. Defaults to os.Stdin.
	Stdin io.Reader
}

// NewSourceReader creates a new SourceReader.
func NewSourceReader(walker *Walker) *SourceReader {
	return &SourceReader{walker: walker, Stdin: os.Stdin}
}

// Resolve expands args into source names. Each name appears once, at its first position.
func (r *SourceReader) Resolve(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{domain.StdinSource}, nil
	}

	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, arg := range args {
		if arg == domain.StdinSource {
			add(arg)
			continue
		}

		matches, err := r.match(arg)
		if err != nil {
			return nil, err
		}

		for _, match := range matches {
			files, err := r.expand(match)
			if err != nil {
				return nil, err
			}
			for _, f := range files {
				add(f)
			}
		}
	}

	return result, nil
}

// match resolves a single argument to existing paths.
func (r *SourceReader) match(arg string) ([]string, error) {
	if !strings.ContainsAny(arg, "*?[") {
		if _, err := os.Stat(arg); err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, err.Error()), "path", arg)
		}
		return []string{arg}, nil
	}

	matches, err := filepath.Glob(arg)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", arg)
	}
	if len(matches) == 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrSourceNotFound, "pattern matched no files"), "path", arg)
	}
	return matches, nil
}

// expand turns a directory into the files below it.
func (r *SourceReader) expand(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var walkErr error
	var files []string
	for f := range r.walker.WalkFiles(path, r.Ignores, func(err error) { walkErr = err }) {
		files = append(files, f)
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, "failed to walk directory"), "path", path)
	}
	return files, nil
}

// Open returns a reader for the named source.
func (r *SourceReader) Open(name string) (io.ReadCloser, error) {
	if name == domain.StdinSource {
		return io.NopCloser(r.Stdin), nil
	}

	f, err := os.Open(name) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", name)
	}
	return f, nil
}
