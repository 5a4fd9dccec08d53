// Package ingester reads text sources concurrently into a shared symbol table.
package ingester

import (
	"bufio"
	"context"
	"runtime"
	"sync"

	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// initialLineBuffer is the scanner buffer allocated per source.
	initialLineBuffer = 64 * 1024
	// maxLineSize is the longest line accepted, in bytes.
	maxLineSize = 16 * 1024 * 1024
)

// Ingester tokenizes sources into a table.
type Ingester struct {
	sources   ports.SourceReader
	tokenizer ports.Tokenizer
	tracer    ports.Tracer
}

// runState is shared by the sources of one Run.
type runState struct {
	table *domain.Table

	mu       sync.Mutex
	distinct map[uint32]struct{}
}

// New creates a new Ingester with the given dependencies.
func New(sources ports.SourceReader, tokenizer ports.Tokenizer, tracer ports.Tracer) *Ingester {
	return &Ingester{
		sources:   sources,
		tokenizer: tokenizer,
		tracer:    tracer,
	}
}

// Run reads every named source into table with at most workers sources in flight.
// workers <= 0 uses one worker per CPU. Every line is interned whole and every
// token is desliced into an entry of its own. The first failing source cancels the rest.
func (i *Ingester) Run(ctx context.Context, table *domain.Table, names []string, workers int) (domain.IngestStats, error) {
	if len(names) == 0 {
		return domain.IngestStats{}, domain.ErrNoSources
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	state := &runState{
		table:    table,
		distinct: make(map[uint32]struct{}),
	}
	perSource := make([]domain.IngestStats, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for idx, name := range names {
		g.Go(func() error {
			stats, err := i.ingestSource(ctx, state, name)
			if err != nil {
				return err
			}
			perSource[idx] = stats
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.IngestStats{}, err
	}

	var total domain.IngestStats
	for _, s := range perSource {
		total.Add(s)
	}

	state.mu.Lock()
	total.Distinct = len(state.distinct)
	state.mu.Unlock()

	return total, nil
}

// ingestSource reads a single source line by line.
func (i *Ingester) ingestSource(ctx context.Context, state *runState, name string) (stats domain.IngestStats, err error) {
	ctx, span := i.tracer.Start(ctx, "ingest "+name)
	defer func() {
		span.SetAttribute("lines", stats.Lines)
		span.SetAttribute("tokens", stats.Tokens)
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	rc, err := i.sources.Open(name)
	if err != nil {
		return stats, err
	}
	defer rc.Close() //nolint:errcheck // read-only source

	seen := make(map[uint32]struct{})
	scanner := bufio.NewScanner(rc)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Lines++
		for _, tok := range i.tokenizer.Tokenize(state.table, scanner.Text()) {
			seen[tok.Deslice().Index()] = struct{}{}
			stats.Tokens++
		}
	}
	if err := scanner.Err(); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", name)
		return stats, zerr.With(err, "line", stats.Lines+1)
	}

	state.mu.Lock()
	for idx := range seen {
		state.distinct[idx] = struct{}{}
	}
	state.mu.Unlock()

	stats.Sources = 1
	return stats, nil
}
