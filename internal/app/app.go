// Package app implements the application layer for symtab.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"go.trai.ch/symtab/internal/adapters/telemetry"
	"go.trai.ch/symtab/internal/adapters/tokenizer"
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
	"go.trai.ch/symtab/internal/engine/ingester"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	sources      ports.SourceReader
	store        ports.SnapshotStore
	digester     ports.Digester
	logger       ports.Logger
	traceOut     io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sources ports.SourceReader,
	store ports.SnapshotStore,
	digester ports.Digester,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		sources:      sources,
		store:        store,
		digester:     digester,
		logger:       log,
		traceOut:     os.Stderr,
	}
}

// WithTraceOutput sets where exported spans are written. Defaults to os.Stderr.
func (a *App) WithTraceOutput(w io.Writer) *App {
	a.traceOut = w
	return a
}

// SetJSONLogs switches the logger to JSON records when it supports it.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(enable)
	}
}

// IngestOptions configuration for the Ingest method.
type IngestOptions struct {
	// ConfigPath is the config file to read. A missing file means defaults.
	ConfigPath string
	// StatePath, when set, is loaded before ingesting and saved afterwards.
	StatePath string
	// Workers overrides the configured parallelism when positive.
	Workers int
}

// IngestResult summarizes an ingest run.
type IngestResult struct {
	Stats       domain.IngestStats
	Entries     int
	Fingerprint string
	Table       *domain.Table
}

// Ingest reads the sources named by args into a table.
func (a *App) Ingest(ctx context.Context, args []string, opts IngestOptions) (*IngestResult, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	names, err := a.sources.Resolve(args)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve sources")
	}

	table, err := a.loadTable(opts.StatePath)
	if err != nil {
		return nil, err
	}

	tracer, shutdown, err := telemetry.Setup(cfg.Telemetry.Exporter, a.traceOut)
	if err != nil {
		return nil, err
	}

	workers := cfg.Ingest.Workers
	if opts.Workers > 0 {
		workers = opts.Workers
	}

	ing := ingester.New(a.sources, tokenizer.New(cfg.Tokenizer), tracer)
	stats, runErr := ing.Run(ctx, table, names, workers)
	if err := shutdown(context.WithoutCancel(ctx)); err != nil {
		a.logger.Warn("failed to flush telemetry: " + err.Error())
	}
	if runErr != nil {
		return nil, zerr.Wrap(runErr, "ingest failed")
	}

	if opts.StatePath != "" {
		if err := a.store.Save(opts.StatePath, table); err != nil {
			return nil, err
		}
		a.logger.Info(fmt.Sprintf("saved %d entries to %s", table.Len(), opts.StatePath))
	}

	return &IngestResult{
		Stats:       stats,
		Entries:     table.Len(),
		Fingerprint: a.digester.Fingerprint(table.All()),
		Table:       table,
	}, nil
}

// Dump returns a snapshot of the table built from args.
// With a state file and no arguments, the saved table is returned without reading stdin.
func (a *App) Dump(ctx context.Context, args []string, opts IngestOptions) (domain.Snapshot, error) {
	if len(args) == 0 && opts.StatePath != "" {
		table, err := a.loadTable(opts.StatePath)
		if err != nil {
			return domain.Snapshot{}, err
		}
		return a.snapshot(table), nil
	}

	res, err := a.Ingest(ctx, args, opts)
	if err != nil {
		return domain.Snapshot{}, err
	}
	return a.snapshot(res.Table), nil
}

// LookupResult is the outcome of looking up one word.
type LookupResult struct {
	Word  string
	Index uint32
	Found bool
}

// Lookup reports the index of each word in the table saved at statePath.
// The table is never modified.
func (a *App) Lookup(_ context.Context, statePath string, words []string) ([]LookupResult, error) {
	table, err := a.loadTable(statePath)
	if err != nil {
		return nil, err
	}

	results := make([]LookupResult, len(words))
	for i, w := range words {
		sym, ok := table.Lookup(w)
		results[i] = LookupResult{Word: w, Index: sym.Index(), Found: ok}
	}
	return results, nil
}

// SliceResult records every step of a Slice call.
type SliceResult struct {
	// Steps holds the interned text followed by one symbol per applied range.
	Steps []domain.Symbol
	// Final is the last symbol, desliced when requested.
	Final domain.Symbol
	// LenBefore and LenAfter are the table sizes around the deslice.
	LenBefore int
	LenAfter  int
}

// Slice interns text into a fresh table and applies each range to the previous symbol.
func (a *App) Slice(text string, ranges []domain.ByteRange, deslice bool) (*SliceResult, error) {
	table := domain.NewTable()
	sym := table.Intern(text)
	res := &SliceResult{Steps: []domain.Symbol{sym}}

	for step, r := range ranges {
		next, ok := sym.Slice(r.Start, r.End)
		if !ok {
			err := zerr.With(zerr.Wrap(domain.ErrSliceOutOfRange, "cannot slice symbol"), "range", r.String())
			err = zerr.With(err, "step", step+1)
			return nil, zerr.With(err, "text", sym.String())
		}
		sym = next
		res.Steps = append(res.Steps, sym)
	}

	res.LenBefore = table.Len()
	if deslice {
		sym = sym.Deslice()
	}
	res.LenAfter = table.Len()
	res.Final = sym
	return res, nil
}

// Demo interns "hello" and "world" and returns their symbols.
func (a *App) Demo() []domain.Symbol {
	table := domain.NewTable()
	return []domain.Symbol{table.Intern("hello"), table.Intern("world")}
}

func (a *App) loadTable(statePath string) (*domain.Table, error) {
	if statePath == "" {
		return domain.NewTable(), nil
	}
	table, err := a.store.Load(statePath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load state")
	}
	return table, nil
}

func (a *App) snapshot(table *domain.Table) domain.Snapshot {
	snap := domain.NewSnapshot(table, "")
	snap.Fingerprint = a.digester.Fingerprint(slices.Values(snap.Entries))
	return snap
}
