// Package tokenizer splits lines into symbols that slice the interned line.
package tokenizer

import (
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
)

var _ ports.Tokenizer = (*Tokenizer)(nil)

// Tokenizer cuts lines at ASCII separator bytes.
// It is safe for concurrent use once constructed.
type Tokenizer struct {
	separators [256]bool
	minLength  int
}

// New creates a Tokenizer from cfg. An empty separator set falls back to domain.DefaultSeparators.
func New(cfg domain.TokenizerConfig) *Tokenizer {
	seps := cfg.Separators
	if seps == "" {
		seps = domain.DefaultSeparators
	}

	t := &Tokenizer{minLength: max(cfg.MinLength, 1)}
	for i := range len(seps) {
		t.separators[seps[i]] = true
	}
	return t
}

// Tokenize interns line into table and returns one sliced symbol per token, in order.
// Tokens shorter than the configured minimum are dropped.
func (t *Tokenizer) Tokenize(table *domain.Table, line string) []domain.Symbol {
	root := table.Intern(line)

	var tokens []domain.Symbol
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && !t.separators[line[i]] {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 && i-start >= t.minLength {
			// Separators are ASCII, so both cut points fall on rune boundaries.
			if sym, ok := root.Slice(start, i); ok {
				tokens = append(tokens, sym)
			}
		}
		start = -1
	}
	return tokens
}
