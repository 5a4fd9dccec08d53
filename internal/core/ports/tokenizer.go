package ports

import "go.trai.ch/symtab/internal/core/domain"

// Tokenizer cuts lines of text into tokens.
//
//go:generate go run go.uber.org/mock/mockgen -source=tokenizer.go -destination=mocks/mock_tokenizer.go -package=mocks
type Tokenizer interface {
	// Tokenize interns line into table and returns one sliced symbol per token.
	// The returned symbols reference the interned line; no token is interned on its own.
	Tokenize(table *domain.Table, line string) []domain.Symbol
}
