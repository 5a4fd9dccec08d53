package fs

import (
	"fmt"
	"iter"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/symtab/internal/core/ports"
)

var _ ports.Digester = (*Digester)(nil)

// Digester fingerprints sequences of strings with XXHash.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// Fingerprint hashes every entry followed by a zero separator, so ["ab"] and ["a", "b"] differ.
func (d *Digester) Fingerprint(entries iter.Seq[string]) string {
	hasher := xxhash.New()
	for s := range entries {
		_, _ = hasher.WriteString(s)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
