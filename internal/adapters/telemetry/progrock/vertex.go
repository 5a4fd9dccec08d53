package progrock

import (
	"fmt"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/symtab/internal/core/ports"
)

var _ ports.Span = (*Vertex)(nil)

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder

	mu  sync.Mutex
	err error
}

// Write appends p to the vertex output.
func (v *Vertex) Write(p []byte) (int, error) {
	return v.vertex.Stdout().Write(p)
}

// SetAttribute writes the attribute to the vertex output as key=value.
func (v *Vertex) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(v.vertex.Stdout(), "%s=%v\n", key, value)
}

// RecordError remembers err; the vertex completes with the first recorded error.
func (v *Vertex) RecordError(err error) {
	if err == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.err == nil {
		v.err = err
	}
	_, _ = fmt.Fprintf(v.vertex.Stderr(), "%v\n", err)
}

// End marks the vertex as finished.
func (v *Vertex) End() {
	v.mu.Lock()
	err := v.err
	v.mu.Unlock()
	v.vertex.Done(err)
}
