package telemetry

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/symtab/internal/adapters/telemetry/progrock"
	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
	"go.trai.ch/zerr"
)

// InstrumentationName identifies spans emitted by symtab.
const InstrumentationName = "symtab"

// ShutdownFunc flushes and releases a tracer.
type ShutdownFunc func(ctx context.Context) error

// Setup builds the tracer for exporter. Finished spans are reported to w.
// The returned ShutdownFunc must be called once the traced work is done.
func Setup(exporter domain.Exporter, w io.Writer) (ports.Tracer, ShutdownFunc, error) {
	switch exporter {
	case domain.ExporterNone, "":
		return NewNoOpTracer(), noShutdown, nil

	case domain.ExporterOTel:
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			return nil, nil, zerr.Wrap(err, "failed to create span exporter")
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
		return NewOTelTracer(tp, InstrumentationName), tp.Shutdown, nil

	case domain.ExporterProgrock:
		rec := progrock.New()
		return rec, func(context.Context) error { return rec.Close() }, nil

	default:
		return nil, nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown telemetry exporter"), "exporter", string(exporter))
	}
}

func noShutdown(context.Context) error {
	return nil
}
