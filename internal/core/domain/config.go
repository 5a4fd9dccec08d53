package domain

import "runtime"

// Exporter names the telemetry backend used while ingesting.
type Exporter string

const (
	// ExporterNone disables telemetry.
	ExporterNone Exporter = "none"
	// ExporterOTel reports spans through the global OpenTelemetry tracer provider.
	ExporterOTel Exporter = "otel"
	// ExporterProgrock records one progrock vertex per source.
	ExporterProgrock Exporter = "progrock"
)

// DefaultSeparators are the bytes that split a line into tokens when none are configured.
const DefaultSeparators = " \t\r\n,.;:!?()[]{}\"'"

// Config is the validated configuration of a symtab run.
type Config struct {
	Tokenizer TokenizerConfig
	Ingest    IngestConfig
	Telemetry TelemetryConfig
}

// TokenizerConfig controls how lines are cut into tokens.
type TokenizerConfig struct {
	// Separators lists the ASCII bytes that end a token.
	Separators string
	// MinLength drops tokens shorter than this many bytes.
	MinLength int
}

// IngestConfig controls the ingest engine.
type IngestConfig struct {
	// Workers bounds the number of sources read concurrently.
	Workers int
}

// TelemetryConfig selects the telemetry backend.
type TelemetryConfig struct {
	Exporter Exporter
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Tokenizer: TokenizerConfig{
			Separators: DefaultSeparators,
			MinLength:  1,
		},
		Ingest: IngestConfig{
			Workers: runtime.NumCPU(),
		},
		Telemetry: TelemetryConfig{
			Exporter: ExporterNone,
		},
	}
}
