package config

// Symtabfile represents the structure of the symtab.yaml configuration file.
// Pointer fields distinguish an omitted key from an explicit zero.
type Symtabfile struct {
	Version   string       `yaml:"version"`
	Tokenizer TokenizerDTO `yaml:"tokenizer"`
	Ingest    IngestDTO    `yaml:"ingest"`
	Telemetry TelemetryDTO `yaml:"telemetry"`
}

// TokenizerDTO represents the tokenizer section.
type TokenizerDTO struct {
	Separators *string `yaml:"separators"`
	MinLength  *int    `yaml:"minLength"`
}

// IngestDTO represents the ingest section.
type IngestDTO struct {
	Workers *int `yaml:"workers"`
}

// TelemetryDTO represents the telemetry section.
type TelemetryDTO struct {
	Exporter string `yaml:"exporter"`
}
