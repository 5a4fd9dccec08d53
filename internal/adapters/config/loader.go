// Package config provides the configuration loader for symtab.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/symtab/internal/core/domain"
	"go.trai.ch/symtab/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// supportedVersion is the only config file version this loader understands.
const supportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration file at path and merges it over the defaults.
// A missing file yields domain.DefaultConfig().
func (l *Loader) Load(path string) (domain.Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := Parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != supportedVersion && l.Logger != nil {
		l.Logger.Warn("config file " + path + " declares unknown version " + file.Version + ", reading it as version " + supportedVersion)
	}

	cfg, err := file.toDomain()
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}
	return cfg, nil
}

// Parse decodes a config document. Unknown keys are rejected.
func Parse(data []byte) (*Symtabfile, error) {
	var file Symtabfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrConfigParseFailed, err.Error())
	}
	return &file, nil
}

// toDomain validates the file and applies it over domain.DefaultConfig().
func (f *Symtabfile) toDomain() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	if f.Tokenizer.Separators != nil {
		seps := *f.Tokenizer.Separators
		for i := range len(seps) {
			if seps[i] >= 0x80 {
				return domain.Config{}, invalid("tokenizer.separators", seps, "separators must be ASCII")
			}
		}
		cfg.Tokenizer.Separators = seps
	}

	if f.Tokenizer.MinLength != nil {
		if *f.Tokenizer.MinLength < 1 {
			return domain.Config{}, invalid("tokenizer.minLength", *f.Tokenizer.MinLength, "minLength must be at least 1")
		}
		cfg.Tokenizer.MinLength = *f.Tokenizer.MinLength
	}

	if f.Ingest.Workers != nil {
		switch w := *f.Ingest.Workers; {
		case w < 0:
			return domain.Config{}, invalid("ingest.workers", w, "workers must not be negative")
		case w > 0:
			cfg.Ingest.Workers = w
		}
	}

	switch exp := domain.Exporter(f.Telemetry.Exporter); exp {
	case "":
	case domain.ExporterNone, domain.ExporterOTel, domain.ExporterProgrock:
		cfg.Telemetry.Exporter = exp
	default:
		return domain.Config{}, invalid("telemetry.exporter", f.Telemetry.Exporter, "exporter must be one of none, otel, progrock")
	}

	return cfg, nil
}

func invalid(key string, value any, reason string) error {
	err := zerr.Wrap(domain.ErrInvalidConfig, reason)
	err = zerr.With(err, "key", key)
	return zerr.With(err, "value", value)
}
