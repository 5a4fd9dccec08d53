package domain

// IngestStats summarizes an ingest run.
type IngestStats struct {
	// Sources is the number of sources read.
	Sources int `json:"sources" yaml:"sources"`
	// Lines is the number of lines read across all sources.
	Lines int `json:"lines" yaml:"lines"`
	// Tokens is the number of tokens seen, duplicates included.
	Tokens int `json:"tokens" yaml:"tokens"`
	// Distinct is the number of distinct tokens seen.
	Distinct int `json:"distinct" yaml:"distinct"`
}

// Add accumulates other into s. Distinct is left untouched since it cannot be summed.
func (s *IngestStats) Add(other IngestStats) {
	s.Sources += other.Sources
	s.Lines += other.Lines
	s.Tokens += other.Tokens
}
