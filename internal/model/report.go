package model

import "time"

// TraceEntry records one verdict requested during minimization.
type TraceEntry struct {
	Pass     PassKind
	Size     int
	Outcome  Outcome
	Accepted bool
	Cached   bool
}

// Report is the result of minimizing one testcase.
type Report struct {
	Testcase     Path           `yaml:"testcase"`
	Hash         string         `yaml:"hash"`
	Output       Path           `yaml:"output"`
	Mode         Mode           `yaml:"mode"`
	OriginalSize int            `yaml:"original_size"`
	FinalSize    int            `yaml:"final_size"`
	Required     int            `yaml:"required_sites"`
	Executions   int            `yaml:"executions"`
	CacheHits    int            `yaml:"cache_hits"`
	Crashes      []Path         `yaml:"crashes,omitempty"`
	Outcomes     map[string]int `yaml:"outcomes,omitempty"`
	Passes       []PassStat     `yaml:"passes"`
	Duration     time.Duration  `yaml:"duration"`
	Diff         string         `yaml:"-"`
}

// Reduction returns the fraction of bytes removed, in [0, 1].
func (r Report) Reduction() float64 {
	if r.OriginalSize == 0 {
		return 0
	}

	removed := r.OriginalSize - r.FinalSize
	if removed < 0 {
		return 0
	}

	return float64(removed) / float64(r.OriginalSize)
}
