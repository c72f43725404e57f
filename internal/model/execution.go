package model

import "time"

// Outcome classifies how the engine finished executing a candidate.
type Outcome int

const (
	// Success means the engine exited normally and reported coverage.
	Success Outcome = iota
	// Timeout means the engine was stopped after exceeding its deadline.
	Timeout
	// Exception means the script terminated with an uncaught exception.
	Exception
	// Crashed means the engine itself died (signal or crash exit code).
	Crashed
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Timeout:
		return "timeout"
	case Exception:
		return "exception"
	case Crashed:
		return "crash"
	}

	return "unknown"
}

// Execution is the oracle verdict for one candidate source.
type Execution struct {
	Outcome  Outcome
	Covered  Coverage
	ExitCode int
	Stderr   string
	Duration time.Duration
}

// Crash is a candidate that brought the engine down. It is reported out of
// band and never influences which candidate a pass keeps.
type Crash struct {
	Hash     string   `yaml:"hash"`
	Source   string   `yaml:"-"`
	Pass     PassKind `yaml:"pass"`
	ExitCode int      `yaml:"exit_code"`
	Stderr   string   `yaml:"stderr"`
}
