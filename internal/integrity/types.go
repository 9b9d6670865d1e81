package integrity

import (
	"context"

	"github.com/collegenav/collegenav/backend/internal/logger"
)

// Status of a single check
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
)

// Check is one independent assertion against the live system. Warn
// marks checks whose failure is advisory rather than fatal.
type Check struct {
	Name string
	Warn bool
	Run  func(ctx context.Context) error
}

// Result is the outcome of one check
type Result struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Summary aggregates the outcomes of a checker run
type Summary struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
	Warned  int      `json:"warned"`
}

// OK reports whether the run had no hard failures
func (s *Summary) OK() bool {
	return s.Failed == 0
}

// Descriptor names a capability the system depends on and a probe that
// verifies it is wired. The required operation signatures are checked
// statically (see assertions in checks.go), so the probe only has to
// confirm the capability is reachable at runtime.
type Descriptor struct {
	Name  string
	Probe func(ctx context.Context) error
}

// Logger interface for logging operations
type Logger = logger.Logger
