// Package probe implements the detection-test catalogue: a fixed, ordered set
// of independent checks that simulate how a monitoring or reverse-engineering
// tool would look for the target, each producing a single pass/fail verdict.
package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/example/stealthprobe/internal/target"
)

// Severity is the qualitative impact tier of a failing probe.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityOrder lists severities from most to least urgent.
var SeverityOrder = []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}

// Result is the immutable verdict of one probe invocation. Passed means the
// target evaded this detection technique.
type Result struct {
	Test      string    `json:"test"`
	Passed    bool      `json:"passed"`
	Details   string    `json:"details"`
	Severity  Severity  `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// Probe is one entry of the catalogue. Group only affects console section
// headers, never logic.
type Probe struct {
	Name  string
	Group string
	Run   func(ctx context.Context, snap *target.Snapshot) Result
}

// Probe group headers, in catalogue order.
const (
	GroupBasic    = "Basic Detection"
	GroupWindow   = "Window Detection"
	GroupBehavior = "Behavior Analysis"
	GroupSecurity = "Security"
)

func pass(test, details string) Result {
	return Result{
		Test:      test,
		Passed:    true,
		Details:   details,
		Severity:  SeverityLow,
		Timestamp: time.Now().UTC(),
	}
}

func fail(test, details string, severity Severity) Result {
	return Result{
		Test:      test,
		Passed:    false,
		Details:   details,
		Severity:  severity,
		Timestamp: time.Now().UTC(),
	}
}

// platformFailure converts an unexpected platform error into a passing result:
// if the platform call itself fell over, the detection technique failed too.
func platformFailure(test string, err error) Result {
	return Result{
		Test:      test,
		Passed:    true,
		Details:   fmt.Sprintf("platform call failed: %v", err),
		Severity:  SeverityMedium,
		Timestamp: time.Now().UTC(),
	}
}
