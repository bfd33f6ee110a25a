package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/stealthprobe/internal/target"
)

// External-utility probes. A timeout, non-zero exit, or missing utility means
// the query path is unavailable to an observer too, so it is reported as a
// passing "access restricted" result rather than an error.

func (s *Suite) tasklistProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "TaskList Detection"

	output, err := s.Query.Tasklist(ctx)
	if err != nil {
		s.Log.WithError(err).Debug("tasklist query unavailable")
		return Result{
			Test:     name,
			Passed:   true,
			Details:  fmt.Sprintf("tasklist query blocked or failed: %v", err),
			Severity: SeverityMedium,
		}
	}

	lower := strings.ToLower(output)
	if strings.Contains(lower, snap.ProcessFilter) {
		count := strings.Count(lower, snap.ProcessFilter)
		return fail(name, fmt.Sprintf("process detected %d times in tasklist output", count), SeverityHigh)
	}
	return pass(name, "process hidden from tasklist")
}

func (s *Suite) wmicProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "WMIC Detection"

	output, err := s.Query.WMICProcessList(ctx)
	if err != nil {
		s.Log.WithError(err).Debug("wmic query unavailable")
		return Result{
			Test:     name,
			Passed:   true,
			Details:  fmt.Sprintf("wmic access blocked or failed: %v", err),
			Severity: SeverityMedium,
		}
	}

	if strings.Contains(strings.ToLower(output), snap.ProcessFilter) {
		return fail(name, "process detected by WMI queries", SeverityCritical)
	}
	return pass(name, "process hidden from WMIC")
}

func (s *Suite) powershellProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "PowerShell Detection"

	output, err := s.Query.PowerShellProcessQuery(ctx, snap.ProcessFilter)
	if err != nil {
		s.Log.WithError(err).Debug("powershell query unavailable")
		return Result{
			Test:     name,
			Passed:   true,
			Details:  fmt.Sprintf("powershell execution blocked: %v", err),
			Severity: SeverityMedium,
		}
	}

	lines := nonEmptyLines(output)
	// Get-Process emits two header lines before any data rows.
	if len(lines) > 2 && strings.Contains(strings.ToLower(output), snap.ProcessFilter) {
		return fail(name,
			fmt.Sprintf("process detected by Get-Process: %d instances", len(lines)-2),
			SeverityHigh)
	}
	return pass(name, "process hidden from PowerShell Get-Process")
}

func nonEmptyLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
