package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stevedomin/termtable"

	"github.com/example/stealthprobe/internal/probe"
)

// Score thresholds for the qualitative recommendation tier.
const (
	scoreNeedsImprovement = 70.0
	scoreExcellent        = 85.0
)

// Console renders results as they complete plus a final summary. Streaming is
// deliberate: a 10-second CPU sampling window sits in the middle of a run and
// the operator should see progress across it.
type Console struct {
	out       io.Writer
	lastGroup string
}

// NewConsole returns a renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

// Start prints the run header.
func (c *Console) Start(meta Meta) {
	fmt.Fprintf(c.out, "Stealth analysis for process filter %q", meta.TargetProcess)
	if meta.TargetWindow != "" {
		fmt.Fprintf(c.out, ", window filter %q", meta.TargetWindow)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintf(c.out, "Platform: %s\n", meta.Platform)
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
}

// Result prints one probe verdict, emitting a section header whenever the
// catalogue moves to a new group.
func (c *Console) Result(group string, r probe.Result) {
	if group != c.lastGroup {
		fmt.Fprintf(c.out, "\n%s\n%s\n", strings.ToUpper(group), strings.Repeat("-", 40))
		c.lastGroup = group
	}

	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	fmt.Fprintf(c.out, "[%s] [%-8s] %s\n", status, r.Severity, r.Test)
	fmt.Fprintf(c.out, "       %s\n", r.Details)
}

// Summary prints the final score, the failing results ordered by severity, the
// severity counts table, and the recommendation tier.
func (c *Console) Summary(results []probe.Result) {
	summary := probe.Score(results)
	buckets := probe.FailuresBySeverity(results)

	fmt.Fprintf(c.out, "\n%s\n", strings.Repeat("=", 60))
	fmt.Fprintln(c.out, "STEALTH ANALYSIS REPORT")
	fmt.Fprintln(c.out, strings.Repeat("=", 60))
	fmt.Fprintf(c.out, "\nOverall score: %d/%d (%.1f%%)\n",
		summary.Passed, summary.Total, summary.Percentage)

	headings := map[probe.Severity]string{
		probe.SeverityCritical: "CRITICAL ISSUES",
		probe.SeverityHigh:     "HIGH PRIORITY",
		probe.SeverityMedium:   "MEDIUM PRIORITY",
	}
	for _, severity := range []probe.Severity{probe.SeverityCritical, probe.SeverityHigh, probe.SeverityMedium} {
		failures := buckets[severity]
		if len(failures) == 0 {
			continue
		}
		fmt.Fprintf(c.out, "\n%s (%d):\n", headings[severity], len(failures))
		for _, r := range failures {
			fmt.Fprintf(c.out, "  - %s: %s\n", r.Test, r.Details)
		}
	}

	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, severityTable(results))
	fmt.Fprintf(c.out, "\nRecommendation: %s\n", Recommendation(summary.Percentage))
}

func severityTable(results []probe.Result) string {
	counts := probe.FailureCounts(results)

	t := termtable.NewTable(nil, &termtable.TableOptions{
		Padding:      2,
		UseSeparator: true,
	})
	t.SetHeader([]string{"Severity", "Failing tests"})
	for _, severity := range probe.SeverityOrder {
		t.AddRow([]string{string(severity), strconv.Itoa(counts[severity])})
	}
	return t.Render()
}

// Recommendation maps a stealth score onto a qualitative tier. Low-severity
// failures do not influence the tier; they only dilute the score itself.
func Recommendation(percentage float64) string {
	switch {
	case percentage < scoreNeedsImprovement:
		return "immediate action required: address all critical and high priority issues"
	case percentage < scoreExcellent:
		return "good stealth, needs improvement: address remaining high/medium priority issues"
	default:
		return "excellent stealth coverage: maintain current posture and re-test regularly"
	}
}
