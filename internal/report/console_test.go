package report

import (
	"strings"
	"testing"
	"time"

	"github.com/example/stealthprobe/internal/probe"
)

func TestConsoleSummaryExcludesLowSeveritySections(t *testing.T) {
	ts := time.Now()
	results := sampleResults(ts)

	var b strings.Builder
	NewConsole(&b).Summary(results)
	out := b.String()

	if !strings.Contains(out, "Overall score: 1/4 (25.0%)") {
		t.Fatalf("missing score line:\n%s", out)
	}
	if !strings.Contains(out, "CRITICAL ISSUES (1):") {
		t.Fatalf("missing critical section:\n%s", out)
	}
	if !strings.Contains(out, "MEDIUM PRIORITY (1):") {
		t.Fatalf("missing medium section:\n%s", out)
	}
	// The low-severity memory failure is counted in the table but gets no
	// issue section of its own.
	if strings.Contains(out, "- Memory Usage:") {
		t.Fatalf("low-severity failure should not get an issue section:\n%s", out)
	}
	if !strings.Contains(out, "low") {
		t.Fatalf("severity table should still list the low bucket:\n%s", out)
	}
}

func TestConsoleResultGroupHeaders(t *testing.T) {
	var b strings.Builder
	c := NewConsole(&b)

	c.Result("Basic Detection", probe.Result{Test: "a", Passed: true, Severity: probe.SeverityLow})
	c.Result("Basic Detection", probe.Result{Test: "b", Passed: true, Severity: probe.SeverityLow})
	c.Result("Security", probe.Result{Test: "c", Passed: false, Severity: probe.SeverityHigh, Details: "detected"})
	out := b.String()

	if strings.Count(out, "BASIC DETECTION") != 1 {
		t.Fatalf("group header should print once per group:\n%s", out)
	}
	if !strings.Contains(out, "SECURITY") {
		t.Fatalf("missing second group header:\n%s", out)
	}
	if !strings.Contains(out, "[FAIL] [high    ] c") {
		t.Fatalf("missing failing verdict line:\n%s", out)
	}
}

func TestConsoleStartOmitsEmptyWindowFilter(t *testing.T) {
	var b strings.Builder
	NewConsole(&b).Start(Meta{TargetProcess: "sneaky", Platform: "windows amd64"})
	out := b.String()

	if strings.Contains(out, "window filter") {
		t.Fatalf("empty window filter should not be mentioned:\n%s", out)
	}
	if !strings.Contains(out, `"sneaky"`) {
		t.Fatalf("missing process filter:\n%s", out)
	}
}

func TestRecommendationTiers(t *testing.T) {
	cases := []struct {
		pct  float64
		want string
	}{
		{0, "immediate action required"},
		{69.9, "immediate action required"},
		{70, "good stealth, needs improvement"},
		{84.9, "good stealth, needs improvement"},
		{85, "excellent stealth coverage"},
		{100, "excellent stealth coverage"},
	}
	for _, tc := range cases {
		got := Recommendation(tc.pct)
		if !strings.HasPrefix(got, tc.want) {
			t.Fatalf("Recommendation(%.1f) = %q, want prefix %q", tc.pct, got, tc.want)
		}
	}
}
