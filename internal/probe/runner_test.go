package probe

import (
	"context"
	"testing"

	"github.com/example/stealthprobe/internal/target"
)

func TestRunAllProducesOneResultPerProbe(t *testing.T) {
	probes := []Probe{
		{Name: "passing", Group: GroupBasic, Run: func(ctx context.Context, snap *target.Snapshot) Result {
			return pass("passing", "fine")
		}},
		{Name: "panicking", Group: GroupBasic, Run: func(ctx context.Context, snap *target.Snapshot) Result {
			panic("platform call exploded")
		}},
		{Name: "failing", Group: GroupSecurity, Run: func(ctx context.Context, snap *target.Snapshot) Result {
			return fail("failing", "detected", SeverityHigh)
		}},
	}

	results := RunAll(context.Background(), probes, emptySnapshot("x"), nil)
	if len(results) != len(probes) {
		t.Fatalf("expected %d results, got %d", len(probes), len(results))
	}

	panicked := results[1]
	if !panicked.Passed {
		t.Fatalf("panicking probe should convert to a passing result: %#v", panicked)
	}
	if panicked.Severity != SeverityMedium {
		t.Fatalf("expected medium severity for converted panic, got %s", panicked.Severity)
	}
	if panicked.Test != "panicking" {
		t.Fatalf("converted result should keep the probe name, got %q", panicked.Test)
	}

	for i, r := range results {
		if r.Timestamp.IsZero() {
			t.Fatalf("result %d has no timestamp", i)
		}
	}
}

func TestRunAllStreamsResultsInOrder(t *testing.T) {
	probes := []Probe{
		{Name: "one", Run: func(ctx context.Context, snap *target.Snapshot) Result { return pass("one", "") }},
		{Name: "two", Run: func(ctx context.Context, snap *target.Snapshot) Result { return pass("two", "") }},
	}

	var seen []string
	RunAll(context.Background(), probes, emptySnapshot("x"), func(r Result) {
		seen = append(seen, r.Test)
	})

	if len(seen) != 2 || seen[0] != "one" || seen[1] != "two" {
		t.Fatalf("observer saw %v, want [one two]", seen)
	}
}

func TestCatalogueOrderAndGroups(t *testing.T) {
	suite := newTestSuite()
	probes := suite.Catalogue()

	if len(probes) != 15 {
		t.Fatalf("expected 15 probes in the catalogue, got %d", len(probes))
	}

	if probes[0].Group != GroupBasic || probes[len(probes)-1].Group != GroupSecurity {
		t.Fatalf("unexpected group ordering: first=%s last=%s", probes[0].Group, probes[len(probes)-1].Group)
	}

	seen := map[string]struct{}{}
	for _, p := range probes {
		if p.Name == "" || p.Run == nil {
			t.Fatalf("probe with missing name or run func: %#v", p)
		}
		if _, dup := seen[p.Name]; dup {
			t.Fatalf("duplicate probe name %q", p.Name)
		}
		seen[p.Name] = struct{}{}
	}
}
