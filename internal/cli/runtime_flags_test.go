package cli

import (
	"testing"

	"github.com/spf13/cobra"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *runtimeFlagSet) {
	t.Helper()
	flags := &runtimeFlagSet{}
	cmd := &cobra.Command{Use: "test"}
	bindRuntimeFlags(cmd, flags)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd, flags
}

func TestToOverridesOnlyIncludesChangedFlags(t *testing.T) {
	cmd, flags := parseFlags(t, "--target", "sneaky", "--ndjson")

	ov := flags.toOverrides(cmd)
	if ov.Target != "sneaky" {
		t.Fatalf("expected target override, got %q", ov.Target)
	}
	if ov.NDJSON == nil || !*ov.NDJSON {
		t.Fatalf("expected ndjson override, got %v", ov.NDJSON)
	}
	if ov.WindowTitle != "" || ov.OutputDir != "" || ov.ReportFile != "" || ov.HistoryFile != "" {
		t.Fatalf("untouched flags must not override config: %+v", ov)
	}
}

func TestToOverridesEmptyWhenNothingSet(t *testing.T) {
	cmd, flags := parseFlags(t)

	ov := flags.toOverrides(cmd)
	if ov.Target != "" || ov.NDJSON != nil {
		t.Fatalf("expected zero overrides, got %+v", ov)
	}
}

func TestExplicitFalseNDJSONStillOverrides(t *testing.T) {
	cmd, flags := parseFlags(t, "--ndjson=false")

	ov := flags.toOverrides(cmd)
	if ov.NDJSON == nil || *ov.NDJSON {
		t.Fatalf("explicit --ndjson=false should produce a false override, got %v", ov.NDJSON)
	}
}
