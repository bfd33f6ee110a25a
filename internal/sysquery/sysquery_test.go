package sysquery

import (
	"context"
	"strings"
	"testing"
)

func TestAvailableReportsMissingBinary(t *testing.T) {
	err := Available("zz-no-such-utility")
	if err == nil {
		t.Fatal("expected an error for a binary that cannot exist")
	}
	if !strings.Contains(err.Error(), "zz-no-such-utility not found") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTasklistFailsCleanlyWhenUtilityMissing(t *testing.T) {
	if err := Available("tasklist"); err == nil {
		t.Skip("tasklist is present; the missing-utility path is not reachable")
	}

	runner := NewRunner()
	_, err := runner.Tasklist(context.Background())
	if err == nil {
		t.Fatal("expected an error from a missing tasklist binary")
	}
	if !strings.Contains(err.Error(), "tasklist failed") {
		t.Fatalf("unexpected error: %v", err)
	}
}
