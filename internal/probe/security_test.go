package probe

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestScreenCaptureProbeFailsOnLargeCapture(t *testing.T) {
	suite := newTestSuite()
	suite.Capture = fakeCapturer{size: 250_000}

	r := suite.screenCaptureProbe(context.Background(), emptySnapshot("tool"))
	if r.Passed || r.Severity != SeverityCritical {
		t.Fatalf("successful capture should be a critical failure, got %+v", r)
	}
	if !strings.Contains(r.Details, "250000 bytes") {
		t.Fatalf("details should report the capture size: %q", r.Details)
	}
}

func TestScreenCaptureProbePassesWhenCaptureBlocked(t *testing.T) {
	suite := newTestSuite()
	suite.Capture = fakeCapturer{err: errors.New("access denied by capture protection")}

	r := suite.screenCaptureProbe(context.Background(), emptySnapshot("tool"))
	if !r.Passed || r.Severity != SeverityLow {
		t.Fatalf("blocked capture should pass with low severity, got %+v", r)
	}
	if !strings.Contains(r.Details, "capture protection likely active") {
		t.Fatalf("details should explain the interpretation: %q", r.Details)
	}
}

func TestScreenCaptureProbePassesOnTinyCapture(t *testing.T) {
	suite := newTestSuite()
	suite.Capture = fakeCapturer{size: 400}

	r := suite.screenCaptureProbe(context.Background(), emptySnapshot("tool"))
	if !r.Passed {
		t.Fatalf("capture below the usable threshold should pass: %+v", r)
	}
}

func TestInjectionProbeCountsOpenableProcesses(t *testing.T) {
	suite := newTestSuite()
	suite.Access = fakeAccessor{writable: map[int32]bool{1: true, 2: false, 3: true}}
	snap := snapshotWith("tool",
		&fakeProcess{pid: 1, name: "tool.exe"},
		&fakeProcess{pid: 2, name: "tool.exe"},
		&fakeProcess{pid: 3, name: "tool.exe"},
	)

	r := suite.injectionProbe(context.Background(), snap)
	if r.Passed || r.Severity != SeverityHigh {
		t.Fatalf("expected high failure, got %+v", r)
	}
	if !strings.Contains(r.Details, "2/3") {
		t.Fatalf("details should report opened/attempted: %q", r.Details)
	}
}

func TestInjectionProbeAllRefusedPasses(t *testing.T) {
	suite := newTestSuite()
	suite.Access = fakeAccessor{writable: map[int32]bool{}}
	snap := snapshotWith("tool", &fakeProcess{pid: 1, name: "tool.exe"})

	r := suite.injectionProbe(context.Background(), snap)
	if !r.Passed || r.Severity != SeverityLow {
		t.Fatalf("refused write access should pass, got %+v", r)
	}
}

func TestInjectionProbeConvertsAccessorError(t *testing.T) {
	suite := newTestSuite()
	suite.Access = fakeAccessor{err: errors.New("operation not supported on this platform")}
	snap := snapshotWith("tool", &fakeProcess{pid: 1, name: "tool.exe"})

	r := suite.injectionProbe(context.Background(), snap)
	if !r.Passed || r.Severity != SeverityMedium {
		t.Fatalf("accessor errors must convert to passing medium results: %+v", r)
	}
	if !strings.Contains(r.Details, "not supported") {
		t.Fatalf("details should carry the error text: %q", r.Details)
	}
}

func TestDebugProbeFlagsSuccessfulAttach(t *testing.T) {
	suite := newTestSuite()
	suite.Access = fakeAccessor{debugable: map[int32]bool{1: true, 2: false}}
	snap := snapshotWith("tool",
		&fakeProcess{pid: 1, name: "tool.exe"},
		&fakeProcess{pid: 2, name: "tool.exe"},
	)

	r := suite.debugProbe(context.Background(), snap)
	if r.Passed || r.Severity != SeverityCritical {
		t.Fatalf("debugger attach should be a critical failure, got %+v", r)
	}
	if !strings.Contains(r.Details, "1/2") {
		t.Fatalf("details should report attached/attempted: %q", r.Details)
	}
}

func TestDebugProbeEmptySnapshot(t *testing.T) {
	suite := newTestSuite()
	r := suite.debugProbe(context.Background(), emptySnapshot("tool"))
	if !r.Passed || r.Severity != SeverityLow {
		t.Fatalf("no matched processes must pass with low severity, got %+v", r)
	}
}
