package probe

import (
	"context"
	"fmt"

	"github.com/example/stealthprobe/internal/target"
)

// screenCaptureProbe attempts a full-screen grab. A sizable capture means the
// display content is exposed to any recorder; a failed or blocked capture
// means capture protection held.
func (s *Suite) screenCaptureProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Screen Capture Protection"

	size, err := s.Capture.CaptureScreen()
	if err != nil {
		return pass(name, fmt.Sprintf("screen capture failed: %v (capture protection likely active)", err))
	}

	if size > captureMinBytes {
		return fail(name,
			fmt.Sprintf("full-screen capture succeeded (%d bytes) - display content is exposed", size),
			SeverityCritical)
	}
	return pass(name, fmt.Sprintf("capture output too small to be usable (%d bytes)", size))
}

// injectionProbe tries to open each matched process with the write access an
// injector needs.
func (s *Suite) injectionProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Process Injection Resistance"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to test injection resistance")
	}

	attempts := 0
	opened := 0
	for _, p := range snap.Processes {
		attempts++
		ok, err := s.Access.OpenWithWriteAccess(p.PID())
		if err != nil {
			return platformFailure(name, err)
		}
		if ok {
			opened++
		}
	}

	if opened > 0 {
		return fail(name,
			fmt.Sprintf("%d/%d processes could be opened with write access", opened, attempts),
			SeverityHigh)
	}
	return pass(name, fmt.Sprintf("all %d processes refused write access", attempts))
}

// debugProbe tries to attach a debugger to each matched process. A successful
// attach is detached again immediately by the accessor.
func (s *Suite) debugProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Anti-Debugging Protection"

	if len(snap.Processes) == 0 {
		return pass(name, "no matched processes to test debugging protection")
	}

	attempts := 0
	attached := 0
	for _, p := range snap.Processes {
		attempts++
		ok, err := s.Access.AttachDebugger(p.PID())
		if err != nil {
			return platformFailure(name, err)
		}
		if ok {
			attached++
		}
	}

	if attached > 0 {
		return fail(name,
			fmt.Sprintf("%d/%d processes accepted a debugger attach", attached, attempts),
			SeverityCritical)
	}
	return pass(name, fmt.Sprintf("all %d processes rejected debugger attachment", attempts))
}
