package platform

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrUnsupported is returned by capability bindings that do not exist on the
// current operating system. Probes translate it into a clean result instead of
// aborting the run.
var ErrUnsupported = errors.New("operation not supported on this platform")

// Connection describes one open socket owned by a process.
type Connection struct {
	RemoteIP   string
	RemotePort uint32
	Status     string
}

// Process exposes the per-process queries the probe catalogue needs. Every
// method may fail with a permission error for individual processes; callers
// skip those entries and continue.
type Process interface {
	PID() int32
	Name() (string, error)
	ParentName() (string, error)
	ResidentMemory() (uint64, error)
	CPUPercent() (float64, error)
	Connections() ([]Connection, error)
}

// Inspector lists the processes currently running on the host.
type Inspector interface {
	Processes() ([]Process, error)
}

// Window is one top-level window captured at resolution time.
type Window struct {
	Handle uintptr
	Title  string
}

// WindowStyles are the style bits the window probes inspect.
type WindowStyles struct {
	Visible    bool
	ToolWindow bool
}

// WindowManager enumerates top-level visible windows and reads style bits.
type WindowManager interface {
	VisibleWindows() ([]Window, error)
	Styles(handle uintptr) (WindowStyles, error)
}

// Accessor attempts privileged access against a target process. Both methods
// report whether the access was granted; a denied attempt is (false, nil).
type Accessor interface {
	// OpenWithWriteAccess tries to open the process with the memory write and
	// operation rights an injector would need. The handle is closed before
	// returning.
	OpenWithWriteAccess(pid int32) (bool, error)

	// AttachDebugger tries to attach a debugger to the process. On success the
	// debugger is detached again immediately.
	AttachDebugger(pid int32) (bool, error)
}

// Capturer grabs the primary display and reports the encoded image size.
type Capturer interface {
	CaptureScreen() (int, error)
}

// Describe returns the platform identifier recorded in reports.
func Describe() string {
	return fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH)
}
