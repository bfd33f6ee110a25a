package probe

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/stealthprobe/internal/platform"
	"github.com/example/stealthprobe/internal/target"
)

type fakeProcess struct {
	pid    int32
	name   string
	parent string
	rss    uint64
	cpu    []float64
	cpuIdx int
	conns  []platform.Connection

	nameErr   error
	parentErr error
	memErr    error
	cpuErr    error
	connErr   error
}

func (f *fakeProcess) PID() int32 { return f.pid }

func (f *fakeProcess) Name() (string, error) {
	return f.name, f.nameErr
}

func (f *fakeProcess) ParentName() (string, error) {
	return f.parent, f.parentErr
}

func (f *fakeProcess) ResidentMemory() (uint64, error) {
	return f.rss, f.memErr
}

func (f *fakeProcess) CPUPercent() (float64, error) {
	if f.cpuErr != nil {
		return 0, f.cpuErr
	}
	if len(f.cpu) == 0 {
		return 0, nil
	}
	v := f.cpu[f.cpuIdx%len(f.cpu)]
	f.cpuIdx++
	return v, nil
}

func (f *fakeProcess) Connections() ([]platform.Connection, error) {
	return f.conns, f.connErr
}

type fakeInspector struct {
	procs []platform.Process
	err   error
}

func (f fakeInspector) Processes() ([]platform.Process, error) {
	return f.procs, f.err
}

type fakeWindowManager struct {
	windows []platform.Window
	styles  map[uintptr]platform.WindowStyles
	err     error
}

func (f fakeWindowManager) VisibleWindows() ([]platform.Window, error) {
	return f.windows, f.err
}

func (f fakeWindowManager) Styles(handle uintptr) (platform.WindowStyles, error) {
	styles, ok := f.styles[handle]
	if !ok {
		return platform.WindowStyles{}, errors.New("unknown window")
	}
	return styles, nil
}

type fakeAccessor struct {
	writable  map[int32]bool
	debugable map[int32]bool
	err       error
}

func (f fakeAccessor) OpenWithWriteAccess(pid int32) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.writable[pid], nil
}

func (f fakeAccessor) AttachDebugger(pid int32) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.debugable[pid], nil
}

type fakeCapturer struct {
	size int
	err  error
}

func (f fakeCapturer) CaptureScreen() (int, error) {
	return f.size, f.err
}

type fakeQuery struct {
	tasklistOut   string
	tasklistErr   error
	wmicOut       string
	wmicErr       error
	powershellOut string
	powershellErr error
}

func (f fakeQuery) Tasklist(ctx context.Context) (string, error) {
	return f.tasklistOut, f.tasklistErr
}

func (f fakeQuery) WMICProcessList(ctx context.Context) (string, error) {
	return f.wmicOut, f.wmicErr
}

func (f fakeQuery) PowerShellProcessQuery(ctx context.Context, nameFilter string) (string, error) {
	return f.powershellOut, f.powershellErr
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

// newTestSuite wires a suite to inert fakes; tests swap in the collaborator
// under test.
func newTestSuite() *Suite {
	return &Suite{
		Inspector: fakeInspector{},
		Windows:   fakeWindowManager{},
		Access:    fakeAccessor{},
		Capture:   fakeCapturer{err: errors.New("no display")},
		Query:     fakeQuery{},
		Log:       quietLogger(),
		CPU: CPUSampling{
			Samples:  5,
			Interval: time.Millisecond,
			Sleep:    func(time.Duration) {},
		},
	}
}

func emptySnapshot(filter string) *target.Snapshot {
	return &target.Snapshot{ProcessFilter: filter}
}
