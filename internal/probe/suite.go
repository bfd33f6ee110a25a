package probe

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/example/stealthprobe/internal/platform"
	"github.com/example/stealthprobe/internal/sysquery"
)

// Detection thresholds, matching what common monitoring heuristics flag.
const (
	memoryLimitMB     = 500.0
	cpuThresholdPct   = 50.0
	captureMinBytes   = 1000
	defaultCPUSamples = 5
)

const defaultCPUInterval = 2 * time.Second

// CPUSampling controls the CPU probe's polling window. Sleep is injectable so
// tests do not wait out the real sampling interval.
type CPUSampling struct {
	Samples  int
	Interval time.Duration
	Sleep    func(time.Duration)
}

// Suite binds the probe catalogue to its platform collaborators. Probes only
// depend on the narrow interfaces, never on a concrete OS binding.
type Suite struct {
	Inspector platform.Inspector
	Windows   platform.WindowManager
	Access    platform.Accessor
	Capture   platform.Capturer
	Query     sysquery.Runner
	Log       *logrus.Logger
	CPU       CPUSampling
}

// NewSuite returns a suite wired to the live platform bindings.
func NewSuite(log *logrus.Logger) *Suite {
	if log == nil {
		log = logrus.New()
	}
	return &Suite{
		Inspector: platform.NewInspector(),
		Windows:   platform.NewWindowManager(),
		Access:    platform.NewAccessor(),
		Capture:   platform.NewCapturer(),
		Query:     sysquery.NewRunner(),
		Log:       log,
		CPU: CPUSampling{
			Samples:  defaultCPUSamples,
			Interval: defaultCPUInterval,
			Sleep:    time.Sleep,
		},
	}
}

// Catalogue returns the fixed, ordered set of detection tests.
func (s *Suite) Catalogue() []Probe {
	return []Probe{
		{Name: "Process List Detection", Group: GroupBasic, Run: s.processListProbe},
		{Name: "TaskList Detection", Group: GroupBasic, Run: s.tasklistProbe},
		{Name: "WMIC Detection", Group: GroupBasic, Run: s.wmicProbe},
		{Name: "PowerShell Detection", Group: GroupBasic, Run: s.powershellProbe},

		{Name: "Window Enumeration", Group: GroupWindow, Run: s.windowEnumerationProbe},
		{Name: "Taskbar Presence", Group: GroupWindow, Run: s.taskbarProbe},
		{Name: "Alt+Tab Visibility", Group: GroupWindow, Run: s.altTabProbe},

		{Name: "Process Tree Analysis", Group: GroupBehavior, Run: s.processTreeProbe},
		{Name: "Network Connections", Group: GroupBehavior, Run: s.networkProbe},
		{Name: "Memory Usage", Group: GroupBehavior, Run: s.memoryProbe},
		{Name: "CPU Usage", Group: GroupBehavior, Run: s.cpuProbe},

		{Name: "Screen Capture Protection", Group: GroupSecurity, Run: s.screenCaptureProbe},
		{Name: "Process Injection Resistance", Group: GroupSecurity, Run: s.injectionProbe},
		{Name: "Anti-Debugging Protection", Group: GroupSecurity, Run: s.debugProbe},
		{Name: "Process Name Legitimacy", Group: GroupSecurity, Run: s.nameLegitimacyProbe},
	}
}
