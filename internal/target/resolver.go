package target

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/example/stealthprobe/internal/platform"
)

// Resolve captures the processes and windows matching the given filters.
//
// Process match: case-insensitive substring of the executable name. Processes
// whose name cannot be read (permission denied, already exited) are skipped.
// Window match: top-level visible windows whose title contains the window
// filter; an empty filter matches every visible window, and empty-titled
// windows are excluded when a non-empty filter is given.
//
// Empty matches are not an error: a target nothing can see is exactly what the
// probes are meant to confirm.
func Resolve(inspector platform.Inspector, windows platform.WindowManager, processName, windowTitle string, log *logrus.Logger) *Snapshot {
	snap := &Snapshot{
		ProcessFilter: strings.ToLower(processName),
		WindowFilter:  strings.ToLower(windowTitle),
	}

	procs, err := inspector.Processes()
	if err != nil {
		log.WithError(err).Debug("process enumeration failed during resolution")
	}
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			log.WithError(err).WithField("pid", p.PID()).Debug("skipping unreadable process")
			continue
		}
		if snap.MatchesProcessName(name) {
			snap.Processes = append(snap.Processes, p)
		}
	}

	wins, err := windows.VisibleWindows()
	if err != nil {
		log.WithError(err).Debug("window enumeration failed during resolution")
	}
	for _, w := range wins {
		if matchesWindow(w.Title, snap.WindowFilter) {
			snap.Windows = append(snap.Windows, w)
		}
	}

	return snap
}

func matchesWindow(title, filter string) bool {
	if filter == "" {
		return true
	}
	if title == "" {
		return false
	}
	return strings.Contains(strings.ToLower(title), filter)
}
