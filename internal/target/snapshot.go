package target

import (
	"strings"

	"github.com/example/stealthprobe/internal/platform"
)

// Snapshot is the set of matched processes and windows captured once at the
// start of a run. It is read-only afterwards; probes tolerate entries that
// vanish mid-run.
type Snapshot struct {
	// ProcessFilter and WindowFilter are the lower-cased match strings the
	// snapshot was resolved with.
	ProcessFilter string
	WindowFilter  string

	Processes []platform.Process
	Windows   []platform.Window
}

// MatchesProcessName reports whether a process name matches the snapshot's
// filter (case-insensitive substring).
func (s *Snapshot) MatchesProcessName(name string) bool {
	return strings.Contains(strings.ToLower(name), s.ProcessFilter)
}
