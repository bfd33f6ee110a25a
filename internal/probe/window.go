package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/stealthprobe/internal/target"
)

// windowEnumerationProbe reports whether the resolver's window snapshot caught
// anything at all.
func (s *Suite) windowEnumerationProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Window Enumeration"

	if len(snap.Windows) == 0 {
		return pass(name, "no windows detected by enumeration")
	}

	sample := make([]string, 0, 3)
	for _, w := range snap.Windows {
		if len(sample) == 3 {
			break
		}
		sample = append(sample, fmt.Sprintf("HWND:%d %q", w.Handle, w.Title))
	}
	return fail(name,
		fmt.Sprintf("found %d windows: %s", len(snap.Windows), strings.Join(sample, ", ")),
		SeverityCritical)
}

// taskbarProbe counts matched windows that would get a taskbar button: visible
// and without the tool-window extended style.
func (s *Suite) taskbarProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Taskbar Presence"

	if len(snap.Windows) == 0 {
		return pass(name, "no matched windows to test taskbar presence")
	}

	visible := 0
	for _, w := range snap.Windows {
		styles, err := s.Windows.Styles(w.Handle)
		if err != nil {
			continue
		}
		if !styles.ToolWindow && styles.Visible {
			visible++
		}
	}

	if visible > 0 {
		return fail(name,
			fmt.Sprintf("%d windows likely visible in taskbar", visible),
			SeverityMedium)
	}
	return pass(name, "windows hidden from taskbar")
}

// altTabProbe counts matched windows that would show up in the Alt+Tab
// switcher: visible, titled, and not a tool window.
func (s *Suite) altTabProbe(ctx context.Context, snap *target.Snapshot) Result {
	const name = "Alt+Tab Visibility"

	if len(snap.Windows) == 0 {
		return pass(name, "no matched windows to test Alt+Tab visibility")
	}

	visible := 0
	for _, w := range snap.Windows {
		styles, err := s.Windows.Styles(w.Handle)
		if err != nil {
			continue
		}
		if styles.Visible && !styles.ToolWindow && strings.TrimSpace(w.Title) != "" {
			visible++
		}
	}

	if visible > 0 {
		return fail(name,
			fmt.Sprintf("%d windows likely visible in Alt+Tab", visible),
			SeverityMedium)
	}
	return pass(name, "windows hidden from Alt+Tab")
}
