//go:build !windows

package platform

// stubWindowManager stands in on platforms without a Win32 window hierarchy.
// Enumeration reports no windows at all, which downstream treats as the target
// being invisible to window-based detection.
type stubWindowManager struct{}

// NewWindowManager returns the window manager for the current platform.
func NewWindowManager() WindowManager {
	return stubWindowManager{}
}

func (stubWindowManager) VisibleWindows() ([]Window, error) {
	return nil, nil
}

func (stubWindowManager) Styles(handle uintptr) (WindowStyles, error) {
	return WindowStyles{}, ErrUnsupported
}
