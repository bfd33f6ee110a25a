//go:build !windows

package platform

// stubAccessor stands in on platforms without the Win32 debug API.
type stubAccessor struct{}

// NewAccessor returns the process accessor for the current platform.
func NewAccessor() Accessor {
	return stubAccessor{}
}

func (stubAccessor) OpenWithWriteAccess(pid int32) (bool, error) {
	return false, ErrUnsupported
}

func (stubAccessor) AttachDebugger(pid int32) (bool, error) {
	return false, ErrUnsupported
}
