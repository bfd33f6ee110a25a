//go:build windows

package platform

import (
	"golang.org/x/sys/windows"
)

var (
	kernel32                   = windows.NewLazySystemDLL("kernel32.dll")
	procDebugActiveProcess     = kernel32.NewProc("DebugActiveProcess")
	procDebugActiveProcessStop = kernel32.NewProc("DebugActiveProcessStop")
)

// Win32Accessor probes process access rights through kernel32.
type Win32Accessor struct{}

// NewAccessor returns the kernel32-backed process accessor.
func NewAccessor() Accessor {
	return Win32Accessor{}
}

// OpenWithWriteAccess implements Accessor. A denied open is reported as
// (false, nil) because it is the expected outcome for a protected process.
func (Win32Accessor) OpenWithWriteAccess(pid int32) (bool, error) {
	handle, err := windows.OpenProcess(
		windows.PROCESS_VM_WRITE|windows.PROCESS_VM_OPERATION,
		false,
		uint32(pid),
	)
	if err != nil {
		return false, nil
	}
	windows.CloseHandle(handle)
	return true, nil
}

// AttachDebugger implements Accessor. A successful attach is detached again
// before returning so the target is never left suspended.
func (Win32Accessor) AttachDebugger(pid int32) (bool, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_ALL_ACCESS, false, uint32(pid))
	if err != nil {
		return false, nil
	}
	defer windows.CloseHandle(handle)

	ret, _, _ := procDebugActiveProcess.Call(uintptr(uint32(pid)))
	if ret == 0 {
		return false, nil
	}

	procDebugActiveProcessStop.Call(uintptr(uint32(pid)))
	return true, nil
}
