//go:build windows

package platform

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procEnumWindows          = user32.NewProc("EnumWindows")
	procIsWindowVisible      = user32.NewProc("IsWindowVisible")
	procGetWindowTextW       = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW = user32.NewProc("GetWindowTextLengthW")
	procGetWindowLongW       = user32.NewProc("GetWindowLongW")
)

const (
	gwlStyle   = -16
	gwlExStyle = -20

	wsVisible      = 0x10000000
	wsExToolWindow = 0x00000080
)

// Win32WindowManager enumerates top-level windows through user32.
type Win32WindowManager struct{}

// NewWindowManager returns the user32-backed window manager.
func NewWindowManager() WindowManager {
	return Win32WindowManager{}
}

// VisibleWindows implements WindowManager. Only visible top-level windows are
// returned; windows whose title cannot be read come back with an empty title.
func (Win32WindowManager) VisibleWindows() ([]Window, error) {
	var found []Window

	cb := syscall.NewCallback(func(hwnd uintptr, lparam uintptr) uintptr {
		visible, _, _ := procIsWindowVisible.Call(hwnd)
		if visible == 0 {
			return 1
		}
		found = append(found, Window{Handle: hwnd, Title: windowTitle(hwnd)})
		return 1
	})

	ret, _, err := procEnumWindows.Call(cb, 0)
	if ret == 0 {
		return nil, err
	}
	return found, nil
}

// Styles implements WindowManager.
func (Win32WindowManager) Styles(handle uintptr) (WindowStyles, error) {
	style := getWindowLong(handle, gwlStyle)
	exStyle := getWindowLong(handle, gwlExStyle)

	return WindowStyles{
		Visible:    style&wsVisible != 0,
		ToolWindow: exStyle&wsExToolWindow != 0,
	}, nil
}

func windowTitle(hwnd uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return ""
	}

	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), length+1)
	return syscall.UTF16ToString(buf)
}

func getWindowLong(hwnd uintptr, index int32) uint32 {
	ret, _, _ := procGetWindowLongW.Call(hwnd, uintptr(uint32(index)))
	return uint32(ret)
}
