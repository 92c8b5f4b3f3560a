//go:build windows

package fyneui

import (
	"fmt"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoActivate = 0x0010
)

var (
	hwndTopmost   = ^uintptr(0)
	hwndNoTopmost = ^uintptr(1)

	user32DLL        = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos = user32DLL.NewProc("SetWindowPos")
)

func (handle *Window) applyTopmost(enabled bool) error {
	nativeWindow, ok := handle.window.(driver.NativeWindow)
	if !ok {
		return nil
	}

	var callErr error
	nativeWindow.RunNative(func(context any) {
		var hwnd uintptr
		switch value := context.(type) {
		case driver.WindowsWindowContext:
			hwnd = value.HWND
		case *driver.WindowsWindowContext:
			hwnd = value.HWND
		default:
			return
		}
		if hwnd == 0 {
			return
		}

		insertAfter := hwndNoTopmost
		if enabled {
			insertAfter = hwndTopmost
		}
		result, _, err := procSetWindowPos.Call(hwnd, insertAfter, 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
		if result == 0 {
			callErr = fmt.Errorf("SetWindowPos: %w", err)
		}
	})
	return callErr
}
