package window

import "pomodoro/internal/core/model"

// Handle is a live platform window owned by the host toolkit.
type Handle interface {
	ID() model.WindowID
	Show() error
	Hide() error
	RequestFocus() error
	SetFullScreen(enabled bool) error
	SetAlwaysOnTop(enabled bool) error
	// SetCloseIntercept replaces the default effect of a user close request.
	SetCloseIntercept(handler func())
	Visible() bool
	FullScreen() bool
	AlwaysOnTop() bool
}

// Builder constructs host windows.
type Builder interface {
	Build(options model.WindowOptions) (Handle, error)
}
