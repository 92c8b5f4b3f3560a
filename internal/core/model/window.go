package model

// WindowID is the logical identifier of a host window.
type WindowID string

const (
	MainWindowID  WindowID = "main"
	BreakWindowID WindowID = "break-window"
)

// TrayID identifies the single tray icon.
const TrayID = "main"

// BreakRoute is the content route the host resolves to break overlay content.
const BreakRoute = "/break"

// TooltipPrefix is prepended to the tray title to build the tooltip.
const TooltipPrefix = "Pomodoro: "

// WindowOptions describes how a host window is constructed.
type WindowOptions struct {
	ID          WindowID
	Title       string
	Route       string
	Fullscreen  bool
	AlwaysOnTop bool
	Decorated   bool
	SkipTaskbar bool
	Closable    bool
}

// BreakWindowOptions returns the fixed configuration of the break overlay.
func BreakWindowOptions() WindowOptions {
	return WindowOptions{
		ID:          BreakWindowID,
		Title:       "Rest Time",
		Route:       BreakRoute,
		Fullscreen:  true,
		AlwaysOnTop: true,
		Decorated:   false,
		SkipTaskbar: true,
		Closable:    false,
	}
}
