// Package fyneui binds the window registry and the tray controller to Fyne.
package fyneui

import (
	"errors"
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window"
)

// ErrUnknownRoute is returned when a window asks for content nobody serves.
var ErrUnknownRoute = errors.New("unknown content route")

// Route builds the content shown for a route.
type Route func() fyne.CanvasObject

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// WindowHost builds Fyne windows from window options.
type WindowHost struct {
	app    fyne.App
	routes map[string]Route
}

// NewWindowHost creates a host resolving content through routes.
func NewWindowHost(app fyne.App, routes map[string]Route) *WindowHost {
	return &WindowHost{
		app:    app,
		routes: routes,
	}
}

// Build implements window.Builder.
func (host *WindowHost) Build(options model.WindowOptions) (window.Handle, error) {
	route, ok := host.routes[options.Route]
	if !ok {
		return nil, fmt.Errorf("build %s: %w: %q", options.ID, ErrUnknownRoute, options.Route)
	}

	var fyneWindow fyne.Window
	if !options.Decorated {
		// Splash windows have no frame and no taskbar button.
		if driver, ok := host.app.Driver().(splashWindowDriver); ok {
			fyneWindow = driver.CreateSplashWindow()
		}
	}
	if fyneWindow == nil {
		fyneWindow = host.app.NewWindow(options.Title)
	}
	fyneWindow.SetTitle(options.Title)
	if host.app.Icon() != nil {
		fyneWindow.SetIcon(host.app.Icon())
	}
	fyneWindow.SetPadded(false)
	fyneWindow.SetContent(route())
	fyneWindow.SetFullScreen(options.Fullscreen)

	handle := Wrap(options.ID, fyneWindow)
	handle.alwaysOnTop = options.AlwaysOnTop
	if !options.Closable {
		handle.SetCloseIntercept(func() {})
	}
	return handle, nil
}

// Window adapts a fyne.Window to window.Handle.
type Window struct {
	mu          sync.Mutex
	id          model.WindowID
	window      fyne.Window
	visible     bool
	alwaysOnTop bool
}

// Wrap registers an existing Fyne window under id.
func Wrap(id model.WindowID, fyneWindow fyne.Window) *Window {
	return &Window{
		id:     id,
		window: fyneWindow,
	}
}

func (handle *Window) ID() model.WindowID {
	return handle.id
}

// Fyne returns the wrapped window.
func (handle *Window) Fyne() fyne.Window {
	return handle.window
}

func (handle *Window) Show() error {
	handle.window.Show()
	handle.mu.Lock()
	handle.visible = true
	handle.mu.Unlock()
	return nil
}

// Hide leaves fullscreen first so the desktop is restored when hidden.
func (handle *Window) Hide() error {
	if handle.window.FullScreen() {
		handle.window.SetFullScreen(false)
	}
	handle.window.Hide()
	handle.mu.Lock()
	handle.visible = false
	handle.mu.Unlock()
	return nil
}

func (handle *Window) RequestFocus() error {
	handle.window.RequestFocus()
	return nil
}

func (handle *Window) SetFullScreen(enabled bool) error {
	handle.window.SetFullScreen(enabled)
	return nil
}

func (handle *Window) SetAlwaysOnTop(enabled bool) error {
	if err := handle.applyTopmost(enabled); err != nil {
		return err
	}
	handle.mu.Lock()
	handle.alwaysOnTop = enabled
	handle.mu.Unlock()
	return nil
}

func (handle *Window) SetCloseIntercept(handler func()) {
	handle.window.SetCloseIntercept(handler)
}

func (handle *Window) Visible() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.visible
}

func (handle *Window) FullScreen() bool {
	return handle.window.FullScreen()
}

func (handle *Window) AlwaysOnTop() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.alwaysOnTop
}
