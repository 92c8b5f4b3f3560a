// Package shell wires the break overlay and the tray into one context object
// that front-end code drives through three operations.
package shell

import (
	"go.uber.org/zap"

	"pomodoro/internal/core/eventloop"
	"pomodoro/internal/core/window"
	"pomodoro/internal/ui/overlay"
	"pomodoro/internal/ui/tray"
)

// Config holds the host bindings the shell is built on.
type Config struct {
	Dispatcher    eventloop.Dispatcher
	WindowBuilder window.Builder
	TrayHost      tray.Host
	Logger        *zap.SugaredLogger
}

// Shell owns the window registry, the overlay manager and the tray controller.
type Shell struct {
	dispatcher eventloop.Dispatcher
	windows    *window.Registry
	overlay    *overlay.Manager
	tray       *tray.Controller
	logger     *zap.SugaredLogger
}

// New creates a shell. Nothing is built until the first operation.
func New(config Config) *Shell {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	dispatcher := config.Dispatcher
	if dispatcher == nil {
		dispatcher = eventloop.Inline{}
	}
	windows := window.NewRegistry()
	return &Shell{
		dispatcher: dispatcher,
		windows:    windows,
		overlay:    overlay.New(windows, config.WindowBuilder, logger.Named("overlay")),
		tray:       tray.New(config.TrayHost, windows, logger.Named("tray")),
		logger:     logger,
	}
}

// Windows returns the registry, used to register the main window.
func (shell *Shell) Windows() *window.Registry {
	return shell.windows
}

// InitializeTray builds the tray icon. Call it during startup on the UI thread.
func (shell *Shell) InitializeTray(app tray.Application) error {
	_, err := shell.tray.Initialize(app)
	return err
}

// OpenBreakOverlay shows the break overlay, creating it on first use.
func (shell *Shell) OpenBreakOverlay() error {
	return shell.run(shell.overlay.Show)
}

// CloseBreakOverlay hides the break overlay if it exists.
func (shell *Shell) CloseBreakOverlay() error {
	return shell.run(shell.overlay.Hide)
}

// SetTrayText updates the tray title and tooltip.
func (shell *Shell) SetTrayText(text string) error {
	return shell.run(func() error {
		return shell.tray.UpdateTitle(text)
	})
}

// OverlayState reports the break overlay lifecycle state.
func (shell *Shell) OverlayState() overlay.State {
	var state overlay.State
	shell.dispatcher.DoAndWait(func() {
		state = shell.overlay.State()
	})
	return state
}

// Close releases the registry at process exit.
func (shell *Shell) Close() {
	shell.windows.Teardown()
}

func (shell *Shell) run(operation func() error) error {
	var err error
	shell.dispatcher.DoAndWait(func() {
		err = operation()
	})
	return err
}
