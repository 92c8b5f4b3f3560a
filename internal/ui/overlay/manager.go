package overlay

import (
	"fmt"

	"go.uber.org/zap"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window"
)

// State is the lifecycle state of the break overlay.
type State string

const (
	StateAbsent  State = "absent"
	StateHidden  State = "hidden"
	StateVisible State = "visible"
)

// Manager owns the singleton break overlay window.
// Methods must run on the UI event loop.
type Manager struct {
	registry *window.Registry
	builder  window.Builder
	logger   *zap.SugaredLogger
}

// New creates a manager that builds the overlay through builder on first use.
func New(registry *window.Registry, builder window.Builder, logger *zap.SugaredLogger) *Manager {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Manager{
		registry: registry,
		builder:  builder,
		logger:   logger,
	}
}

// Show makes the break overlay visible, focused, top-most and fullscreen.
// The window is constructed on the first call and reused afterwards.
func (manager *Manager) Show() error {
	handle, ok := manager.registry.Lookup(model.BreakWindowID)
	if !ok {
		created, err := manager.create()
		if err != nil {
			return err
		}
		handle = created
	}
	return manager.present(handle)
}

// Hide hides the overlay without destroying it. A missing overlay is a no-op.
func (manager *Manager) Hide() error {
	handle, ok := manager.registry.Lookup(model.BreakWindowID)
	if !ok {
		return nil
	}
	if err := handle.Hide(); err != nil {
		return window.WrapToolkit("hide break window", err)
	}
	manager.logger.Debug("break overlay hidden")
	return nil
}

// State derives the overlay state from the registry.
func (manager *Manager) State() State {
	handle, ok := manager.registry.Lookup(model.BreakWindowID)
	if !ok {
		return StateAbsent
	}
	if handle.Visible() {
		return StateVisible
	}
	return StateHidden
}

func (manager *Manager) create() (window.Handle, error) {
	options := model.BreakWindowOptions()
	handle, err := manager.builder.Build(options)
	if err != nil {
		return nil, window.WrapToolkit("build break window", err)
	}

	// User close requests never reach the toolkit; only Hide removes the overlay.
	handle.SetCloseIntercept(func() {
		manager.logger.Debug("close request on break overlay suppressed")
	})

	if err := manager.registry.Register(handle); err != nil {
		return nil, fmt.Errorf("create break window: %w", err)
	}
	manager.logger.Infow("break overlay created", "route", options.Route)
	return handle, nil
}

// present re-asserts every overlay flag since toolkits may reset them on hide.
func (manager *Manager) present(handle window.Handle) error {
	if err := handle.Show(); err != nil {
		return window.WrapToolkit("show break window", err)
	}
	if err := handle.RequestFocus(); err != nil {
		return window.WrapToolkit("focus break window", err)
	}
	if err := handle.SetAlwaysOnTop(true); err != nil {
		return window.WrapToolkit("set break window always on top", err)
	}
	if err := handle.SetFullScreen(true); err != nil {
		return window.WrapToolkit("set break window fullscreen", err)
	}
	manager.logger.Debug("break overlay shown")
	return nil
}
