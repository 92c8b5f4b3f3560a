// Package windowtest provides in-memory window hosts for tests.
package windowtest

import (
	"sync"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window"
)

// Handle is an in-memory window.Handle.
type Handle struct {
	mu          sync.Mutex
	id          model.WindowID
	options     model.WindowOptions
	visible     bool
	focused     bool
	fullScreen  bool
	alwaysOnTop bool
	closed      bool
	intercept   func()

	// ShowErr, HideErr and FullScreenErr are returned by the matching calls.
	ShowErr       error
	HideErr       error
	FullScreenErr error
}

// NewHandle creates a hidden window with the given options.
func NewHandle(options model.WindowOptions) *Handle {
	return &Handle{
		id:          options.ID,
		options:     options,
		fullScreen:  options.Fullscreen,
		alwaysOnTop: options.AlwaysOnTop,
	}
}

func (handle *Handle) ID() model.WindowID {
	return handle.id
}

// Options returns the construction options.
func (handle *Handle) Options() model.WindowOptions {
	return handle.options
}

func (handle *Handle) Show() error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.ShowErr != nil {
		return handle.ShowErr
	}
	handle.visible = true
	return nil
}

// Hide leaves fullscreen and top-most like most desktop toolkits do on hide.
func (handle *Handle) Hide() error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.HideErr != nil {
		return handle.HideErr
	}
	handle.visible = false
	handle.focused = false
	handle.fullScreen = false
	handle.alwaysOnTop = false
	return nil
}

func (handle *Handle) RequestFocus() error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.focused = true
	return nil
}

func (handle *Handle) SetFullScreen(enabled bool) error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	if handle.FullScreenErr != nil {
		return handle.FullScreenErr
	}
	handle.fullScreen = enabled
	return nil
}

func (handle *Handle) SetAlwaysOnTop(enabled bool) error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.alwaysOnTop = enabled
	return nil
}

func (handle *Handle) SetCloseIntercept(handler func()) {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.intercept = handler
}

// RequestClose simulates the user pressing the close button.
// Without an intercept the window is destroyed.
func (handle *Handle) RequestClose() {
	handle.mu.Lock()
	intercept := handle.intercept
	if intercept == nil {
		handle.closed = true
		handle.visible = false
	}
	handle.mu.Unlock()
	if intercept != nil {
		intercept()
	}
}

func (handle *Handle) Visible() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.visible
}

// Focused reports whether RequestFocus was called since the last hide.
func (handle *Handle) Focused() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.focused
}

// Closed reports whether the window was destroyed by a close request.
func (handle *Handle) Closed() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.closed
}

func (handle *Handle) FullScreen() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.fullScreen
}

func (handle *Handle) AlwaysOnTop() bool {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.alwaysOnTop
}

// Builder records every window it constructs.
type Builder struct {
	mu       sync.Mutex
	built    []*Handle
	BuildErr error
}

// Build implements window.Builder.
func (builder *Builder) Build(options model.WindowOptions) (window.Handle, error) {
	builder.mu.Lock()
	defer builder.mu.Unlock()
	if builder.BuildErr != nil {
		return nil, builder.BuildErr
	}
	handle := NewHandle(options)
	builder.built = append(builder.built, handle)
	return handle, nil
}

// Built returns the constructed windows in order.
func (builder *Builder) Built() []*Handle {
	builder.mu.Lock()
	defer builder.mu.Unlock()
	return append([]*Handle(nil), builder.built...)
}
