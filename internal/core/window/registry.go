package window

import (
	"fmt"
	"sync"

	"pomodoro/internal/core/model"
)

// Registry maps logical window ids to live handles for the process lifetime.
type Registry struct {
	mu      sync.Mutex
	windows map[model.WindowID]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Lookup returns the handle registered under id.
func (registry *Registry) Lookup(id model.WindowID) (Handle, bool) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	handle, ok := registry.windows[id]
	return handle, ok
}

// Register adds a handle. Ids are unique for the registry lifetime.
func (registry *Registry) Register(handle Handle) error {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if registry.windows == nil {
		registry.windows = make(map[model.WindowID]Handle)
	}
	id := handle.ID()
	if _, exists := registry.windows[id]; exists {
		return fmt.Errorf("register %q: %w", id, ErrDuplicateWindow)
	}
	registry.windows[id] = handle
	return nil
}

// IDs returns the registered ids.
func (registry *Registry) IDs() []model.WindowID {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	ids := make([]model.WindowID, 0, len(registry.windows))
	for id := range registry.windows {
		ids = append(ids, id)
	}
	return ids
}

// Teardown drops every handle. It is called once at process exit.
func (registry *Registry) Teardown() {
	registry.mu.Lock()
	registry.windows = nil
	registry.mu.Unlock()
}
