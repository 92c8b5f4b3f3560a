//go:build !windows

package fyneui

// applyTopmost is a no-op: GLFW exposes no stacking control after creation
// and the fullscreen splash window already sits above normal windows.
func (handle *Window) applyTopmost(bool) error {
	return nil
}
