package window_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window"
	"pomodoro/internal/core/window/windowtest"
)

func TestRegistryLookupAndRegister(t *testing.T) {
	t.Parallel()

	registry := window.NewRegistry()
	_, ok := registry.Lookup(model.BreakWindowID)
	require.False(t, ok)

	handle := windowtest.NewHandle(model.BreakWindowOptions())
	require.NoError(t, registry.Register(handle))

	found, ok := registry.Lookup(model.BreakWindowID)
	require.True(t, ok)
	require.Same(t, handle, found)
	require.ElementsMatch(t, []model.WindowID{model.BreakWindowID}, registry.IDs())
}

func TestRegistryRejectsDuplicateIDs(t *testing.T) {
	t.Parallel()

	registry := window.NewRegistry()
	require.NoError(t, registry.Register(windowtest.NewHandle(model.BreakWindowOptions())))

	err := registry.Register(windowtest.NewHandle(model.BreakWindowOptions()))
	require.ErrorIs(t, err, window.ErrDuplicateWindow)
	require.Len(t, registry.IDs(), 1)
}

func TestRegistryTeardown(t *testing.T) {
	t.Parallel()

	registry := window.NewRegistry()
	require.NoError(t, registry.Register(windowtest.NewHandle(model.WindowOptions{ID: model.MainWindowID})))
	registry.Teardown()

	_, ok := registry.Lookup(model.MainWindowID)
	require.False(t, ok)
	require.Empty(t, registry.IDs())
}

func TestWrapToolkit(t *testing.T) {
	t.Parallel()

	require.NoError(t, window.WrapToolkit("show", nil))

	cause := errors.New("display lost")
	err := window.WrapToolkit("show", cause)

	var toolkitErr *window.ToolkitError
	require.ErrorAs(t, err, &toolkitErr)
	require.Equal(t, "show", toolkitErr.Op)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "host toolkit: show: display lost", err.Error())

	require.Same(t, err, window.WrapToolkit("again", err))
}
