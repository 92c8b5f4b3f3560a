package shell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pomodoro/internal/core/eventloop"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window/windowtest"
	"pomodoro/internal/ui/overlay"
	"pomodoro/internal/ui/tray/traytest"
)

type fixture struct {
	shell    *Shell
	builder  *windowtest.Builder
	trayHost *traytest.Host
	app      *traytest.App
}

func newFixture(t *testing.T, dispatcher eventloop.Dispatcher) fixture {
	t.Helper()
	f := fixture{
		builder:  &windowtest.Builder{},
		trayHost: &traytest.Host{},
		app:      &traytest.App{},
	}
	f.shell = New(Config{
		Dispatcher:    dispatcher,
		WindowBuilder: f.builder,
		TrayHost:      f.trayHost,
		Logger:        zaptest.NewLogger(t).Sugar(),
	})
	return f
}

func TestOverlayOperations(t *testing.T) {
	t.Parallel()

	f := newFixture(t, eventloop.Inline{})
	require.Equal(t, overlay.StateAbsent, f.shell.OverlayState())

	require.NoError(t, f.shell.CloseBreakOverlay())
	require.Equal(t, overlay.StateAbsent, f.shell.OverlayState())

	require.NoError(t, f.shell.OpenBreakOverlay())
	require.NoError(t, f.shell.OpenBreakOverlay())
	require.Equal(t, overlay.StateVisible, f.shell.OverlayState())
	require.Len(t, f.builder.Built(), 1)

	require.NoError(t, f.shell.CloseBreakOverlay())
	require.NoError(t, f.shell.CloseBreakOverlay())
	require.Equal(t, overlay.StateHidden, f.shell.OverlayState())
}

func TestSetTrayText(t *testing.T) {
	t.Parallel()

	f := newFixture(t, eventloop.Inline{})
	require.NoError(t, f.shell.SetTrayText("25:00"))

	require.NoError(t, f.shell.InitializeTray(f.app))
	require.NoError(t, f.shell.SetTrayText("25:00"))
	require.Equal(t, "25:00", f.trayHost.Icon().Title())
	require.Equal(t, "Pomodoro: 25:00", f.trayHost.Icon().Tooltip())
}

func TestTrayShowsRegisteredMainWindow(t *testing.T) {
	t.Parallel()

	f := newFixture(t, eventloop.Inline{})
	require.NoError(t, f.shell.InitializeTray(f.app))
	main := windowtest.NewHandle(model.WindowOptions{ID: model.MainWindowID})
	require.NoError(t, f.shell.Windows().Register(main))

	f.trayHost.Click()
	require.True(t, main.Visible())

	f.trayHost.SelectMenu("quit")
	require.Equal(t, 1, f.app.Quits())
}

func TestConcurrentCallersAreSerialized(t *testing.T) {
	t.Parallel()

	loop := eventloop.NewLoop(8)
	defer loop.Stop()
	f := newFixture(t, loop)
	require.NoError(t, f.shell.InitializeTray(f.app))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, f.shell.OpenBreakOverlay())
			require.NoError(t, f.shell.SetTrayText("Break Time"))
			require.NoError(t, f.shell.CloseBreakOverlay())
		}()
	}
	wg.Wait()

	require.Len(t, f.builder.Built(), 1)
	require.Equal(t, []model.WindowID{model.BreakWindowID}, f.shell.Windows().IDs())
	require.Equal(t, overlay.StateHidden, f.shell.OverlayState())
}

func TestCloseTearsDownRegistry(t *testing.T) {
	t.Parallel()

	f := newFixture(t, eventloop.Inline{})
	require.NoError(t, f.shell.OpenBreakOverlay())
	f.shell.Close()
	require.Empty(t, f.shell.Windows().IDs())
}
