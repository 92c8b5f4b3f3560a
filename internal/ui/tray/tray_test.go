package tray_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window"
	"pomodoro/internal/core/window/windowtest"
	"pomodoro/internal/ui/tray"
	"pomodoro/internal/ui/tray/traytest"
)

func newController(t *testing.T) (*tray.Controller, *traytest.Host, *window.Registry) {
	t.Helper()
	host := &traytest.Host{}
	registry := window.NewRegistry()
	return tray.New(host, registry, zaptest.NewLogger(t).Sugar()), host, registry
}

func TestInitializeBuildsMenu(t *testing.T) {
	t.Parallel()

	controller, host, _ := newController(t)
	icon, err := controller.Initialize(&traytest.App{})
	require.NoError(t, err)
	require.Equal(t, model.TrayID, icon.ID())

	spec := host.Spec()
	require.NotNil(t, spec)
	require.Equal(t, model.TrayID, spec.ID)
	require.Equal(t, []tray.MenuItem{
		{ID: "show", Label: "Show App", Enabled: true},
		{ID: "quit", Label: "Quit", Enabled: true},
	}, spec.Menu)
	require.False(t, spec.ShowMenuOnLeftClick)
	require.NotNil(t, spec.Icon)
	require.NotNil(t, spec.OnMenuEvent)
	require.NotNil(t, spec.OnIconEvent)

	_, err = controller.Initialize(&traytest.App{})
	require.ErrorIs(t, err, tray.ErrAlreadyInitialized)
}

func TestInitializeFailureIsToolkitError(t *testing.T) {
	t.Parallel()

	controller, host, _ := newController(t)
	host.NewTrayErr = errors.New("no notification area")

	_, err := controller.Initialize(&traytest.App{})
	var toolkitErr *window.ToolkitError
	require.ErrorAs(t, err, &toolkitErr)

	_, ok := controller.Icon()
	require.False(t, ok)
}

func TestUpdateTitleFormatsTooltip(t *testing.T) {
	t.Parallel()

	controller, host, _ := newController(t)
	_, err := controller.Initialize(&traytest.App{})
	require.NoError(t, err)

	require.NoError(t, controller.UpdateTitle("25:00"))
	require.Equal(t, "25:00", host.Icon().Title())
	require.Equal(t, "Pomodoro: 25:00", host.Icon().Tooltip())

	require.NoError(t, controller.UpdateTitle(""))
	require.Equal(t, "", host.Icon().Title())
	require.Equal(t, "Pomodoro: ", host.Icon().Tooltip())
}

func TestUpdateTitleBeforeInitialize(t *testing.T) {
	t.Parallel()

	controller, host, _ := newController(t)
	require.NotPanics(t, func() {
		require.NoError(t, controller.UpdateTitle("24:59"))
	})
	require.Nil(t, host.Icon())
}

func TestUpdateTitleSurfacesHostFailure(t *testing.T) {
	t.Parallel()

	controller, host, _ := newController(t)
	_, err := controller.Initialize(&traytest.App{})
	require.NoError(t, err)
	host.Icon().SetTitleErr = errors.New("dbus gone")

	err = controller.UpdateTitle("10:00")
	var toolkitErr *window.ToolkitError
	require.ErrorAs(t, err, &toolkitErr)
	require.Equal(t, "set tray title", toolkitErr.Op)
}

func TestQuitMenuQuitsApp(t *testing.T) {
	t.Parallel()

	controller, host, _ := newController(t)
	app := &traytest.App{}
	_, err := controller.Initialize(app)
	require.NoError(t, err)

	host.SelectMenu("quit")
	require.Equal(t, 1, app.Quits())
}

func TestShowRoutesToMainWindow(t *testing.T) {
	t.Parallel()

	for name, trigger := range map[string]func(*traytest.Host){
		"menu":  func(host *traytest.Host) { host.SelectMenu("show") },
		"click": func(host *traytest.Host) { host.Click() },
	} {
		trigger := trigger
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			controller, host, registry := newController(t)
			app := &traytest.App{}
			_, err := controller.Initialize(app)
			require.NoError(t, err)

			main := windowtest.NewHandle(model.WindowOptions{ID: model.MainWindowID})
			require.NoError(t, registry.Register(main))

			trigger(host)
			require.True(t, main.Visible())
			require.True(t, main.Focused())
			require.Zero(t, app.Quits())
		})
	}
}

func TestShowWithoutMainWindowIsNoop(t *testing.T) {
	t.Parallel()

	controller, host, registry := newController(t)
	app := &traytest.App{}
	_, err := controller.Initialize(app)
	require.NoError(t, err)

	require.NotPanics(t, func() {
		host.SelectMenu("show")
		host.Click()
	})
	require.Empty(t, registry.IDs())
	require.Zero(t, app.Quits())
}

func TestUnknownMenuIDIgnored(t *testing.T) {
	t.Parallel()

	controller, host, registry := newController(t)
	app := &traytest.App{}
	_, err := controller.Initialize(app)
	require.NoError(t, err)
	main := windowtest.NewHandle(model.WindowOptions{ID: model.MainWindowID})
	require.NoError(t, registry.Register(main))

	host.SelectMenu("preferences")
	require.False(t, main.Visible())
	require.Zero(t, app.Quits())
}

func TestParseAction(t *testing.T) {
	t.Parallel()

	require.Equal(t, tray.ActionShow, tray.ParseAction("show"))
	require.Equal(t, tray.ActionQuit, tray.ParseAction("quit"))
	require.Equal(t, tray.ActionUnknown, tray.ParseAction("Quit"))
	require.Equal(t, "quit", tray.ActionQuit.String())
}

func TestHandleEventsBeforeInitialize(t *testing.T) {
	t.Parallel()

	controller, _, registry := newController(t)
	main := windowtest.NewHandle(model.WindowOptions{ID: model.MainWindowID})
	require.NoError(t, registry.Register(main))

	require.NotPanics(t, func() {
		controller.HandleMenuEvent(tray.MenuEvent{ID: tray.MenuQuitID})
	})
	controller.HandleIconEvent(tray.IconEvent{Kind: tray.IconClick})
	require.True(t, main.Visible())
	require.True(t, main.Focused())
}
