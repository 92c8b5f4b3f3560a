package fyneui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/systray"

	"pomodoro/internal/core/model"
	"pomodoro/internal/ui/tray"
)

var (
	// ErrTrayUnsupported is returned when the driver has no system tray.
	ErrTrayUnsupported = errors.New("system tray unsupported on this platform")
	errTrayExists      = errors.New("tray icon already built")
)

// TrayHost builds the tray through the desktop driver. Title, tooltip and
// left click are not exposed by Fyne and go straight to fyne.io/systray,
// which backs the Fyne tray.
type TrayHost struct {
	app   desktop.App
	built bool
}

// NewTrayHost returns a host for app, or ErrTrayUnsupported.
func NewTrayHost(app fyne.App) (*TrayHost, error) {
	desktopApp, ok := app.(desktop.App)
	if !ok {
		return nil, ErrTrayUnsupported
	}
	return &TrayHost{app: desktopApp}, nil
}

// NewTray implements tray.Host.
func (host *TrayHost) NewTray(spec tray.Spec) (tray.Icon, error) {
	if host.built {
		return nil, errTrayExists
	}

	host.app.SetSystemTrayMenu(buildMenu(spec))
	if spec.Icon != nil {
		host.app.SetSystemTrayIcon(spec.Icon)
	}
	if tapped := tappedHandler(spec, fyne.Do); tapped != nil {
		systray.SetOnTapped(tapped)
	}

	host.built = true
	return trayIcon{id: spec.ID}, nil
}

// tappedHandler turns a left click into an IconClick delivered through
// dispatch. It is nil when the menu owns left click or nobody listens.
func tappedHandler(spec tray.Spec, dispatch func(func())) func() {
	if spec.ShowMenuOnLeftClick || spec.OnIconEvent == nil {
		return nil
	}
	onIconEvent := spec.OnIconEvent
	return func() {
		dispatch(func() {
			onIconEvent(tray.IconEvent{Kind: tray.IconClick})
		})
	}
}

func buildMenu(spec tray.Spec) *fyne.Menu {
	items := make([]*fyne.MenuItem, 0, len(spec.Menu))
	for _, item := range spec.Menu {
		id := item.ID
		menuItem := fyne.NewMenuItem(item.Label, func() {
			if spec.OnMenuEvent != nil {
				spec.OnMenuEvent(tray.MenuEvent{ID: id})
			}
		})
		menuItem.Disabled = !item.Enabled
		// Marking our quit entry stops Fyne from appending its own.
		menuItem.IsQuit = tray.ParseAction(id) == tray.ActionQuit
		items = append(items, menuItem)
	}
	return fyne.NewMenu(model.TrayID, items...)
}

type trayIcon struct {
	id string
}

func (icon trayIcon) ID() string {
	return icon.id
}

func (icon trayIcon) SetTitle(title string) error {
	systray.SetTitle(title)
	return nil
}

func (icon trayIcon) SetTooltip(tooltip string) error {
	systray.SetTooltip(tooltip)
	return nil
}
