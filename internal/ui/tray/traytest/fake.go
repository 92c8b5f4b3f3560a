// Package traytest provides an in-memory tray host for tests.
package traytest

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"

	"pomodoro/internal/ui/tray"
)

// Icon records the title and tooltip set on it.
type Icon struct {
	mu      sync.Mutex
	id      string
	title   string
	tooltip string

	SetTitleErr error
}

func (icon *Icon) ID() string {
	return icon.id
}

func (icon *Icon) SetTitle(title string) error {
	icon.mu.Lock()
	defer icon.mu.Unlock()
	if icon.SetTitleErr != nil {
		return icon.SetTitleErr
	}
	icon.title = title
	return nil
}

func (icon *Icon) SetTooltip(tooltip string) error {
	icon.mu.Lock()
	defer icon.mu.Unlock()
	icon.tooltip = tooltip
	return nil
}

// Title returns the last title.
func (icon *Icon) Title() string {
	icon.mu.Lock()
	defer icon.mu.Unlock()
	return icon.title
}

// Tooltip returns the last tooltip.
func (icon *Icon) Tooltip() string {
	icon.mu.Lock()
	defer icon.mu.Unlock()
	return icon.tooltip
}

// Host keeps the spec it was asked to build so tests can fire its handlers.
type Host struct {
	mu   sync.Mutex
	spec *tray.Spec
	icon *Icon

	NewTrayErr error
}

// NewTray implements tray.Host.
func (host *Host) NewTray(spec tray.Spec) (tray.Icon, error) {
	host.mu.Lock()
	defer host.mu.Unlock()
	if host.NewTrayErr != nil {
		return nil, host.NewTrayErr
	}
	if host.spec != nil {
		return nil, errors.New("tray icon exists")
	}
	host.spec = &spec
	host.icon = &Icon{id: spec.ID}
	return host.icon, nil
}

// Spec returns the built spec, or nil.
func (host *Host) Spec() *tray.Spec {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.spec
}

// Icon returns the built icon, or nil.
func (host *Host) Icon() *Icon {
	host.mu.Lock()
	defer host.mu.Unlock()
	return host.icon
}

// SelectMenu simulates activating the menu item with id.
func (host *Host) SelectMenu(id string) {
	host.Spec().OnMenuEvent(tray.MenuEvent{ID: id})
}

// Click simulates a left click on the icon.
func (host *Host) Click() {
	host.Spec().OnIconEvent(tray.IconEvent{Kind: tray.IconClick})
}

// App is a tray.Application counting quit requests.
type App struct {
	mu    sync.Mutex
	quits int
}

func (app *App) Icon() fyne.Resource {
	return fyne.NewStaticResource("icon.svg", []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`))
}

func (app *App) Quit() {
	app.mu.Lock()
	defer app.mu.Unlock()
	app.quits++
}

// Quits returns how many times Quit was called.
func (app *App) Quits() int {
	app.mu.Lock()
	defer app.mu.Unlock()
	return app.quits
}
