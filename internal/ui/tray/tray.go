package tray

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/window"
)

// ErrAlreadyInitialized is returned when the tray icon is built twice.
var ErrAlreadyInitialized = errors.New("tray already initialized")

// MenuItem is a single entry of the tray menu.
type MenuItem struct {
	ID      string
	Label   string
	Enabled bool
}

// Spec describes the tray icon the host must build.
type Spec struct {
	ID                  string
	Menu                []MenuItem
	Icon                fyne.Resource
	ShowMenuOnLeftClick bool
	OnMenuEvent         func(MenuEvent)
	OnIconEvent         func(IconEvent)
}

// Icon is a live tray icon.
type Icon interface {
	ID() string
	SetTitle(title string) error
	SetTooltip(tooltip string) error
}

// Host builds tray icons on the platform notification area.
type Host interface {
	NewTray(spec Spec) (Icon, error)
}

// Application is the running app as seen by the tray.
type Application interface {
	Icon() fyne.Resource
	Quit()
}

// Controller owns the tray icon and routes its events.
type Controller struct {
	mu      sync.Mutex
	host    Host
	windows *window.Registry
	logger  *zap.SugaredLogger
	app     Application
	icon    Icon
}

// New creates a controller. The icon is built by Initialize.
func New(host Host, windows *window.Registry, logger *zap.SugaredLogger) *Controller {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Controller{
		host:    host,
		windows: windows,
		logger:  logger,
	}
}

// Initialize builds the tray icon with the show/quit menu.
func (controller *Controller) Initialize(app Application) (Icon, error) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.icon != nil {
		return nil, ErrAlreadyInitialized
	}

	icon, err := controller.host.NewTray(Spec{
		ID: model.TrayID,
		Menu: []MenuItem{
			{ID: MenuShowID, Label: "Show App", Enabled: true},
			{ID: MenuQuitID, Label: "Quit", Enabled: true},
		},
		Icon:                app.Icon(),
		ShowMenuOnLeftClick: false,
		OnMenuEvent:         controller.HandleMenuEvent,
		OnIconEvent:         controller.HandleIconEvent,
	})
	if err != nil {
		return nil, window.WrapToolkit("build tray icon", err)
	}

	controller.app = app
	controller.icon = icon
	controller.logger.Infow("tray initialized", "id", icon.ID())
	return icon, nil
}

// UpdateTitle sets the tray title and its tooltip.
// Before Initialize it does nothing.
func (controller *Controller) UpdateTitle(title string) error {
	icon, ok := controller.Icon()
	if !ok {
		controller.logger.Debugw("tray title update before tray init", "title", title)
		return nil
	}
	if err := icon.SetTitle(title); err != nil {
		return window.WrapToolkit("set tray title", err)
	}
	if err := icon.SetTooltip(model.TooltipPrefix + title); err != nil {
		return window.WrapToolkit("set tray tooltip", err)
	}
	return nil
}

// Icon returns the tray icon once initialized.
func (controller *Controller) Icon() (Icon, bool) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.icon, controller.icon != nil
}

// HandleMenuEvent dispatches a menu activation. Unknown ids are ignored.
func (controller *Controller) HandleMenuEvent(event MenuEvent) {
	action := ParseAction(event.ID)
	controller.logger.Debugw("tray menu event", "id", event.ID, "action", action)
	switch action {
	case ActionQuit:
		controller.quit()
	case ActionShow:
		controller.showMainWindow()
	case ActionUnknown:
	}
}

// HandleIconEvent dispatches a pointer event on the icon.
func (controller *Controller) HandleIconEvent(event IconEvent) {
	switch event.Kind {
	case IconClick:
		controller.showMainWindow()
	}
}

func (controller *Controller) quit() {
	controller.mu.Lock()
	app := controller.app
	controller.mu.Unlock()
	if app == nil {
		return
	}
	controller.logger.Info("quit requested from tray")
	app.Quit()
}

func (controller *Controller) showMainWindow() {
	main, ok := controller.windows.Lookup(model.MainWindowID)
	if !ok {
		return
	}
	if err := main.Show(); err != nil {
		controller.logger.Warnw("show main window", "error", err)
	}
	if err := main.RequestFocus(); err != nil {
		controller.logger.Warnw("focus main window", "error", err)
	}
}
