// Package app assembles the desktop application: settings, the shell with
// its fyne hosts, the timekeeper and the session driver.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"pomodoro/internal/core/eventloop"
	"pomodoro/internal/core/model"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logger"
	"pomodoro/internal/platform"
	"pomodoro/internal/session"
	"pomodoro/internal/shell"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/breakview"
	"pomodoro/internal/ui/dashboard"
	"pomodoro/internal/ui/fyneui"
	"pomodoro/internal/version"
	"pomodoro/resources"
)

const (
	// Name is the application name, used for the config dir and the instance lock.
	Name = "Pomodoro"
	// ID is the fyne application id.
	ID = "com.pomodoro.app"

	eventBuffer = 16
)

// Options configures Run.
type Options struct {
	// ConfigPath overrides the settings file location.
	ConfigPath string
	// LogLevel overrides the level from the settings file.
	LogLevel string
}

// Run starts the application and blocks until it quits.
func Run(ctx context.Context, options Options) error {
	log := logger.Named("app")

	guard, err := platform.AcquireSingleInstance(Name)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Infow("another instance is running, activating it")
			if err := platform.ActivateRunning(Name); err != nil {
				log.Warnw("activate running instance", "error", err)
			}
			return nil
		}
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	configPath := options.ConfigPath
	if configPath == "" {
		configPath, err = storage.DefaultPath(Name)
		if err != nil {
			return err
		}
	}
	settings, err := storage.LoadSettings(configPath)
	if err != nil {
		log.Warnw("settings not loaded, using defaults", "path", configPath, "error", err)
	}
	applyLogLevel(settings.LogLevel, options.LogLevel)

	fyneApp := fyneapp.NewWithID(ID)
	fyneApp.SetIcon(resources.AppIcon())

	runtime, err := newRuntime(fyneApp, settings, logger.Logger())
	if err != nil {
		return err
	}
	defer runtime.close()

	go guard.Serve(runtime.showMainWindow)

	if watcher, err := storage.NewWatcher(configPath, logger.Named("settings")); err != nil {
		log.Warnw("settings hot reload disabled", "path", configPath, "error", err)
	} else {
		defer func() {
			_ = watcher.Close()
		}()
		watcher.OnReload(func(updated model.Settings) {
			runtime.keeper.UpdateConfig(updated.TimerConfig())
			applyLogLevel(updated.LogLevel, options.LogLevel)
		})
	}

	go func() {
		<-ctx.Done()
		fyne.Do(fyneApp.Quit)
	}()

	if settings.AutoStart {
		runtime.start()
	}
	log.Infow("pomodoro started", startupFields(configPath, settings)...)
	fyneApp.Run()
	log.Infow("pomodoro stopped")
	return nil
}

type runtime struct {
	app        fyne.App
	shell      *shell.Shell
	mainWindow fyne.Window
	keeper     *timekeeper.TimeKeeper
	cancel     context.CancelFunc
	started    atomic.Bool
}

// newRuntime builds every component. A tray that cannot be created is fatal.
func newRuntime(fyneApp fyne.App, settings model.Settings, log *zap.SugaredLogger) (*runtime, error) {
	trayHost, err := fyneui.NewTrayHost(fyneApp)
	if err != nil {
		return nil, fmt.Errorf("initialize tray: %w", err)
	}

	keeper := timekeeper.New(settings.TimerConfig(), timekeeper.Config{TickInterval: time.Second})
	rt := &runtime{app: fyneApp, keeper: keeper}

	breakView := breakview.New(keeper.SkipBreak)
	board := dashboard.New(dashboard.Callbacks{
		OnTogglePause: rt.togglePause,
		OnSkipBreak:   keeper.SkipBreak,
		OnBreakNow: func() {
			rt.start()
			keeper.ForceBreak(timekeeper.StateLongBreak)
		},
		OnReset: keeper.Reset,
	})

	rt.shell = shell.New(shell.Config{
		Dispatcher: eventloop.Func(fyne.DoAndWait),
		WindowBuilder: fyneui.NewWindowHost(fyneApp, map[string]fyneui.Route{
			model.BreakRoute: breakView.Content,
		}),
		TrayHost: trayHost,
		Logger:   log.Named("shell"),
	})

	rt.mainWindow = fyneApp.NewWindow(Name)
	rt.mainWindow.SetContent(board.Content())
	rt.mainWindow.Resize(fyne.NewSize(480, 320))
	rt.mainWindow.SetCloseIntercept(rt.mainWindow.Hide)
	if err := rt.shell.Windows().Register(fyneui.Wrap(model.MainWindowID, rt.mainWindow)); err != nil {
		return nil, err
	}

	if err := rt.shell.InitializeTray(fyneApp); err != nil {
		return nil, fmt.Errorf("initialize tray: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	rt.cancel = cancel
	driver := session.NewDriver(rt.shell, log.Named("session"), breakView, board)
	driver.SetNotifier(fyneui.NewNotifier(fyneApp))
	go driver.Run(ctx, keeper.Subscribe(eventBuffer))

	rt.mainWindow.Show()
	return rt, nil
}

func (rt *runtime) start() {
	if rt.started.CompareAndSwap(false, true) {
		rt.keeper.Start()
	}
}

func (rt *runtime) togglePause() {
	if rt.started.CompareAndSwap(false, true) {
		rt.keeper.Start()
		return
	}
	rt.keeper.TogglePause()
}

func (rt *runtime) showMainWindow() {
	fyne.Do(func() {
		rt.mainWindow.Show()
		rt.mainWindow.RequestFocus()
	})
}

func (rt *runtime) close() {
	if rt.cancel != nil {
		rt.cancel()
	}
	rt.keeper.Stop()
	rt.shell.Close()
}

func startupFields(configPath string, settings model.Settings) []any {
	return []any{
		"version", version.String(),
		"config", configPath,
		"work", settings.WorkDuration,
		"long_break_interval", settings.LongBreakInterval,
	}
}

func applyLogLevel(fromSettings, override string) {
	value := fromSettings
	if override != "" {
		value = override
	}
	if level, ok := logger.ParseLogLevel(value); ok {
		logger.SetLevel(level)
	}
}
