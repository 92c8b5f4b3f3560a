// Package session turns timekeeper events into shell calls: the tray shows
// the countdown and long breaks bring up the break overlay.
package session

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"pomodoro/internal/core/timekeeper"
)

// Tray titles shown around phase changes.
const (
	BreakTitle = "Break Time"
	FocusTitle = "Focus Time"
)

// Desktop notifications sent when a break starts and when it ends.
const (
	NotificationTitle = "Pomodoro"
	BreakMessage      = "Time to take a break."
	WorkMessage       = "Back to work."
)

// Shell is the control surface of the desktop shell.
type Shell interface {
	OpenBreakOverlay() error
	CloseBreakOverlay() error
	SetTrayText(text string) error
}

// Notifier shows a desktop notification.
type Notifier interface {
	Notify(title, content string)
}

// View receives every timekeeper event, e.g. to refresh labels.
type View interface {
	Update(event timekeeper.Event)
}

// Driver forwards timekeeper events to the shell and views.
type Driver struct {
	shell    Shell
	notifier Notifier
	views    []View
	logger   *zap.SugaredLogger
}

// NewDriver creates a driver.
func NewDriver(shell Shell, logger *zap.SugaredLogger, views ...View) *Driver {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Driver{
		shell:  shell,
		views:  views,
		logger: logger,
	}
}

// SetNotifier enables phase change notifications. Call it before Run.
func (driver *Driver) SetNotifier(notifier Notifier) {
	driver.notifier = notifier
}

// Run handles events until the channel closes or ctx is cancelled.
func (driver *Driver) Run(ctx context.Context, events <-chan timekeeper.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			driver.Handle(event)
		}
	}
}

// Handle applies a single event.
func (driver *Driver) Handle(event timekeeper.Event) {
	switch event.Type {
	case timekeeper.EventProgress:
		driver.setTitle(FormatRemaining(event.Remaining))
	case timekeeper.EventStateChange:
		driver.handleStateChange(event)
	}
	for _, view := range driver.views {
		view.Update(event)
	}
}

func (driver *Driver) handleStateChange(event timekeeper.Event) {
	driver.logger.Infow("phase changed", "from", event.Previous, "to", event.State, "rounds", event.Rounds)
	switch event.State {
	case timekeeper.StateLongBreak:
		driver.setTitle(BreakTitle)
		driver.notifyBreak(event)
		if err := driver.shell.OpenBreakOverlay(); err != nil {
			driver.logger.Errorw("open break overlay", "error", err)
		}
	case timekeeper.StateShortBreak:
		driver.setTitle(BreakTitle)
		driver.notifyBreak(event)
	case timekeeper.StateWork:
		if event.Previous.IsBreak() {
			driver.setTitle(FocusTitle)
			driver.notify(WorkMessage)
		} else {
			driver.setTitle(FormatRemaining(event.Remaining))
		}
		if err := driver.shell.CloseBreakOverlay(); err != nil {
			driver.logger.Errorw("close break overlay", "error", err)
		}
	case timekeeper.StatePaused:
		driver.setTitle(FormatRemaining(event.Remaining) + " (paused)")
	}
}

// notifyBreak skips resumes, which re-enter a break from the pause.
func (driver *Driver) notifyBreak(event timekeeper.Event) {
	if event.Previous == timekeeper.StateWork {
		driver.notify(BreakMessage)
	}
}

func (driver *Driver) notify(message string) {
	if driver.notifier != nil {
		driver.notifier.Notify(NotificationTitle, message)
	}
}

func (driver *Driver) setTitle(title string) {
	if err := driver.shell.SetTrayText(title); err != nil {
		driver.logger.Warnw("update tray title", "title", title, "error", err)
	}
}

// FormatRemaining renders a countdown as m:ss.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
