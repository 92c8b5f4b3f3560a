// Package dashboard is the content of the main application window.
package dashboard

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/session"
)

// Callbacks defines dashboard action handlers.
type Callbacks struct {
	OnTogglePause func()
	OnSkipBreak   func()
	OnBreakNow    func()
	OnReset       func()
}

// Dashboard shows the current phase and the countdown.
type Dashboard struct {
	phase     *widget.Label
	timer     *canvas.Text
	rounds    *widget.Label
	pauseItem *widget.Button
	skipItem  *widget.Button
	root      fyne.CanvasObject
}

// New creates the dashboard content.
func New(callbacks Callbacks) *Dashboard {
	dashboard := &Dashboard{
		phase:  widget.NewLabelWithStyle(phaseLabel(timekeeper.StateWork), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		timer:  canvas.NewText("--:--", theme.Color(theme.ColorNameForeground)),
		rounds: widget.NewLabelWithStyle(roundsLabel(0), fyne.TextAlignCenter, fyne.TextStyle{}),
	}
	dashboard.timer.TextSize = 64
	dashboard.timer.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	dashboard.timer.Alignment = fyne.TextAlignCenter

	dashboard.pauseItem = widget.NewButton("Pause", call(callbacks.OnTogglePause))
	dashboard.skipItem = widget.NewButton("Skip break", call(callbacks.OnSkipBreak))
	dashboard.skipItem.Disable()
	breakNow := widget.NewButton("Take a break now", call(callbacks.OnBreakNow))
	reset := widget.NewButton("Reset", call(callbacks.OnReset))

	buttons := container.NewHBox(layout.NewSpacer(), dashboard.pauseItem, dashboard.skipItem, breakNow, reset, layout.NewSpacer())
	dashboard.root = container.NewVBox(
		dashboard.phase,
		container.NewCenter(dashboard.timer),
		dashboard.rounds,
		buttons,
	)
	return dashboard
}

// Content returns the root object for the main window.
func (dashboard *Dashboard) Content() fyne.CanvasObject {
	return dashboard.root
}

// Update implements session.View.
func (dashboard *Dashboard) Update(event timekeeper.Event) {
	fyne.Do(func() {
		dashboard.apply(event)
	})
}

func (dashboard *Dashboard) apply(event timekeeper.Event) {
	dashboard.timer.Text = session.FormatRemaining(event.Remaining)
	dashboard.timer.Refresh()
	if event.Type != timekeeper.EventStateChange {
		return
	}

	dashboard.phase.SetText(phaseLabel(event.State))
	dashboard.rounds.SetText(roundsLabel(event.Rounds))
	if event.State == timekeeper.StatePaused {
		dashboard.pauseItem.SetText("Resume")
	} else {
		dashboard.pauseItem.SetText("Pause")
	}
	active := event.State
	if active == timekeeper.StatePaused {
		active = event.Previous
	}
	if active.IsBreak() {
		dashboard.skipItem.Enable()
	} else {
		dashboard.skipItem.Disable()
	}
}

func phaseLabel(state timekeeper.State) string {
	switch state {
	case timekeeper.StateShortBreak:
		return "Short break"
	case timekeeper.StateLongBreak:
		return "Long break"
	case timekeeper.StatePaused:
		return "Paused"
	default:
		return "Focus"
	}
}

func roundsLabel(rounds int) string {
	return fmt.Sprintf("Completed pomodoros: %d", rounds)
}

func call(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
