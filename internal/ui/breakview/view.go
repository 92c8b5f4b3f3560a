// Package breakview renders the content served on the break overlay route.
package breakview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/session"
)

var (
	backgroundColor = color.NRGBA{R: 44, G: 62, B: 80, A: 255}
	textColor       = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// View is the break countdown with a skip button.
type View struct {
	background *canvas.Rectangle
	title      *canvas.Text
	timer      *canvas.Text
	subtitle   *canvas.Text
	skip       *widget.Button
	root       fyne.CanvasObject
}

// New creates the view. onSkip runs on the UI thread when Skip is tapped.
func New(onSkip func()) *View {
	view := &View{
		background: canvas.NewRectangle(backgroundColor),
		title:      newText("Take a Deep Breath", 36, true),
		timer:      newText("--:--", 96, true),
		subtitle:   newText("Your forest is growing...", 24, false),
		skip:       widget.NewButton("Skip Break", onSkip),
	}
	view.skip.Importance = widget.LowImportance

	column := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(view.title),
		container.NewCenter(view.timer),
		container.NewCenter(view.subtitle),
		container.NewCenter(view.skip),
		layout.NewSpacer(),
	)
	view.root = container.NewStack(view.background, column)
	return view
}

// Content returns the root object for the overlay window.
func (view *View) Content() fyne.CanvasObject {
	return view.root
}

// Update implements session.View.
func (view *View) Update(event timekeeper.Event) {
	if !event.State.IsBreak() {
		return
	}
	text := session.FormatRemaining(event.Remaining)
	fyne.Do(func() {
		view.setTimer(text)
	})
}

// Timer returns the countdown text.
func (view *View) Timer() string {
	return view.timer.Text
}

func (view *View) setTimer(text string) {
	view.timer.Text = text
	view.timer.Refresh()
}

func newText(text string, size float32, bold bool) *canvas.Text {
	label := canvas.NewText(text, textColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = size
	label.TextStyle = fyne.TextStyle{Bold: bold}
	return label
}
