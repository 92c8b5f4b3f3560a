package fyneui

import "fyne.io/fyne/v2"

// Notifier sends desktop notifications through the Fyne app.
type Notifier struct {
	app fyne.App
}

// NewNotifier creates a notifier for app.
func NewNotifier(app fyne.App) *Notifier {
	return &Notifier{app: app}
}

// Notify implements session.Notifier. Safe to call from any goroutine.
func (notifier *Notifier) Notify(title, content string) {
	notification := fyne.NewNotification(title, content)
	fyne.Do(func() {
		notifier.app.SendNotification(notification)
	})
}
