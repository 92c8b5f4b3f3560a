package breakview

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/timekeeper"
)

func TestUpdateShowsBreakCountdown(t *testing.T) {
	test.NewTempApp(t)

	view := New(nil)
	view.Update(timekeeper.Event{
		Type:      timekeeper.EventProgress,
		State:     timekeeper.StateLongBreak,
		Remaining: 14*time.Minute + 59*time.Second,
	})
	require.Equal(t, "14:59", view.Timer())
}

func TestUpdateIgnoresWorkEvents(t *testing.T) {
	test.NewTempApp(t)

	view := New(nil)
	view.Update(timekeeper.Event{
		Type:      timekeeper.EventProgress,
		State:     timekeeper.StateWork,
		Remaining: 20 * time.Minute,
	})
	require.Equal(t, "--:--", view.Timer())
}

func TestSkipButtonCallsHandler(t *testing.T) {
	test.NewTempApp(t)

	skipped := 0
	view := New(func() { skipped++ })
	test.Tap(view.skip)
	require.Equal(t, 1, skipped)
	require.NotNil(t, view.Content())
}
