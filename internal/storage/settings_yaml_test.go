package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pomodoro/internal/core/model"
)

func writeSettings(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// waitForReload drains reloads until match accepts one. A save may surface
// as several events, so an intermediate reload can see a partial file.
func waitForReload(t *testing.T, reloaded <-chan model.Settings, match func(model.Settings) bool) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case settings := <-reloaded:
			if match(settings) {
				return
			}
		case <-deadline:
			t.Fatal("watcher did not reload the expected settings")
		}
	}
}

func TestLoadSettingsMissingFileReturnsDefaults(t *testing.T) {
	t.Parallel()

	settings, err := LoadSettings(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	require.Equal(t, model.DefaultSettings(), settings)
}

func TestLoadSettingsAppliesFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, `
work_minutes: 50
short_break_minutes: 10
long_break_minutes: 30
long_break_interval: 3
auto_start: false
log_level: debug
`)

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	require.Equal(t, 50*time.Minute, settings.WorkDuration)
	require.Equal(t, 10*time.Minute, settings.ShortBreakDuration)
	require.Equal(t, 30*time.Minute, settings.LongBreakDuration)
	require.Equal(t, 3, settings.LongBreakInterval)
	require.False(t, settings.AutoStart)
	require.Equal(t, "debug", settings.LogLevel)
}

func TestLoadSettingsIgnoresInvalidValues(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "work_minutes: -5\nlong_break_interval: 0\n")

	settings, err := LoadSettings(path)
	require.NoError(t, err)
	defaults := model.DefaultSettings()
	require.Equal(t, defaults.WorkDuration, settings.WorkDuration)
	require.Equal(t, defaults.LongBreakInterval, settings.LongBreakInterval)
	require.Equal(t, defaults.AutoStart, settings.AutoStart)
}

func TestLoadSettingsRejectsMalformedYaml(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "work_minutes: [oops\n")

	settings, err := LoadSettings(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse settings yaml")
	require.Equal(t, model.DefaultSettings(), settings)
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "work_minutes: 25\n")

	watcher, err := newWatcher(path, zap.NewNop().Sugar(), 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })

	reloaded := make(chan model.Settings, 4)
	watcher.OnReload(func(settings model.Settings) { reloaded <- settings })

	writeSettings(t, path, "work_minutes: 45\n")

	select {
	case settings := <-reloaded:
		require.Equal(t, 45*time.Minute, settings.WorkDuration)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload settings")
	}
	require.Equal(t, 45*time.Minute, watcher.Settings().WorkDuration)
}

func TestWatcherKeepsSettingsOnBadReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "work_minutes: 30\n")

	watcher, err := NewWatcher(path, zap.NewNop().Sugar())
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })

	writeSettings(t, path, "work_minutes: [\n")
	watcher.reload()
	require.Equal(t, 30*time.Minute, watcher.Settings().WorkDuration)
}

func TestWatcherCreatesMissingDir(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Pomodoro", "settings.yaml")

	watcher, err := newWatcher(path, zap.NewNop().Sugar(), 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })
	require.DirExists(t, filepath.Dir(path))
	require.Equal(t, model.DefaultSettings(), watcher.Settings())

	reloaded := make(chan model.Settings, 4)
	watcher.OnReload(func(settings model.Settings) { reloaded <- settings })

	writeSettings(t, path, "long_break_interval: 2\n")

	waitForReload(t, reloaded, func(settings model.Settings) bool {
		return settings.LongBreakInterval == 2
	})
}

func TestWatcherRecoversFromMalformedStartupFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")
	writeSettings(t, path, "work_minutes: [oops\n")

	watcher, err := newWatcher(path, zap.NewNop().Sugar(), 20*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = watcher.Close() })
	require.Equal(t, model.DefaultSettings(), watcher.Settings())

	reloaded := make(chan model.Settings, 4)
	watcher.OnReload(func(settings model.Settings) { reloaded <- settings })

	writeSettings(t, path, "work_minutes: 40\n")

	waitForReload(t, reloaded, func(settings model.Settings) bool {
		return settings.WorkDuration == 40*time.Minute
	})
	require.Equal(t, 40*time.Minute, watcher.Settings().WorkDuration)
}
