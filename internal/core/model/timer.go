package model

import "time"

// TimerConfig defines the pomodoro cycle.
type TimerConfig struct {
	Work              time.Duration
	ShortBreak        time.Duration
	LongBreak         time.Duration
	LongBreakInterval int
}

// Settings holds user configuration loaded from disk.
type Settings struct {
	WorkDuration       time.Duration
	ShortBreakDuration time.Duration
	LongBreakDuration  time.Duration
	LongBreakInterval  int
	AutoStart          bool
	LogLevel           string
}

// DefaultSettings returns the classic 25/5/15 pomodoro setup.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:       25 * time.Minute,
		ShortBreakDuration: 5 * time.Minute,
		LongBreakDuration:  15 * time.Minute,
		LongBreakInterval:  4,
		AutoStart:          true,
		LogLevel:           "info",
	}
}

// TimerConfig converts settings to the timekeeper configuration.
func (settings Settings) TimerConfig() TimerConfig {
	return TimerConfig{
		Work:              settings.WorkDuration,
		ShortBreak:        settings.ShortBreakDuration,
		LongBreak:         settings.LongBreakDuration,
		LongBreakInterval: settings.LongBreakInterval,
	}
}
