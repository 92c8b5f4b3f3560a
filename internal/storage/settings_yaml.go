package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"pomodoro/internal/core/model"
	"pomodoro/internal/platform"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes       int    `yaml:"work_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	LongBreakInterval int    `yaml:"long_break_interval"`
	AutoStart         *bool  `yaml:"auto_start"`
	LogLevel          string `yaml:"log_level"`
}

// DefaultPath returns the settings file location for appName.
func DefaultPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(configPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkDuration = time.Duration(fileData.WorkMinutes) * time.Minute
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakDuration = time.Duration(fileData.ShortBreakMinutes) * time.Minute
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakDuration = time.Duration(fileData.LongBreakMinutes) * time.Minute
	}
	if fileData.LongBreakInterval > 0 {
		settings.LongBreakInterval = fileData.LongBreakInterval
	}
	if fileData.AutoStart != nil {
		settings.AutoStart = *fileData.AutoStart
	}
	if level := strings.TrimSpace(fileData.LogLevel); level != "" {
		settings.LogLevel = level
	}
}
