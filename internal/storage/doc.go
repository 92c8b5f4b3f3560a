// Package storage loads user settings from YAML and watches them for changes.
package storage
