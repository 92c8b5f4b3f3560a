// Package version holds build metadata injected through -ldflags.
package version
