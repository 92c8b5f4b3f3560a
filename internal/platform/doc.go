// Package platform holds OS-level helpers: the single-instance guard and
// the configuration directory lookup.
package platform
