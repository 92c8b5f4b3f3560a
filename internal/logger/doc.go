// Package logger wraps zap with a global sugared logger that writes
// console-formatted records and whose level can be changed at runtime.
//
// Components receive a named child logger (Named) instead of reaching for
// the global one, so tests can inject zaptest loggers.
package logger
