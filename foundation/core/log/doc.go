// Package log provides structured, leveled logging for finkit.
//
// Package: log
// Title: finkit Structured Logging
// Description: Leveled logger with persistent context fields, correlation
//              ids and JSON, text, console and logfmt formatters. The
//              financial engine uses it to trace solver iterations; the
//              command line tool uses it for per-invocation diagnostics.
//              A nil *Logger is valid and discards every entry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-18 v0.2.0: Nil-safe logger, deterministic field order, removed
//                      async writer and request/user context
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatLogfmt,
//		Output: os.Stderr,
//		Name:   "finkit",
//	})
//
//	logger.Debug("secant step", log.Fields{"iteration": 3, "rate": 0.0123})
//
//	timer := logger.StartTimer("irr")
//	defer timer.Stop()
package log
