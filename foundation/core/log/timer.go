// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it when
//              stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-18 v0.2.0: Entries carry the duration directly

package log

import "time"

// Timer measures the duration of an operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer that logs through logger at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    Fields{"operation": operation},
		level:     LevelDebug,
	}
}

// WithLevel sets the level used when the timer stops successfully
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs the completion of the operation and returns the elapsed time.
// Stopping twice returns zero and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError logs the failure of the operation at error level
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(LevelError, t.operation+" failed", err)
}

// Checkpoint logs an intermediate step at debug level
func (t *Timer) Checkpoint(name string, fields ...Fields) {
	if t.stopped || t.logger == nil {
		return
	}
	entryFields := t.fields.Merge(Fields{"checkpoint": name})
	for _, f := range fields {
		entryFields = entryFields.Merge(f)
	}
	entryFields["elapsed_ms"] = float64(t.Elapsed().Nanoseconds()) / 1e6
	t.logger.Debug(t.operation+" checkpoint: "+name, entryFields)
}

// IsRunning reports whether the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	l := t.logger
	if l == nil || !level.ShouldLog(l.level) {
		return elapsed
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.CorrelationID = l.correlationID
	entry.Error = err
	entry.Duration = elapsed
	entry.Fields = l.contextFields.Merge(t.fields)
	if err != nil {
		entry.Fields["success"] = false
	}

	if formatted, formatErr := l.formatter.Format(entry); formatErr == nil {
		l.writeMu.Lock()
		_, _ = l.output.Write(formatted)
		l.writeMu.Unlock()
	}
	return elapsed
}
