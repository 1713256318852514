// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors so that callers can
//              separate bad input from failures of the calculation itself.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for numeric and solver codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input
	SeverityLow Severity = iota

	// SeverityMedium indicates a calculation that cannot produce a result
	// for otherwise valid input, such as a solver that does not converge
	SeverityMedium

	// SeverityHigh indicates a broken configuration or environment
	SeverityHigh

	// SeverityCritical indicates an internal inconsistency
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeNonConvergence, CodeDegenerateIteration, CodeOverflow, CodeDivisionByZero:
		return SeverityMedium

	case CodeInvalidInput, CodeMalformedInput, CodeValidationFailed, CodeRequiredField,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
