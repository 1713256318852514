// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              numeric layer, the financial engine and the configuration
//              loader.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced service codes with numeric and solver codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Arithmetic
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeOverflow       Code = "OVERFLOW"

	// Iterative solvers
	CodeNonConvergence      Code = "NON_CONVERGENCE"
	CodeDegenerateIteration Code = "DEGENERATE_ITERATION"

	// Input shape
	CodeMalformedInput Code = "MALFORMED_INPUT"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeDivisionByZero, CodeOverflow,
		CodeNonConvergence, CodeDegenerateIteration,
		CodeMalformedInput,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDivisionByZero, CodeOverflow:
		return "arithmetic"
	case CodeNonConvergence, CodeDegenerateIteration:
		return "solver"
	case CodeInvalidInput, CodeMalformedInput:
		return "argument"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps the code to a process exit status for command line tools.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "argument", "validation":
		return 2
	case "configuration":
		return 3
	case "arithmetic", "solver":
		return 4
	default:
		return 1
	}
}
