// Package error provides the structured error type used across finkit.
//
// Package: error
// Title: finkit Error Handling
// Description: Structured errors with codes, severity levels, details and
//              stack traces. Every failure returned by the financial engine,
//              the numeric layer and the configuration loader is an *Error,
//              so callers can branch on the code with errors.Is or HasCode.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Numeric and solver codes, code matching via errors.Is
//
// Usage:
//
//	err := error.New("number of periods must not be zero").
//		WithCode(error.CodeInvalidInput).
//		WithOperation("Pmt").
//		WithDetail("argument", "nper")
//
//	if errors.Is(err, error.New("").WithCode(error.CodeInvalidInput)) {
//		// any invalid-argument failure
//	}
package error
