// File: example_test.go
// Title: Error Module Examples
// Description: Example usage patterns for the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with examples
// - 2026-10-18 v0.2.0: Examples for solver errors

package error

import (
	"errors"
	"fmt"
)

func ExampleNew() {
	err := New("life must not be zero").
		WithCode(CodeInvalidInput).
		WithOperation("SLN").
		WithDetail("argument", "life")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: life must not be zero
	// Code: INVALID_INPUT
	// Severity: low
}

func ExampleError_Is() {
	errNonConvergence := New("no convergence").WithCode(CodeNonConvergence)

	err := fmt.Errorf("irr: %w", New("no convergence after 40 iterations").WithCode(CodeNonConvergence))

	fmt.Println(errors.Is(err, errNonConvergence))

	// Output:
	// true
}
