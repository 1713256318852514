// File: standards.go
// Title: Error Standards for finkit Modules
// Description: Module identifiers and constructors for the error classes
//              raised by the numeric layer, the financial engine, the
//              configuration loader and the command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Financial error classes

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/finkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleNumeric      = "numeric"
	ModuleAnnuity      = "annuity"
	ModuleCashFlow     = "cashflow"
	ModuleDepreciation = "depreciation"
	ModuleSolver       = "solver"
	ModuleSchedule     = "schedule"
	ModuleConfig       = "config"
	ModuleCLI          = "cli"
)

// InvalidArgument reports an argument outside the domain of an operation.
func InvalidArgument(module, operation, argument string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(mdwerror.CodeInvalidInput).
		Detail("argument", argument).
		Detail("value", value).
		Build()
}

// MalformedInput reports input whose shape is unusable, such as a cash-flow
// collection that is too short or a number that cannot be parsed.
func MalformedInput(module, operation, argument string, value interface{}, reason string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(mdwerror.CodeMalformedInput).
		Detail("argument", argument).
		Detail("value", value).
		Build()
}

// DivisionByZero reports a guarded division whose divisor evaluated to zero.
func DivisionByZero(module, operation, divisor string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("division by zero in %s", operation).
		Code(mdwerror.CodeDivisionByZero).
		Detail("divisor", divisor).
		Build()
}

// Overflow reports a result that exceeds the representable range.
func Overflow(module, operation string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s overflows", operation).
		Code(mdwerror.CodeOverflow).
		Detail("value", value).
		Build()
}

// NonConvergence reports an iterative solver that exhausted its budget.
func NonConvergence(module, operation, message string, iterations int, last interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeNonConvergence).
		Detail("iterations", iterations).
		Detail("last_estimate", last).
		Build()
}

// DegenerateIteration reports a solver whose secant slope stayed zero after
// perturbation.
func DegenerateIteration(module, operation, message string, iterations int, estimate interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeDegenerateIteration).
		Detail("iterations", iterations).
		Detail("estimate", estimate).
		Build()
}

// ConfigError reports a configuration that cannot be read or parsed.
func ConfigError(operation, source string, cause error) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Messagef("configuration %s failed", operation).
		Code(mdwerror.CodeConfigError).
		Cause(cause).
		Detail("source", source).
		Build()
}

// OperationFailed wraps an unexpected failure of a module operation.
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s failed", module, operation)).
		Cause(cause).
		Build()
}
