// Package errors provides standardized constructors for the failures
// raised by finkit modules.
//
// Package: errors
// Title: finkit Error Standards
// Description: Builds *error.Error values with consistent codes, messages
//              and details (module, operation, argument, value) so that
//              every module reports invalid arguments, arithmetic failures
//              and solver failures the same way.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Financial modules and solver error constructors
//
// Usage:
//
//	return zero, errors.InvalidArgument(errors.ModuleAnnuity, "Pmt", "nper", nper,
//		"number of periods must not be zero")
//
//	if errors.IsModuleOperation(err, errors.ModuleSolver, "IRR") {
//		// ...
//	}
package errors
