// File: errors.go
// Title: Financial Error Classes
// Description: Sentinel errors for errors.Is classification and the small
//              helpers that build structured errors from engine values.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package financial

import (
	mdwerror "github.com/msto63/finkit/foundation/core/error"
	mdwerrors "github.com/msto63/finkit/foundation/core/errors"
)

// Sentinels match any engine error of the same class through errors.Is.
var (
	ErrInvalidArgument     = mdwerror.New("invalid argument").WithCode(mdwerror.CodeInvalidInput)
	ErrMalformedInput      = mdwerror.New("malformed input").WithCode(mdwerror.CodeMalformedInput)
	ErrDivisionByZero      = mdwerror.New("division by zero").WithCode(mdwerror.CodeDivisionByZero)
	ErrOverflow            = mdwerror.New("overflow").WithCode(mdwerror.CodeOverflow)
	ErrNonConvergence      = mdwerror.New("no convergence").WithCode(mdwerror.CodeNonConvergence)
	ErrDegenerateIteration = mdwerror.New("degenerate iteration").WithCode(mdwerror.CodeDegenerateIteration)
)

func (c *Calculator[T]) invalid(module, operation, argument string, value T, reason string) error {
	return mdwerrors.InvalidArgument(module, operation, argument, c.num.String(value), reason)
}

// wrap attaches module and operation to an error raised by the numeric layer
func wrap(module, operation string, err error) error {
	return mdwerrors.OperationFailed(module, operation, err)
}
