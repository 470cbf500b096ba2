// Package errors lets callers import one errors package: matching comes from
// the standard library, wrapping with stack traces from pkg/errors.
package errors

import (
	stderrors "errors"

	pkgerrors "github.com/pkg/errors"
)

// Matching and composition.
var (
	Is     = stderrors.Is
	As     = stderrors.As
	Unwrap = stderrors.Unwrap
	Join   = stderrors.Join
)

// Construction and wrapping; every result records a stack trace.
var (
	New         = pkgerrors.New
	Errorf      = pkgerrors.Errorf
	Wrap        = pkgerrors.Wrap
	Wrapf       = pkgerrors.Wrapf
	WithStack   = pkgerrors.WithStack
	WithMessage = pkgerrors.WithMessage
	Cause       = pkgerrors.Cause
)
