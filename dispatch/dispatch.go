// Package dispatch produces the externally callable wrapper around a target
// function. The wrapper either forwards a call whose arguments satisfy one
// of the declared signatures, or rejects it with a mismatch error. A
// passthrough implementation of the same contract performs no checks at
// all, so checking can be switched off at wiring time without touching any
// declaration.
package dispatch

import (
	"github.com/sigh0829/check-args/check"
	"github.com/sigh0829/check-args/describe"
	"github.com/sigh0829/check-args/signature"
)

// Target is the function being wrapped.
type Target func(args ...check.Value) check.Value

// Checked is the wrapper handed back to callers. The error, when non nil,
// is always a *check.MismatchError; anything the target itself does,
// including panicking, propagates unmodified.
type Checked func(args ...check.Value) (check.Value, error)

// Finalizer turns a frozen signature set and a target into a callable
// wrapper. Exactly one implementation is selected when the wrapper is
// wired, never per call.
type Finalizer interface {
	Finalize(set *signature.Set, target Target) Checked
}

// Checking is the real finalizer: resolve against the set, forward the
// original arguments unchanged on a match, reject otherwise.
type Checking struct{}

func (Checking) Finalize(set *signature.Set, target Target) Checked {
	return func(args ...check.Value) (check.Value, error) {
		if _, ok := set.Resolve(args); ok {
			return target(args...), nil
		}
		// the error is built and returned right here so the immediate
		// caller sits directly above the failure, not a helper frame
		return nil, check.NewMismatchError(describe.Report(set, args))
	}
}

// Passthrough adapts the target without ever consulting the set.
type Passthrough struct{}

func (Passthrough) Finalize(_ *signature.Set, target Target) Checked {
	return func(args ...check.Value) (check.Value, error) {
		return target(args...), nil
	}
}
