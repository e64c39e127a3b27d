package dispatch

import "github.com/sigh0829/check-args/signature"

// The package default finalizer is the loader level switch: set it once at
// program wiring, before any declaration is finalized.
var defaultFinalizer Finalizer = New(LoadSettings())

// SetDefault replaces the finalizer used by Declare chains that do not pick
// one explicitly, and returns the previous one.
func SetDefault(f Finalizer) Finalizer {
	prev := defaultFinalizer
	defaultFinalizer = f
	return prev
}

// Builder is the declaration surface. Each Declare appends one signature;
// Finalize freezes them and produces the wrapper.
type Builder struct {
	decls     *signature.Builder
	finalizer Finalizer
}

// Declare starts a declaration chain with one signature built from the
// given descriptors.
func Declare(descs ...interface{}) *Builder {
	return &Builder{signature.Declare(descs...), nil}
}

// Declare appends another acceptable signature.
func (b *Builder) Declare(descs ...interface{}) *Builder {
	b.decls.Declare(descs...)
	return b
}

// Using overrides the finalizer for this chain only.
func (b *Builder) Using(f Finalizer) *Builder {
	b.finalizer = f
	return b
}

// Finalize freezes the declared signatures and wraps the target.
func (b *Builder) Finalize(target Target) Checked {
	f := b.finalizer
	if f == nil {
		f = defaultFinalizer
	}
	return f.Finalize(b.decls.Set(), target)
}
