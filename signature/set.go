package signature

import (
	"io"

	"github.com/sigh0829/check-args/check"
)

// Set holds every signature declared for one wrapped function, in
// declaration order. Order decides which signature wins when several match
// and is preserved verbatim in mismatch reports. Frozen sets are immutable
// and safe for concurrent matching.
type Set struct {
	signatures []*Signature
}

func NewSet(signatures ...*Signature) *Set {
	ss := make([]*Signature, len(signatures))
	copy(ss, signatures)
	return &Set{ss}
}

func (s *Set) Len() int {
	return len(s.signatures)
}

func (s *Set) At(i int) *Signature {
	return s.signatures[i]
}

// Resolve returns the index of the first signature, in declaration order,
// that the argument list satisfies. The index serves diagnostics only;
// dispatch needs just the second return.
func (s *Set) Resolve(args []check.Value) (int, bool) {
	for i, sig := range s.signatures {
		if sig.Matches(args) {
			return i, true
		}
	}
	return -1, false
}

func (s *Set) Matches(args []check.Value) bool {
	_, ok := s.Resolve(args)
	return ok
}

func (s *Set) ToString(w io.Writer) {
	for i, sig := range s.signatures {
		if i > 0 {
			io.WriteString(w, "\n")
		}
		sig.ToString(w)
	}
}

// Builder accumulates signatures during declaration. It is not safe for
// concurrent use; the Set it produces is.
type Builder struct {
	signatures []*Signature
}

// Declare starts a builder with one signature built from the given
// descriptors.
func Declare(descs ...interface{}) *Builder {
	b := &Builder{}
	return b.Declare(descs...)
}

// Declare appends one signature and returns the builder for chaining.
func (b *Builder) Declare(descs ...interface{}) *Builder {
	b.signatures = append(b.signatures, FromDescriptors(descs...))
	return b
}

// Set freezes the declarations. The builder may keep declaring afterwards
// without affecting sets already produced.
func (b *Builder) Set() *Set {
	return NewSet(b.signatures...)
}
