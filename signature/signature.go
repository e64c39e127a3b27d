package signature

import (
	"bytes"
	"io"

	"github.com/lyraproj/issue/issue"
	"github.com/sigh0829/check-args/check"
	"github.com/sigh0829/check-args/constraint"
)

// Signature is one acceptable call shape: an ordered list of constraints of
// which at most one is a rest entry. Immutable once created.
type Signature struct {
	constraints []check.Constraint
	restIndex   int // -1 when the signature has fixed arity
}

func New(constraints ...check.Constraint) *Signature {
	cs := make([]check.Constraint, len(constraints))
	copy(cs, constraints)
	restIndex := -1
	for i, c := range cs {
		if _, ok := constraint.IsRest(c); ok {
			if restIndex >= 0 {
				panic(check.Error(check.CHECK_DUPLICATE_REST, issue.NO_ARGS))
			}
			restIndex = i
		}
	}
	return &Signature{cs, restIndex}
}

// FromDescriptors builds a signature from raw declaration descriptors.
func FromDescriptors(descs ...interface{}) *Signature {
	cs := make([]check.Constraint, len(descs))
	for i, d := range descs {
		cs[i] = constraint.Make(d)
	}
	return New(cs...)
}

func (s *Signature) Len() int {
	return len(s.constraints)
}

func (s *Signature) At(i int) check.Constraint {
	return s.constraints[i]
}

func (s *Signature) RestIndex() int {
	return s.restIndex
}

// FixedCount returns the number of non rest positions.
func (s *Signature) FixedCount() int {
	if s.restIndex < 0 {
		return len(s.constraints)
	}
	return len(s.constraints) - 1
}

// Matches reports whether the argument list satisfies this signature.
// Arity is decided first: without a rest the lengths must be equal, with a
// rest the surplus k over the fixed count must be nonnegative and the rest
// consumes exactly k arguments. No backtracking is involved since a
// signature has at most one rest.
func (s *Signature) Matches(args []check.Value) bool {
	if s.restIndex < 0 {
		if len(args) != len(s.constraints) {
			return false
		}
		for i, c := range s.constraints {
			if !c.IsInstance(args[i]) {
				return false
			}
		}
		return true
	}

	k := len(args) - s.FixedCount()
	if k < 0 {
		return false
	}
	for i := 0; i < s.restIndex; i++ {
		if !s.constraints[i].IsInstance(args[i]) {
			return false
		}
	}
	rest, _ := constraint.IsRest(s.constraints[s.restIndex])
	for i := 0; i < k; i++ {
		if !rest.IsInstance(args[s.restIndex+i]) {
			return false
		}
	}
	for i := s.restIndex + 1; i < len(s.constraints); i++ {
		if !s.constraints[i].IsInstance(args[i-1+k]) {
			return false
		}
	}
	return true
}

func (s *Signature) ToString(w io.Writer) {
	io.WriteString(w, `(`)
	for i, c := range s.constraints {
		if i > 0 {
			io.WriteString(w, `, `)
		}
		c.ToString(w)
	}
	io.WriteString(w, `)`)
}

func (s *Signature) String() string {
	b := bytes.NewBufferString(``)
	s.ToString(b)
	return b.String()
}
