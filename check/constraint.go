package check

import (
	"bytes"
	"io"
)

// Constraint is a single positional rule that an argument value either
// satisfies or does not. Constraints are built once, at declaration time,
// and are immutable thereafter.
type Constraint interface {
	// IsInstance reports whether v satisfies this constraint.
	IsInstance(v Value) bool

	// Name returns the bare name of the constraint, without any nested
	// constraint parameters.
	Name() string

	// ToString writes the constraint in declaration notation.
	ToString(w io.Writer)
}

// ConstraintString renders a constraint in declaration notation.
func ConstraintString(c Constraint) string {
	b := bytes.NewBufferString(``)
	c.ToString(b)
	return b.String()
}
