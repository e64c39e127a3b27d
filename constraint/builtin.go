package constraint

import (
	"io"

	"github.com/sigh0829/check-args/check"
)

type builtinType struct {
	name string
	kind check.ValueKind
}

// The structural builtin vocabulary. Array matches any sequential value
// regardless of element type; ArrayOf constrains the elements too. Date and
// Version are nominal builtins and live in the registry.
var (
	String   check.Constraint = &builtinType{`String`, check.Textual}
	Number   check.Constraint = &builtinType{`Number`, check.Numeric}
	Boolean  check.Constraint = &builtinType{`Boolean`, check.Boolean}
	Object   check.Constraint = &builtinType{`Object`, check.Structured}
	Array    check.Constraint = &builtinType{`Array`, check.Sequential}
	Function check.Constraint = &builtinType{`Function`, check.FunctionLike}
)

func (t *builtinType) IsInstance(v check.Value) bool {
	return check.KindOf(v) == t.kind
}

func (t *builtinType) Name() string {
	return t.name
}

func (t *builtinType) ToString(w io.Writer) {
	io.WriteString(w, t.name)
}

func (t *builtinType) String() string {
	return check.ConstraintString(t)
}
