package constraint

import (
	"io"

	"github.com/sigh0829/check-args/check"
)

type nullableType struct {
	typ check.Constraint
}

// Nullable accepts null, the undefined marker, or anything the inner
// constraint accepts.
func Nullable(inner check.Constraint) check.Constraint {
	return &nullableType{notRest(`nullable`, inner)}
}

func (t *nullableType) IsInstance(v check.Value) bool {
	switch check.KindOf(v) {
	case check.Null, check.UndefinedMarker:
		return true
	}
	return t.typ.IsInstance(v)
}

func (t *nullableType) Name() string {
	return `Nullable`
}

func (t *nullableType) ToString(w io.Writer) {
	io.WriteString(w, `Nullable[`)
	t.typ.ToString(w)
	io.WriteString(w, `]`)
}

func (t *nullableType) String() string {
	return check.ConstraintString(t)
}
