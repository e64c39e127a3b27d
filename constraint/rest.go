package constraint

import (
	"io"

	"github.com/lyraproj/issue/issue"
	"github.com/sigh0829/check-args/check"
)

// RestType marks one signature position as variable arity. It is not a
// per-position constraint: the matcher gives it the call's length surplus
// over the signature's fixed positions, and each covered argument is tested
// against the element constraint.
type RestType struct {
	typ check.Constraint
}

func Rest(element check.Constraint) check.Constraint {
	return &RestType{notRest(`rest`, element)}
}

// IsRest returns the value as a RestType when it is one.
func IsRest(c check.Constraint) (*RestType, bool) {
	r, ok := c.(*RestType)
	return r, ok
}

func (t *RestType) Element() check.Constraint {
	return t.typ
}

// IsInstance tests one rest-covered argument against the element
// constraint.
func (t *RestType) IsInstance(v check.Value) bool {
	return t.typ.IsInstance(v)
}

func (t *RestType) Name() string {
	return `Rest`
}

func (t *RestType) ToString(w io.Writer) {
	io.WriteString(w, `Rest[`)
	t.typ.ToString(w)
	io.WriteString(w, `]`)
}

func (t *RestType) String() string {
	return check.ConstraintString(t)
}

// notRest guards modifier constructors against a rest nested below the
// signature level.
func notRest(outer string, inner check.Constraint) check.Constraint {
	if inner == nil {
		panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: `nil`}))
	}
	if _, ok := inner.(*RestType); ok {
		panic(check.Error(check.CHECK_NESTED_REST, issue.H{`outer`: outer}))
	}
	return inner
}
