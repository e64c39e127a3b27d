package constraint

import (
	"io"
	"reflect"

	"github.com/sigh0829/check-args/check"
)

type arrayType struct {
	typ check.Constraint
}

// ArrayOf accepts any sequential value whose elements all satisfy the
// element constraint. An empty sequence trivially matches.
func ArrayOf(element check.Constraint) check.Constraint {
	return &arrayType{notRest(`array`, element)}
}

func (t *arrayType) IsInstance(v check.Value) bool {
	if check.KindOf(v) != check.Sequential {
		return false
	}
	rv := reflect.ValueOf(v)
	top := rv.Len()
	for i := 0; i < top; i++ {
		if !t.typ.IsInstance(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func (t *arrayType) Name() string {
	return `Array`
}

func (t *arrayType) ToString(w io.Writer) {
	io.WriteString(w, `Array[`)
	t.typ.ToString(w)
	io.WriteString(w, `]`)
}

func (t *arrayType) String() string {
	return check.ConstraintString(t)
}
