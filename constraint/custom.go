package constraint

import (
	"fmt"
	"io"

	"github.com/lyraproj/issue/issue"
	"github.com/sigh0829/check-args/check"
)

// Predicate is a user supplied membership test.
type Predicate func(v check.Value) bool

type customType struct {
	pred Predicate
}

// Custom accepts whatever the predicate accepts. A predicate that panics
// is an authoring bug; the panic surfaces as an invalid specification, not
// as a mismatch.
func Custom(pred Predicate) check.Constraint {
	if pred == nil {
		panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: `nil predicate`}))
	}
	return &customType{pred}
}

func (t *customType) IsInstance(v check.Value) bool {
	defer func() {
		if r := recover(); r != nil {
			panic(check.Error(check.CHECK_PREDICATE_PANIC, issue.H{`detail`: fmt.Sprintf(`%v`, r)}))
		}
	}()
	return t.pred(v)
}

func (t *customType) Name() string {
	return `Custom`
}

func (t *customType) ToString(w io.Writer) {
	io.WriteString(w, `Custom`)
}

func (t *customType) String() string {
	return check.ConstraintString(t)
}
