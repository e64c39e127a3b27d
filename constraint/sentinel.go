package constraint

import (
	"io"

	"github.com/sigh0829/check-args/check"
)

type sentinelKind int

const (
	definedSentinel sentinelKind = iota
	nullSentinel
	undefSentinel
)

type sentinelType struct {
	kind sentinelKind
	base check.Constraint // nil accepts anything
}

// The three presence sentinels. Each controls how null and the undefined
// marker are treated before the base constraint is consulted; the bare
// tokens default the base to accept-anything, so for the same base each
// accepts a strict superset of the previous one:
//
//	Defined: any present value that is neither null nor undef
//	Null:    the above, or null
//	Undef:   the above, or the undefined marker
var (
	Defined check.Constraint = &sentinelType{definedSentinel, nil}
	Null    check.Constraint = &sentinelType{nullSentinel, nil}
	Undef   check.Constraint = &sentinelType{undefSentinel, nil}
)

func DefinedOf(base check.Constraint) check.Constraint {
	return &sentinelType{definedSentinel, notRest(`defined`, base)}
}

func NullOf(base check.Constraint) check.Constraint {
	return &sentinelType{nullSentinel, notRest(`null`, base)}
}

func UndefOf(base check.Constraint) check.Constraint {
	return &sentinelType{undefSentinel, notRest(`undef`, base)}
}

func (t *sentinelType) IsInstance(v check.Value) bool {
	switch check.KindOf(v) {
	case check.Null:
		return t.kind != definedSentinel
	case check.UndefinedMarker:
		return t.kind == undefSentinel
	}
	return t.base == nil || t.base.IsInstance(v)
}

func (t *sentinelType) Name() string {
	switch t.kind {
	case definedSentinel:
		return `Defined`
	case nullSentinel:
		return `Null`
	}
	return `Undef`
}

func (t *sentinelType) ToString(w io.Writer) {
	io.WriteString(w, t.Name())
	if t.base != nil {
		io.WriteString(w, `[`)
		t.base.ToString(w)
		io.WriteString(w, `]`)
	}
}

func (t *sentinelType) String() string {
	return check.ConstraintString(t)
}
