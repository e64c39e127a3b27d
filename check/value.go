package check

// Value is a runtime argument value. An untyped nil is an explicit null.
// Absence is not a Value at all; an argument list simply ends before the
// position in question.
type Value = interface{}

type undefined struct{}

// Undefined is the explicit "undefined" marker. A caller that passes it
// occupies an argument position without providing a value, which is not
// the same thing as the position being beyond the end of the call.
var Undefined Value = undefined{}

func (undefined) String() string {
	return `undef`
}
