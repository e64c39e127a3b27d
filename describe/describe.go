// Package describe renders signature mismatches into comparative reports.
// A report lists every declared signature in declaration notation and the
// actual call below it, so the two are visually comparable.
package describe

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/sigh0829/check-args/check"
	"github.com/sigh0829/check-args/constraint"
	"github.com/sigh0829/check-args/signature"
)

// Report builds the mismatch report for a call that satisfied none of the
// declared signatures. The output is deterministic for a given set and
// argument list, and the function never panics.
func Report(set *signature.Set, args []check.Value) string {
	b := bytes.NewBufferString(`expected one of:`)
	for i := 0; i < set.Len(); i++ {
		b.WriteString("\n  ")
		set.At(i).ToString(b)
	}
	b.WriteString("\ngot:\n  (")
	for i, a := range args {
		if i > 0 {
			b.WriteString(`, `)
		}
		writeValue(b, a)
	}
	b.WriteString(`)`)
	return b.String()
}

func writeValue(w *bytes.Buffer, v check.Value) {
	// fmt recovers panics in a value's own String, so nothing here can throw
	switch check.KindOf(v) {
	case check.Null:
		w.WriteString(`Null`)
	case check.UndefinedMarker:
		w.WriteString(`Undef`)
	case check.Textual:
		fmt.Fprintf(w, `String<%q>`, reflect.ValueOf(v).String())
	case check.Numeric:
		fmt.Fprintf(w, `Number<%v>`, v)
	case check.Boolean:
		fmt.Fprintf(w, `Boolean<%v>`, v)
	case check.Sequential:
		fmt.Fprintf(w, `Array<%v>`, v)
	case check.Structured:
		fmt.Fprintf(w, `Object<%v>`, v)
	case check.FunctionLike:
		w.WriteString(`Function`)
	default:
		writeNominal(w, v)
	}
}

func writeNominal(w io.Writer, v check.Value) {
	name := constraint.NameFor(v)
	if name == `` {
		name = reflect.TypeOf(v).String()
	}
	fmt.Fprintf(w, `%s<%v>`, name, v)
}
