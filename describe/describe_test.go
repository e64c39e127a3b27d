package describe

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sigh0829/check-args/check"
	"github.com/sigh0829/check-args/signature"
)

func ExampleReport() {
	set := signature.
		Declare(`number`, map[string]interface{}{`rest`: map[string]interface{}{`nullable`: `string`}}, `undef`).
		Declare(`string`).
		Set()
	fmt.Println(Report(set, []check.Value{3, true}))
	// Output:
	// expected one of:
	//   (Number, Rest[Nullable[String]], Undef)
	//   (String)
	// got:
	//   (Number<3>, Boolean<true>)
}

func ExampleReport_values() {
	set := signature.Declare(`date`).Set()
	fmt.Println(Report(set, []check.Value{nil, check.Undefined, `x`, []int{1, 2}, func() {}}))
	// Output:
	// expected one of:
	//   (Date)
	// got:
	//   (Null, Undef, String<"x">, Array<[1 2]>, Function)
}

// Formatting the same pair twice yields identical text.
func TestReportDeterminism(t *testing.T) {
	set := signature.Declare(`string`, `number`).Declare(`boolean`).Set()
	args := []check.Value{map[string]int{`b`: 2, `a`: 1}, []interface{}{1, `x`}}
	first := Report(set, args)
	for i := 0; i < 10; i++ {
		if r := Report(set, args); r != first {
			t.Fatalf("report is not deterministic:\n%s\n%s", first, r)
		}
	}
}

func TestReportNominal(t *testing.T) {
	set := signature.Declare(`string`).Set()
	r := Report(set, []check.Value{time.Date(2019, 1, 22, 0, 0, 0, 0, time.UTC)})
	if r == `` {
		t.Fatal(`empty report`)
	}
	// a registered nominal renders under its registered name
	if want := `Date<`; !strings.Contains(r, want) {
		t.Errorf(`report %q does not contain %q`, r, want)
	}
}
