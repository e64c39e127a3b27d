package dispatch

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sigh0829/check-args/check"
	"github.com/sigh0829/check-args/signature"
)

func double(args ...check.Value) check.Value {
	return args[0].(int) * 2
}

func TestCheckingForwards(t *testing.T) {
	wrapped := Checking{}.Finalize(signature.Declare(`number`).Set(), double)
	v, err := wrapped(3)
	if err != nil {
		t.Fatalf(`unexpected error %v`, err)
	}
	if v != 6 {
		t.Errorf(`expected 6, got %v`, v)
	}
}

func TestCheckingRejects(t *testing.T) {
	wrapped := Checking{}.Finalize(signature.Declare(`number`).Set(), double)
	v, err := wrapped(`x`)
	if err == nil {
		t.Fatal(`expected a mismatch error`)
	}
	if v != nil {
		t.Errorf(`a rejected call must not produce a value, got %v`, v)
	}
	me, ok := err.(*check.MismatchError)
	if !ok {
		t.Fatalf(`expected *check.MismatchError, got %T`, err)
	}
	if !strings.Contains(me.Report(), `(Number)`) || !strings.Contains(me.Report(), `String<"x">`) {
		t.Errorf(`report does not compare expected and actual: %s`, me.Report())
	}
}

func TestCheckingResolvesInOrder(t *testing.T) {
	set := signature.Declare(`string`).Declare(`number`).Set()
	wrapped := Checking{}.Finalize(set, double)
	if v, err := wrapped(5); err != nil || v != 10 {
		t.Errorf(`the second signature did not dispatch, got %v, %v`, v, err)
	}
}

// The undefined marker occupies a position; absence does not.
func TestCheckingUndefinedPosition(t *testing.T) {
	set := signature.Declare(`number`, `undef`).Set()
	first := func(args ...check.Value) check.Value { return args[0] }
	wrapped := Checking{}.Finalize(set, first)
	if _, err := wrapped(3, check.Undefined); err != nil {
		t.Errorf(`an explicitly undefined position did not match: %v`, err)
	}
	if _, err := wrapped(3); err == nil {
		t.Error(`a missing trailing position matched`)
	}
}

func TestPassthrough(t *testing.T) {
	seen := 0
	target := func(args ...check.Value) check.Value {
		seen = len(args)
		return `done`
	}
	wrapped := Passthrough{}.Finalize(signature.Declare(`number`).Set(), target)
	v, err := wrapped(`anything`, `goes`)
	if err != nil || v != `done` {
		t.Errorf(`passthrough must forward unconditionally, got %v, %v`, v, err)
	}
	if seen != 2 {
		t.Errorf(`expected 2 forwarded arguments, got %d`, seen)
	}
}

func TestNewSelectsBySettings(t *testing.T) {
	if _, ok := New(Settings{Enabled: true}).(Checking); !ok {
		t.Error(`enabled settings must select the checking finalizer`)
	}
	if _, ok := New(Settings{Enabled: false}).(Passthrough); !ok {
		t.Error(`disabled settings must select the passthrough finalizer`)
	}
}

func TestLoadSettings(t *testing.T) {
	t.Setenv(`CHECK_ARGS`, ``)
	if !LoadSettings().Enabled {
		t.Error(`an unset variable must leave checking enabled`)
	}
	for _, v := range []string{`off`, `false`, `no`, `0`, `OFF`} {
		t.Setenv(`CHECK_ARGS`, v)
		if LoadSettings().Enabled {
			t.Errorf(`CHECK_ARGS=%s must disable checking`, v)
		}
	}
	t.Setenv(`CHECK_ARGS`, `on`)
	if !LoadSettings().Enabled {
		t.Error(`CHECK_ARGS=on must leave checking enabled`)
	}
}

func TestSettingsFromYAML(t *testing.T) {
	s, err := SettingsFromYAML([]byte("enabled: false\n"))
	if err != nil || s.Enabled {
		t.Errorf(`expected disabled settings, got %v, %v`, s, err)
	}
	s, err = SettingsFromYAML([]byte(``))
	if err != nil || !s.Enabled {
		t.Errorf(`an empty document must keep the default, got %v, %v`, s, err)
	}
	if _, err = SettingsFromYAML([]byte("enabled: [\n")); err == nil {
		t.Error(`malformed YAML must be an error`)
	}
}

func TestDeclareChain(t *testing.T) {
	wrapped := Declare(`string`).Declare(`number`).Using(Checking{}).Finalize(double)
	if v, err := wrapped(5); err != nil || v != 10 {
		t.Errorf(`chain dispatch failed, got %v, %v`, v, err)
	}
	if _, err := wrapped(true); err == nil {
		t.Error(`chain accepted a boolean`)
	}
}

func TestSetDefault(t *testing.T) {
	prev := SetDefault(Passthrough{})
	defer SetDefault(prev)
	wrapped := Declare(`number`).Finalize(double)
	if v, err := wrapped(3); err != nil || v != 6 {
		t.Errorf(`default finalizer was not used, got %v, %v`, v, err)
	}
	if _, ok := defaultFinalizer.(Passthrough); !ok {
		t.Error(`SetDefault did not replace the default`)
	}
}

func ExampleChecking() {
	add := func(args ...check.Value) check.Value {
		sum := 0
		for _, a := range args {
			sum += a.(int)
		}
		return sum
	}
	wrapped := Declare(`number`, map[string]interface{}{`rest`: `number`}).Using(Checking{}).Finalize(add)
	v, _ := wrapped(1, 2, 3)
	fmt.Println(v)
	_, err := wrapped(1, `two`)
	fmt.Println(err.(*check.MismatchError).Report())
	// Output:
	// 6
	// expected one of:
	//   (Number, Rest[Number])
	// got:
	//   (Number<1>, String<"two">)
}
