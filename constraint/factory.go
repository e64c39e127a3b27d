package constraint

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/lyraproj/issue/issue"
	"github.com/sigh0829/check-args/check"
	"gopkg.in/yaml.v2"
)

// Make converts a declaration descriptor into a constraint. A descriptor is
// one of:
//
//	a check.Constraint, used as is
//	a name, builtin or sentinel or registered nominal
//	nil, shorthand for the Null sentinel
//	a reflect.Type, matched by nominal identity
//	a predicate func, shorthand for Custom
//	a compiled regexp, shorthand for Pattern
//	a single key modifier object selecting nullable, array, regex, custom,
//	range or rest
//
// Invalid descriptors panic with an issue.Reported; a broken declaration is
// an authoring bug and surfaces immediately, never at call time.
func Make(desc interface{}) check.Constraint {
	return makeConstraint(desc, true)
}

func makeConstraint(desc interface{}, topLevel bool) check.Constraint {
	switch d := desc.(type) {
	case nil:
		return Null
	case check.Constraint:
		if _, ok := d.(*RestType); ok && !topLevel {
			panic(check.Error(check.CHECK_NESTED_REST, issue.H{`outer`: `modifier`}))
		}
		return d
	case string:
		return named(d)
	case reflect.Type:
		return ofType(d)
	case Predicate:
		return Custom(d)
	case func(check.Value) bool:
		return Custom(d)
	case *regexp.Regexp:
		return PatternR(d)
	case map[string]interface{}:
		if len(d) != 1 {
			panic(check.Error(check.CHECK_NOT_ONE_MODIFIER, issue.H{`count`: len(d)}))
		}
		for key, value := range d {
			return modifier(key, value, topLevel)
		}
	case map[interface{}]interface{}:
		if len(d) != 1 {
			panic(check.Error(check.CHECK_NOT_ONE_MODIFIER, issue.H{`count`: len(d)}))
		}
		for key, value := range d {
			return modifier(fmt.Sprintf(`%v`, key), value, topLevel)
		}
	case yaml.MapSlice:
		if len(d) != 1 {
			panic(check.Error(check.CHECK_NOT_ONE_MODIFIER, issue.H{`count`: len(d)}))
		}
		return modifier(fmt.Sprintf(`%v`, d[0].Key), d[0].Value, topLevel)
	}
	panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: fmt.Sprintf(`%T`, desc)}))
}

func modifier(key string, value interface{}, topLevel bool) check.Constraint {
	switch strings.ToLower(key) {
	case `nullable`:
		return Nullable(makeConstraint(value, false))
	case `array`:
		return ArrayOf(makeConstraint(value, false))
	case `regex`:
		switch p := value.(type) {
		case string:
			return Pattern(p)
		case *regexp.Regexp:
			return PatternR(p)
		}
		panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: fmt.Sprintf(`regex %T`, value)}))
	case `custom`:
		switch p := value.(type) {
		case Predicate:
			return Custom(p)
		case func(check.Value) bool:
			return Custom(p)
		}
		panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: fmt.Sprintf(`custom %T`, value)}))
	case `range`:
		if expr, ok := value.(string); ok {
			return VersionRange(expr)
		}
		panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: fmt.Sprintf(`range %T`, value)}))
	case `rest`:
		if !topLevel {
			panic(check.Error(check.CHECK_NESTED_REST, issue.H{`outer`: `modifier`}))
		}
		return Rest(makeConstraint(value, false))
	}
	panic(check.Error(check.CHECK_UNKNOWN_MODIFIER, issue.H{`name`: key}))
}

func named(name string) check.Constraint {
	switch strings.ToLower(name) {
	case `string`:
		return String
	case `number`:
		return Number
	case `boolean`:
		return Boolean
	case `object`:
		return Object
	case `array`:
		return Array
	case `function`:
		return Function
	case `date`:
		return Date
	case `version`:
		return Version
	case `defined`:
		return Defined
	case `null`:
		return Null
	case `undef`, `undefined`:
		return Undef
	}
	if t, ok := Named(name); ok {
		return t
	}
	panic(check.Error(check.CHECK_BAD_DESCRIPTOR, issue.H{`type`: fmt.Sprintf(`name '%s'`, name)}))
}
