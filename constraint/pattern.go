package constraint

import (
	"io"
	"reflect"
	"regexp"

	"github.com/lyraproj/issue/issue"
	"github.com/sigh0829/check-args/check"
)

type patternType struct {
	pattern *regexp.Regexp
}

// Pattern accepts any textual value that the expression matches. The match
// is unanchored; authors anchor explicitly when they mean the whole string.
func Pattern(expr string) check.Constraint {
	pattern, err := regexp.Compile(expr)
	if err != nil {
		panic(check.Error(check.CHECK_BAD_PATTERN, issue.H{`pattern`: expr, `detail`: err.Error()}))
	}
	return &patternType{pattern}
}

// PatternR creates a Pattern from an already compiled expression.
func PatternR(pattern *regexp.Regexp) check.Constraint {
	return &patternType{pattern}
}

func (t *patternType) IsInstance(v check.Value) bool {
	if check.KindOf(v) != check.Textual {
		return false
	}
	return t.pattern.MatchString(reflect.ValueOf(v).String())
}

func (t *patternType) Name() string {
	return `Pattern`
}

func (t *patternType) ToString(w io.Writer) {
	io.WriteString(w, `Pattern[/`)
	io.WriteString(w, t.pattern.String())
	io.WriteString(w, `/]`)
}

func (t *patternType) String() string {
	return check.ConstraintString(t)
}
