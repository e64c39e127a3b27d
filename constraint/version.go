package constraint

import (
	"io"
	"reflect"

	"github.com/lyraproj/issue/issue"
	"github.com/lyraproj/semver/semver"
	"github.com/sigh0829/check-args/check"
)

// Version matches semver version instances.
var Version = Register(`Version`, reflect.TypeOf((*semver.Version)(nil)).Elem())

type versionRangeType struct {
	vRange semver.VersionRange
	expr   string
}

// VersionRange accepts a semver version, or a textual version, that lies
// inside the given range.
func VersionRange(expr string) check.Constraint {
	vr, err := semver.ParseVersionRange(expr)
	if err != nil {
		panic(check.Error(check.CHECK_BAD_RANGE, issue.H{`range`: expr, `detail`: err.Error()}))
	}
	if vr == nil {
		panic(check.Error(check.CHECK_BAD_RANGE, issue.H{`range`: expr, `detail`: `empty range`}))
	}
	return &versionRangeType{vr, expr}
}

func (t *versionRangeType) IsInstance(v check.Value) bool {
	switch v := v.(type) {
	case semver.Version:
		return t.vRange.Includes(v)
	case string:
		ver, err := semver.ParseVersion(v)
		return err == nil && t.vRange.Includes(ver)
	}
	return false
}

func (t *versionRangeType) Name() string {
	return `VersionRange`
}

func (t *versionRangeType) ToString(w io.Writer) {
	io.WriteString(w, `VersionRange[`)
	io.WriteString(w, t.expr)
	io.WriteString(w, `]`)
}

func (t *versionRangeType) String() string {
	return check.ConstraintString(t)
}
