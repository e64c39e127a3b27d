package check

import "github.com/lyraproj/issue/issue"

const (
	CHECK_NOT_ONE_MODIFIER = `CHECK_NOT_ONE_MODIFIER`
	CHECK_UNKNOWN_MODIFIER = `CHECK_UNKNOWN_MODIFIER`
	CHECK_NESTED_REST      = `CHECK_NESTED_REST`
	CHECK_DUPLICATE_REST   = `CHECK_DUPLICATE_REST`
	CHECK_BAD_DESCRIPTOR   = `CHECK_BAD_DESCRIPTOR`
	CHECK_BAD_PATTERN      = `CHECK_BAD_PATTERN`
	CHECK_BAD_RANGE        = `CHECK_BAD_RANGE`
	CHECK_PREDICATE_PANIC  = `CHECK_PREDICATE_PANIC`

	CHECK_SIGNATURE_MISMATCH = `CHECK_SIGNATURE_MISMATCH`
)

func init() {
	issue.Hard(CHECK_NOT_ONE_MODIFIER, `a modifier object must have exactly one key, got %{count}`)
	issue.Hard(CHECK_UNKNOWN_MODIFIER, `unknown modifier '%{name}'`)
	issue.Hard(CHECK_NESTED_REST, `rest is only legal as a direct signature entry, not nested in '%{outer}'`)
	issue.Hard(CHECK_DUPLICATE_REST, `a signature can have at most one rest entry`)
	issue.Hard(CHECK_BAD_DESCRIPTOR, `cannot create a constraint from a descriptor of type %{type}`)
	issue.Hard(CHECK_BAD_PATTERN, `invalid pattern '%{pattern}': %{detail}`)
	issue.Hard(CHECK_BAD_RANGE, `invalid version range '%{range}': %{detail}`)
	issue.Hard(CHECK_PREDICATE_PANIC, `custom predicate panicked: %{detail}`)

	issue.Hard(CHECK_SIGNATURE_MISMATCH, `no declared signature matches the call%{report}`)
}

// Error creates a Reported error for the given issue code. Declaration
// errors are panicked with the result since they are authoring bugs, never
// runtime conditions.
func Error(code issue.Code, args issue.H) issue.Reported {
	return issue.NewReported(code, issue.SEVERITY_ERROR, args, nil)
}
