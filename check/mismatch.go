package check

import "github.com/lyraproj/issue/issue"

// MismatchError is returned when a call satisfies none of the signatures
// declared for the wrapped function. It is an ordinary error; the caller
// decides whether to recover from it.
type MismatchError struct {
	reported issue.Reported
	report   string
}

func NewMismatchError(report string) *MismatchError {
	return &MismatchError{Error(CHECK_SIGNATURE_MISMATCH, issue.H{`report`: "\n" + report}), report}
}

func (e *MismatchError) Error() string {
	return e.reported.Error()
}

// Report returns the comparative expected/actual report without the
// leading issue message.
func (e *MismatchError) Report() string {
	return e.report
}

func (e *MismatchError) Issue() issue.Reported {
	return e.reported
}
