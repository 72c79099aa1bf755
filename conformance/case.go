package conformance

import (
	"github.com/wippyai/writ/errors"
)

// Case is one call of an export and the outcome it must produce.
type Case struct {
	// Expect is compared against the result when non-nil.
	Expect  any    `json:"expect,omitempty" yaml:"expect,omitempty"`
	Name    string `json:"name" yaml:"name"`
	Export  string `json:"export" yaml:"export"`
	Args    []any  `json:"args" yaml:"args"`
	// WantKind, when set, requires the error to be an *errors.Error of
	// that kind. It implies WantErr.
	WantKind errors.Kind `json:"want_kind,omitempty" yaml:"want_kind,omitempty"`
	WantErr  bool        `json:"want_err,omitempty" yaml:"want_err,omitempty"`
}

// Result is the outcome of running a Case.
type Result struct {
	Value  any
	Err    error
	Case   Case
	Passed bool
}

// Report collects the results of a run in case order.
type Report struct {
	Results []Result
}

// Failed returns the results that did not pass.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether every case passed.
func (r Report) Passed() bool {
	return len(r.Failed()) == 0
}
