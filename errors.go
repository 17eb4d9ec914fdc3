package prakriya

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/sanskritgrammar/prakriya/logx"
)

// AbortError signals that a preparation step required a rule that did
// not apply (spec.md §7a). It carries the incomplete rule-choice vector
// so the explorer can still try other branches, exactly as
// `Error::Abort(rule_choices)` does in the original engine.
type AbortError struct {
	RuleChoices []RuleChoice
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("derivation aborted after %d rule choices", len(e.RuleChoices))
}

// Abort constructs an AbortError from the prakriya's current rule-choice log.
func Abort(p *Prakriya) error {
	logx.Default.Error().Int("ruleChoices", len(p.ruleChoices)).Msg("derivation aborted")
	return &AbortError{RuleChoices: append([]RuleChoice(nil), p.ruleChoices...)}
}

// AsAbort extracts the RuleChoices from err if it is (or wraps) an
// AbortError, mirroring the explorer's `Error::Abort(choices)` match arm.
func AsAbort(err error) ([]RuleChoice, bool) {
	var ab *AbortError
	if errors.As(err, &ab) {
		return ab.RuleChoices, true
	}
	return nil, false
}

// PreconditionError wraps an internal invariant violation (spec.md §7b).
// These are programmer errors and are never recovered; the driver
// propagates them verbatim rather than treating them as a normal branch
// termination.
type PreconditionError struct {
	cause error
}

func (e *PreconditionError) Error() string { return e.cause.Error() }
func (e *PreconditionError) Unwrap() error { return e.cause }

// Precondition panics with a PreconditionError if cond is false. Rule
// packages call this the way collatinus's loader guards malformed input
// (e.g. `if len(parts) < 5 { return nil }`), except a precondition
// violation here is a programmer error rather than a data-quality issue,
// so it panics instead of returning a sentinel.
func Precondition(cond bool, format string, args ...any) {
	if !cond {
		panic(&PreconditionError{cause: errors.Wrapf(errUnmet, format, args...)})
	}
}

var errUnmet = errors.New("precondition violated")
