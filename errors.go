package dimex

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Errors observable by clients. Failing matches and rejected productions are
// not errors; they never leave the engine.
var (
	ErrMalformedRuleTable = errors.New("malformed rule table")
	ErrIterationLimit     = errors.New("iteration limit exceeded before reaching a fixpoint")
	ErrUnknownDimension   = errors.New("unknown dimension")
)

// RuleTableError is returned when a rule table cannot be used, e.g. because
// of duplicate rule names or empty patterns. It matches ErrMalformedRuleTable
// with errors.Is.
type RuleTableError struct {
	Locale language.Tag
	Dim    Dimension
	Rule   string // offending rule, if any
	Reason string
	Err    error // underlying error, if any
}

func (e *RuleTableError) Error() string {
	msg := fmt.Sprintf("%s: %s/%s", ErrMalformedRuleTable, e.Locale, e.Dim)
	if e.Rule != "" {
		msg += fmt.Sprintf(" rule %q", e.Rule)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is lets RuleTableError match ErrMalformedRuleTable.
func (e *RuleTableError) Is(target error) bool {
	return target == ErrMalformedRuleTable
}

func (e *RuleTableError) Unwrap() error {
	return e.Err
}

// IterationLimitError is returned by the engine if rule application did not
// settle within the configured number of passes. It matches
// ErrIterationLimit with errors.Is.
type IterationLimitError struct {
	Limit  int // configured maximum number of passes
	Tokens int // size of the working set when giving up
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("%s: %d passes, %d tokens", ErrIterationLimit, e.Limit, e.Tokens)
}

// Is lets IterationLimitError match ErrIterationLimit.
func (e *IterationLimitError) Is(target error) bool {
	return target == ErrIterationLimit
}
