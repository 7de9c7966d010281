package errs

import (
	"errors"
	"fmt"
)

var ErrRuleIsViolated = errors.New("business rule is violated")

// RuleIsViolatedError reports an operation refused by a business rule, such as an
// expired quotation or an illegal status transition. Cause carries the human
// readable explanation including the offending value.
type RuleIsViolatedError struct {
	Rule  string
	Cause error
}

func NewRuleIsViolatedError(rule string) *RuleIsViolatedError {
	return &RuleIsViolatedError{Rule: rule}
}

func NewRuleIsViolatedErrorWithCause(rule string, cause error) *RuleIsViolatedError {
	return &RuleIsViolatedError{
		Rule:  rule,
		Cause: cause,
	}
}

func (e *RuleIsViolatedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrRuleIsViolated, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrRuleIsViolated, e.Rule)
}

func (e *RuleIsViolatedError) Unwrap() error {
	return ErrRuleIsViolated
}
