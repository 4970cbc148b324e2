package domain

import "fmt"

// InvalidInputError reports a physical parameter that violates its
// constraint. The message always names the offending parameter so
// interactive callers can re-prompt for exactly that value.
type InvalidInputError struct {
	Param      string
	Constraint string
	Value      any
}

func (e *InvalidInputError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s %s", e.Param, e.Constraint)
	}
	return fmt.Sprintf("%s %s (got %v)", e.Param, e.Constraint, e.Value)
}

// invalidInput builds an *InvalidInputError for a named parameter.
func invalidInput(param, constraint string, value any) error {
	return &InvalidInputError{Param: param, Constraint: constraint, Value: value}
}

// ConfigurationError indicates a malformed or empty static table. The
// estimator cannot produce meaningful output without its material and
// reference tables, so callers should treat this as fatal at startup.
type ConfigurationError struct {
	Table  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s table misconfigured: %s", e.Table, e.Reason)
}
