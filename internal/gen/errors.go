package gen

import "fmt"

// ConfigError reports an impossible or contradictory generation target.
// It is always raised before any rows are emitted.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

// ViolationError reports a dataset invariant failure. The validator
// attaches the offending entity and the rule that failed so a run can be
// reproduced and diagnosed from the same seed.
type ViolationError struct {
	Entity string
	ID     string
	Rule   string
}

func (e *ViolationError) Error() string {
	return fmt.Sprintf("invariant violation: %s %s: %s", e.Entity, e.ID, e.Rule)
}
