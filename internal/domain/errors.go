package domain

import "fmt"

// LookupError reports a selection key missing from its reference table.
type LookupError struct {
	Table string
	Key   string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%s %q not found in reference table", e.Table, e.Key)
}

// ComputationError reports a metric that cannot be derived from a projection,
// such as a percentage over a zero baseline.
type ComputationError struct {
	Op     string
	Reason string
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}
