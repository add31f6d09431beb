// Package check provides pure classification and validation functions used
// as subjects for equivalence-class, boundary-value, combinatorial, and
// path-coverage testing. Every function is total: out-of-domain input is an
// expected outcome reported through the return value, never an error.
package check

// Status is the two-valued outcome of a validation check.
type Status int

const (
	// Success marks a passing/valid scenario.
	Success Status = iota
	// Failure marks a failing/invalid scenario.
	Failure
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	if s == Success {
		return "Success"
	}
	return "Failure"
}
