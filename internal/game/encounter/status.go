// Package encounter implements resolvable encounter events: attribute checks,
// enemy encounters, and the final confrontation.
package encounter

// Status is the resolution state of an Event: Unknown until resolved, then one
// of the three terminal outcomes.
type Status int

const (
	StatusUnknown Status = iota
	StatusPass
	StatusFail
	StatusPartialPass
)

// String returns a human-readable status label.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusPartialPass:
		return "partial pass"
	default:
		return "unknown"
	}
}

// Resolved reports whether s is a terminal outcome.
func (s Status) Resolved() bool {
	return s != StatusUnknown
}

// Judge maps a chosen capability name to an attribute-check outcome.
//
// Postcondition: chosen == primary -> Pass; chosen == secondary -> PartialPass;
// otherwise Fail. Primary wins when both names are equal.
func Judge(chosen, primary, secondary string) Status {
	switch chosen {
	case primary:
		return StatusPass
	case secondary:
		return StatusPartialPass
	default:
		return StatusFail
	}
}
