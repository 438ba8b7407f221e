package campaign

import (
	"fmt"
	"strings"
)

// Policy decides when the final confrontation is offered.
type Policy int

const (
	// PolicyEveryTick runs the final confrontation after every tick until it
	// is won or lost.
	PolicyEveryTick Policy = iota
	// PolicyOnce runs the final confrontation after the first tick only.
	PolicyOnce
)

// String returns the configuration label of the policy.
func (p Policy) String() string {
	if p == PolicyOnce {
		return "once"
	}
	return "every_tick"
}

// ParsePolicy maps a configuration label to a Policy. The empty string is
// PolicyEveryTick.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "every_tick":
		return PolicyEveryTick, nil
	case "once":
		return PolicyOnce, nil
	default:
		return PolicyEveryTick, fmt.Errorf("unknown final boss policy %q (want every_tick or once)", s)
	}
}

// Result is the terminal state of a campaign.
type Result int

const (
	ResultPending Result = iota
	// ResultVictory means the final boss was defeated.
	ResultVictory
	// ResultDefeat means the party fell or lost the final confrontation.
	ResultDefeat
	// ResultAbandoned means the tick limit was reached or input was lost.
	ResultAbandoned
)

// String returns a human-readable result label.
func (r Result) String() string {
	switch r {
	case ResultVictory:
		return "victory"
	case ResultDefeat:
		return "defeat"
	case ResultAbandoned:
		return "abandoned"
	default:
		return "pending"
	}
}
