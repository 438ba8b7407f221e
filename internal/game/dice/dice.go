// Package dice provides the randomness abstraction used by every resolution
// step of the encounter engine: attacks, special moves, and the campaign's
// location and event draws.
package dice

import "fmt"

// RollResult holds the audit trail for a single dice expression evaluation.
//
// Postcondition: Total() == sum(Dice) + Modifier.
type RollResult struct {
	Expression string // original expression string, e.g. "1d26+24"
	Dice       []int  // individual die results before modifier
	Modifier   int    // flat modifier (may be negative)
}

// Total returns the sum of all die results plus the modifier.
func (r RollResult) Total() int {
	total := r.Modifier
	for _, d := range r.Dice {
		total += d
	}
	return total
}

// String returns a human-readable audit string in the format:
//
//	"1d26+24 → [7] +24 = 31"
//
// Precondition: r.Expression is non-empty.
func (r RollResult) String() string {
	if r.Expression == "" {
		panic("dice: RollResult.String() precondition violated: Expression must be non-empty")
	}
	return fmt.Sprintf("%s → %v %+d = %d", r.Expression, r.Dice, r.Modifier, r.Total())
}

// Source is the randomness provider injected into every resolution call.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// Percent draws a uniform percentile roll in [1, 100].
func Percent(src Source) int {
	return src.Intn(100) + 1
}

// Between draws a uniform integer in [lo, hi].
//
// When hi <= lo the result is lo without consuming a draw, so a [1, 0] range
// still yields 1.
func Between(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.Intn(hi-lo+1)
}

// Pick returns a uniform index into a collection of n elements.
//
// Precondition: n > 0.
func Pick(src Source, n int) int {
	if n <= 0 {
		panic("dice: Pick called with an empty collection")
	}
	return src.Intn(n)
}
