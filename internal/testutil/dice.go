// Package testutil provides shared helpers for package tests.
package testutil

import (
	"fmt"
	"sync"
)

// ScriptedSource is a dice.Source that replays a fixed list of draws in order.
// It panics when a scripted value falls outside [0, n) or the script runs out,
// so a test that consumes an unexpected draw fails loudly.
type ScriptedSource struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewScriptedSource returns a source that yields values in order.
func NewScriptedSource(values ...int) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Intn returns the next scripted value.
func (s *ScriptedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("testutil: scripted source exhausted after %d draws (Intn(%d))", len(s.values), n))
	}
	v := s.values[s.next]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("testutil: scripted draw %d = %d is outside [0, %d)", s.next, v, n))
	}
	s.next++
	return v
}

// Remaining reports how many scripted draws have not been consumed.
func (s *ScriptedSource) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.values) - s.next
}
