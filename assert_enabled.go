//go:build assert_enabled

package main

import "fmt"

func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}

// Assertf is Assert with a message, for invariants that are easier to debug
// when the values involved are visible.
func Assertf(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("assert failed: "+format, args...))
	}
}
