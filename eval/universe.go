/*
File    : atto/eval/universe.go
*/
package eval

import "sync/atomic"

// universeCounter is the process-wide, monotonically increasing counter
// that stamps and validates Universe values (spec.md §5). The evaluator
// is single-threaded by contract, so a plain increment would suffice, but
// sync/atomic costs nothing and removes any doubt if that contract is
// ever relaxed.
var universeCounter int64

// CurrentUniverse reads the live counter value without consuming it --
// used once, by Run, to stamp the initial call into main.
func CurrentUniverse() int {
	return int(atomic.LoadInt64(&universeCounter))
}

// consumeUniverse validates that n is exactly the live counter value and,
// if so, advances the counter by one. A mismatch (n behind or ahead of
// the live value) means the program failed to thread the universe
// correctly and the caller should treat it as a fatal I/O precondition
// failure, never silently reorder.
func consumeUniverse(n int) bool {
	return atomic.CompareAndSwapInt64(&universeCounter, int64(n), int64(n+1))
}
