package gen

// Gate hands out generation tokens for work that may be superseded before its
// result lands. Typing schedules a deferred recompute stamped with a token;
// if another keystroke arrives first, a new stamp makes the old token stale
// and its result is dropped on arrival. The same bookkeeping covers deferred
// sort changes and in-flight detail loads.
//
// A Gate is plain state for a single-owner event loop; it does no locking and
// no timing of its own.
type Gate struct {
	latest uint64
}

// Stamp invalidates every outstanding token and returns a fresh one.
func (g *Gate) Stamp() uint64 {
	g.latest++
	return g.latest
}

// Current reports whether token is still the latest stamp. A zero token is
// never current; no work has been stamped with it.
func (g *Gate) Current(token uint64) bool {
	return token != 0 && token == g.latest
}

// Invalidate marks every outstanding token stale without arming new work.
// Used when the pending operation is dismissed rather than superseded.
func (g *Gate) Invalidate() {
	g.latest++
}
