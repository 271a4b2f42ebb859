package orders

import "sync/atomic"

// Latest sequences concurrent enrichment runs so the render target is
// never overwritten by a run that was superseded before it finished.
// Begin tags a run with a monotonic token; Accept admits only the most
// recently started run's result.
type Latest struct {
	started  atomic.Int64
	accepted atomic.Int64
}

// Begin registers a new run and returns its token.
func (l *Latest) Begin() int64 {
	return l.started.Add(1)
}

// Accept reports whether the result of the run with this token may be
// rendered. It returns false once a newer run has started, or once a
// newer result has already been accepted.
func (l *Latest) Accept(token int64) bool {
	if token != l.started.Load() {
		return false
	}
	for {
		cur := l.accepted.Load()
		if token <= cur {
			return false
		}
		if l.accepted.CompareAndSwap(cur, token) {
			return true
		}
	}
}
