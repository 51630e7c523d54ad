package session

import "sync"

// callLedger is the append-only set of function-call identities that have
// already been surfaced. History snapshots are not edge-triggered: the
// same call is re-sent with progressively more fields, so breadcrumb
// emission and handoff detection are both gated on this ledger to fire
// exactly once per call for the session's lifetime.
type callLedger struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func newCallLedger() *callLedger {
	return &callLedger{seen: map[string]struct{}{}}
}

// recordIfNew marks the identity as seen and reports whether this call
// was the first observation.
func (l *callLedger) recordIfNew(callID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.seen[callID]; exists {
		return false
	}
	l.seen[callID] = struct{}{}
	return true
}
