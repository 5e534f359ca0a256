package cart

import (
	"sync"
)

// Session is the in-memory state of one POS terminal: its cart plus the
// order context being captured alongside it. Nothing here is persisted;
// a restart drops open carts, matching the client-session lifetime of the
// original counter app.
type Session struct {
	Cart  *Cart
	Order *OrderContext
}

// Registry maps terminal IDs to sessions. One mutex serializes every
// mutation, so concurrent HTTP handlers keep the single-writer ordering the
// cart model assumes.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// With runs fn with the terminal's session under the registry lock. The
// session (and an empty cart) is created on first use. fn must not retain
// the session past its return.
func (r *Registry) With(terminalID string, fn func(*Session) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[terminalID]
	if !ok {
		s = &Session{Cart: New(), Order: &OrderContext{}}
		r.sessions[terminalID] = s
	}
	return fn(s)
}
