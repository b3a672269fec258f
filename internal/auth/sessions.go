package auth

import "sync"

// SessionSet tracks tokens handed out by login and discarded by logout. It is
// advisory bookkeeping only: request verification is purely cryptographic, so
// membership here is never consulted on the hot path and a logged-out token
// stays usable until it expires. The set exists so logout has a server-side
// effect and so operators can read the live-session count.
type SessionSet struct {
	mu     sync.Mutex
	tokens map[string]struct{}
}

func NewSessionSet() *SessionSet {
	return &SessionSet{tokens: make(map[string]struct{})}
}

// Add records a newly issued token.
func (s *SessionSet) Add(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = struct{}{}
}

// Remove discards a token and reports whether it was present.
func (s *SessionSet) Remove(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	delete(s.tokens, token)
	return ok
}

// Contains reports whether the token is recorded as a live session.
func (s *SessionSet) Contains(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tokens[token]
	return ok
}

// Len returns the number of live sessions.
func (s *SessionSet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
