// Package session owns the current authentication credential.
package session

import "sync"

// Session holds one optional bearer token. Every Set, including a clear,
// notifies all subscribers; listeners re-derive the signed-in state from the
// token's presence. No client-side expiry tracking is done: an expired token
// is discovered only when a request comes back 401.
type Session struct {
	mu        sync.RWMutex
	token     string
	listeners []func(token string)
}

// New constructs an empty session.
func New() *Session {
	return &Session{}
}

// Set stores the token. An empty token clears the session.
func (s *Session) Set(token string) {
	s.mu.Lock()
	s.token = token
	listeners := make([]func(string), len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	// Callbacks run outside the lock so a listener may read the session.
	for _, fn := range listeners {
		fn(token)
	}
}

// Clear drops the token.
func (s *Session) Clear() {
	s.Set("")
}

// Token returns the current token, empty when signed out.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Subscribe registers fn to run on every token change.
func (s *Session) Subscribe(fn func(token string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
