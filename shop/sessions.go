package shop

import (
	"sync"

	"github.com/luminafashion/backend/models"
)

// Sessions is the registry of live shopper sessions keyed by user id.
// The application owns one registry for its lifetime; sign-out removes
// the entry after clearing it.
type Sessions struct {
	mu     sync.Mutex
	byUser map[string]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byUser: make(map[string]*Session)}
}

func (r *Sessions) Get(userID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.byUser[userID]
	return s, ok
}

// GetOrCreate returns the user's session, starting a fresh one on first
// sight. Signing in clears nothing.
func (r *Sessions) GetOrCreate(user models.User, theme models.Theme) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.byUser[user.ID]; ok {
		return s
	}
	s := NewSession(user, theme)
	r.byUser[user.ID] = s
	return s
}

// Drop clears the session's state and removes it from the registry.
func (r *Sessions) Drop(userID string) {
	r.mu.Lock()
	s, ok := r.byUser[userID]
	delete(r.byUser, userID)
	r.mu.Unlock()
	if ok {
		s.SignOut()
	}
}
