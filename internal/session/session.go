package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Session tracks the one authenticated actor driving the terminal.
// Two states: anonymous (no current user) and authenticated. Every
// successful login mints a fresh session id that tags log events.
type Session struct {
	mu       sync.RWMutex
	id       uuid.UUID
	username string
	loginAt  time.Time
}

// New returns an anonymous session.
func New() *Session {
	return &Session{}
}

// Login switches to the authenticated state for username.
func (s *Session) Login(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.New()
	s.username = username
	s.loginAt = time.Now()

	log.Info().
		Str("session_id", s.id.String()).
		Str("username", username).
		Msg("session started")
}

// Logout clears the current user, returning to anonymous.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.username == "" {
		return
	}

	log.Info().
		Str("session_id", s.id.String()).
		Str("username", s.username).
		Dur("duration", time.Since(s.loginAt)).
		Msg("session ended")

	s.id = uuid.Nil
	s.username = ""
	s.loginAt = time.Time{}
}

// Current returns the authenticated username, if any.
func (s *Session) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.username != ""
}

// IsAuthenticated reports whether a user is logged in.
func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// ID returns the current session id, uuid.Nil when anonymous.
func (s *Session) ID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}
