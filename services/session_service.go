package services

import (
	"errors"
	"sync"
	"time"

	"nestify_server/models"

	"github.com/google/uuid"
)

// Session carries the authenticated-identity context plus the state the
// discovery screen owns: the swipe deck and the transient filter
// configuration. Established at sign-in, torn down at sign-out; consumers
// only ever read the identity.
type Session struct {
	SessionID string
	UserID    string
	Deck      *Deck
	CreatedAt string

	mu      sync.Mutex
	filters models.Filters
}

// Anonymous reports whether the session has no signed-in user. Anonymous
// swipes still advance the deck, they just skip the remote write.
func (s *Session) Anonymous() bool {
	return s.UserID == ""
}

// Filters returns the session's current filter configuration.
func (s *Session) Filters() models.Filters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

// SetFilters replaces the filter configuration wholesale, the way the
// filter sheet applies it.
func (s *Session) SetFilters(f models.Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// SessionService is the in-memory session registry.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewSessionService creates an empty registry.
func NewSessionService() *SessionService {
	return &SessionService{sessions: make(map[string]*Session)}
}

// CreateSession establishes a session for a user. An empty userID creates
// an anonymous session.
func (ss *SessionService) CreateSession(userID string) *Session {
	session := &Session{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Deck:      NewDeck(),
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		filters:   models.DefaultFilters(),
	}

	ss.mu.Lock()
	ss.sessions[session.SessionID] = session
	ss.mu.Unlock()

	return session
}

// GetSession looks up a live session.
func (ss *SessionService) GetSession(sessionID string) (*Session, error) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	session, ok := ss.sessions[sessionID]
	if !ok {
		return nil, errors.New("session not found")
	}
	return session, nil
}

// EndSession tears a session down at sign-out. Ending an unknown session is
// a no-op.
func (ss *SessionService) EndSession(sessionID string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, sessionID)
}
