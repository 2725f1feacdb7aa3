// Package session keeps logged-in sessions and pending OAuth states in memory.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// CookieName carries the session token in browsers
	CookieName = "broadcaster_session"

	// StateCookieName binds a pending OAuth state to the browser that started the login
	StateCookieName = "broadcaster_oauth_state"

	// StateTTL bounds how long an OAuth login may take
	StateTTL = 10 * time.Minute

	stateCapacity = 1000
)

// Session is an authenticated Discord user
type Session struct {
	Token     string    `json:"-"`
	DiscordID string    `json:"discord_id"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store maps opaque tokens to sessions. Entries expire after the configured TTL
// and the least recently used ones are evicted at capacity.
type Store struct {
	sessions *expirable.LRU[string, Session]
	states   *expirable.LRU[string, struct{}]
}

// NewStore creates a session store
func NewStore(capacity int, ttl time.Duration) *Store {
	return &Store{
		sessions: expirable.NewLRU[string, Session](capacity, nil, ttl),
		states:   expirable.NewLRU[string, struct{}](stateCapacity, nil, StateTTL),
	}
}

// Create starts a session and returns it with a fresh token
func (s *Store) Create(discordID, username, avatar string) Session {
	sess := Session{
		Token:     uuid.NewString(),
		DiscordID: discordID,
		Username:  username,
		Avatar:    avatar,
		CreatedAt: time.Now(),
	}
	s.sessions.Add(sess.Token, sess)
	return sess
}

func (s *Store) Get(token string) (Session, bool) {
	if token == "" {
		return Session{}, false
	}
	return s.sessions.Get(token)
}

func (s *Store) Delete(token string) {
	s.sessions.Remove(token)
}

// Len is the number of live sessions
func (s *Store) Len() int {
	return s.sessions.Len()
}

// NewState issues a single-use OAuth state value
func (s *Store) NewState() string {
	state := uuid.NewString()
	s.states.Add(state, struct{}{})
	return state
}

// ConsumeState reports whether state was issued and not yet used, and invalidates it.
// Only one of several concurrent callers with the same state succeeds.
func (s *Store) ConsumeState(state string) bool {
	if state == "" {
		return false
	}
	// Peek hides expired entries the background purge has not reached yet
	if _, ok := s.states.Peek(state); !ok {
		return false
	}
	return s.states.Remove(state)
}

type contextKey struct{}

// WithSession stores sess in ctx
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// FromContext returns the session attached by the session middleware
func FromContext(ctx context.Context) (Session, bool) {
	sess, ok := ctx.Value(contextKey{}).(Session)
	return sess, ok
}
