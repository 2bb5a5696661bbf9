package session

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Profile is what the upstream account service told us about the user at
// login. Held only for the session's lifetime.
type Profile struct {
	AuthToken     string   `json:"auth_token"`
	TestToken     string   `json:"test_token"`
	UserName      string   `json:"user_name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Organizations []string `json:"organizations"`
}

// Session is the in-memory state for one logged-in user.
type Session struct {
	ID        string    `json:"id"`
	Profile   Profile   `json:"profile"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps sessions in process memory with a TTL. Nothing is persisted;
// a restart logs everyone out.
type Store struct {
	cache *cache.Cache
}

func NewStore(ttl time.Duration) *Store {
	// purge expired sessions at a fraction of the TTL
	purge := ttl / 6
	if purge < time.Minute {
		purge = time.Minute
	}
	return &Store{cache: cache.New(ttl, purge)}
}

func (s *Store) Save(session *Session) {
	s.cache.Set(session.ID, session, cache.DefaultExpiration)
}

func (s *Store) Get(sessionID string) (*Session, bool) {
	if x, found := s.cache.Get(sessionID); found {
		return x.(*Session), true
	}
	return nil, false
}

func (s *Store) Delete(sessionID string) {
	s.cache.Delete(sessionID)
}
