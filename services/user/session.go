// File: services/user/session.go
package user

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"tablescout/utils"
)

// ErrSessionNotFound is returned when no session record exists for an ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps the signed-in identity records. This is the one
// key-value persistence the system carries.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, session utils.AuthSession) error
	Get(ctx context.Context, sessionID string) (*utils.AuthSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore backs sessions with the auth cache Redis database.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session utils.AuthSession) error {
	return utils.SaveAuthSession(s.Client, sessionID, session, s.TTL)
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*utils.AuthSession, error) {
	session, err := utils.GetAuthSession(s.Client, sessionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return utils.DeleteAuthSession(s.Client, sessionID)
}

// MemorySessionStore keeps sessions in process memory. Used in development
// runs without Redis and in tests.
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]utils.AuthSession
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]utils.AuthSession)}
}

func (s *MemorySessionStore) Save(ctx context.Context, sessionID string, session utils.AuthSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session.LastUpdatedAt = time.Now()
	s.sessions[sessionID] = session
	return nil
}

func (s *MemorySessionStore) Get(ctx context.Context, sessionID string) (*utils.AuthSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (s *MemorySessionStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
