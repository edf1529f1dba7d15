package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned when a session id does not resolve
// (never created, expired, or already completed).
var ErrSessionNotFound = errors.New("booking session not found")

// SessionStore persists in-progress booking sessions. Each session is
// owned by a single flow instance; stores only need last-write-wins.
type SessionStore interface {
	Save(ctx context.Context, state *BookingState) error
	Get(ctx context.Context, sessionID string) (*BookingState, error)
	Delete(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "haven:session:"

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a Redis-backed session store. Sessions
// expire after ttl; every save refreshes the clock.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisSessionStore) Save(ctx context.Context, state *BookingState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := s.client.Set(ctx, sessionKeyPrefix+state.SessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.SessionID, err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*BookingState, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	var state BookingState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionID, err)
	}
	return &state, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", sessionID, err)
	}
	return nil
}

// memorySessionStore keeps sessions in process memory. Used by tests
// and Redis-less development runs.
type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]BookingState
}

// NewMemorySessionStore creates an in-memory session store.
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{
		sessions: make(map[string]BookingState),
	}
}

func (s *memorySessionStore) Save(_ context.Context, state *BookingState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[state.SessionID] = *state
	return nil
}

func (s *memorySessionStore) Get(_ context.Context, sessionID string) (*BookingState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &state, nil
}

func (s *memorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
