package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"maleri_backend/platform/apperr"
)

const sessionKeyPrefix = "conversation:"

// SessionStore persists conversation state in Redis between turns. Every
// save refreshes the TTL so an active conversation never expires mid-dialogue.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore creates a session store with the given session TTL.
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Save persists the full conversation state.
func (s *SessionStore) Save(ctx context.Context, st *State) error {
	payload, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal conversation state: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(st.ID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("save conversation state: %w", err)
	}
	return nil
}

// Get loads a conversation state by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (*State, error) {
	payload, err := s.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperr.NotFound("konversationen finns inte eller har gått ut")
	}
	if err != nil {
		return nil, fmt.Errorf("load conversation state: %w", err)
	}

	var st State
	if err := json.Unmarshal(payload, &st); err != nil {
		return nil, fmt.Errorf("unmarshal conversation state: %w", err)
	}
	return &st, nil
}

// Delete removes a conversation. Missing keys are not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete conversation state: %w", err)
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
