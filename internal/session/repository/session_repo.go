package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
)

const sessionKeyPrefix = "sfg:session:" // Key for session state: sfg:session:{session_id}

// SessionRepository persists session snapshots in Redis. Each session lives
// under one key as a JSON blob with a sliding TTL; a session that goes idle
// past the TTL simply disappears and the visitor starts over.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

// Get retrieves a session snapshot.
func (r *SessionRepository) Get(ctx context.Context, sessionID string) (domain.State, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return domain.State{}, domain.ErrSessionNotFound
	}
	if err != nil {
		return domain.State{}, fmt.Errorf("failed to get session: %w", err)
	}

	var state domain.State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return domain.State{}, fmt.Errorf("failed to unmarshal session state: %w", err)
	}
	return state, nil
}

// Save stores a session snapshot and refreshes its TTL.
func (r *SessionRepository) Save(ctx context.Context, sessionID string, state domain.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session state: %w", err)
	}

	if err := r.client.Set(ctx, r.key(sessionID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes a session.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, r.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (r *SessionRepository) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
