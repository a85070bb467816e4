package repository

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seeforge-labs/seeforge-gateway/internal/wizard/domain"
)

const stepKeyPrefix = "sfg:wizard:" // Wizard position per session: sfg:wizard:{session_id}

// StepRepository persists the wizard position for a session. The position
// lives beside, not inside, the session snapshot: the wizard owns its own
// counter and the session store's action set stays closed.
type StepRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStepRepository creates a new StepRepository.
func NewStepRepository(client *redis.Client, ttl time.Duration) *StepRepository {
	return &StepRepository{client: client, ttl: ttl}
}

// Get returns the current step for a session, defaulting to the first step
// for sessions that have not touched the wizard yet.
func (r *StepRepository) Get(ctx context.Context, sessionID string) (domain.Step, error) {
	data, err := r.client.Get(ctx, r.key(sessionID)).Result()
	if err == redis.Nil {
		return domain.FirstStep, nil
	}
	if err != nil {
		return domain.FirstStep, fmt.Errorf("failed to get wizard step: %w", err)
	}

	n, err := strconv.Atoi(data)
	if err != nil || n < int(domain.FirstStep) || n > int(domain.LastStep) {
		return domain.FirstStep, nil
	}
	return domain.Step(n), nil
}

// Save stores the current step and refreshes its TTL.
func (r *StepRepository) Save(ctx context.Context, sessionID string, step domain.Step) error {
	if err := r.client.Set(ctx, r.key(sessionID), int(step), r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save wizard step: %w", err)
	}
	return nil
}

// Reset rewinds the wizard to the first step.
func (r *StepRepository) Reset(ctx context.Context, sessionID string) error {
	return r.Save(ctx, sessionID, domain.FirstStep)
}

func (r *StepRepository) key(sessionID string) string {
	return stepKeyPrefix + sessionID
}
