package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/session/repository"
)

// Service is the session store: the single writer of session state.
// Every mutation goes through Dispatch, which runs the pure reducer over
// the stored snapshot and persists the result. Consumers get value
// snapshots and can never mutate the stored state directly.
type Service struct {
	repo *repository.SessionRepository
}

// NewService creates a new session service.
func NewService(repo *repository.SessionRepository) *Service {
	return &Service{repo: repo}
}

// Start creates a fresh session with default state and returns its id.
func (s *Service) Start(ctx context.Context) (string, domain.State, error) {
	sessionID := uuid.New().String()
	state := domain.DefaultState()

	if err := s.repo.Save(ctx, sessionID, state); err != nil {
		return "", domain.State{}, err
	}
	return sessionID, state, nil
}

// Get returns the current snapshot for a session.
func (s *Service) Get(ctx context.Context, sessionID string) (domain.State, error) {
	return s.repo.Get(ctx, sessionID)
}

// Dispatch applies one action to the session and returns the new snapshot.
// Unknown actions leave the state unchanged (the reducer's no-op rule), but
// the snapshot is still re-saved so the session TTL slides on activity.
func (s *Service) Dispatch(ctx context.Context, sessionID string, action domain.Action) (domain.State, error) {
	state, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return domain.State{}, err
	}

	next := domain.Apply(state, action)
	if err := s.repo.Save(ctx, sessionID, next); err != nil {
		return domain.State{}, err
	}
	return next, nil
}
