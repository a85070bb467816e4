package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seeforge-labs/seeforge-gateway/internal/wizard/domain"
)

func setupStepRepo(t *testing.T) (*StepRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStepRepository(client, time.Hour), mr
}

func TestStepRepository_DefaultsToFirstStep(t *testing.T) {
	repo, _ := setupStepRepo(t)

	step, err := repo.Get(context.Background(), "fresh-session")
	require.NoError(t, err)
	assert.Equal(t, domain.FirstStep, step)
}

func TestStepRepository_SaveAndGet(t *testing.T) {
	repo, _ := setupStepRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.StepUITemplate))

	step, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepUITemplate, step)
}

func TestStepRepository_GarbageValueFallsBackToFirstStep(t *testing.T) {
	repo, mr := setupStepRepo(t)
	ctx := context.Background()

	// Values outside the step range or non-numeric degrade to the first
	// step instead of erroring out the whole wizard.
	require.NoError(t, mr.Set("sfg:wizard:sess-1", "banana"))
	step, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.FirstStep, step)

	require.NoError(t, mr.Set("sfg:wizard:sess-1", "99"))
	step, err = repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.FirstStep, step)
}

func TestStepRepository_Reset(t *testing.T) {
	repo, _ := setupStepRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.LastStep))
	require.NoError(t, repo.Reset(ctx, "sess-1"))

	step, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.FirstStep, step)
}

func TestStepRepository_ExpiresWithTTL(t *testing.T) {
	repo, mr := setupStepRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.StepBackend))
	mr.FastForward(2 * time.Hour)

	step, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.FirstStep, step)
}
