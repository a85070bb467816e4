package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pricingdomain "github.com/seeforge-labs/seeforge-gateway/internal/pricing/domain"
	"github.com/seeforge-labs/seeforge-gateway/internal/session/domain"
)

func setupRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewSessionRepository(client, time.Hour), mr
}

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	state := domain.DefaultState()
	state.ProjectConfig.Name = "My Shop"
	state.ProjectConfig.Features = []string{"payments", "auth"}
	state.ConfigVersion = 3
	state.Pricing = &pricingdomain.Quote{BaseCost: 3000, TotalCost: 3500}
	state.PricingVersion = 3

	require.NoError(t, repo.Save(ctx, "sess-1", state))

	got, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)

	assert.Equal(t, "My Shop", got.ProjectConfig.Name)
	assert.Equal(t, []string{"payments", "auth"}, got.ProjectConfig.Features)
	assert.Equal(t, 3, got.ConfigVersion)
	require.NotNil(t, got.Pricing)
	assert.Equal(t, 3500, got.Pricing.TotalCost)
	assert.True(t, got.PricingFresh())
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo, _ := setupRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_SaveRefreshesTTL(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.DefaultState()))

	// Simulate most of the TTL elapsing, then a new save.
	mr.FastForward(59 * time.Minute)
	require.NoError(t, repo.Save(ctx, "sess-1", domain.DefaultState()))
	mr.FastForward(59 * time.Minute)

	_, err := repo.Get(ctx, "sess-1")
	assert.NoError(t, err, "session should still be alive after a refresh")
}

func TestSessionRepository_ExpiresAfterTTL(t *testing.T) {
	repo, mr := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.DefaultState()))
	mr.FastForward(2 * time.Hour)

	_, err := repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.DefaultState()))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	_, err := repo.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Deleting an absent session is not an error.
	assert.NoError(t, repo.Delete(ctx, "sess-1"))
}
