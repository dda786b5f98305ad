package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealwise/mealplanner/internal/core/domain"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client, err := Connect(context.Background(), Config{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}

func TestConnect_Unreachable(t *testing.T) {
	_, err := Connect(context.Background(), Config{Addr: "127.0.0.1:1", Timeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestRateLimiter_FixedWindow(t *testing.T) {
	client, mr := setupTestRedis(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		ok, err := limiter.Allow(ctx, "signup:ola@example.com", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, ok, "attempt %d should be allowed", i+1)
	}

	ok, err := limiter.Allow(ctx, "signup:ola@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "fourth attempt should be limited")

	other, err := limiter.Allow(ctx, "signup:kari@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, other, "keys are limited independently")

	mr.FastForward(time.Minute + time.Second)

	ok, err = limiter.Allow(ctx, "signup:ola@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "window should reset after expiry")
}

func TestRateLimiter_WindowAlwaysExpires(t *testing.T) {
	client, mr := setupTestRedis(t)
	limiter := NewRateLimiter(client)
	ctx := context.Background()

	_, err := limiter.Allow(ctx, "signup:ola@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, mr.TTL("ratelimit:signup:ola@example.com"))

	mr.FastForward(20 * time.Second)
	_, err = limiter.Allow(ctx, "signup:ola@example.com", 3, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 40*time.Second, mr.TTL("ratelimit:signup:ola@example.com"), "later attempts keep the window")

	count, err := mr.Get("ratelimit:signup:ola@example.com")
	require.NoError(t, err)
	assert.Equal(t, "2", count)
}

func TestTokenRevoker(t *testing.T) {
	client, mr := setupTestRedis(t)
	revoker := NewTokenRevoker(client)
	ctx := context.Background()

	revoked, err := revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revoker.Revoke(ctx, "jti-1", time.Minute))

	revoked, err = revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Minute)

	revoked, err = revoker.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked, "revocation should expire with the token")
}

func TestWizardStore_RoundTrip(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewWizardStore(client, time.Hour)
	ctx := context.Background()

	w := domain.NewWizard("w-1", time.Now().UTC().Truncate(time.Second))
	fn, email := "Ola", "ola@example.com"
	w, err := w.Update(domain.DraftPatch{FirstName: &fn, Email: &email, Allergies: []string{"peanuts"}}, time.Now())
	require.NoError(t, err)
	w, _ = w.Next(time.Now().UTC().Truncate(time.Second))

	require.NoError(t, store.Save(ctx, w))
	assert.True(t, mr.Exists("wizard:w-1"))
	assert.InDelta(t, time.Hour.Seconds(), mr.TTL("wizard:w-1").Seconds(), 1)

	got, err := store.Load(ctx, "w-1")
	require.NoError(t, err)
	assert.Equal(t, w.State, got.State)
	assert.Equal(t, w.Draft, got.Draft)
	assert.Equal(t, w.Errors, got.Errors)
	assert.True(t, w.UpdatedAt.Equal(got.UpdatedAt))

	require.NoError(t, store.Delete(ctx, "w-1"))
	_, err = store.Load(ctx, "w-1")
	assert.ErrorIs(t, err, domain.ErrWizardNotFound)
}

func TestWizardStore_Expires(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewWizardStore(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, domain.NewWizard("w-2", time.Now())))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "w-2")
	assert.ErrorIs(t, err, domain.ErrWizardNotFound)
}

func TestWizardStore_Corrupt(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewWizardStore(client, time.Minute)

	require.NoError(t, mr.Set("wizard:bad", "{not json"))
	_, err := store.Load(context.Background(), "bad")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrWizardNotFound)
}
