package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripfolio/tripfolio-api/pkg/cache"
)

func TestTokenBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	blacklist := NewTokenBlacklist(client)

	ctx := context.Background()

	blacklisted, err := blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)

	require.NoError(t, blacklist.Add(ctx, "some-token", time.Minute))

	blacklisted, err = blacklist.IsBlacklisted(ctx, "some-token")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	// Other tokens are unaffected
	blacklisted, err = blacklist.IsBlacklisted(ctx, "other-token")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}

func TestTokenBlacklist_Expiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	blacklist := NewTokenBlacklist(client)

	ctx := context.Background()

	require.NoError(t, blacklist.Add(ctx, "short-lived", time.Second))

	mr.FastForward(2 * time.Second)

	blacklisted, err := blacklist.IsBlacklisted(ctx, "short-lived")
	require.NoError(t, err)
	assert.False(t, blacklisted)
}
