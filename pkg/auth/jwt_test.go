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

func TestGenerateAndValidateJWT(t *testing.T) {
	secret := "test-secret"

	token, err := GenerateJWT(42, "alice@example.com", secret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, secret)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "alice@example.com", claims.Email)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT(42, "alice@example.com", "right-secret", 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "wrong-secret")
	assert.Error(t, err)
}

func TestValidateJWT_Garbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token", "secret")
	assert.Error(t, err)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	mr := miniredis.RunT(t)
	client := cache.NewClientFromRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	blacklist := NewTokenBlacklist(client)

	secret := "test-secret"
	token, err := GenerateJWT(7, "bob@example.com", secret, 24)
	require.NoError(t, err)

	ctx := context.Background()

	// Valid before revocation
	claims, err := ValidateJWTWithBlacklist(ctx, token, secret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)

	// Revoke and validate again
	require.NoError(t, blacklist.Add(ctx, token, time.Hour))

	_, err = ValidateJWTWithBlacklist(ctx, token, secret, blacklist)
	assert.ErrorContains(t, err, "revoked")
}
