// File: taskturf/utils/auth_session.go
package utils

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthTokenPrefix = "authToken:"

// SaveAuthToken stores the hash of an issued token for a user with a TTL.
// A token whose hash is no longer present is treated as revoked.
func SaveAuthToken(client *redis.Client, userID, tokenHash string, ttl time.Duration) error {
	ctx := context.Background()
	if err := client.Set(ctx, AuthTokenPrefix+userID, tokenHash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth token: %w", err)
	}
	return nil
}

// CheckAuthToken verifies that the presented token hash matches the stored one.
func CheckAuthToken(client *redis.Client, userID, tokenHash string) (bool, error) {
	ctx := context.Background()
	stored, err := client.Get(ctx, AuthTokenPrefix+userID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check auth token: %w", err)
	}
	return stored == tokenHash, nil
}

// RevokeAuthToken removes the cached token hash, invalidating the session.
func RevokeAuthToken(client *redis.Client, userID string) error {
	ctx := context.Background()
	if err := client.Del(ctx, AuthTokenPrefix+userID).Err(); err != nil {
		return fmt.Errorf("failed to revoke auth token: %w", err)
	}
	return nil
}
