package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AuthSessionPrefix = "authSession:"

// AuthSession is the identity record kept for a signed-in diner. It is the
// only state this system keeps outside process memory.
type AuthSession struct {
	UserID        string    `json:"userId"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	TokenHash     string    `json:"tokenHash"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveAuthSession saves the session record in Redis with a TTL.
func SaveAuthSession(client *redis.Client, sessionID string, session AuthSession, ttl time.Duration) error {
	session.LastUpdatedAt = time.Now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal auth session: %w", err)
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthSessionPrefix+sessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save auth session: %w", err)
	}
	return nil
}

// GetAuthSession retrieves the session record from Redis.
func GetAuthSession(client *redis.Client, sessionID string) (*AuthSession, error) {
	ctx := context.Background()
	data, err := client.Get(ctx, AuthSessionPrefix+sessionID).Result()
	if err != nil {
		return nil, err
	}
	var session AuthSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal auth session: %w", err)
	}
	return &session, nil
}

// DeleteAuthSession removes a session record from Redis.
func DeleteAuthSession(client *redis.Client, sessionID string) error {
	ctx := context.Background()
	return client.Del(ctx, AuthSessionPrefix+sessionID).Err()
}
