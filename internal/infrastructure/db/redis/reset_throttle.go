package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// One reset link per address per window keeps the mailer out of abuse
// loops without locking a genuine user out for long.
const resetCooldown = 5 * time.Minute

// ResetThrottle rate-limits forgot-password requests, backed by Redis.
// Key format: pwreset:<lowercased email>
type ResetThrottle struct {
	client *redis.Client
}

// NewResetThrottle creates a ResetThrottle wrapping the given Redis client.
func NewResetThrottle(client *redis.Client) *ResetThrottle {
	return &ResetThrottle{client: client}
}

// IsLimited reports whether a reset link was already sent for this email
// within the cooldown window.
func (t *ResetThrottle) IsLimited(ctx context.Context, email string) (bool, error) {
	n, err := t.client.Exists(ctx, t.key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("reset throttle check: %w", err)
	}
	return n > 0, nil
}

// Mark records that a reset link was just sent (expires after the cooldown).
func (t *ResetThrottle) Mark(ctx context.Context, email string) error {
	return t.client.Set(ctx, t.key(email), "1", resetCooldown).Err()
}

func (t *ResetThrottle) key(email string) string {
	return "pwreset:" + strings.ToLower(email)
}
