package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/careloop/careloop/services/auth/domain"
)

// One pending ciphertext per identity; every save overwrites the previous
// one, so only the most recently issued OTP is ever verifiable. Expiry is
// checked from the encrypted payload, not a key TTL; the generous TTL here
// only keeps abandoned sign-in attempts from accumulating.
const otpKeyPrefix = "otp:"

// SaveOTP stores the encrypted OTP payload for the identity
func (r *AuthRepo) SaveOTP(ctx context.Context, mobileNo, ciphertext string) error {
	if err := r.redisClient.Set(ctx, otpKeyPrefix+mobileNo, ciphertext, 24*time.Hour); err != nil {
		return fmt.Errorf("failed to save OTP: %w", err)
	}
	return nil
}

// GetOTP loads the pending ciphertext for the identity
func (r *AuthRepo) GetOTP(ctx context.Context, mobileNo string) (string, error) {
	ciphertext, err := r.redisClient.Get(ctx, otpKeyPrefix+mobileNo)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", fmt.Errorf("no pending OTP: %w", domain.ErrNotFound)
		}
		return "", fmt.Errorf("failed to get OTP: %w", err)
	}
	return ciphertext, nil
}

// ClearOTP invalidates the pending OTP for the identity
func (r *AuthRepo) ClearOTP(ctx context.Context, mobileNo string) error {
	if err := r.redisClient.Delete(ctx, otpKeyPrefix+mobileNo); err != nil {
		return fmt.Errorf("failed to clear OTP: %w", err)
	}
	return nil
}
