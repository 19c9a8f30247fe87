package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ResendThrottle enforces the per-challenge cooldown between OTP requests.
// Remaining reports how long the caller must still wait (zero means a new
// request is allowed). Start restarts the full cooldown window; it is called
// only after a successful issuance, so a failed request leaves the timer
// untouched and the user may retry immediately.
type ResendThrottle interface {
	Remaining(ctx context.Context, key string) (time.Duration, error)
	Start(ctx context.Context, key string) error
	Clear(ctx context.Context, key string) error
}

const throttleKeyPrefix = "otpresend:"

type redisResendThrottle struct {
	rdb      *redis.Client
	cooldown time.Duration
	log      *zap.Logger
}

func NewRedisResendThrottle(rdb *redis.Client, cooldown time.Duration, log *zap.Logger) ResendThrottle {
	return &redisResendThrottle{
		rdb:      rdb,
		cooldown: cooldown,
		log:      log.With(zap.String("repository", "resend_throttle")),
	}
}

func (t *redisResendThrottle) Remaining(ctx context.Context, key string) (time.Duration, error) {
	ttl, err := t.rdb.PTTL(ctx, throttleKeyPrefix+key).Result()
	if err != nil {
		t.log.Error("Failed to read resend cooldown", zap.Error(err), zap.String("key", key))
		return 0, fmt.Errorf("read cooldown for %s: %w", key, err)
	}

	// PTTL returns a negative duration when the key is absent or has no expiry.
	if ttl < 0 {
		return 0, nil
	}

	return ttl, nil
}

func (t *redisResendThrottle) Start(ctx context.Context, key string) error {
	if err := t.rdb.Set(ctx, throttleKeyPrefix+key, "1", t.cooldown).Err(); err != nil {
		t.log.Error("Failed to start resend cooldown", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("start cooldown for %s: %w", key, err)
	}

	return nil
}

func (t *redisResendThrottle) Clear(ctx context.Context, key string) error {
	if err := t.rdb.Del(ctx, throttleKeyPrefix+key).Err(); err != nil {
		t.log.Error("Failed to clear resend cooldown", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("clear cooldown for %s: %w", key, err)
	}

	return nil
}

// memoryResendThrottle keeps deadlines in-process. The clock is injectable so
// cooldown expiry can be tested with simulated time.
type memoryResendThrottle struct {
	mu        sync.Mutex
	cooldown  time.Duration
	now       func() time.Time
	deadlines map[string]time.Time
}

func NewMemoryResendThrottle(cooldown time.Duration, now func() time.Time) ResendThrottle {
	if now == nil {
		now = time.Now
	}

	return &memoryResendThrottle{
		cooldown:  cooldown,
		now:       now,
		deadlines: make(map[string]time.Time),
	}
}

func (t *memoryResendThrottle) Remaining(_ context.Context, key string) (time.Duration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	deadline, ok := t.deadlines[key]
	if !ok {
		return 0, nil
	}

	remaining := deadline.Sub(t.now())
	if remaining <= 0 {
		delete(t.deadlines, key)
		return 0, nil
	}

	return remaining, nil
}

func (t *memoryResendThrottle) Start(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.deadlines[key] = t.now().Add(t.cooldown)
	return nil
}

func (t *memoryResendThrottle) Clear(_ context.Context, key string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.deadlines, key)
	return nil
}
