package repository

import (
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Repository groups the flow-state stores. With a Redis client the stores are
// shared across instances; without one they fall back to in-process maps
// (single instance / development).
type Repository struct {
	Flow     FlowRepository
	Throttle ResendThrottle
}

func NewRepository(rdb *redis.Client, flowTTL, resendCooldown time.Duration, log *zap.Logger) *Repository {
	if rdb != nil {
		return &Repository{
			Flow:     NewRedisFlowRepository(rdb, flowTTL, log),
			Throttle: NewRedisResendThrottle(rdb, resendCooldown, log),
		}
	}

	return &Repository{
		Flow:     NewMemoryFlowRepository(flowTTL),
		Throttle: NewMemoryResendThrottle(resendCooldown, time.Now),
	}
}
