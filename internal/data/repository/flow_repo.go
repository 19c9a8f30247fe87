package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

// FlowRepository stores pending auth contexts keyed by flow ID. Entries are
// ephemeral: every Save refreshes the TTL and Delete destroys the context.
// Find returns (nil, nil) when the flow is absent or expired.
type FlowRepository interface {
	Save(ctx context.Context, flow *entity.PendingAuthContext) error
	Find(ctx context.Context, id uuid.UUID) (*entity.PendingAuthContext, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

const flowKeyPrefix = "authflow:"

type redisFlowRepository struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

func NewRedisFlowRepository(rdb *redis.Client, ttl time.Duration, log *zap.Logger) FlowRepository {
	return &redisFlowRepository{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "flow")),
	}
}

func flowKey(id uuid.UUID) string {
	return flowKeyPrefix + id.String()
}

func (r *redisFlowRepository) Save(ctx context.Context, flow *entity.PendingAuthContext) error {
	payload, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("encode flow %s: %w", flow.ID.String(), err)
	}

	if err := r.rdb.Set(ctx, flowKey(flow.ID), payload, r.ttl).Err(); err != nil {
		r.log.Error("Failed to save flow context",
			zap.Error(err),
			zap.String("flow_id", flow.ID.String()),
		)
		return fmt.Errorf("save flow %s: %w", flow.ID.String(), err)
	}

	return nil
}

func (r *redisFlowRepository) Find(ctx context.Context, id uuid.UUID) (*entity.PendingAuthContext, error) {
	payload, err := r.rdb.Get(ctx, flowKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find flow context",
			zap.Error(err),
			zap.String("flow_id", id.String()),
		)
		return nil, fmt.Errorf("find flow %s: %w", id.String(), err)
	}

	var flow entity.PendingAuthContext
	if err := json.Unmarshal(payload, &flow); err != nil {
		return nil, fmt.Errorf("decode flow %s: %w", id.String(), err)
	}

	return &flow, nil
}

func (r *redisFlowRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.rdb.Del(ctx, flowKey(id)).Err(); err != nil {
		r.log.Error("Failed to delete flow context",
			zap.Error(err),
			zap.String("flow_id", id.String()),
		)
		return fmt.Errorf("delete flow %s: %w", id.String(), err)
	}

	return nil
}
