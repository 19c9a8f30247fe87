package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BerrybeansTech/shopo-ecom-client-sub001/internal/data/entity"
)

// memoryFlowRepository is the in-process fallback used when no Redis address
// is configured, and by tests. Expired entries are evicted lazily on Find.
type memoryFlowRepository struct {
	mu    sync.Mutex
	ttl   time.Duration
	flows map[uuid.UUID]memoryFlowEntry
}

type memoryFlowEntry struct {
	flow      entity.PendingAuthContext
	expiresAt time.Time
}

func NewMemoryFlowRepository(ttl time.Duration) FlowRepository {
	return &memoryFlowRepository{
		ttl:   ttl,
		flows: make(map[uuid.UUID]memoryFlowEntry),
	}
}

func (r *memoryFlowRepository) Save(_ context.Context, flow *entity.PendingAuthContext) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.flows[flow.ID] = memoryFlowEntry{
		flow:      *flow,
		expiresAt: time.Now().Add(r.ttl),
	}

	return nil
}

func (r *memoryFlowRepository) Find(_ context.Context, id uuid.UUID) (*entity.PendingAuthContext, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.flows[id]
	if !ok {
		return nil, nil
	}

	if time.Now().After(entry.expiresAt) {
		delete(r.flows, id)
		return nil, nil
	}

	flow := entry.flow
	return &flow, nil
}

func (r *memoryFlowRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.flows, id)
	return nil
}
