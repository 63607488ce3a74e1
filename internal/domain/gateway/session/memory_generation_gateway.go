package session

import (
	"context"
	"strconv"
	"sync"
	"time"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/model"
)

type MemoryGenerationGateway struct {
	generations map[string]entity.Generation
	mutex       sync.RWMutex
	now         func() time.Time
}

func NewMemoryGenerationGateway() *MemoryGenerationGateway {
	return &MemoryGenerationGateway{
		generations: make(map[string]entity.Generation),
		now:         time.Now,
	}
}

func (gateway *MemoryGenerationGateway) Save(_ context.Context, gen entity.Generation) error {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()
	gateway.generations[gen.ID] = gen
	return nil
}

func (gateway *MemoryGenerationGateway) FindByID(_ context.Context, id string) (*entity.Generation, error) {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	gen, ok := gateway.generations[id]
	if !ok || gen.Expired(gateway.now()) {
		return nil, nil
	}
	return &gen, nil
}

func (gateway *MemoryGenerationGateway) PurgeExpired(_ context.Context) (int, error) {
	gateway.mutex.Lock()
	defer gateway.mutex.Unlock()

	now := gateway.now()
	purged := 0
	for id, gen := range gateway.generations {
		if gen.Expired(now) {
			delete(gateway.generations, id)
			purged++
		}
	}
	return purged, nil
}

func (gateway *MemoryGenerationGateway) Health(_ context.Context) model.ComponentHealthStatus {
	gateway.mutex.RLock()
	defer gateway.mutex.RUnlock()

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"type":        "memory",
			"generations": strconv.Itoa(len(gateway.generations)),
		},
	}
}
