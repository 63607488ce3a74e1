package session

import (
	"context"
	"fmt"
	"time"

	"weather-story/internal/domain/entity"
	"weather-story/internal/domain/model"
	"weather-story/pkg/redis"
)

const generationKeyPrefix = "generation:"

// RedisGenerationGateway stores generations as JSON with a key TTL matching their expiry
type RedisGenerationGateway struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisGenerationGateway(client *redis.Client) *RedisGenerationGateway {
	return &RedisGenerationGateway{client: client, now: time.Now}
}

func (gateway *RedisGenerationGateway) Save(ctx context.Context, gen entity.Generation) error {
	var ttl time.Duration
	if !gen.ExpiresAt.IsZero() {
		ttl = gen.ExpiresAt.Sub(gateway.now())
		if ttl <= 0 {
			return nil
		}
	}

	if err := gateway.client.SetJSON(ctx, generationKeyPrefix+gen.ID, gen, ttl); err != nil {
		return fmt.Errorf("failed to store generation %s: %w", gen.ID, err)
	}
	return nil
}

func (gateway *RedisGenerationGateway) FindByID(ctx context.Context, id string) (*entity.Generation, error) {
	var gen entity.Generation
	found, err := gateway.client.GetJSON(ctx, generationKeyPrefix+id, &gen)
	if err != nil {
		return nil, fmt.Errorf("failed to load generation %s: %w", id, err)
	}
	if !found || gen.Expired(gateway.now()) {
		return nil, nil
	}
	return &gen, nil
}

// PurgeExpired is a no-op: Redis expires the keys itself.
func (gateway *RedisGenerationGateway) PurgeExpired(_ context.Context) (int, error) {
	return 0, nil
}

func (gateway *RedisGenerationGateway) Health(ctx context.Context) model.ComponentHealthStatus {
	check := gateway.client.HealthCheck(ctx)

	details := map[string]string{"type": "redis"}
	for key, value := range check.Details {
		details[key] = value
	}

	status := model.StatusDown
	if check.Status == redis.StatusUp {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{Status: status, Details: details}
}
