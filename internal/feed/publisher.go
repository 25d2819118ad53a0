package feed

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergency_dispatch_system/internal/models"
)

// UpdatePublisher - интерфейс для публикации отметок местоположения
type UpdatePublisher interface {
	Publish(ctx context.Context, updates ...models.PositionUpdate) error
}

// RedisUpdatePublisher - реализация UpdatePublisher поверх списка Redis
type RedisUpdatePublisher struct {
	redisClient *redis.Client
	queueKey    string
}

func NewRedisUpdatePublisher(client *redis.Client, queueKey string) *RedisUpdatePublisher {
	return &RedisUpdatePublisher{
		redisClient: client,
		queueKey:    queueKey,
	}
}

// Publish кладет отметки в очередь одним LPUSH, порядок внутри пачки сохраняется
func (p *RedisUpdatePublisher) Publish(ctx context.Context, updates ...models.PositionUpdate) error {
	if len(updates) == 0 {
		return nil
	}
	payloads, err := encodeUpdates(updates)
	if err != nil {
		return err
	}
	if err := p.redisClient.LPush(ctx, p.queueKey, payloads...).Err(); err != nil {
		return fmt.Errorf("failed to publish position updates to Redis: %w", err)
	}
	return nil
}

func encodeUpdates(updates []models.PositionUpdate) ([]interface{}, error) {
	payloads := make([]interface{}, len(updates))
	for i, u := range updates {
		b, err := json.Marshal(u)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal position update: %w", err)
		}
		payloads[i] = b
	}
	return payloads, nil
}
