package notify

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// RedisPublisher pushes messages onto Redis lists, one per channel. Used
// for local and single-node deployments where SQS is not available.
type RedisPublisher struct {
	client *redis.Client
}

func NewRedisPublisher(addr string) *RedisPublisher {
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel Channel, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.client.LPush(ctx, string(channel), payload).Err()
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

var _ Publisher = (*RedisPublisher)(nil)
