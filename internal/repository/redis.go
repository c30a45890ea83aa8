package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"messageboard/internal/service"
)

// RedisLedger keeps a "msgid:<id>" key with the creation time of every saved
// message.
type RedisLedger struct {
	client *redis.Client
}

func NewRedisLedger(addr, password string) *RedisLedger {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}
	return &RedisLedger{client: redis.NewClient(opts)}
}

var _ service.MessageLedger = (*RedisLedger)(nil)

func (rl *RedisLedger) Ping(ctx context.Context) error {
	return rl.client.Ping(ctx).Err()
}

func (rl *RedisLedger) Close() error {
	return rl.client.Close()
}

func (rl *RedisLedger) StoreSavedMessage(ctx context.Context, id string, createdAt time.Time) error {
	return rl.client.Set(ctx, "msgid:"+id, createdAt.Format(time.RFC3339), 0).Err()
}
