package prefs

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisKey is the hash holding the settings
const DefaultRedisKey = "solitaire:prefs"

// RedisBackend stores settings as the fields of one Redis hash
type RedisBackend struct {
	Client redis.UniversalClient
	Key    string
}

func NewRedisBackend(client redis.UniversalClient, key string) *RedisBackend {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisBackend{Client: client, Key: key}
}

func (r *RedisBackend) Load(ctx context.Context) (map[string]string, error) {
	return r.Client.HGetAll(ctx, r.Key).Result()
}

func (r *RedisBackend) Store(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	fields := make(map[string]interface{}, len(values))
	for k, v := range values {
		fields[k] = v
	}
	return r.Client.HSet(ctx, r.Key, fields).Err()
}
