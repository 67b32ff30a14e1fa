package storage

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps one string key per slot under a shared prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "hotel:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) key(slot string) string {
	return r.prefix + slot
}

func (r *RedisStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "load slot %s", key)
	}
	return value, true, nil
}

func (r *RedisStore) Save(ctx context.Context, key string, value []byte) error {
	err := r.client.Set(ctx, r.key(key), value, 0).Err()
	return errors.Wrapf(err, "save slot %s", key)
}

func (r *RedisStore) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, r.key(key)).Err()
	return errors.Wrapf(err, "delete slot %s", key)
}
