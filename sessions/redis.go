package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/infinitybotlist/eureka/jsonimpl"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "gbsess:{"

// RedisStore persists sessions in Redis with the session lifetime as
// key TTL, so expiry needs no sweeping.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedis(url string) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)

	if err != nil {
		return nil, err
	}

	return &RedisStore{rdb: redis.NewClient(opts)}, nil
}

func key(id string) string {
	return redisKeyPrefix + id + "}"
}

func (r *RedisStore) Get(ctx context.Context, id string) (*Data, error) {
	val, err := r.rdb.Get(ctx, key(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	var d Data

	if err := jsonimpl.Unmarshal([]byte(val), &d); err != nil {
		return nil, err
	}

	if d.Expired(time.Now()) {
		return nil, nil
	}

	return &d, nil
}

func (r *RedisStore) Put(ctx context.Context, d *Data) error {
	b, err := jsonimpl.Marshal(d)

	if err != nil {
		return err
	}

	ttl := time.Until(d.ExpiresAt)

	if ttl <= 0 {
		ttl = time.Minute
	}

	return r.rdb.Set(ctx, key(d.ID), string(b), ttl).Err()
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, key(id)).Err()
}

// DeleteExpired is a no-op: Redis expires the keys itself.
func (r *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}
