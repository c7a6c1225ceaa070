package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"voucher-management/internal/core/cache"
	"voucher-management/internal/domain"
)

// setIfExists overwrites a hash field only when it is already present.
var setIfExists = redis.NewScript(`
if redis.call('HEXISTS', KEYS[1], ARGV[1]) == 1 then
	redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

// hashStore keeps one entity kind in a redis hash: field = id, value = the
// entity's record line.
type hashStore[V any] struct {
	c      *cache.Cache
	key    string
	encode func(V) []string
	decode func([]string) (V, error)
}

func (h *hashStore[V]) all(ctx context.Context) ([]V, error) {
	m, err := h.c.RDB.HGetAll(ctx, h.key).Result()
	if err != nil {
		return nil, persistErr("hgetall "+h.key, err)
	}
	out := make([]V, 0, len(m))
	for id, line := range m {
		v, err := h.parse(line)
		if err != nil {
			return nil, fmt.Errorf("%s[%s]: %w", h.key, id, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func (h *hashStore[V]) get(ctx context.Context, id string) (V, bool, error) {
	var zero V
	line, err := h.c.RDB.HGet(ctx, h.key, id).Result()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, persistErr("hget "+h.key, err)
	}
	v, err := h.parse(line)
	if err != nil {
		return zero, false, err
	}
	return v, true, nil
}

func (h *hashStore[V]) insert(ctx context.Context, id string, v V) error {
	line, err := EncodeLine(h.encode(v))
	if err != nil {
		return err
	}
	ok, err := h.c.RDB.HSetNX(ctx, h.key, id, line).Result()
	if err != nil {
		return persistErr("hsetnx "+h.key, err)
	}
	if !ok {
		return domain.ErrDuplicateKey
	}
	return nil
}

func (h *hashStore[V]) replace(ctx context.Context, id string, v V) error {
	line, err := EncodeLine(h.encode(v))
	if err != nil {
		return err
	}
	n, err := setIfExists.Run(ctx, h.c.RDB, []string{h.key}, id, line).Int()
	if err != nil {
		return persistErr("update "+h.key, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (h *hashStore[V]) remove(ctx context.Context, id string) error {
	n, err := h.c.RDB.HDel(ctx, h.key, id).Result()
	if err != nil {
		return persistErr("hdel "+h.key, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (h *hashStore[V]) parse(line string) (V, error) {
	rec, err := DecodeLine(line)
	if err != nil {
		var zero V
		return zero, err
	}
	return h.decode(rec)
}
