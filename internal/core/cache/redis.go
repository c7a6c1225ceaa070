package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

type Cache struct {
	RDB    *redis.Client
	Prefix string
	sf     singleflight.Group
}

func New(addr, pass string, db int, prefix string) *Cache {
	return &Cache{
		RDB:    redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		Prefix: prefix,
	}
}

// Key namespaces name under the configured prefix.
func (c *Cache) Key(name string) string { return c.Prefix + name }

// Ping checks the connection; concurrent callers share one round trip.
func (c *Cache) Ping(ctx context.Context) error {
	_, err, _ := c.sf.Do("ping", func() (any, error) {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return nil, c.RDB.Ping(ctx).Err()
	})
	return err
}

func (c *Cache) Close() error { return c.RDB.Close() }
