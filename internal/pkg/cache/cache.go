package cache

import (
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a cache entry is missing. Redis misses are
// normalized onto this error so callers need not know the backing store.
var ErrNotFound = errors.New("cache: entry not found")

var client *redis.Client

// Populate injects the redis client every Set instance created afterwards uses.
// It must be called once during bootstrap, before any cache instance is used.
func Populate(c *redis.Client) {
	client = c
}
