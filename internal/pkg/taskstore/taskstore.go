// Package taskstore holds ingestion task statuses in an explicit, expiring
// keyed store. Task lifecycle is owned by the report service; entries are
// evicted automatically after their TTL so the store never grows unbounded.
package taskstore

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Store[T any] struct {
	ttl time.Duration
	c   *cache.Cache
}

func New[T any](ttl time.Duration) *Store[T] {
	return &Store[T]{
		ttl: ttl,
		c:   cache.New(ttl, time.Minute*10),
	}
}

func (s *Store[T]) Put(id string, value T) {
	s.c.Set(id, value, s.ttl)
}

func (s *Store[T]) Get(id string) (T, bool) {
	var zero T
	v, ok := s.c.Get(id)
	if !ok {
		return zero, false
	}
	value, ok := v.(T)
	if !ok {
		return zero, false
	}
	return value, true
}

func (s *Store[T]) Delete(id string) {
	s.c.Delete(id)
}

func (s *Store[T]) Count() int {
	return s.c.ItemCount()
}
