package modelcontroller

import (
	"github.com/patrickmn/go-cache"
)

// KeyValueStore remembers small user preferences between screens.
type KeyValueStore interface {
	Float(key string) (float64, bool)
	SetFloat(key string, value float64)
}

// CacheKeyValueStore is a KeyValueStore backed by go-cache without expiry.
type CacheKeyValueStore struct {
	cache *cache.Cache
}

// NewCacheKeyValueStore creates an empty store.
func NewCacheKeyValueStore() *CacheKeyValueStore {
	return &CacheKeyValueStore{cache: cache.New(cache.NoExpiration, 0)}
}

func (s *CacheKeyValueStore) Float(key string) (float64, bool) {
	v, found := s.cache.Get(key)
	if !found {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func (s *CacheKeyValueStore) SetFloat(key string, value float64) {
	s.cache.Set(key, value, cache.NoExpiration)
}
