// Package session keeps short-lived per-user conversation state, such as the
// proposal waiting for /approve.
package session

import (
	"strconv"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultSize = 1000
	// maxTTL bounds every entry; Set clamps longer TTLs to it.
	maxTTL = 7 * 24 * time.Hour
)

// Store is a per-user key/value store with expiry. Last write wins.
type Store interface {
	Set(userID int64, key, value string, ttl time.Duration)
	Get(userID int64, key string) (string, bool)
	Delete(userID int64, keys ...string)
}

type entry struct {
	value     string
	expiresAt time.Time
}

type lruStore struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, entry]
	now   func() time.Time
}

// New returns an in-memory Store holding at most size entries.
func New(size int) Store {
	return newStore(size, time.Now)
}

func newStore(size int, now func() time.Time) *lruStore {
	if size <= 0 {
		size = defaultSize
	}
	return &lruStore{
		cache: expirable.NewLRU[string, entry](size, nil, maxTTL),
		now:   now,
	}
}

func (s *lruStore) Set(userID int64, key, value string, ttl time.Duration) {
	if ttl <= 0 || ttl > maxTTL {
		ttl = maxTTL
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache.Add(cacheKey(userID, key), entry{value: value, expiresAt: s.now().Add(ttl)})
}

func (s *lruStore) Get(userID int64, key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	k := cacheKey(userID, key)
	e, ok := s.cache.Get(k)
	if !ok {
		return "", false
	}
	if !s.now().Before(e.expiresAt) {
		s.cache.Remove(k)
		return "", false
	}
	return e.value, true
}

func (s *lruStore) Delete(userID int64, keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, key := range keys {
		s.cache.Remove(cacheKey(userID, key))
	}
}

func cacheKey(userID int64, key string) string {
	return strconv.FormatInt(userID, 10) + ":" + key
}
