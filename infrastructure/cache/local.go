package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type cacheEntry struct {
	value     string
	expiresAt time.Time
}

// LocalCache é o cache em memória usado quando o Redis não está configurado ou falha
type LocalCache struct {
	data     map[string]cacheEntry
	mu       sync.RWMutex
	stopCh   chan struct{}
	stopOnce sync.Once
	now      func() time.Time
}

func NewLocalCache(cleanupInterval time.Duration) Cache {
	return newLocalCache(cleanupInterval, time.Now)
}

func newLocalCache(cleanupInterval time.Duration, now func() time.Time) *LocalCache {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}

	c := &LocalCache{
		data:   make(map[string]cacheEntry),
		stopCh: make(chan struct{}),
		now:    now,
	}

	go c.cleanupLoop(cleanupInterval)

	logrus.WithField("cleanup_interval", cleanupInterval.String()).Info("Cache local em memória inicializado")
	return c
}

func (c *LocalCache) Get(_ context.Context, key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.data[key]
	if !ok || c.expired(entry) {
		return "", ErrCacheMiss
	}

	return entry.value, nil
}

func (c *LocalCache) Set(_ context.Context, key string, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := cacheEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}

	c.data[key] = entry
	return nil
}

func (c *LocalCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.data {
		if strings.HasPrefix(key, prefix) {
			delete(c.data, key)
		}
	}
	return nil
}

func (c *LocalCache) Ping(context.Context) error {
	return nil
}

func (c *LocalCache) Close() error {
	c.stopOnce.Do(func() { close(c.stopCh) })
	return nil
}

func (c *LocalCache) expired(entry cacheEntry) bool {
	return !entry.expiresAt.IsZero() && !entry.expiresAt.After(c.now())
}

func (c *LocalCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

func (c *LocalCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	expired := 0
	for key, entry := range c.data {
		if c.expired(entry) {
			delete(c.data, key)
			expired++
		}
	}

	if expired > 0 {
		logrus.WithField("expired_entries", expired).Debug("Limpeza do cache local concluída")
	}
}
