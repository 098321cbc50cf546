// Package cache guarda respostas de analytics por identidade e visão
package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss indica chave ausente ou expirada
var ErrCacheMiss = errors.New("cache miss")

type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
	Close() error
}

// NoopCache nunca guarda nada
type NoopCache struct{}

func NewNoopCache() Cache {
	return NoopCache{}
}

func (NoopCache) Get(context.Context, string) (string, error) {
	return "", ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, string, time.Duration) error {
	return nil
}

func (NoopCache) DeletePrefix(context.Context, string) error {
	return nil
}

func (NoopCache) Ping(context.Context) error {
	return nil
}

func (NoopCache) Close() error {
	return nil
}
