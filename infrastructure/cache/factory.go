package cache

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	DriverRedis  = "redis"
	DriverMemory = "memory"
	DriverNone   = "none"
)

// New escolhe a implementação pelo driver. Falha no Redis cai para o cache local.
func New(ctx context.Context, driver, redisURL string) Cache {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverNone:
		logrus.Info("Cache de analytics desabilitado")
		return NewNoopCache()
	case DriverRedis:
		c, err := NewRedisCache(ctx, redisURL)
		if err == nil {
			return c
		}
		logrus.WithError(err).Warn("Redis indisponível, usando cache local em memória")
		return NewLocalCache(time.Minute)
	default:
		return NewLocalCache(time.Minute)
	}
}
