package config

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "db:5432/parking")
	t.Setenv("ANALYTICS_CACHE_TTL", "2m")
	t.Setenv("ANALYTICS_CACHE_DRIVER", "none")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://postgres:root@db:5432/parking?sslmode=disable", cfg.Database.DSN)
	assert.Equal(t, 2*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "none", cfg.Cache.Driver)
	assert.Equal(t, "es", cfg.Analytics.Locale)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"http://localhost:4200", "http://localhost:3000"}, cfg.Server.AllowedOrigins)
}

func TestAppLocation(t *testing.T) {
	assert.Equal(t, time.UTC, App{}.Location())
	assert.Equal(t, time.UTC, App{Timezone: "Lugar/Inexistente"}.Location())

	loc := App{Timezone: "America/Bogota"}.Location()
	assert.Equal(t, "America/Bogota", loc.String())
}

func TestBuildDSN(t *testing.T) {
	dsn := buildDSN(Database{Driver: "postgres", User: "u", Password: "p", URL: "h:1/db"})
	assert.Equal(t, "postgres://u:p@h:1/db", dsn)
}
