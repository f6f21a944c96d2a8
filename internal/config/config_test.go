package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
	t.Setenv("MONGODB_DATABASE", "radio_test")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("SEED_ON_STARTUP", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	require.Equal(t, "radio_test", cfg.MongoDB.Database)
	require.Equal(t, "localhost", cfg.Redis.Host)
	require.Equal(t, "6379", cfg.Redis.Port)
	require.Equal(t, 2.5, cfg.RateLimit.RPS)
	require.False(t, cfg.Seed.OnStartup)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("DB_NAME", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:8001", cfg.Server.Addr())
	require.False(t, cfg.Server.IsProduction())
	require.Empty(t, cfg.MongoDB.URI)
	require.Equal(t, "radio_station", cfg.MongoDB.Database)
	require.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 5, cfg.RateLimit.Burst)
	require.True(t, cfg.Seed.OnStartup)
	require.Equal(t, "radio-station", cfg.MinIO.Bucket)
}

func TestLoadConfigLegacyMongoKeys(t *testing.T) {
	t.Setenv("MONGODB_URI", "")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("MONGO_URL", "mongodb://legacy:27017")
	t.Setenv("DB_NAME", "legacy_db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "mongodb://legacy:27017", cfg.MongoDB.URI)
	require.Equal(t, "legacy_db", cfg.MongoDB.Database)
}
