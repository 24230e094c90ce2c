package config_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"record-api/config"
)

func TestCacheEnabled(t *testing.T) {
	assert.False(t, (&config.Config{}).CacheEnabled())
	assert.True(t, (&config.Config{RedisURL: "redis://localhost:6379"}).CacheEnabled())
}

func TestConnectMongoDB_MissingURI(t *testing.T) {
	_, err := config.ConnectMongoDB(context.Background(), &config.Config{MongoConnectTimeout: time.Second})
	assert.Error(t, err)
}

func TestConnectMongoDB_Unreachable(t *testing.T) {
	_, err := config.ConnectMongoDB(context.Background(), &config.Config{
		MongoURI:            "mongodb://localhost:1/?serverSelectionTimeoutMS=200",
		MongoDatabase:       "test",
		MongoConnectTimeout: 2 * time.Second,
	})
	assert.Error(t, err)
}

func TestConnectRedis_InvalidURL(t *testing.T) {
	_, err := config.ConnectRedis(context.Background(), &config.Config{RedisURL: "not-a-valid-url"})
	assert.Error(t, err)
}

// Integration tests, skipped unless MONGO_URI / REDIS_URL are set.
func TestConnectIntegration(t *testing.T) {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		m, err := config.ConnectMongoDB(context.Background(), &config.Config{
			MongoURI: uri, MongoDatabase: "test", MongoConnectTimeout: 10 * time.Second,
		})
		require.NoError(t, err)
		assert.NoError(t, m.Ping(context.Background()))
		assert.NoError(t, m.Close(context.Background()))
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		r, err := config.ConnectRedis(context.Background(), &config.Config{RedisURL: url})
		require.NoError(t, err)
		assert.NoError(t, r.Ping(context.Background()))
		assert.NoError(t, r.Close())
	}
}
