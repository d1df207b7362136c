package cache

import (
	"context"
	"testing"

	"doctor-directory/config"
	"doctor-directory/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_Unreachable(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{Host: "127.0.0.1", Port: "1"})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestRedisPayloadCache_GetErrorIsNotAMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	defer client.Close()

	_, err := NewRedisPayloadCache(client).Get(context.Background(), "doctors")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrCacheMiss)
}
