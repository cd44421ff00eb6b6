package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ekaracan/kitapkurdu/config"
	"github.com/ekaracan/kitapkurdu/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "session:"

// RedisStore keeps session records in Redis so any storefront instance can
// serve any browser session.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.RedisConfig) (*RedisStore, error) {
	logger.Info("Initializing Redis session store", map[string]interface{}{
		"host": cfg.Host,
		"port": cfg.Port,
		"db":   cfg.DB,
	})

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Failed to connect to Redis", err, map[string]interface{}{
			"host": cfg.Host,
			"port": cfg.Port,
		})
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis session store ready")
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (Data, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Data{}, ErrNotFound
		}
		logger.Error("Failed to read session from Redis", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return Data{}, err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		logger.Error("Failed to decode session payload", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return Data{}, err
	}
	return data, nil
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, data Data, ttl time.Duration) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, redisKeyPrefix+sessionID, raw, ttl).Err(); err != nil {
		logger.Error("Failed to write session to Redis", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return err
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
		logger.Error("Failed to delete session from Redis", err, map[string]interface{}{
			"session_id": sessionID,
		})
		return err
	}
	return nil
}

// Close closes the underlying Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
