package credential

import (
	"context"
	"fmt"

	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "eventhub:credential:"

type RedisStoreImpl struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) Store {
	return &RedisStoreImpl{
		client: client,
		key:    keyPrefix + key,
	}
}

func (s *RedisStoreImpl) Get(ctx context.Context) (string, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err == redis.Nil {
		return "", apperrors.ErrCredentialNotFound
	}
	if err != nil {
		logger.WithComponent("credential").Error("read token failed", zap.String("key", s.key), zap.Error(err))
		return "", fmt.Errorf("get credential: %w", err)
	}
	if token == "" {
		return "", apperrors.ErrCredentialNotFound
	}
	return token, nil
}

func (s *RedisStoreImpl) Set(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}
	if err := s.client.Set(ctx, s.key, token, 0).Err(); err != nil {
		return fmt.Errorf("set credential: %w", err)
	}
	return nil
}

func (s *RedisStoreImpl) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("delete credential: %w", err)
	}
	return nil
}
