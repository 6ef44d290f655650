package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"minutes-recharge/internal/infra"
	"minutes-recharge/internal/usecase"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "checkout:current:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *slog.Logger) usecase.SessionStore {
	return &redisStore{client: client, ttl: ttl, logger: logger}
}

func (s *redisStore) SetCurrentReference(ctx context.Context, sessionID, reference string) error {
	if err := s.client.Set(ctx, keyPrefix+sessionID, reference, s.ttl).Err(); err != nil {
		return infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to store current reference", err)
	}
	return nil
}

func (s *redisStore) CurrentReference(ctx context.Context, sessionID string) (string, bool, error) {
	val, err := s.client.Get(ctx, keyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to read current reference", err)
	}
	return val, true, nil
}

func (s *redisStore) ClearCurrentReference(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return infra.WrapErr(s.logger, infra.KindCacheFailure, "failed to clear current reference", err)
	}
	return nil
}
