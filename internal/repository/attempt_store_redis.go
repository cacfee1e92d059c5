package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go_chess_puzzle_keep/internal/middleware"
	"go_chess_puzzle_keep/internal/model"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const attemptKeyPrefix = "chess_puzzle_keep:attempt:"

// RedisAttemptStore は挑戦を JSON で Redis に保存します。キーごとに単一の SET で置き換えます。
type RedisAttemptStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

func NewRedisAttemptStore(rdb *goredis.Client, ttl time.Duration) *RedisAttemptStore {
	return &RedisAttemptStore{rdb: rdb, ttl: ttl}
}

// NewRedisClient は接続して疎通確認したクライアントを返します。
func NewRedisClient(ctx context.Context, addr, password string, db int) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func attemptKey(id uuid.UUID) string {
	return attemptKeyPrefix + id.String()
}

func (s *RedisAttemptStore) Save(ctx context.Context, rec *AttemptRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("RedisAttemptStore.Save: %w", err)
	}
	if err := s.rdb.Set(ctx, attemptKey(rec.AttemptID), raw, s.ttl).Err(); err != nil {
		middleware.GetLogger(ctx).Error("Error saving attempt to redis", "error", err, "attempt_id", rec.AttemptID.String())
		return fmt.Errorf("RedisAttemptStore.Save: %w", err)
	}
	return nil
}

func (s *RedisAttemptStore) Load(ctx context.Context, attemptID uuid.UUID) (*AttemptRecord, error) {
	raw, err := s.rdb.Get(ctx, attemptKey(attemptID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, model.ErrNotFound
		}
		middleware.GetLogger(ctx).Error("Error loading attempt from redis", "error", err, "attempt_id", attemptID.String())
		return nil, fmt.Errorf("RedisAttemptStore.Load: %w", err)
	}
	var rec AttemptRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("RedisAttemptStore.Load: decode: %w", err)
	}
	return &rec, nil
}

func (s *RedisAttemptStore) Delete(ctx context.Context, attemptID uuid.UUID) error {
	if err := s.rdb.Del(ctx, attemptKey(attemptID)).Err(); err != nil {
		return fmt.Errorf("RedisAttemptStore.Delete: %w", err)
	}
	return nil
}
