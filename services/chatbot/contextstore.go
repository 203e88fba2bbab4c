package chatbot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"reservas/models"
)

// ContextStore persists per-session dialogue context between chatbot turns.
type ContextStore interface {
	Get(ctx context.Context, sessionID string) models.DialogueContext
	Set(ctx context.Context, sessionID string, dctx models.DialogueContext) error
	Clear(ctx context.Context, sessionID string) error
}

// RedisContextStore keeps dialogue context in Redis with a sliding TTL, so an
// abandoned conversation expires on its own.
type RedisContextStore struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisContextStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisContextStore {
	return &RedisContextStore{Client: client, TTL: ttl, Logger: logger}
}

func contextKey(sessionID string) string {
	return fmt.Sprintf("chatctx:%s", sessionID)
}

// Get returns the stored context for the session, or an empty context when the
// session is unknown, expired, or the store is unreachable. A lost context only
// costs the user one clarification turn, so read failures degrade silently.
func (s *RedisContextStore) Get(ctx context.Context, sessionID string) models.DialogueContext {
	var dctx models.DialogueContext
	if sessionID == "" {
		return dctx
	}
	raw, err := s.Client.Get(ctx, contextKey(sessionID)).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("dialogue context read failed", zap.String("sessionID", sessionID), zap.Error(err))
		}
		return dctx
	}
	if err := json.Unmarshal([]byte(raw), &dctx); err != nil {
		s.Logger.Warn("dialogue context corrupt, dropping", zap.String("sessionID", sessionID), zap.Error(err))
		return models.DialogueContext{}
	}
	return dctx
}

func (s *RedisContextStore) Set(ctx context.Context, sessionID string, dctx models.DialogueContext) error {
	if sessionID == "" {
		return nil
	}
	raw, err := json.Marshal(dctx)
	if err != nil {
		return fmt.Errorf("marshal dialogue context: %w", err)
	}
	if err := s.Client.Set(ctx, contextKey(sessionID), raw, s.TTL).Err(); err != nil {
		return fmt.Errorf("store dialogue context: %w", err)
	}
	return nil
}

func (s *RedisContextStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.Client.Del(ctx, contextKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear dialogue context: %w", err)
	}
	return nil
}
