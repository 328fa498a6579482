package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"salonbook/models"
)

// SessionStore persists booking drafts between requests of one customer
// session. A missing or expired session yields a fresh empty draft.
type SessionStore interface {
	Load(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	Save(ctx context.Context, sessionID string, draft *models.BookingDraft) error
	Delete(ctx context.Context, sessionID string) error
}

const draftKeyPrefix = "draft:"

// RedisSessionStore keeps drafts as JSON under draft:<sessionID> with a
// sliding TTL, the same way the upstream booking session cache works.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
	Logger *zap.Logger
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl, Logger: logger}
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	data, err := s.Client.Get(ctx, draftKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return models.NewBookingDraft(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking draft: %w", err)
	}

	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		// A corrupt draft is recoverable: start the flow over.
		s.Logger.Warn("discarding unparsable booking draft",
			zap.String("sessionID", sessionID), zap.Error(err))
		return models.NewBookingDraft(), nil
	}
	if draft.SelectedServices == nil {
		draft.SelectedServices = []models.Service{}
	}
	return &draft, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal booking draft: %w", err)
	}
	if err := s.Client.Set(ctx, draftKeyPrefix+sessionID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking draft: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, draftKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking draft: %w", err)
	}
	return nil
}
