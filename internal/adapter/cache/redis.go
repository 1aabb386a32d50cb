package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

const phraseKeyPrefix = "dictation:phrase:"

type phraseJSON struct {
	ID        uuid.UUID  `json:"id"`
	Language  string     `json:"language"`
	Text      string     `json:"text"`
	LessonID  *uuid.UUID `json:"lesson_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// RedisPhraseCache stores reference phrases as JSON strings with a TTL.
type RedisPhraseCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient parses url, connects and pings within 5 seconds.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, nil
}

// NewRedisPhraseCache wraps an existing client. The caller owns the client.
func NewRedisPhraseCache(client *redis.Client, ttl time.Duration) *RedisPhraseCache {
	return &RedisPhraseCache{client: client, ttl: ttl}
}

func (c *RedisPhraseCache) Get(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, bool, error) {
	raw, err := c.client.Get(ctx, phraseKeyPrefix+PhraseKey(id, language)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached phrase: %w", err)
	}

	var pj phraseJSON
	if err := json.Unmarshal(raw, &pj); err != nil {
		return nil, false, fmt.Errorf("decode cached phrase: %w", err)
	}

	return &domain.ReferencePhrase{
		ID:        pj.ID,
		Language:  pj.Language,
		Text:      pj.Text,
		LessonID:  pj.LessonID,
		CreatedAt: pj.CreatedAt,
		UpdatedAt: pj.UpdatedAt,
	}, true, nil
}

func (c *RedisPhraseCache) Set(ctx context.Context, p domain.ReferencePhrase) error {
	raw, err := json.Marshal(phraseJSON{
		ID:        p.ID,
		Language:  p.Language,
		Text:      p.Text,
		LessonID:  p.LessonID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("encode phrase: %w", err)
	}

	if err := c.client.Set(ctx, phraseKeyPrefix+PhraseKey(p.ID, p.Language), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cached phrase: %w", err)
	}
	return nil
}

func (c *RedisPhraseCache) Delete(ctx context.Context, id uuid.UUID, language string) error {
	if err := c.client.Del(ctx, phraseKeyPrefix+PhraseKey(id, language)).Err(); err != nil {
		return fmt.Errorf("delete cached phrase: %w", err)
	}
	return nil
}
