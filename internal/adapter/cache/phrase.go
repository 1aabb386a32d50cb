package cache

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

// PhraseKey is the cache key of a reference phrase.
func PhraseKey(id uuid.UUID, language string) string {
	return id.String() + ":" + language
}

// PhraseCache keeps reference phrases in process memory.
type PhraseCache struct {
	ttl *TTL[domain.ReferencePhrase]
}

// NewPhraseCache creates an in-memory phrase cache.
func NewPhraseCache(ttl time.Duration) *PhraseCache {
	return &PhraseCache{ttl: NewTTL[domain.ReferencePhrase](ttl)}
}

// Get never fails; the error is there to satisfy the same contract as the
// Redis cache.
func (c *PhraseCache) Get(_ context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, bool, error) {
	p, ok := c.ttl.Get(PhraseKey(id, language))
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *PhraseCache) Set(_ context.Context, p domain.ReferencePhrase) error {
	c.ttl.Set(PhraseKey(p.ID, p.Language), p)
	return nil
}

func (c *PhraseCache) Delete(_ context.Context, id uuid.UUID, language string) error {
	c.ttl.Delete(PhraseKey(id, language))
	return nil
}

// Sweep evicts expired phrases.
func (c *PhraseCache) Sweep(now time.Time) int {
	return c.ttl.Sweep(now)
}
